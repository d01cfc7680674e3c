package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/auth"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret", "portfolio-api", "portfolio-web", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ts
}

func newProtectedRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "no user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newProtectedRouter(newTestTokenService(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := newProtectedRouter(newTestTokenService(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTestTokenService(t)
	r := newProtectedRouter(tokens)

	user := &models.User{ID: uuid.New(), Username: "jane", Email: "jane@example.com"}
	token, err := tokens.IssueAccessToken(user, []string{"owner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_TokenFromOtherKeyRejected(t *testing.T) {
	other, err := auth.NewTokenService("other-secret", "portfolio-api", "portfolio-web", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, err := other.IssueAccessToken(&models.User{ID: uuid.New()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := newProtectedRouter(newTestTokenService(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRateLimitMiddleware_BurstThenThrottle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1, 3))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "pong"})
	})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	for i := 0; i < 3; i++ {
		if codes[i] != http.StatusOK {
			t.Errorf("request %d: expected %d, got %d", i, http.StatusOK, codes[i])
		}
	}
	if codes[3] != http.StatusTooManyRequests && codes[4] != http.StatusTooManyRequests {
		t.Errorf("expected throttling after burst, got %v", codes)
	}
}

func TestRateLimitMiddleware_SeparateBucketsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(1, 1))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "pong"})
	})

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(first, req1)

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(second, req2)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Errorf("fresh IPs should not be throttled, got %d and %d", first.Code, second.Code)
	}
}
