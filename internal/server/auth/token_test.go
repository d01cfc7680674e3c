package auth

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

const (
	testIssuer   = "portfolio-api"
	testAudience = "portfolio-web"
)

func newTestService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	s, err := NewTokenService("super-secret", testIssuer, testAudience, ttl)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return s
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "jdoe",
		Email:    "jdoe@example.com",
	}
}

func TestNewTokenService_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService("", testIssuer, testAudience, time.Minute)
	if !errors.Is(err, common.ErrMissingSigningKey) {
		t.Fatalf("expected ErrMissingSigningKey, got %v", err)
	}
}

func TestIssueAndExtract_Roundtrip(t *testing.T) {
	t.Parallel()

	s := newTestService(t, time.Hour)
	user := testUser()

	tok, err := s.IssueAccessToken(user, []string{"admin"})
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	got, err := s.ExtractUserID(tok)
	if err != nil {
		t.Fatalf("ExtractUserID error: %v", err)
	}
	if got != user.ID {
		t.Fatalf("user id mismatch: got %s want %s", got, user.ID)
	}
}

func TestExtractUserID_BearerPrefixMixedCase(t *testing.T) {
	t.Parallel()

	s := newTestService(t, time.Hour)
	user := testUser()

	tok, err := s.IssueAccessToken(user, nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	for _, prefix := range []string{"Bearer ", "bearer ", "bEaReR ", ""} {
		got, err := s.ExtractUserID(prefix + tok)
		if err != nil {
			t.Fatalf("prefix %q: ExtractUserID error: %v", prefix, err)
		}
		if got != user.ID {
			t.Fatalf("prefix %q: got %s want %s", prefix, got, user.ID)
		}
	}
}

func TestExtractUserID_Expired(t *testing.T) {
	t.Parallel()

	s := newTestService(t, -1*time.Second)
	user := testUser()

	tok, err := s.IssueAccessToken(user, nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	_, err = s.ExtractUserID(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}

	// The refresh flow still reads the subject from an expired token.
	got, err := s.ExtractUserIDAllowExpired(tok)
	if err != nil {
		t.Fatalf("ExtractUserIDAllowExpired error: %v", err)
	}
	if got != user.ID {
		t.Fatalf("got %s want %s", got, user.ID)
	}
}

func TestExtractUserIDAllowExpired_WrongKeyStillFails(t *testing.T) {
	t.Parallel()

	other, err := NewTokenService("other-secret", testIssuer, testAudience, -1*time.Second)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	tok, err := other.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	s := newTestService(t, time.Hour)
	if _, err := s.ExtractUserIDAllowExpired(tok); err == nil {
		t.Fatalf("expected error for token signed with a different key")
	}
}

func TestExtractUserIDAllowExpired_WrongIssuerOrAudienceStillFails(t *testing.T) {
	t.Parallel()

	s := newTestService(t, time.Hour)

	cases := []struct {
		name     string
		issuer   string
		audience string
	}{
		{"wrong issuer", "someone-else", testAudience},
		{"wrong audience", testIssuer, "other-app"},
		{"both wrong", "someone-else", "other-app"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Same key, already expired, but minted for another deployment.
			// Forgiving expiry must not forgive the foreign claims too.
			other, err := NewTokenService("super-secret", tc.issuer, tc.audience, -1*time.Second)
			if err != nil {
				t.Fatalf("NewTokenService error: %v", err)
			}
			tok, err := other.IssueAccessToken(testUser(), nil)
			if err != nil {
				t.Fatalf("IssueAccessToken error: %v", err)
			}

			if _, err := s.ExtractUserIDAllowExpired(tok); !errors.Is(err, common.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestExtractUserID_BadIssuerOrAudience(t *testing.T) {
	t.Parallel()

	wrongIssuer, err := NewTokenService("super-secret", "someone-else", testAudience, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	tok, err := wrongIssuer.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	s := newTestService(t, time.Hour)
	if _, err := s.ExtractUserID(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	wrongAudience, err := NewTokenService("super-secret", testIssuer, "other-app", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	tok, err = wrongAudience.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}
	if _, err := s.ExtractUserID(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong audience, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	s := newTestService(t, time.Hour)

	fresh, err := s.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	otherKey, err := NewTokenService("not-the-key", testIssuer, testAudience, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	foreign, err := otherKey.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	expiredSvc := newTestService(t, -1*time.Minute)
	expired, err := expiredSvc.IssueAccessToken(testUser(), nil)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"fresh token", fresh, true},
		{"empty string", "", false},
		{"malformed", "not.a.jwt", false},
		{"wrong key", foreign, false},
		{"expired", expired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsValid(tt.token); got != tt.want {
				t.Fatalf("IsValid(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestGenerateRefreshToken_EntropyAndUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		tok, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("GenerateRefreshToken error: %v", err)
		}
		raw, err := base64.StdEncoding.DecodeString(tok)
		if err != nil {
			t.Fatalf("token is not valid base64: %v", err)
		}
		if len(raw) != 64 {
			t.Fatalf("decoded length: got %d want 64", len(raw))
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("collision after %d tokens", i)
		}
		seen[tok] = struct{}{}
	}
}

func TestStripBearerPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"BEARER abc", "abc"},
		{"  Bearer abc  ", "abc"},
		{"abc", "abc"},
		{"Bearerabc", "Bearerabc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripBearerPrefix(tt.in); got != tt.want {
			t.Fatalf("StripBearerPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword(hash, "hunter2") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "hunter3") {
		t.Fatalf("expected mismatching password to fail")
	}
}
