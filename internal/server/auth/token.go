// Package auth implements the token service: the sole authority for minting,
// validating, and reading JWT access tokens, plus refresh-token generation.
// It talks to no storage; persistence of refresh tokens belongs to the
// services layer.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

// refreshTokenBytes is the amount of CSPRNG entropy behind each refresh token.
const refreshTokenBytes = 64

// Claims is the access-token payload: registered claims plus the identity
// facts embedded at issue time. The jti registered claim carries the
// uniqueness marker.
type Claims struct {
	jwt.RegisteredClaims
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// TokenService mints and validates bearer credentials with a symmetric key.
type TokenService struct {
	signingKey []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
}

// NewTokenService builds a TokenService from configuration values. An empty
// signing key is a configuration error and is rejected at construction.
func NewTokenService(signingKey, issuer, audience string, accessTTL time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, common.ErrMissingSigningKey
	}
	return &TokenService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
	}, nil
}

// IssueAccessToken signs a new HS256 access token for the user. Roles are
// supplied by the caller, looked up from the user store at issue time.
func (s *TokenService) IssueAccessToken(user *models.User, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// ExtractUserID validates the token (signature, issuer, audience, expiry,
// zero leeway) and returns the subject parsed as a uuid. An optional
// "Bearer " prefix is stripped case-insensitively.
func (s *TokenService) ExtractUserID(tokenString string) (uuid.UUID, error) {
	return s.extractUserID(tokenString, false)
}

// ExtractUserIDAllowExpired behaves like ExtractUserID but accepts a token
// whose only defect is expiry. The refresh flow relies on this: the caller
// presents its old, possibly-expired access token together with the refresh
// token.
func (s *TokenService) ExtractUserIDAllowExpired(tokenString string) (uuid.UUID, error) {
	return s.extractUserID(tokenString, true)
}

func (s *TokenService) extractUserID(tokenString string, allowExpired bool) (uuid.UUID, error) {
	claims, err := s.parse(tokenString, allowExpired)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Subject == "" {
		return uuid.Nil, fmt.Errorf("%w: missing subject claim", common.ErrInvalidToken)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a valid id", common.ErrInvalidToken)
	}
	return id, nil
}

// IsValid reports whether the token passes full validation. It never returns
// an error; any failure is false. Intended for non-authoritative checks only.
func (s *TokenService) IsValid(tokenString string) bool {
	_, err := s.parse(tokenString, false)
	return err == nil
}

func (s *TokenService) parse(tokenString string, allowExpired bool) (*Claims, error) {
	tokenString = StripBearerPrefix(tokenString)
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", common.ErrInvalidToken)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		// The library joins claim-validation failures, so an expired token
		// can carry issuer/audience/signature defects in the same error.
		// Those defects disqualify the token even when expiry is forgiven.
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenInvalidIssuer),
			errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			if allowExpired {
				return claims, nil
			}
			return nil, fmt.Errorf("%w: %v", common.ErrTokenExpired, err)
		default:
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		}
	}
	return claims, nil
}

// GenerateRefreshToken returns a fresh opaque refresh token: 64 bytes of
// crypto/rand entropy, base64-encoded. The result always decodes back to
// exactly 64 raw bytes.
func GenerateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// StripBearerPrefix removes a leading "Bearer " scheme, matched
// case-insensitively, and trims surrounding whitespace.
func StripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimSpace(tokenString)
	prefix := common.BearerScheme + " "
	if len(tokenString) >= len(prefix) && strings.EqualFold(tokenString[:len(prefix)], prefix) {
		return strings.TrimSpace(tokenString[len(prefix):])
	}
	return tokenString
}
