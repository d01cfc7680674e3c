// Package services contains the server-side business logic. This file
// implements AuthService: registration, login, logout, and the
// refresh-token rotation flow.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/dbx"
	"github.com/ganeshpodishetti/portfolio-api/internal/logging"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/auth"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/config"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService provides authentication operations:
//   - Register: create users
//   - Login: verify credentials and mint tokens
//   - Refresh: rotate refresh tokens and mint new access tokens
//   - Logout: invalidate the current refresh token
type AuthService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	tokens     *auth.TokenService
	logger     logging.Logger
	refreshTTL time.Duration
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(db *sql.DB, repos repomanager.RepositoryManager, tokens *auth.TokenService, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:         db,
		repos:      repos,
		tokens:     tokens,
		logger:     logger.With("component", "auth_service"),
		refreshTTL: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	taken, err := s.repos.Users(s.db).ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "checking email", "error", err)
		return nil, common.ErrInternal
	}
	if taken {
		return nil, common.ErrAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	u, err := s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		s.logger.Error(ctx, "creating user", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies the credentials and, on success, returns a new TokenPair.
// The generated refresh token overwrites whatever was stored before.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		s.logger.Error(ctx, "loading user by email", "error", err)
		return nil, common.ErrInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrUnauthorized
	}

	pair, err := s.issueTokenPair(ctx, s.db, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh rotates the refresh token. The access token may be expired but must
// be structurally valid and correctly signed; the refresh token must exactly
// match the stored one and be unexpired. Rotation is transactional and
// single-use: the stored token is overwritten before the new pair is returned,
// so a second call with the superseded token fails.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.ExtractUserIDAllowExpired(accessToken)
	if err != nil {
		return nil, err
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		// Row lock: concurrent rotations of the same token serialize, so
		// the loser sees the overwritten token and fails the compare.
		user, err := repo.GetByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrUnauthorized
			}
			s.logger.Error(ctx, "loading user", "error", err)
			return common.ErrInternal
		}

		if user.RefreshToken == nil || !tokensEqual(*user.RefreshToken, refreshToken) {
			return common.ErrUnauthorized
		}
		if user.RefreshTokenExpiresAt == nil || user.RefreshTokenExpiresAt.Before(time.Now()) {
			return common.ErrRefreshTokenExpired
		}

		pair, err = s.issueTokenPair(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "tokens refreshed", "user_id", userID)
	return pair, nil
}

// PersistRefreshToken writes the token with a fresh expiry through to the
// user row, overwriting the previous one. A failed write is reported as
// false, not as an error.
func (s *AuthService) PersistRefreshToken(ctx context.Context, user *models.User, token string) bool {
	return s.persistRefreshToken(ctx, s.db, user, token)
}

// Logout clears the refresh-token state on the user record. The state is
// invalidated in place, never deleted as a row.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.repos.Users(s.db).UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUnauthorized
		}
		s.logger.Error(ctx, "clearing refresh token", "error", err)
		return common.ErrInternal
	}
	s.logger.Info(ctx, "user logged out", "user_id", userID)
	return nil
}

// --- helpers below ---

func (s *AuthService) issueTokenPair(ctx context.Context, db dbx.DBTX, user *models.User) (*TokenPair, error) {
	roles, err := s.repos.Users(db).GetRoles(ctx, user.ID)
	if err != nil {
		s.logger.Error(ctx, "loading roles", "error", err)
		return nil, common.ErrInternal
	}

	access, err := s.tokens.IssueAccessToken(user, roles)
	if err != nil {
		s.logger.Error(ctx, "issuing access token", "error", err)
		return nil, common.ErrInternal
	}

	refresh, err := auth.GenerateRefreshToken()
	if err != nil {
		s.logger.Error(ctx, "generating refresh token", "error", err)
		return nil, common.ErrInternal
	}

	if ok := s.persistRefreshToken(ctx, db, user, refresh); !ok {
		return nil, common.ErrInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) persistRefreshToken(ctx context.Context, db dbx.DBTX, user *models.User, token string) bool {
	expiresAt := time.Now().Add(s.refreshTTL)
	if err := s.repos.Users(db).UpdateRefreshToken(ctx, user.ID, &token, &expiresAt); err != nil {
		s.logger.Error(ctx, "persisting refresh token", "user_id", user.ID, "error", err)
		return false
	}
	user.RefreshToken = &token
	user.RefreshTokenExpiresAt = &expiresAt
	return true
}

func tokensEqual(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
