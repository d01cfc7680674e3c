// Package users declares the repository contract for the user store:
// identity records plus the per-user refresh-token state.
package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

// Repository defines persistence operations on user records.
type Repository interface {
	// Create inserts a new user and returns it with generated fields set.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID loads a user by id. Returns common.ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail loads a user by email. Returns common.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByIDForUpdate loads a user by id and locks the row for the duration
	// of the surrounding transaction. Meaningful only inside dbx.WithTx;
	// refresh-token rotation uses it so concurrent rotations serialize.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetRoles returns the role names assigned to the user.
	GetRoles(ctx context.Context, id uuid.UUID) ([]string, error)

	// UpdateRefreshToken overwrites the user's refresh-token state in place.
	// Passing nils clears the session. There is never more than one active
	// refresh token per user.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token *string, expiresAt *time.Time) error
}
