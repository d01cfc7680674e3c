package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record owned by the auth subsystem. At most one
// refresh token is active per user: rotating always overwrites RefreshToken
// and RefreshTokenExpiresAt in place, never appends.
type User struct {
	ID                    uuid.UUID
	Username              string
	Email                 string
	PasswordHash          string
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
