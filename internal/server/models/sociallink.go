package models

import (
	"time"

	"github.com/google/uuid"
)

type SocialLink struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Platform  string
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
