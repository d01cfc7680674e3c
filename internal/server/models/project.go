package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a showcased piece of work. ImageKey points at the object-storage
// key of the cover image; the HTTP layer hands out presigned URLs for it.
type Project struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	RepoURL     string
	LiveURL     string
	ImageKey    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
