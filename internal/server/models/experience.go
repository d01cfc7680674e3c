package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience is a work-history entry. A nil EndDate means the position is
// current.
type Experience struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	CompanyName string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
