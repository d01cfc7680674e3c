package models

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Proficiency int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
