package models

import (
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      *time.Time
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
