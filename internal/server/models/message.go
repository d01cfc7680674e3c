package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact-form submission addressed to a portfolio
// owner. Submission is public; everything else is owner-scoped.
type Message struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SenderName  string
	SenderEmail string
	Subject     string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
