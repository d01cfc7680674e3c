// Package messages provides persistence for the contact-form inbox.
package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

// Repository defines inbox operations. Create is the public contact-form
// write path; everything else is scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, m *models.Message) (*models.Message, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Message, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Message, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
