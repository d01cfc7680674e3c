// Package experiences provides persistence for work-history records.
package experiences

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Experience, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
