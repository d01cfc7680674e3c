// Package projects provides persistence for showcased projects.
package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Project, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// SetImageKey records the object-storage key of the project's cover
	// image after a confirmed upload.
	SetImageKey(ctx context.Context, id, userID uuid.UUID, key string) error
}
