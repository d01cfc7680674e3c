// Package sociallinks provides persistence for social profile links.
package sociallinks

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SocialLink, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.SocialLink, error)
	Create(ctx context.Context, l *models.SocialLink) (*models.SocialLink, error)
	Update(ctx context.Context, l *models.SocialLink) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
