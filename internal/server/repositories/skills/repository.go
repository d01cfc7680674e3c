// Package skills provides persistence for skill records.
package skills

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
