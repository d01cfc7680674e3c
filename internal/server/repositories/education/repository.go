// Package education provides persistence for education records, always
// scoped to the owning user.
package education

import (
	"context"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

// Repository defines CRUD operations on education records. Reads and writes
// are owner-scoped: an id belonging to another user behaves as not found.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Education, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Education, error)
	Create(ctx context.Context, e *models.Education) (*models.Education, error)
	Update(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
