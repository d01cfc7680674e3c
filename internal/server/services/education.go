package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/logging"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/repomanager"
)

// EducationService orchestrates CRUD on education records. Every operation
// is scoped to the authenticated owner; load-mutate-save, no implicit
// tracking.
type EducationService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewEducationService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *EducationService {
	return &EducationService{db: db, repos: repos, logger: logger.With("component", "education_service")}
}

func (s *EducationService) List(ctx context.Context, userID uuid.UUID) ([]*models.Education, error) {
	return s.repos.Education(s.db).ListByUser(ctx, userID)
}

func (s *EducationService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Education, error) {
	return s.repos.Education(s.db).GetByID(ctx, id, userID)
}

func (s *EducationService) Create(ctx context.Context, e *models.Education) (*models.Education, error) {
	if e.School == "" || e.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: school and start date are required", common.ErrValidation)
	}
	created, err := s.repos.Education(s.db).Create(ctx, e)
	if err != nil {
		s.logger.Error(ctx, "creating education record", "error", err)
		return nil, common.ErrInternal
	}
	return created, nil
}

func (s *EducationService) Update(ctx context.Context, e *models.Education) error {
	if e.School == "" || e.StartDate.IsZero() {
		return fmt.Errorf("%w: school and start date are required", common.ErrValidation)
	}
	return s.repos.Education(s.db).Update(ctx, e)
}

func (s *EducationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Education(s.db).Delete(ctx, id, userID)
}
