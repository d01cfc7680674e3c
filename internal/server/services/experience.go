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

// ExperienceService orchestrates CRUD on work-history records.
type ExperienceService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewExperienceService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *ExperienceService {
	return &ExperienceService{db: db, repos: repos, logger: logger.With("component", "experience_service")}
}

func (s *ExperienceService) List(ctx context.Context, userID uuid.UUID) ([]*models.Experience, error) {
	return s.repos.Experiences(s.db).ListByUser(ctx, userID)
}

func (s *ExperienceService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Experience, error) {
	return s.repos.Experiences(s.db).GetByID(ctx, id, userID)
}

func (s *ExperienceService) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	if e.Title == "" || e.CompanyName == "" || e.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: title, company and start date are required", common.ErrValidation)
	}
	created, err := s.repos.Experiences(s.db).Create(ctx, e)
	if err != nil {
		s.logger.Error(ctx, "creating experience record", "error", err)
		return nil, common.ErrInternal
	}
	return created, nil
}

func (s *ExperienceService) Update(ctx context.Context, e *models.Experience) error {
	if e.Title == "" || e.CompanyName == "" || e.StartDate.IsZero() {
		return fmt.Errorf("%w: title, company and start date are required", common.ErrValidation)
	}
	return s.repos.Experiences(s.db).Update(ctx, e)
}

func (s *ExperienceService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Experiences(s.db).Delete(ctx, id, userID)
}
