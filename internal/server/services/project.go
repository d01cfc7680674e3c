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

// ProjectService orchestrates CRUD on showcased projects and tracks the
// object-storage key of each project's cover image.
type ProjectService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewProjectService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *ProjectService {
	return &ProjectService{db: db, repos: repos, logger: logger.With("component", "project_service")}
}

func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]*models.Project, error) {
	return s.repos.Projects(s.db).ListByUser(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Project, error) {
	return s.repos.Projects(s.db).GetByID(ctx, id, userID)
}

func (s *ProjectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", common.ErrValidation)
	}
	created, err := s.repos.Projects(s.db).Create(ctx, p)
	if err != nil {
		s.logger.Error(ctx, "creating project", "error", err)
		return nil, common.ErrInternal
	}
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, p *models.Project) error {
	if p.Name == "" {
		return fmt.Errorf("%w: project name is required", common.ErrValidation)
	}
	return s.repos.Projects(s.db).Update(ctx, p)
}

// AttachImage records the storage key of a freshly uploaded cover image.
func (s *ProjectService) AttachImage(ctx context.Context, id, userID uuid.UUID, key string) error {
	if key == "" {
		return fmt.Errorf("%w: image key is required", common.ErrValidation)
	}
	return s.repos.Projects(s.db).SetImageKey(ctx, id, userID, key)
}

func (s *ProjectService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Projects(s.db).Delete(ctx, id, userID)
}
