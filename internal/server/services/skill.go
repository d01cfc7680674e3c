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

// maxProficiency caps the self-assessed skill level (0..100).
const maxProficiency = 100

// SkillService orchestrates CRUD on skill records.
type SkillService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewSkillService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *SkillService {
	return &SkillService{db: db, repos: repos, logger: logger.With("component", "skill_service")}
}

func (s *SkillService) List(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error) {
	return s.repos.Skills(s.db).ListByUser(ctx, userID)
}

func (s *SkillService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Skill, error) {
	return s.repos.Skills(s.db).GetByID(ctx, id, userID)
}

func (s *SkillService) Create(ctx context.Context, sk *models.Skill) (*models.Skill, error) {
	if err := validateSkill(sk); err != nil {
		return nil, err
	}
	created, err := s.repos.Skills(s.db).Create(ctx, sk)
	if err != nil {
		s.logger.Error(ctx, "creating skill", "error", err)
		return nil, common.ErrInternal
	}
	return created, nil
}

func (s *SkillService) Update(ctx context.Context, sk *models.Skill) error {
	if err := validateSkill(sk); err != nil {
		return err
	}
	return s.repos.Skills(s.db).Update(ctx, sk)
}

func (s *SkillService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Skills(s.db).Delete(ctx, id, userID)
}

func validateSkill(sk *models.Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("%w: skill name is required", common.ErrValidation)
	}
	if sk.Proficiency < 0 || sk.Proficiency > maxProficiency {
		return fmt.Errorf("%w: proficiency must be between 0 and %d", common.ErrValidation, maxProficiency)
	}
	return nil
}
