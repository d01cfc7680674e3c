package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/logging"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/repomanager"
)

// SocialLinkService orchestrates CRUD on social profile links.
type SocialLinkService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewSocialLinkService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *SocialLinkService {
	return &SocialLinkService{db: db, repos: repos, logger: logger.With("component", "social_link_service")}
}

func (s *SocialLinkService) List(ctx context.Context, userID uuid.UUID) ([]*models.SocialLink, error) {
	return s.repos.SocialLinks(s.db).ListByUser(ctx, userID)
}

func (s *SocialLinkService) Get(ctx context.Context, id, userID uuid.UUID) (*models.SocialLink, error) {
	return s.repos.SocialLinks(s.db).GetByID(ctx, id, userID)
}

func (s *SocialLinkService) Create(ctx context.Context, l *models.SocialLink) (*models.SocialLink, error) {
	if err := validateSocialLink(l); err != nil {
		return nil, err
	}
	created, err := s.repos.SocialLinks(s.db).Create(ctx, l)
	if err != nil {
		s.logger.Error(ctx, "creating social link", "error", err)
		return nil, common.ErrInternal
	}
	return created, nil
}

func (s *SocialLinkService) Update(ctx context.Context, l *models.SocialLink) error {
	if err := validateSocialLink(l); err != nil {
		return err
	}
	return s.repos.SocialLinks(s.db).Update(ctx, l)
}

func (s *SocialLinkService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.SocialLinks(s.db).Delete(ctx, id, userID)
}

func validateSocialLink(l *models.SocialLink) error {
	if l.Platform == "" {
		return fmt.Errorf("%w: platform is required", common.ErrValidation)
	}
	if !strings.HasPrefix(l.URL, "http://") && !strings.HasPrefix(l.URL, "https://") {
		return fmt.Errorf("%w: url must be absolute", common.ErrValidation)
	}
	return nil
}
