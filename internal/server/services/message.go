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

// MessageService handles the contact-form inbox. Submit is reachable without
// authentication; the rest is owner-scoped.
type MessageService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewMessageService(db *sql.DB, repos repomanager.RepositoryManager, logger logging.Logger) *MessageService {
	return &MessageService{db: db, repos: repos, logger: logger.With("component", "message_service")}
}

// Submit stores an inbound contact-form message addressed to the portfolio
// owner identified by m.UserID.
func (s *MessageService) Submit(ctx context.Context, m *models.Message) (*models.Message, error) {
	if m.SenderName == "" || m.Body == "" {
		return nil, fmt.Errorf("%w: sender name and body are required", common.ErrValidation)
	}
	if !strings.Contains(m.SenderEmail, "@") {
		return nil, fmt.Errorf("%w: sender email is invalid", common.ErrValidation)
	}
	created, err := s.repos.Messages(s.db).Create(ctx, m)
	if err != nil {
		s.logger.Error(ctx, "storing message", "error", err)
		return nil, common.ErrInternal
	}
	s.logger.Info(ctx, "message received", "owner_id", m.UserID)
	return created, nil
}

func (s *MessageService) List(ctx context.Context, userID uuid.UUID) ([]*models.Message, error) {
	return s.repos.Messages(s.db).ListByUser(ctx, userID)
}

func (s *MessageService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Message, error) {
	return s.repos.Messages(s.db).GetByID(ctx, id, userID)
}

func (s *MessageService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Messages(s.db).MarkRead(ctx, id, userID)
}

func (s *MessageService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repos.Messages(s.db).Delete(ctx, id, userID)
}
