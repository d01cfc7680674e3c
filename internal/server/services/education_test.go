package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/dbx"
	"github.com/ganeshpodishetti/portfolio-api/internal/logging"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/repositories/education"
)

type memEducationRepo struct {
	items map[uuid.UUID]*models.Education
}

func (r *memEducationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Education, error) {
	var out []*models.Education
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEducationRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*models.Education, error) {
	e, ok := r.items[id]
	if !ok || e.UserID != userID {
		return nil, common.ErrNotFound
	}
	return e, nil
}

func (r *memEducationRepo) Create(_ context.Context, e *models.Education) (*models.Education, error) {
	e.ID = uuid.New()
	r.items[e.ID] = e
	return e, nil
}

func (r *memEducationRepo) Update(_ context.Context, e *models.Education) error {
	if _, ok := r.items[e.ID]; !ok {
		return common.ErrNotFound
	}
	r.items[e.ID] = e
	return nil
}

func (r *memEducationRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	e, ok := r.items[id]
	if !ok || e.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type educationOnlyManager struct {
	fakeRepoManager
	repo *memEducationRepo
}

func (m *educationOnlyManager) Education(dbx.DBTX) education.Repository { return m.repo }

func newEducationService(t *testing.T) (*EducationService, *memEducationRepo) {
	t.Helper()
	repo := &memEducationRepo{items: make(map[uuid.UUID]*models.Education)}
	mgr := &educationOnlyManager{repo: repo}
	logger := logging.NewSlogLogger(newDiscardSlog())
	return NewEducationService((*sql.DB)(nil), mgr, logger), repo
}

func TestEducationService_CreateRequiresFields(t *testing.T) {
	svc, _ := newEducationService(t)

	_, err := svc.Create(context.Background(), &models.Education{UserID: uuid.New()})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestEducationService_CRUDRoundtrip(t *testing.T) {
	svc, _ := newEducationService(t)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, &models.Education{
		UserID:    userID,
		School:    "MIT",
		Degree:    "BSc",
		StartDate: time.Now().AddDate(-4, 0, 0),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID, userID)
	require.NoError(t, err)
	require.Equal(t, "MIT", got.School)

	// Another user must not see or delete the record.
	_, err = svc.Get(ctx, created.ID, uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, created.ID, uuid.New()), common.ErrNotFound)

	items, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Delete(ctx, created.ID, userID))
	items, err = svc.List(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, items)
}
