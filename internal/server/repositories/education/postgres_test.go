package education

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func educationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "school", "degree", "field_of_study",
		"start_date", "end_date", "description", "created_at", "updated_at",
	})
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM educations WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(educationRows().
			AddRow(uuid.New(), userID, "MIT", "BSc", "CS", now, nil, "", now, now).
			AddRow(uuid.New(), userID, "CMU", "MSc", "SE", now, now, "thesis", now, now))

	items, err := repo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len: got %d want 2", len(items))
	}
	if items[0].School != "MIT" {
		t.Fatalf("school: got %q", items[0].School)
	}
	if items[0].EndDate != nil {
		t.Fatalf("expected nil end date for current study")
	}
}

func TestGetByID_OtherUsersRowIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .* FROM educations WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnRows(educationRows())

	_, err := repo.GetByID(context.Background(), id, userID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	userID := uuid.New()
	id := uuid.New()
	now := time.Now()
	start := now.AddDate(-4, 0, 0)

	mock.ExpectQuery(`INSERT INTO educations .* RETURNING id, created_at, updated_at`).
		WithArgs(userID, "MIT", "BSc", "CS", start, nil, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	e, err := repo.Create(context.Background(), &models.Education{
		UserID:       userID,
		School:       "MIT",
		Degree:       "BSc",
		FieldOfStudy: "CS",
		StartDate:    start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != id {
		t.Fatalf("id: got %s want %s", e.ID, id)
	}
}

func TestUpdate_MissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	e := &models.Education{ID: uuid.New(), UserID: uuid.New(), School: "MIT", StartDate: time.Now()}

	mock.ExpectExec(`UPDATE educations\s+SET school = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), e); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id, userID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM educations WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), id, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
