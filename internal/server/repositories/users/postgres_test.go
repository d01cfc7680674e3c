package users

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

func userColumns() []string {
	return []string{
		"id", "username", "email", "password_hash",
		"refresh_token", "refresh_token_expires_at",
		"created_at", "updated_at",
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users .* RETURNING id, created_at, updated_at`).
		WithArgs("jdoe", "jdoe@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	u, err := repo.Create(context.Background(), &models.User{
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != id {
		t.Fatalf("id: got %s want %s", u.ID, id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetByID_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now()
	token := "opaque-refresh"
	expires := now.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "jdoe", "jdoe@example.com", "hash", token, expires, now, now))

	u, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.RefreshToken == nil || *u.RefreshToken != token {
		t.Fatalf("refresh token: got %v want %q", u.RefreshToken, token)
	}
	if u.RefreshTokenExpiresAt == nil || !u.RefreshTokenExpiresAt.Equal(expires) {
		t.Fatalf("refresh expiry: got %v want %v", u.RefreshTokenExpiresAt, expires)
	}
}

func TestUpdateRefreshToken_OverwritesRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	token := "new-token"
	expires := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectExec(`UPDATE users\s+SET refresh_token = \$2, refresh_token_expires_at = \$3`).
		WithArgs(id, &token, &expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateRefreshToken(context.Background(), id, &token, &expires); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateRefreshToken_MissingUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()

	mock.ExpectExec(`UPDATE users\s+SET refresh_token = \$2`).
		WithArgs(id, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRefreshToken(context.Background(), id, nil, nil)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetRoles(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT role FROM user_roles WHERE user_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin").AddRow("owner"))

	roles, err := repo.GetRoles(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 2 || roles[0] != "admin" || roles[1] != "owner" {
		t.Fatalf("roles: got %v", roles)
	}
}

func TestExistsByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("jdoe@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	taken, err := repo.ExistsByEmail(context.Background(), "jdoe@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Errorf("expected true for existing email")
	}

	taken, err = repo.ExistsByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Errorf("expected false for unknown email")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM users\s+WHERE id = \$1\s+FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id, "jdoe", "jdoe@example.com", "hash", nil, nil, now, now))

	u, err := repo.GetByIDForUpdate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != id {
		t.Fatalf("id: got %s want %s", u.ID, id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
