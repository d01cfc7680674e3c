package experiences

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/dbx"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const experienceColumns = `id, user_id, title, company_name, location, start_date, end_date, description, created_at, updated_at`

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Experience
	for rows.Next() {
		item, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1 AND user_id = $2`

	rows, err := r.db.QueryContext(ctx, query, id, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, common.ErrNotFound
	}
	return scanExperience(rows)
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Experience) (*models.Experience, error) {
	query :=
		`INSERT INTO experiences (user_id, title, company_name, location, start_date, end_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.UserID, e.Title, e.CompanyName, e.Location, e.StartDate, e.EndDate, e.Description).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Experience) error {
	query :=
		`UPDATE experiences
		 SET title = $3, company_name = $4, location = $5, start_date = $6, end_date = $7, description = $8, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Title, e.CompanyName, e.Location, e.StartDate, e.EndDate, e.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM experiences WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func scanExperience(rows *sql.Rows) (*models.Experience, error) {
	var item models.Experience
	err := rows.Scan(
		&item.ID, &item.UserID, &item.Title, &item.CompanyName, &item.Location,
		&item.StartDate, &item.EndDate, &item.Description,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
