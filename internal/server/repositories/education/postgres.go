package education

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
	"github.com/ganeshpodishetti/portfolio-api/internal/dbx"
	"github.com/ganeshpodishetti/portfolio-api/internal/server/models"
)

// PostgresRepository implements education storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const educationColumns = `id, user_id, school, degree, field_of_study, start_date, end_date, description, created_at, updated_at`

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Education
	for rows.Next() {
		item, err := scanEducation(rows)
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

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1 AND user_id = $2`

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
	return scanEducation(rows)
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Education) (*models.Education, error) {
	query :=
		`INSERT INTO educations (user_id, school, degree, field_of_study, start_date, end_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.UserID, e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Description).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Education) error {
	query :=
		`UPDATE educations
		 SET school = $3, degree = $4, field_of_study = $5, start_date = $6, end_date = $7, description = $8, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM educations WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func scanEducation(rows *sql.Rows) (*models.Education, error) {
	var item models.Education
	err := rows.Scan(
		&item.ID, &item.UserID, &item.School, &item.Degree, &item.FieldOfStudy,
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
