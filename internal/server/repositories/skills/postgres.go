package skills

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error) {
	query := `SELECT id, user_id, name, proficiency, created_at, updated_at FROM skills WHERE user_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Skill
	for rows.Next() {
		var item models.Skill
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Proficiency, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Skill, error) {
	query := `SELECT id, user_id, name, proficiency, created_at, updated_at FROM skills WHERE id = $1 AND user_id = $2`

	var item models.Skill
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&item.ID, &item.UserID, &item.Name, &item.Proficiency, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	query :=
		`INSERT INTO skills (user_id, name, proficiency)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, s.UserID, s.Name, s.Proficiency).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.Skill) error {
	query := `UPDATE skills SET name = $3, proficiency = $4, updated_at = now() WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, s.ID, s.UserID, s.Name, s.Proficiency)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowAffected(res)
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
