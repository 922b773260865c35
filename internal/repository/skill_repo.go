package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
)

type SkillRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Skill, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Skill, error)
	ExistsByNameAndUser(ctx context.Context, name string, userID int64) (bool, error)
	Create(ctx context.Context, s *model.Skill) (*model.Skill, error)
	Update(ctx context.Context, s *model.Skill) (*model.Skill, error)
	Delete(ctx context.Context, id, userID int64) error
}

type PostgresSkillRepository struct {
	DB *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) *PostgresSkillRepository {
	return &PostgresSkillRepository{DB: db}
}

func scanSkill(row pgx.Row) (*model.Skill, error) {
	var s model.Skill
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Icon); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSkillRepository) ListByUser(ctx context.Context, userID int64) ([]model.Skill, error) {
	query := `SELECT id, user_id, name, category, icon FROM skills WHERE user_id=$1 ORDER BY category ASC NULLS LAST, name ASC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Icon); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresSkillRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Skill, error) {
	query := `SELECT id, user_id, name, category, icon FROM skills WHERE id=$1 AND user_id=$2`
	return scanSkill(r.DB.QueryRow(ctx, query, id, userID))
}

// ExistsByNameAndUser matches case-insensitively, mirroring the
// skills_user_name_key index.
func (r *PostgresSkillRepository) ExistsByNameAndUser(ctx context.Context, name string, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM skills WHERE user_id=$1 AND LOWER(name)=LOWER($2))`
	if err := r.DB.QueryRow(ctx, query, userID, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s *model.Skill) (*model.Skill, error) {
	query := `INSERT INTO skills (user_id, name, category, icon) VALUES ($1, $2, $3, $4) RETURNING id, user_id, name, category, icon`
	saved, err := scanSkill(r.DB.QueryRow(ctx, query, s.UserID, s.Name, s.Category, s.Icon))
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return nil, taken
		}
		return nil, err
	}
	return saved, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s *model.Skill) (*model.Skill, error) {
	query := `UPDATE skills SET name=$1, category=$2, icon=$3 WHERE id=$4 AND user_id=$5 RETURNING id, user_id, name, category, icon`
	saved, err := scanSkill(r.DB.QueryRow(ctx, query, s.Name, s.Category, s.Icon, s.ID, s.UserID))
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return nil, taken
		}
		return nil, err
	}
	return saved, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM skills WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
