package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
)

type ProjectRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Project, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id, userID int64) error
}

type PostgresProjectRepository struct {
	DB *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *PostgresProjectRepository {
	return &PostgresProjectRepository{DB: db}
}

const projectColumns = `id, user_id, title, description, technologies, image_url, live_url, repo_url, display_order, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Technologies,
		&p.ImageURL, &p.LiveURL, &p.RepoURL, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProjectRepository) ListByUser(ctx context.Context, userID int64) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id=$1 ORDER BY display_order ASC, created_at DESC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Technologies,
			&p.ImageURL, &p.LiveURL, &p.RepoURL, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProjectRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id=$1 AND user_id=$2`
	return scanProject(r.DB.QueryRow(ctx, query, id, userID))
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	query := `
		INSERT INTO projects (user_id, title, description, technologies, image_url, live_url, repo_url, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns
	return scanProject(r.DB.QueryRow(ctx, query,
		p.UserID, p.Title, p.Description, p.Technologies, p.ImageURL, p.LiveURL, p.RepoURL, p.DisplayOrder))
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	query := `
		UPDATE projects
		SET title=$1, description=$2, technologies=$3, image_url=$4, live_url=$5, repo_url=$6, display_order=$7, updated_at=now()
		WHERE id=$8 AND user_id=$9
		RETURNING ` + projectColumns
	return scanProject(r.DB.QueryRow(ctx, query,
		p.Title, p.Description, p.Technologies, p.ImageURL, p.LiveURL, p.RepoURL, p.DisplayOrder, p.ID, p.UserID))
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM projects WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
