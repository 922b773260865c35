package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
)

type PortfolioRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.Portfolio, error)
	GetBySlug(ctx context.Context, slug string) (*model.Portfolio, error)
	FindUserIDBySlug(ctx context.Context, slug string) (int64, error)
	Upsert(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error)
}

type PostgresPortfolioRepository struct {
	DB *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{DB: db}
}

const portfolioColumns = `id, user_id, about_me_text, resume_url, linkedin_url, github_url, contact_email, public_slug, last_updated_at`

func scanPortfolio(row pgx.Row) (*model.Portfolio, error) {
	var p model.Portfolio
	err := row.Scan(&p.ID, &p.UserID, &p.AboutMeText, &p.ResumeURL, &p.LinkedInURL,
		&p.GithubURL, &p.ContactEmail, &p.PublicSlug, &p.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPortfolioRepository) GetByUserID(ctx context.Context, userID int64) (*model.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE user_id=$1`
	return scanPortfolio(r.DB.QueryRow(ctx, query, userID))
}

func (r *PostgresPortfolioRepository) GetBySlug(ctx context.Context, slug string) (*model.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE public_slug=$1`
	return scanPortfolio(r.DB.QueryRow(ctx, query, slug))
}

func (r *PostgresPortfolioRepository) FindUserIDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	query := `SELECT user_id FROM portfolios WHERE public_slug=$1`
	if err := r.DB.QueryRow(ctx, query, slug).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// Upsert creates the user's portfolio row on first save and updates it
// afterwards. A slug collision with another user's row surfaces as
// ErrSlugTaken via the unique constraint.
func (r *PostgresPortfolioRepository) Upsert(ctx context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	query := `
		INSERT INTO portfolios (user_id, about_me_text, resume_url, linkedin_url, github_url, contact_email, public_slug, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id) DO UPDATE SET
			about_me_text=EXCLUDED.about_me_text,
			resume_url=EXCLUDED.resume_url,
			linkedin_url=EXCLUDED.linkedin_url,
			github_url=EXCLUDED.github_url,
			contact_email=EXCLUDED.contact_email,
			public_slug=EXCLUDED.public_slug,
			last_updated_at=now()
		RETURNING ` + portfolioColumns
	saved, err := scanPortfolio(r.DB.QueryRow(ctx, query,
		p.UserID, p.AboutMeText, p.ResumeURL, p.LinkedInURL, p.GithubURL, p.ContactEmail, p.PublicSlug))
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return nil, taken
		}
		return nil, err
	}
	return saved, nil
}
