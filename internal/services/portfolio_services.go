package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const MaxAboutMeLen = 5000

type PortfolioService struct {
	Portfolios repository.PortfolioRepository
	Users      repository.UserRepository
}

func NewPortfolioService(p repository.PortfolioRepository, u repository.UserRepository) *PortfolioService {
	return &PortfolioService{Portfolios: p, Users: u}
}

func (s *PortfolioService) GetForUser(ctx context.Context, userID int64) (*model.Portfolio, error) {
	return s.Portfolios.GetByUserID(ctx, userID)
}

// GetPublic looks a portfolio up by its public slug, falling back to
// treating the identifier as a username.
func (s *PortfolioService) GetPublic(ctx context.Context, slugOrUsername string) (*model.Portfolio, error) {
	p, err := s.Portfolios.GetBySlug(ctx, slugOrUsername)
	if !errors.Is(err, repository.ErrNotFound) {
		return p, err
	}
	u, err := s.Users.GetByUsername(ctx, slugOrUsername)
	if err != nil {
		return nil, err
	}
	return s.Portfolios.GetByUserID(ctx, u.ID)
}

// ResolveUserID maps a public identifier (slug or username) to the
// owning user.
func (s *PortfolioService) ResolveUserID(ctx context.Context, slugOrUsername string) (int64, error) {
	id, err := s.Portfolios.FindUserIDBySlug(ctx, slugOrUsername)
	if !errors.Is(err, repository.ErrNotFound) {
		return id, err
	}
	u, err := s.Users.GetByUsername(ctx, slugOrUsername)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// validatePortfolio bounds every free-text field to its column size so
// over-length input fails as a 400, not a database length error.
func validatePortfolio(p *model.Portfolio) error {
	if p.AboutMeText != nil && len(*p.AboutMeText) > MaxAboutMeLen {
		return fmt.Errorf("%w: about me text cannot exceed %d characters", ErrValidation, MaxAboutMeLen)
	}
	if p.ResumeURL != nil && len(*p.ResumeURL) > 512 {
		return fmt.Errorf("%w: resume url cannot exceed 512 characters", ErrValidation)
	}
	if p.LinkedInURL != nil && len(*p.LinkedInURL) > 255 {
		return fmt.Errorf("%w: linkedin url cannot exceed 255 characters", ErrValidation)
	}
	if p.GithubURL != nil && len(*p.GithubURL) > 255 {
		return fmt.Errorf("%w: github url cannot exceed 255 characters", ErrValidation)
	}
	if p.ContactEmail != nil && len(*p.ContactEmail) > 255 {
		return fmt.Errorf("%w: contact email cannot exceed 255 characters", ErrValidation)
	}
	return nil
}

// Save creates the user's portfolio on first write and updates it on
// subsequent writes. A slug already held by a different user is
// rejected; the unique constraint backstops concurrent saves.
func (s *PortfolioService) Save(ctx context.Context, userID int64, p *model.Portfolio) (*model.Portfolio, error) {
	if err := validatePortfolio(p); err != nil {
		return nil, err
	}
	if p.PublicSlug != nil && *p.PublicSlug != "" {
		slug := *p.PublicSlug
		if len(slug) < 3 || len(slug) > 50 || !slugRegex.MatchString(slug) {
			return nil, fmt.Errorf("%w: public slug must be 3-50 lowercase letters, numbers and single hyphens", ErrValidation)
		}
		existing, err := s.Portfolios.GetBySlug(ctx, slug)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.UserID != userID {
			return nil, repository.ErrSlugTaken
		}
	} else {
		p.PublicSlug = nil
	}

	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	p.UserID = userID
	return s.Portfolios.Upsert(ctx, p)
}
