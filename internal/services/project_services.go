package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

type ProjectService struct {
	Projects repository.ProjectRepository
	Users    repository.UserRepository
}

func NewProjectService(p repository.ProjectRepository, u repository.UserRepository) *ProjectService {
	return &ProjectService{Projects: p, Users: u}
}

func validateProject(p *model.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return fmt.Errorf("%w: project title is required", ErrValidation)
	}
	if len(p.Title) > 100 {
		return fmt.Errorf("%w: project title must be less than 100 characters", ErrValidation)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("%w: project description is required", ErrValidation)
	}
	if p.DisplayOrder < 0 {
		return fmt.Errorf("%w: display order cannot be negative", ErrValidation)
	}
	if p.Technologies != nil && len(*p.Technologies) > 255 {
		return fmt.Errorf("%w: technologies cannot exceed 255 characters", ErrValidation)
	}
	if p.ImageURL != nil && len(*p.ImageURL) > 512 {
		return fmt.Errorf("%w: image url cannot exceed 512 characters", ErrValidation)
	}
	if p.LiveURL != nil && len(*p.LiveURL) > 512 {
		return fmt.Errorf("%w: live url cannot exceed 512 characters", ErrValidation)
	}
	if p.RepoURL != nil && len(*p.RepoURL) > 512 {
		return fmt.Errorf("%w: repo url cannot exceed 512 characters", ErrValidation)
	}
	return nil
}

func (s *ProjectService) List(ctx context.Context, userID int64) ([]model.Project, error) {
	return s.Projects.ListByUser(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, id, userID int64) (*model.Project, error) {
	return s.Projects.GetByIDAndUser(ctx, id, userID)
}

func (s *ProjectService) Create(ctx context.Context, userID int64, p *model.Project) (*model.Project, error) {
	if err := validateProject(p); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	p.UserID = userID
	return s.Projects.Create(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, id, userID int64, p *model.Project) (*model.Project, error) {
	if err := validateProject(p); err != nil {
		return nil, err
	}
	p.ID = id
	p.UserID = userID
	return s.Projects.Update(ctx, p)
}

func (s *ProjectService) Delete(ctx context.Context, id, userID int64) error {
	return s.Projects.Delete(ctx, id, userID)
}
