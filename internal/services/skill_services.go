package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

type SkillService struct {
	Skills repository.SkillRepository
	Users  repository.UserRepository
}

func NewSkillService(sk repository.SkillRepository, u repository.UserRepository) *SkillService {
	return &SkillService{Skills: sk, Users: u}
}

func validateSkill(sk *model.Skill) error {
	sk.Name = strings.TrimSpace(sk.Name)
	if sk.Name == "" {
		return fmt.Errorf("%w: skill name is required", ErrValidation)
	}
	if len(sk.Name) > 100 {
		return fmt.Errorf("%w: skill name must be less than 100 characters", ErrValidation)
	}
	if sk.Category != nil && len(*sk.Category) > 100 {
		return fmt.Errorf("%w: category cannot exceed 100 characters", ErrValidation)
	}
	if sk.Icon != nil && len(*sk.Icon) > 100 {
		return fmt.Errorf("%w: icon cannot exceed 100 characters", ErrValidation)
	}
	return nil
}

func (s *SkillService) List(ctx context.Context, userID int64) ([]model.Skill, error) {
	return s.Skills.ListByUser(ctx, userID)
}

func (s *SkillService) Get(ctx context.Context, id, userID int64) (*model.Skill, error) {
	return s.Skills.GetByIDAndUser(ctx, id, userID)
}

// Create rejects a duplicate skill name (case-insensitive) per user.
func (s *SkillService) Create(ctx context.Context, userID int64, sk *model.Skill) (*model.Skill, error) {
	if err := validateSkill(sk); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	exists, err := s.Skills.ExistsByNameAndUser(ctx, sk.Name, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrSkillExists
	}
	sk.UserID = userID
	return s.Skills.Create(ctx, sk)
}

func (s *SkillService) Update(ctx context.Context, id, userID int64, sk *model.Skill) (*model.Skill, error) {
	if err := validateSkill(sk); err != nil {
		return nil, err
	}
	current, err := s.Skills.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(current.Name, sk.Name) {
		exists, err := s.Skills.ExistsByNameAndUser(ctx, sk.Name, userID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repository.ErrSkillExists
		}
	}
	sk.ID = id
	sk.UserID = userID
	return s.Skills.Update(ctx, sk)
}

func (s *SkillService) Delete(ctx context.Context, id, userID int64) error {
	return s.Skills.Delete(ctx, id, userID)
}
