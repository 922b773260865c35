package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

const (
	MaxMessageLen = 5000
	MaxSubjectLen = 200
)

type ContactMessageService struct {
	Messages   repository.ContactMessageRepository
	Portfolios repository.PortfolioRepository
	Users      repository.UserRepository
}

func NewContactMessageService(m repository.ContactMessageRepository, p repository.PortfolioRepository, u repository.UserRepository) *ContactMessageService {
	return &ContactMessageService{Messages: m, Portfolios: p, Users: u}
}

func validateMessage(m *model.ContactMessage) error {
	m.SenderName = strings.TrimSpace(m.SenderName)
	if m.SenderName == "" {
		return fmt.Errorf("%w: sender name is required", ErrValidation)
	}
	if len(m.SenderName) > 100 {
		return fmt.Errorf("%w: sender name cannot exceed 100 characters", ErrValidation)
	}
	if err := validateEmail(m.SenderEmail); err != nil {
		return err
	}
	if m.Subject != nil && len(*m.Subject) > MaxSubjectLen {
		return fmt.Errorf("%w: subject cannot exceed %d characters", ErrValidation, MaxSubjectLen)
	}
	if strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if len(m.Message) > MaxMessageLen {
		return fmt.Errorf("%w: message cannot exceed %d characters", ErrValidation, MaxMessageLen)
	}
	return nil
}

// Submit stores a visitor message for the portfolio owner identified
// by slug, falling back to username lookup.
func (s *ContactMessageService) Submit(ctx context.Context, slugOrUsername string, m *model.ContactMessage) (*model.ContactMessage, error) {
	if err := validateMessage(m); err != nil {
		return nil, err
	}
	recipientID, err := s.Portfolios.FindUserIDBySlug(ctx, slugOrUsername)
	if errors.Is(err, repository.ErrNotFound) {
		u, uerr := s.Users.GetByUsername(ctx, slugOrUsername)
		if uerr != nil {
			return nil, uerr
		}
		recipientID = u.ID
	} else if err != nil {
		return nil, err
	}
	m.RecipientID = recipientID
	return s.Messages.Create(ctx, m)
}

func (s *ContactMessageService) List(ctx context.Context, recipientID int64) ([]model.ContactMessage, error) {
	return s.Messages.ListByRecipient(ctx, recipientID)
}

func (s *ContactMessageService) Get(ctx context.Context, id, recipientID int64) (*model.ContactMessage, error) {
	return s.Messages.GetByIDAndRecipient(ctx, id, recipientID)
}

func (s *ContactMessageService) SetReadStatus(ctx context.Context, id, recipientID int64, isRead bool) (*model.ContactMessage, error) {
	return s.Messages.UpdateReadStatus(ctx, id, recipientID, isRead)
}
