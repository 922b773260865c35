package main

import (
	"context"
	"strings"
	"time"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

// In-memory repositories backing the router tests. Sentinel behavior
// matches the Postgres implementations.

type memUserRepo struct {
	nextID int64
	users  map[int64]*model.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[int64]*model.User{}} }

func (r *memUserRepo) seed(username, email, passwordHash, role string) *model.User {
	r.nextID++
	u := &model.User{
		ID:           r.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, username, email, passwordHash, role string) (int64, error) {
	for _, u := range r.users {
		if u.Username == username {
			return 0, repository.ErrUsernameTaken
		}
		if u.Email == email {
			return 0, repository.ErrEmailTaken
		}
	}
	return r.seed(username, email, passwordHash, role).ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepo) Count(_ context.Context) (int, error) { return len(r.users), nil }

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type memPortfolioRepo struct {
	nextID     int64
	portfolios map[int64]*model.Portfolio // keyed by user id
}

func newMemPortfolioRepo() *memPortfolioRepo {
	return &memPortfolioRepo{portfolios: map[int64]*model.Portfolio{}}
}

func (r *memPortfolioRepo) GetByUserID(_ context.Context, userID int64) (*model.Portfolio, error) {
	if p, ok := r.portfolios[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memPortfolioRepo) GetBySlug(_ context.Context, slug string) (*model.Portfolio, error) {
	for _, p := range r.portfolios {
		if p.PublicSlug != nil && *p.PublicSlug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memPortfolioRepo) FindUserIDBySlug(ctx context.Context, slug string) (int64, error) {
	p, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	return p.UserID, nil
}

func (r *memPortfolioRepo) Upsert(_ context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	if p.PublicSlug != nil {
		for uid, other := range r.portfolios {
			if uid != p.UserID && other.PublicSlug != nil && *other.PublicSlug == *p.PublicSlug {
				return nil, repository.ErrSlugTaken
			}
		}
	}
	cp := *p
	if existing, ok := r.portfolios[p.UserID]; ok {
		cp.ID = existing.ID
	} else {
		r.nextID++
		cp.ID = r.nextID
	}
	cp.LastUpdatedAt = time.Now()
	r.portfolios[p.UserID] = &cp
	out := cp
	return &out, nil
}

type memProjectRepo struct {
	nextID   int64
	projects map[int64]*model.Project
}

func newMemProjectRepo() *memProjectRepo { return &memProjectRepo{projects: map[int64]*model.Project{}} }

func (r *memProjectRepo) ListByUser(_ context.Context, userID int64) ([]model.Project, error) {
	var out []model.Project
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*model.Project, error) {
	if p, ok := r.projects[id]; ok && p.UserID == userID {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memProjectRepo) Create(_ context.Context, p *model.Project) (*model.Project, error) {
	r.nextID++
	cp := *p
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *model.Project) (*model.Project, error) {
	if existing, ok := r.projects[p.ID]; !ok || existing.UserID != p.UserID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	r.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memProjectRepo) Delete(_ context.Context, id, userID int64) error {
	if existing, ok := r.projects[id]; !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

type memSkillRepo struct {
	nextID int64
	skills map[int64]*model.Skill
}

func newMemSkillRepo() *memSkillRepo { return &memSkillRepo{skills: map[int64]*model.Skill{}} }

func (r *memSkillRepo) ListByUser(_ context.Context, userID int64) ([]model.Skill, error) {
	var out []model.Skill
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSkillRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*model.Skill, error) {
	if s, ok := r.skills[id]; ok && s.UserID == userID {
		cp := *s
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memSkillRepo) ExistsByNameAndUser(_ context.Context, name string, userID int64) (bool, error) {
	for _, s := range r.skills {
		if s.UserID == userID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSkillRepo) Create(_ context.Context, s *model.Skill) (*model.Skill, error) {
	r.nextID++
	cp := *s
	cp.ID = r.nextID
	r.skills[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memSkillRepo) Update(_ context.Context, s *model.Skill) (*model.Skill, error) {
	if existing, ok := r.skills[s.ID]; !ok || existing.UserID != s.UserID {
		return nil, repository.ErrNotFound
	}
	cp := *s
	r.skills[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memSkillRepo) Delete(_ context.Context, id, userID int64) error {
	if existing, ok := r.skills[id]; !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

type memMessageRepo struct {
	nextID   int64
	messages map[int64]*model.ContactMessage
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{messages: map[int64]*model.ContactMessage{}}
}

func (r *memMessageRepo) Create(_ context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	r.nextID++
	cp := *m
	cp.ID = r.nextID
	cp.SubmissionDate = time.Now()
	r.messages[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memMessageRepo) ListByRecipient(_ context.Context, recipientID int64) ([]model.ContactMessage, error) {
	var out []model.ContactMessage
	for _, m := range r.messages {
		if m.RecipientID == recipientID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) GetByIDAndRecipient(_ context.Context, id, recipientID int64) (*model.ContactMessage, error) {
	if m, ok := r.messages[id]; ok && m.RecipientID == recipientID {
		cp := *m
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memMessageRepo) UpdateReadStatus(_ context.Context, id, recipientID int64, isRead bool) (*model.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok || m.RecipientID != recipientID {
		return nil, repository.ErrNotFound
	}
	m.IsRead = isRead
	cp := *m
	return &cp, nil
}
