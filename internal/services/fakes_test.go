package services

import (
	"context"
	"strings"
	"time"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

// In-memory repository fakes. They mirror the sentinel behavior of the
// Postgres implementations so service tests exercise the same error
// paths the real stack produces.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*model.User{}}
}

func (f *fakeUserRepo) seed(username, email, passwordHash, role string) *model.User {
	f.nextID++
	u := &model.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, username, email, passwordHash, role string) (int64, error) {
	for _, u := range f.users {
		if u.Username == username {
			return 0, repository.ErrUsernameTaken
		}
		if u.Email == email {
			return 0, repository.ErrEmailTaken
		}
	}
	return f.seed(username, email, passwordHash, role).ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakePortfolioRepo struct {
	nextID     int64
	portfolios map[int64]*model.Portfolio // keyed by user id
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{portfolios: map[int64]*model.Portfolio{}}
}

func (f *fakePortfolioRepo) GetByUserID(_ context.Context, userID int64) (*model.Portfolio, error) {
	if p, ok := f.portfolios[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePortfolioRepo) GetBySlug(_ context.Context, slug string) (*model.Portfolio, error) {
	for _, p := range f.portfolios {
		if p.PublicSlug != nil && *p.PublicSlug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePortfolioRepo) FindUserIDBySlug(ctx context.Context, slug string) (int64, error) {
	p, err := f.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	return p.UserID, nil
}

func (f *fakePortfolioRepo) Upsert(_ context.Context, p *model.Portfolio) (*model.Portfolio, error) {
	if p.PublicSlug != nil {
		for uid, existing := range f.portfolios {
			if uid != p.UserID && existing.PublicSlug != nil && *existing.PublicSlug == *p.PublicSlug {
				return nil, repository.ErrSlugTaken
			}
		}
	}
	cp := *p
	if existing, ok := f.portfolios[p.UserID]; ok {
		cp.ID = existing.ID
	} else {
		f.nextID++
		cp.ID = f.nextID
	}
	cp.LastUpdatedAt = time.Now()
	f.portfolios[p.UserID] = &cp
	out := cp
	return &out, nil
}

type fakeSkillRepo struct {
	nextID int64
	skills map[int64]*model.Skill
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: map[int64]*model.Skill{}}
}

func (f *fakeSkillRepo) ListByUser(_ context.Context, userID int64) ([]model.Skill, error) {
	var out []model.Skill
	for _, s := range f.skills {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSkillRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*model.Skill, error) {
	if s, ok := f.skills[id]; ok && s.UserID == userID {
		cp := *s
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSkillRepo) ExistsByNameAndUser(_ context.Context, name string, userID int64) (bool, error) {
	for _, s := range f.skills {
		if s.UserID == userID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSkillRepo) Create(_ context.Context, s *model.Skill) (*model.Skill, error) {
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	f.skills[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeSkillRepo) Update(_ context.Context, s *model.Skill) (*model.Skill, error) {
	if existing, ok := f.skills[s.ID]; !ok || existing.UserID != s.UserID {
		return nil, repository.ErrNotFound
	}
	cp := *s
	f.skills[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeSkillRepo) Delete(_ context.Context, id, userID int64) error {
	if existing, ok := f.skills[id]; !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.skills, id)
	return nil
}

type fakeProjectRepo struct {
	nextID   int64
	projects map[int64]*model.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[int64]*model.Project{}}
}

func (f *fakeProjectRepo) ListByUser(_ context.Context, userID int64) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*model.Project, error) {
	if p, ok := f.projects[id]; ok && p.UserID == userID {
		cp := *p
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectRepo) Create(_ context.Context, p *model.Project) (*model.Project, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *model.Project) (*model.Project, error) {
	if existing, ok := f.projects[p.ID]; !ok || existing.UserID != p.UserID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	f.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id, userID int64) error {
	if existing, ok := f.projects[id]; !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

type fakeMessageRepo struct {
	nextID   int64
	messages map[int64]*model.ContactMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[int64]*model.ContactMessage{}}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	f.nextID++
	cp := *m
	cp.ID = f.nextID
	cp.SubmissionDate = time.Now()
	f.messages[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeMessageRepo) ListByRecipient(_ context.Context, recipientID int64) ([]model.ContactMessage, error) {
	var out []model.ContactMessage
	for _, m := range f.messages {
		if m.RecipientID == recipientID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) GetByIDAndRecipient(_ context.Context, id, recipientID int64) (*model.ContactMessage, error) {
	if m, ok := f.messages[id]; ok && m.RecipientID == recipientID {
		cp := *m
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMessageRepo) UpdateReadStatus(_ context.Context, id, recipientID int64, isRead bool) (*model.ContactMessage, error) {
	m, ok := f.messages[id]
	if !ok || m.RecipientID != recipientID {
		return nil, repository.ErrNotFound
	}
	m.IsRead = isRead
	cp := *m
	return &cp, nil
}
