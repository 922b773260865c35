package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
	"github.com/NemesisGuy/portfolioforge-backend/internal/repository"
)

const (
	MinPasswordLen = 8
	// MaxPasswordLen is bcrypt's input limit; longer passwords are
	// rejected up front rather than silently truncated.
	MaxPasswordLen = 72
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MaxEmailLen    = 100
)

var (
	// ErrInvalidCredentials deliberately covers both unknown user and
	// wrong password so login failures never reveal which field was
	// wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is wrapped by all request-validation failures so
	// the endpoint layer can map them to 400 uniformly.
	ErrValidation = errors.New("validation failed")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)
)

type AuthService struct {
	Users repository.UserRepository
}

func NewAuthService(u repository.UserRepository) *AuthService {
	return &AuthService{Users: u}
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(email) > 255 {
		return fmt.Errorf("%w: email cannot exceed 255 characters", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}

func validateUsername(username string) error {
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return fmt.Errorf("%w: username must be between %d and %d characters", ErrValidation, MinUsernameLen, MaxUsernameLen)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: username contains invalid characters", ErrValidation)
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}
	if len(pw) > MaxPasswordLen {
		return fmt.Errorf("%w: password must be at most %d characters", ErrValidation, MaxPasswordLen)
	}
	return nil
}

// Register creates a user with the default role. The exists checks
// give friendly errors for the common case; the database unique
// constraints are the backstop for concurrent registrations.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("%w: email cannot exceed %d characters", ErrValidation, MaxEmailLen)
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	taken, err := s.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return repository.ErrUsernameTaken
	}
	inUse, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if inUse {
		return repository.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.Users.Create(ctx, username, email, string(hash), model.RoleUser); err != nil {
		return err
	}
	return nil
}

// Login verifies a username-or-email plus password pair and returns
// the user without the password hash. Token issuance is the caller's
// job.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, usernameOrEmail)
	if errors.Is(err, repository.ErrNotFound) {
		u, err = s.Users.GetByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *AuthService) CountUsers(ctx context.Context) (int, error) {
	return s.Users.Count(ctx)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
