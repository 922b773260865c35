package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already in use")
	ErrSlugTaken     = errors.New("public slug is already taken")
	ErrSkillExists   = errors.New("skill already exists for this user")
)

// uniqueViolation translates a unique-constraint violation into the
// sentinel for the constraint that fired. Existence checks in the
// service layer race with concurrent inserts; the database constraint
// is the final backstop and must not surface as an internal error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	case "portfolios_public_slug_key":
		return ErrSlugTaken
	case "skills_user_name_key":
		return ErrSkillExists
	}
	return nil
}
