package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NemesisGuy/portfolioforge-backend/internal/model"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error)
	ListByRecipient(ctx context.Context, recipientID int64) ([]model.ContactMessage, error)
	GetByIDAndRecipient(ctx context.Context, id, recipientID int64) (*model.ContactMessage, error)
	UpdateReadStatus(ctx context.Context, id, recipientID int64, isRead bool) (*model.ContactMessage, error)
}

type PostgresContactMessageRepository struct {
	DB *pgxpool.Pool
}

func NewContactMessageRepository(db *pgxpool.Pool) *PostgresContactMessageRepository {
	return &PostgresContactMessageRepository{DB: db}
}

const messageColumns = `id, recipient_user_id, sender_name, sender_email, subject, message, submission_date, is_read`

func scanMessage(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := row.Scan(&m.ID, &m.RecipientID, &m.SenderName, &m.SenderEmail,
		&m.Subject, &m.Message, &m.SubmissionDate, &m.IsRead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresContactMessageRepository) Create(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (recipient_user_id, sender_name, sender_email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns
	return scanMessage(r.DB.QueryRow(ctx, query, m.RecipientID, m.SenderName, m.SenderEmail, m.Subject, m.Message))
}

func (r *PostgresContactMessageRepository) ListByRecipient(ctx context.Context, recipientID int64) ([]model.ContactMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE recipient_user_id=$1 ORDER BY submission_date DESC`
	rows, err := r.DB.Query(ctx, query, recipientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.RecipientID, &m.SenderName, &m.SenderEmail,
			&m.Subject, &m.Message, &m.SubmissionDate, &m.IsRead); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresContactMessageRepository) GetByIDAndRecipient(ctx context.Context, id, recipientID int64) (*model.ContactMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE id=$1 AND recipient_user_id=$2`
	return scanMessage(r.DB.QueryRow(ctx, query, id, recipientID))
}

func (r *PostgresContactMessageRepository) UpdateReadStatus(ctx context.Context, id, recipientID int64, isRead bool) (*model.ContactMessage, error) {
	query := `UPDATE contact_messages SET is_read=$1 WHERE id=$2 AND recipient_user_id=$3 RETURNING ` + messageColumns
	return scanMessage(r.DB.QueryRow(ctx, query, isRead, id, recipientID))
}
