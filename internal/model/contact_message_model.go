package model

import "time"

type ContactMessage struct {
	ID             int64     `json:"id"`
	RecipientID    int64     `json:"-"`
	SenderName     string    `json:"senderName"`
	SenderEmail    string    `json:"senderEmail"`
	Subject        *string   `json:"subject,omitempty"`
	Message        string    `json:"message"`
	SubmissionDate time.Time `json:"submissionDate"`
	IsRead         bool      `json:"isRead"`
}
