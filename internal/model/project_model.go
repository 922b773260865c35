package model

import "time"

type Project struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"-"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies *string   `json:"technologies,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	LiveURL      *string   `json:"liveUrl,omitempty"`
	RepoURL      *string   `json:"repoUrl,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
