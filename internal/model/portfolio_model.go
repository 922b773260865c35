package model

import "time"

type Portfolio struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"-"`
	AboutMeText   *string   `json:"aboutMeText,omitempty"`
	ResumeURL     *string   `json:"resumeUrl,omitempty"`
	LinkedInURL   *string   `json:"linkedInUrl,omitempty"`
	GithubURL     *string   `json:"githubUrl,omitempty"`
	ContactEmail  *string   `json:"contactEmail,omitempty"`
	PublicSlug    *string   `json:"publicSlug,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
