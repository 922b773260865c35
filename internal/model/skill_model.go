package model

type Skill struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"-"`
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
	Icon     *string `json:"icon,omitempty"`
}
