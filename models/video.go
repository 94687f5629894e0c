package models

// Video is an embedded YouTube video attached to a website. IsPublic is a
// boolean everywhere inside this codebase; the platform stores it as 0/1 and
// the translation lives exclusively in services/platform.
type Video struct {
	ID          int    `json:"id"`
	WebsiteID   string `json:"website_id"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"video_url"`
	IsPublic    bool   `json:"is_public"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
