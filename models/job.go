package models

// Job is a calendar booking entry ("event") attached to a website. The
// job_* wire names are the platform's own; Date and Time must be normalised
// to YYYY-MM-DD / HH:MM before any write reaches the network.
type Job struct {
	ID           string `json:"id,omitempty"`
	WebsiteID    string `json:"website_id"`
	UserID       string `json:"user_id"`
	IsPublic     bool   `json:"is_public"`
	Title        string `json:"job_title,omitempty"`
	Date         string `json:"job_dato,omitempty"`
	Time         string `json:"job_tid,omitempty"`
	Venue        string `json:"job_spillested,omitempty"`
	City         string `json:"job_by,omitempty"`
	Where        string `json:"job_hvor,omitempty"`
	CoPerformers string `json:"job_med,omitempty"`
	TicketURL    string `json:"job_billet,omitempty"`
}
