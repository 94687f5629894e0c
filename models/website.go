package models

// Website is the root aggregate for one published artist site. Fields map
// 1:1 onto the platform wire format; ids are always server-issued.
type Website struct {
	ID                  string   `json:"id"`
	UserID              string   `json:"user_id,omitempty"`
	Title               string   `json:"title,omitempty"`
	Subtitle            string   `json:"under_title,omitempty"`
	Description         string   `json:"description,omitempty"`
	HasDescription      bool     `json:"has_description,omitempty"`
	HasBookingSection   bool     `json:"has_booking_section,omitempty"`
	EmbedSpotify        bool     `json:"embed_spotify,omitempty"`
	TemplateID          int      `json:"template_id,omitempty"`
	SpotifyURL          string   `json:"spotify_url,omitempty"`
	SpotifyHighlightURL string   `json:"spotify_highlight_url,omitempty"`
	BandcampURL         string   `json:"bandcamp_url,omitempty"`
	BandcampEmbedURL    string   `json:"bandcamp_embed_url,omitempty"`
	FacebookURL         string   `json:"facebook_url,omitempty"`
	InstagramURL        string   `json:"instagram_url,omitempty"`
	YouTubeURL          string   `json:"youtube_url,omitempty"`
	SoundcloudURL       string   `json:"soundcloud_url,omitempty"`
	TicketmasterURL     string   `json:"ticketmaster_url,omitempty"`
	BookingURL          string   `json:"booking_url,omitempty"`
	PressMaterialURL    string   `json:"press_material_url,omitempty"`
	ContactEmail        string   `json:"contact_email,omitempty"`
	PhoneNumber         string   `json:"phone_number,omitempty"`
	ImageURL            string   `json:"image_url,omitempty"`
	MobileImageURL      string   `json:"mobile_image_url,omitempty"`
	FaviconURL          string   `json:"favicon_url,omitempty"`
	Subdomain           string   `json:"subdomain,omitempty"`
	RepertoireList      []string `json:"repertoire_list,omitempty"`
	ReferenceList       []string `json:"reference_list,omitempty"`
}
