package models

// ProviderID identifies an asset at the external media host. It is distinct
// from the database id on purpose: deletion at the platform is keyed on this
// and only this.
type ProviderID string

// MaxFavorites caps how many gallery images may be marked favourite. The cap
// is enforced client-side; the platform is not assumed to double-check it.
const MaxFavorites = 4

// GalleryImage is one hosted media asset registered against a website.
// The platform serialises the database id as "Id".
type GalleryImage struct {
	ID         string     `json:"Id"`
	ImageURL   string     `json:"image_url"`
	ProviderID ProviderID `json:"public_id"`
	IsFavorite bool       `json:"is_favorite"`
}
