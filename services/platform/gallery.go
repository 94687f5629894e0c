package platform

import (
	"fmt"
	"net/http"

	"limelight/models"
)

// GalleryImages returns every gallery asset registered for a website.
func (c *Client) GalleryImages(token, websiteID string) ([]models.GalleryImage, error) {
	req, err := c.newRequest(http.MethodGet, "/images/galleryImages/"+websiteID, token, nil)
	if err != nil {
		return nil, err
	}

	var images []models.GalleryImage
	if err := c.do(req, &images); err != nil {
		return nil, fmt.Errorf("fetch gallery: %w", err)
	}
	return images, nil
}

// RegisterImage records an already-hosted asset (phase two of the upload
// protocol) against a website.
func (c *Client) RegisterImage(token, websiteID, imageURL string, providerID models.ProviderID) (models.GalleryImage, error) {
	body := map[string]any{
		"imageUrl":   imageURL,
		"public_id":  providerID,
		"website_id": websiteID,
	}
	req, err := c.newRequest(http.MethodPost, "/images", token, body)
	if err != nil {
		return models.GalleryImage{}, err
	}

	var image models.GalleryImage
	if err := c.do(req, &image); err != nil {
		return models.GalleryImage{}, fmt.Errorf("register image: %w", err)
	}
	return image, nil
}

// UpdateFavorites replaces the favourite set wholesale with the given
// database ids. The caller computes the complete desired list.
func (c *Client) UpdateFavorites(token, websiteID string, imageIDs []string) error {
	body := map[string]any{
		"imageIds":   imageIDs,
		"website_id": websiteID,
	}
	req, err := c.newRequest(http.MethodPost, "/images/updateGalleryImages", token, body)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("update favourites: %w", err)
	}
	return nil
}

// DeleteImage removes an asset. Deletion is keyed on the media host's
// provider id, never the database id.
func (c *Client) DeleteImage(token, websiteID string, providerID models.ProviderID) error {
	body := map[string]any{
		"public_id":  providerID,
		"website_id": websiteID,
	}
	req, err := c.newRequest(http.MethodDelete, "/images", token, body)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
