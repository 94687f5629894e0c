package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"limelight/models"
)

// WebsitesByUser returns every website owned by the given user.
func (c *Client) WebsitesByUser(token, userID string) ([]models.Website, error) {
	req, err := c.newRequest(http.MethodGet, "/websites/"+userID, token, nil)
	if err != nil {
		return nil, err
	}

	var sites []models.Website
	if err := c.do(req, &sites); err != nil {
		return nil, fmt.Errorf("fetch websites: %w", err)
	}
	return sites, nil
}

// HasWebsite performs the bounded launch check: does this user own at least
// one website? 404 is the platform's "no website yet" answer, not an error.
func (c *Client) HasWebsite(token, userID string) (bool, error) {
	req, err := c.newRequest(http.MethodGet, "/websites/"+userID, token, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.quickClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("website status check: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		respBody, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("website status check failed: %s - %s", resp.Status, string(respBody))
	}

	var sites []models.Website
	if err := json.NewDecoder(resp.Body).Decode(&sites); err != nil {
		return false, fmt.Errorf("decode status check: %w", err)
	}
	return len(sites) > 0, nil
}

// UpdateWebsite sends the full website record and returns the stored copy.
func (c *Client) UpdateWebsite(token string, site models.Website) (models.Website, error) {
	req, err := c.newRequest(http.MethodPut, "/websites/", token, site)
	if err != nil {
		return models.Website{}, err
	}

	var updated models.Website
	if err := c.do(req, &updated); err != nil {
		return models.Website{}, fmt.Errorf("update website: %w", err)
	}
	return updated, nil
}

// CreateWebsiteRequest is the onboarding creation payload.
type CreateWebsiteRequest struct {
	Subdomain    string `json:"subdomain"`
	Title        string `json:"title"`
	TemplateID   int    `json:"template_id"`
	UserID       string `json:"userId"`
	ContactEmail string `json:"contact_email,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// CreateWebsite registers a brand-new website and returns the stored record.
func (c *Client) CreateWebsite(token string, create CreateWebsiteRequest) (models.Website, error) {
	req, err := c.newRequest(http.MethodPost, "/websites", token, create)
	if err != nil {
		return models.Website{}, err
	}

	var site models.Website
	if err := c.do(req, &site); err != nil {
		return models.Website{}, fmt.Errorf("create website: %w", err)
	}
	return site, nil
}

// SubdomainTaken asks the platform whether a subdomain is already claimed.
// The endpoint answers 409 for taken and 200 for free; it needs no token.
func (c *Client) SubdomainTaken(subdomain string) (bool, error) {
	req, err := c.newRequest(http.MethodGet, "/websites/checkduplicatesubdomain/"+subdomain, "", nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("subdomain check: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusConflict:
		return true, nil
	case http.StatusOK:
		return false, nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("subdomain check failed: %s - %s", resp.Status, string(respBody))
	}
}
