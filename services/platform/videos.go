package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"limelight/models"
)

// noVideosMessage is the platform's success payload for an empty video
// collection. It replaces the array body entirely, so decoding has to try
// both shapes.
const noVideosMessage = "No videos found for this website."

// videoPayload mirrors the video wire shape, where is_public travels as 0/1
// instead of a boolean. This type never leaves the package.
type videoPayload struct {
	ID          int    `json:"id,omitempty"`
	WebsiteID   string `json:"website_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"video_url"`
	IsPublic    int    `json:"is_public"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func wireBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (p videoPayload) toModel() models.Video {
	return models.Video{
		ID:          p.ID,
		WebsiteID:   p.WebsiteID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		VideoURL:    p.VideoURL,
		IsPublic:    p.IsPublic != 0,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func videoToPayload(v models.Video) videoPayload {
	return videoPayload{
		ID:          v.ID,
		WebsiteID:   v.WebsiteID,
		UserID:      v.UserID,
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		IsPublic:    wireBool(v.IsPublic),
	}
}

// Videos returns every video registered for a website. The explicit
// "no videos" message body is a recognised success case, not an error.
func (c *Client) Videos(token, websiteID string) ([]models.Video, error) {
	req, err := c.newRequest(http.MethodGet, "/videos/"+websiteID, token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch videos failed: %s - %s", resp.Status, string(respBody))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read videos response: %w", err)
	}

	var payloads []videoPayload
	if err := json.Unmarshal(raw, &payloads); err == nil {
		videos := make([]models.Video, 0, len(payloads))
		for _, p := range payloads {
			videos = append(videos, p.toModel())
		}
		return videos, nil
	}

	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message == noVideosMessage {
		return []models.Video{}, nil
	}

	return nil, fmt.Errorf("unexpected videos response: %s", string(raw))
}

// CreateVideo registers a new video against a website.
func (c *Client) CreateVideo(token string, video models.Video) error {
	req, err := c.newRequest(http.MethodPost, "/videos/", token, videoToPayload(video))
	if err != nil {
		return err
	}

	var ack mutationAck
	if err := c.do(req, &ack); err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return ack.check("video create")
}

// UpdateVideo replaces the mutable fields of an existing video.
func (c *Client) UpdateVideo(token string, video models.Video) error {
	body := map[string]any{
		"id":          video.ID,
		"is_public":   wireBool(video.IsPublic),
		"video_url":   video.VideoURL,
		"title":       video.Title,
		"description": video.Description,
	}
	req, err := c.newRequest(http.MethodPut, "/videos/", token, body)
	if err != nil {
		return err
	}

	var ack mutationAck
	if err := c.do(req, &ack); err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return ack.check("video update")
}

// DeleteVideo removes a video by database id.
func (c *Client) DeleteVideo(token string, videoID int) error {
	body := map[string]int{"id": videoID}
	req, err := c.newRequest(http.MethodDelete, "/videos/", token, body)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
