// Package videos is the video collection context. The public/private flag
// is a boolean at this level and everywhere above; the 0/1 wire format is
// services/platform's concern alone.
package videos

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"limelight/auth"
	"limelight/models"
)

var (
	ErrNotAuthenticated  = errors.New("user is not authenticated")
	ErrNoWebsiteSelected = errors.New("no website selected")
	ErrMissingURL        = errors.New("video url is required")
)

type platformClient interface {
	Videos(token, websiteID string) ([]models.Video, error)
	CreateVideo(token string, video models.Video) error
	UpdateVideo(token string, video models.Video) error
	DeleteVideo(token string, videoID int) error
}

type sessionState interface {
	UserID() string
	SelectedWebsite() (models.Website, bool)
}

// Service holds the in-memory video collection for the selected website.
type Service struct {
	mu      sync.RWMutex
	client  platformClient
	tokens  auth.TokenSource
	session sessionState
	log     *slog.Logger
	videos  []models.Video
}

func NewService(client platformClient, tokens auth.TokenSource, session sessionState) *Service {
	return &Service{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "videos"),
	}
}

// Videos returns a copy of the last fetched collection.
func (s *Service) Videos() []models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Video, len(s.videos))
	copy(out, s.videos)
	return out
}

// Refresh re-reads the collection. Missing preconditions degrade to a
// no-op; transport failures leave prior state untouched and are logged.
func (s *Service) Refresh() error {
	site, ok := s.session.SelectedWebsite()
	if !ok || s.session.UserID() == "" {
		return nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		s.log.Warn("fetch videos: no token", "error", err)
		return nil
	}

	fetched, err := s.client.Videos(token, site.ID)
	if err != nil {
		s.log.Warn("fetch videos failed", "error", err)
		return fmt.Errorf("fetch videos: %w", err)
	}

	s.mu.Lock()
	s.videos = fetched
	s.mu.Unlock()
	return nil
}

func (s *Service) requireSession() (models.Website, string, error) {
	userID := s.session.UserID()
	if userID == "" {
		return models.Website{}, "", ErrNotAuthenticated
	}
	site, ok := s.session.SelectedWebsite()
	if !ok {
		return models.Website{}, "", ErrNoWebsiteSelected
	}
	return site, userID, nil
}

// Add registers a new video, then reloads the collection.
func (s *Service) Add(video models.Video) error {
	site, _, err := s.requireSession()
	if err != nil {
		return err
	}
	if video.VideoURL == "" {
		return ErrMissingURL
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	video.WebsiteID = site.ID
	if err := s.client.CreateVideo(token, video); err != nil {
		return err
	}
	return s.Refresh()
}

// Update replaces a video's mutable fields, then reloads the collection.
func (s *Service) Update(video models.Video) error {
	if _, _, err := s.requireSession(); err != nil {
		return err
	}
	if video.VideoURL == "" {
		return ErrMissingURL
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if err := s.client.UpdateVideo(token, video); err != nil {
		return err
	}
	return s.Refresh()
}

// Delete removes a video by database id, then reloads the collection.
func (s *Service) Delete(videoID int) error {
	if _, _, err := s.requireSession(); err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if err := s.client.DeleteVideo(token, videoID); err != nil {
		return err
	}
	return s.Refresh()
}
