// Package gallery is the image collection context. Uploads are two-phase:
// the media host ingests the binary first (services/media), then the
// resulting url/provider-id pair is registered here. Favourites are replaced
// wholesale and capped client-side; deletion is keyed on the provider id.
package gallery

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
	ErrFavoriteLimit     = fmt.Errorf("favourites are limited to %d images", models.MaxFavorites)
	ErrIncompleteAsset   = errors.New("hosted asset is missing url or provider id")
)

type platformClient interface {
	GalleryImages(token, websiteID string) ([]models.GalleryImage, error)
	RegisterImage(token, websiteID, imageURL string, providerID models.ProviderID) (models.GalleryImage, error)
	UpdateFavorites(token, websiteID string, imageIDs []string) error
	DeleteImage(token, websiteID string, providerID models.ProviderID) error
}

type sessionState interface {
	UserID() string
	SelectedWebsite() (models.Website, bool)
}

// Service holds the in-memory gallery for the selected website.
type Service struct {
	mu      sync.RWMutex
	client  platformClient
	tokens  auth.TokenSource
	session sessionState
	log     *slog.Logger
	images  []models.GalleryImage
}

func NewService(client platformClient, tokens auth.TokenSource, session sessionState) *Service {
	return &Service{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "gallery"),
	}
}

// Images returns a copy of the last fetched collection.
func (s *Service) Images() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GalleryImage, len(s.images))
	copy(out, s.images)
	return out
}

// Favorites returns the favourite subset of the collection.
func (s *Service) Favorites() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GalleryImage, 0, models.MaxFavorites)
	for _, img := range s.images {
		if img.IsFavorite {
			out = append(out, img)
		}
	}
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
		s.log.Warn("fetch gallery: no token", "error", err)
		return nil
	}

	fetched, err := s.client.GalleryImages(token, site.ID)
	if err != nil {
		s.log.Warn("fetch gallery failed", "error", err)
		return fmt.Errorf("fetch gallery: %w", err)
	}

	s.mu.Lock()
	s.images = fetched
	s.mu.Unlock()
	return nil
}

func (s *Service) requireSession() (models.Website, error) {
	if s.session.UserID() == "" {
		return models.Website{}, ErrNotAuthenticated
	}
	site, ok := s.session.SelectedWebsite()
	if !ok {
		return models.Website{}, ErrNoWebsiteSelected
	}
	return site, nil
}

// Register records a hosted asset against the website (upload phase two).
// An asset missing either field is a protocol violation from phase one and
// is rejected before any request is made.
func (s *Service) Register(imageURL string, providerID models.ProviderID) error {
	if imageURL == "" || providerID == "" {
		return ErrIncompleteAsset
	}

	site, err := s.requireSession()
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if _, err := s.client.RegisterImage(token, site.ID, imageURL, providerID); err != nil {
		return err
	}
	return s.Refresh()
}

// UpdateFavorites replaces the favourite set with the complete desired list
// of database ids. Lists over the cap are rejected with zero network
// traffic; the platform is never trusted to enforce the cap for us.
func (s *Service) UpdateFavorites(imageIDs []string) error {
	if len(imageIDs) > models.MaxFavorites {
		return ErrFavoriteLimit
	}

	site, err := s.requireSession()
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if err := s.client.UpdateFavorites(token, site.ID, imageIDs); err != nil {
		return err
	}
	return s.Refresh()
}

// ToggleFavorite flips one image's membership in the favourite set and
// pushes the resulting complete list. Adding a fifth favourite leaves the
// set unchanged and issues no request.
func (s *Service) ToggleFavorite(imageID string) error {
	s.mu.RLock()
	current := make([]string, 0, models.MaxFavorites)
	for _, img := range s.images {
		if img.IsFavorite {
			current = append(current, img.ID)
		}
	}
	s.mu.RUnlock()

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == imageID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		if len(current) >= models.MaxFavorites {
			return ErrFavoriteLimit
		}
		next = append(next, imageID)
	}

	return s.UpdateFavorites(next)
}

// Delete removes an asset. The signature takes the provider id type on
// purpose: a database id is not a valid deletion key.
func (s *Service) Delete(providerID models.ProviderID) error {
	site, err := s.requireSession()
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if err := s.client.DeleteImage(token, site.ID, providerID); err != nil {
		return err
	}
	return s.Refresh()
}
