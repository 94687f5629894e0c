// Package session owns the authenticated identity, the user's website list
// and the single selected website. Every other entity collection hangs off
// the selection held here.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"limelight/auth"
	"limelight/models"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrNoWebsite        = errors.New("no website selected")
	ErrUnknownWebsite   = errors.New("website id not in the current list")
)

type platformClient interface {
	WebsitesByUser(token, userID string) ([]models.Website, error)
	HasWebsite(token, userID string) (bool, error)
}

// Listener is invoked after the selected website changes. Listeners run on
// the goroutine that caused the change, outside the service lock.
type Listener func(models.Website)

// Service is the website context. Exactly one website may be selected at a
// time; refresh preserves the selection by id.
type Service struct {
	mu        sync.RWMutex
	client    platformClient
	tokens    auth.TokenSource
	log       *slog.Logger
	userID    string
	websites  []models.Website
	selected  *models.Website
	listeners []Listener
}

func NewService(client platformClient, tokens auth.TokenSource) *Service {
	if client == nil {
		panic("session: nil platform client")
	}
	return &Service{
		client: client,
		tokens: tokens,
		log:    slog.Default().With("component", "session"),
	}
}

// OnSelect registers a selection listener. Registration happens during
// wiring, before the service sees concurrent use.
func (s *Service) OnSelect(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// UserID returns the current authenticated user id, or "" when logged out.
func (s *Service) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Websites returns a copy of the last fetched website list.
func (s *Service) Websites() []models.Website {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Website, len(s.websites))
	copy(out, s.websites)
	return out
}

// SelectedWebsite returns the selected website, if any.
func (s *Service) SelectedWebsite() (models.Website, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return models.Website{}, false
	}
	return *s.selected, true
}

// SetUser records the authenticated identity and refreshes the website list
// once per identity change. An empty id clears all session state (logout).
func (s *Service) SetUser(userID string) {
	userID = strings.TrimSpace(userID)

	s.mu.Lock()
	if s.userID == userID {
		s.mu.Unlock()
		return
	}
	s.userID = userID
	s.websites = nil
	s.selected = nil
	s.mu.Unlock()

	if userID != "" {
		s.RefreshWebsites()
	}
}

// RefreshWebsites re-reads the user's websites from the platform. Failures
// are logged and leave prior state untouched, so callers cannot tell "no
// websites" from "fetch failed" here; that ambiguity is part of the
// contract. A previously selected website keeps its selection when its id
// is still present, otherwise selection falls back to the first item.
func (s *Service) RefreshWebsites() {
	s.mu.RLock()
	userID := s.userID
	s.mu.RUnlock()
	if userID == "" {
		return
	}

	token, err := s.tokens.Token()
	if err != nil {
		s.log.Warn("refresh websites: no token", "error", err)
		return
	}

	sites, err := s.client.WebsitesByUser(token, userID)
	if err != nil {
		s.log.Warn("refresh websites failed", "error", err)
		return
	}

	s.mu.Lock()
	s.websites = sites

	var previousID string
	if s.selected != nil {
		previousID = s.selected.ID
	}

	s.selected = nil
	if previousID != "" {
		for i := range sites {
			if sites[i].ID == previousID {
				s.selected = &sites[i]
				break
			}
		}
	}
	if s.selected == nil && len(sites) > 0 {
		s.selected = &sites[0]
	}

	changed := (s.selected == nil && previousID != "") ||
		(s.selected != nil && s.selected.ID != previousID)
	var current models.Website
	if s.selected != nil {
		current = *s.selected
	}
	listeners := s.listeners
	s.mu.Unlock()

	if changed && current.ID != "" {
		for _, fn := range listeners {
			fn(current)
		}
	}
}

// SelectWebsite switches the selection to another website from the current
// list and notifies listeners.
func (s *Service) SelectWebsite(id string) error {
	s.mu.Lock()
	var picked *models.Website
	for i := range s.websites {
		if s.websites[i].ID == id {
			picked = &s.websites[i]
			break
		}
	}
	if picked == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownWebsite, id)
	}

	already := s.selected != nil && s.selected.ID == picked.ID
	s.selected = picked
	current := *picked
	listeners := s.listeners
	s.mu.Unlock()

	if !already {
		for _, fn := range listeners {
			fn(current)
		}
	}
	return nil
}

// HasWebsite runs the bounded launch check against the platform. Unlike
// RefreshWebsites this surfaces errors: the launch screen needs to offer a
// retry rather than render an empty state.
func (s *Service) HasWebsite() (bool, error) {
	s.mu.RLock()
	userID := s.userID
	s.mu.RUnlock()
	if userID == "" {
		return false, ErrNotAuthenticated
	}

	token, err := s.tokens.Token()
	if err != nil {
		return false, fmt.Errorf("auth token: %w", err)
	}
	return s.client.HasWebsite(token, userID)
}
