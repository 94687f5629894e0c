// Package jobs is the event collection context: it mirrors the website's
// events and re-reads the whole collection after every successful write.
package jobs

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
)

type platformClient interface {
	Jobs(token, websiteID string) ([]models.Job, error)
	CreateJob(token string, job models.Job) error
	UpdateJob(token string, job models.Job) error
	DeleteJob(token, jobID, userID string) error
}

type sessionState interface {
	UserID() string
	SelectedWebsite() (models.Website, bool)
}

// Service holds the in-memory event collection for the selected website.
type Service struct {
	mu      sync.RWMutex
	client  platformClient
	tokens  auth.TokenSource
	session sessionState
	log     *slog.Logger
	jobs    []models.Job
}

func NewService(client platformClient, tokens auth.TokenSource, session sessionState) *Service {
	return &Service{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "jobs"),
	}
}

// Jobs returns a copy of the last fetched collection.
func (s *Service) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Refresh re-reads the collection. Missing user or selection degrades to a
// no-op; a transport failure empties the collection and is returned so
// callers may surface it.
func (s *Service) Refresh() error {
	site, ok := s.session.SelectedWebsite()
	if !ok || s.session.UserID() == "" {
		return nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		s.log.Warn("fetch jobs: no token", "error", err)
		return nil
	}

	fetched, err := s.client.Jobs(token, site.ID)
	if err != nil {
		s.log.Warn("fetch jobs failed", "error", err)
		s.mu.Lock()
		s.jobs = nil
		s.mu.Unlock()
		return fmt.Errorf("fetch jobs: %w", err)
	}

	s.mu.Lock()
	s.jobs = fetched
	s.mu.Unlock()
	return nil
}

// requireSession enforces the write-path preconditions: writes fail loudly
// where reads degrade silently.
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

// Add validates and submits a new event, then reloads the collection. Date
// and time are normalised before the request is built; un-parseable input
// aborts with zero network traffic.
func (s *Service) Add(job models.Job) error {
	site, userID, err := s.requireSession()
	if err != nil {
		return err
	}

	date, err := NormalizeDate(job.Date)
	if err != nil {
		return err
	}
	clock, err := NormalizeTime(job.Time)
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	job.WebsiteID = site.ID
	job.UserID = userID
	job.IsPublic = true
	job.Date = date
	job.Time = clock

	if err := s.client.CreateJob(token, job); err != nil {
		return err
	}
	return s.Refresh()
}

// Update replaces an existing event, with the same validation and refetch
// discipline as Add.
func (s *Service) Update(job models.Job) error {
	_, userID, err := s.requireSession()
	if err != nil {
		return err
	}

	date, err := NormalizeDate(job.Date)
	if err != nil {
		return err
	}
	clock, err := NormalizeTime(job.Time)
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	job.UserID = userID
	job.Date = date
	job.Time = clock

	if err := s.client.UpdateJob(token, job); err != nil {
		return err
	}
	return s.Refresh()
}

// Delete removes an event by id, then reloads the collection.
func (s *Service) Delete(jobID string) error {
	_, userID, err := s.requireSession()
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if err := s.client.DeleteJob(token, jobID, userID); err != nil {
		return err
	}
	return s.Refresh()
}
