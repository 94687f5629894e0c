// Package onboarding drives the five-step site creation wizard. Each step
// validates sequentially before the wizard advances; the subdomain step
// includes a remote duplicate check and the final step creates the website
// and refreshes the session.
package onboarding

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"limelight/auth"
	"limelight/models"
	"limelight/services/platform"
)

// Step identifies the wizard position. Steps advance strictly in order.
type Step int

const (
	StepArtistName Step = iota + 1
	StepSubdomain
	StepTemplate
	StepCoverImage
	StepConfirm
)

const (
	maxTitleLength     = 50
	maxSubdomainLength = 25
	minSubdomainLength = 3
)

var (
	ErrTitleRequired      = errors.New("artist name is required")
	ErrTitleTooLong       = fmt.Errorf("artist name is limited to %d characters", maxTitleLength)
	ErrSubdomainRequired  = errors.New("subdomain is required")
	ErrSubdomainTooLong   = fmt.Errorf("subdomain is limited to %d characters", maxSubdomainLength)
	ErrSubdomainTooShort  = fmt.Errorf("subdomain must be at least %d characters", minSubdomainLength)
	ErrSubdomainForbidden = errors.New("subdomain is reserved")
	ErrSubdomainTaken     = errors.New("subdomain is already taken")
	ErrTemplateRequired   = errors.New("a template must be chosen")
	ErrNotAuthenticated   = errors.New("user is not authenticated")
)

// Reserved names that would collide with platform infrastructure routes.
var forbiddenSubdomains = map[string]struct{}{
	"limelight": {}, "www": {}, "http": {}, "https": {}, "api": {},
	"admin": {}, "dashboard": {}, "backend": {}, "image": {}, "images": {},
	"payment": {}, "payments": {}, "checkout": {}, "test": {},
	"contact": {}, "pricing": {}, "privacy": {}, "terms": {},
}

var invalidSubdomainChar = regexp.MustCompile(`[^a-z0-9-]`)

type platformClient interface {
	SubdomainTaken(subdomain string) (bool, error)
	CreateWebsite(token string, create platform.CreateWebsiteRequest) (models.Website, error)
}

type sessionState interface {
	UserID() string
	RefreshWebsites()
}

// Draft accumulates the wizard's answers.
type Draft struct {
	Title        string `json:"title"`
	Subdomain    string `json:"subdomain"`
	TemplateID   int    `json:"templateId"`
	ImageURL     string `json:"imageUrl"`
	ContactEmail string `json:"contactEmail"`
}

// Wizard is a single in-flight onboarding run.
type Wizard struct {
	mu      sync.Mutex
	client  platformClient
	tokens  auth.TokenSource
	session sessionState
	log     *slog.Logger
	step    Step
	draft   Draft
}

func NewWizard(client platformClient, tokens auth.TokenSource, session sessionState) *Wizard {
	return &Wizard{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "onboarding"),
		step:    StepArtistName,
	}
}

// Step returns the current wizard position.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the collected answers.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SetField records one wizard answer without validating it; validation
// happens when the user tries to advance.
func (w *Wizard) SetField(apply func(*Draft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	apply(&w.draft)
}

// Slugify normalises a raw subdomain the way the web frontend does:
// lowercase, whitespace to hyphens, everything outside [a-z0-9-] stripped.
func Slugify(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = strings.Join(strings.Fields(slug), "-")
	return invalidSubdomainChar.ReplaceAllString(slug, "")
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateSubdomain(slug string) error {
	if slug == "" {
		return ErrSubdomainRequired
	}
	if len(slug) > maxSubdomainLength {
		return ErrSubdomainTooLong
	}
	if _, reserved := forbiddenSubdomains[slug]; reserved {
		return ErrSubdomainForbidden
	}
	return nil
}

// Next validates the current step and advances. The confirm step submits
// instead of advancing; its result is the created website.
func (w *Wizard) Next() (Step, error) {
	w.mu.Lock()
	step := w.step
	draft := w.draft
	w.mu.Unlock()

	switch step {
	case StepArtistName:
		if err := validateTitle(draft.Title); err != nil {
			return step, err
		}
	case StepSubdomain:
		slug := Slugify(draft.Subdomain)
		if err := validateSubdomain(slug); err != nil {
			return step, err
		}
		taken, err := w.client.SubdomainTaken(slug)
		if err != nil {
			return step, fmt.Errorf("subdomain check: %w", err)
		}
		if taken {
			return step, ErrSubdomainTaken
		}
		w.mu.Lock()
		w.draft.Subdomain = slug
		w.mu.Unlock()
	case StepTemplate:
		if draft.TemplateID == 0 {
			return step, ErrTemplateRequired
		}
	case StepCoverImage:
		// optional step, nothing to validate
	case StepConfirm:
		if _, err := w.Submit(); err != nil {
			return step, err
		}
		return StepConfirm, nil
	}

	w.mu.Lock()
	if w.step == step && step < StepConfirm {
		w.step = step + 1
	}
	next := w.step
	w.mu.Unlock()
	return next, nil
}

// Back steps the wizard backwards; it never un-validates anything.
func (w *Wizard) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepArtistName {
		w.step--
	}
	return w.step
}

// Submit runs the final cross-field validation, creates the website and
// refreshes the session so the new site becomes selectable immediately.
func (w *Wizard) Submit() (models.Website, error) {
	w.mu.Lock()
	draft := w.draft
	w.mu.Unlock()

	if err := validateTitle(draft.Title); err != nil {
		return models.Website{}, err
	}
	slug := Slugify(draft.Subdomain)
	if len(slug) < minSubdomainLength {
		return models.Website{}, ErrSubdomainTooShort
	}
	if err := validateSubdomain(slug); err != nil {
		return models.Website{}, err
	}
	if draft.TemplateID == 0 {
		return models.Website{}, ErrTemplateRequired
	}

	userID := w.session.UserID()
	if userID == "" {
		return models.Website{}, ErrNotAuthenticated
	}
	token, err := w.tokens.Token()
	if err != nil {
		return models.Website{}, fmt.Errorf("auth token: %w", err)
	}

	site, err := w.client.CreateWebsite(token, platform.CreateWebsiteRequest{
		Subdomain:    slug,
		Title:        strings.TrimSpace(draft.Title),
		TemplateID:   draft.TemplateID,
		UserID:       userID,
		ContactEmail: draft.ContactEmail,
		ImageURL:     draft.ImageURL,
	})
	if err != nil {
		return models.Website{}, err
	}

	w.log.Info("website created", "subdomain", slug)
	w.session.RefreshWebsites()
	return site, nil
}
