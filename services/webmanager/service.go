// Package webmanager is the draft-edit context: a working copy of the
// selected website plus a record of which fields have been touched. Change
// tracking is field-level over canonical JSON values rather than
// whole-object equality, so representation noise can never fake a change.
package webmanager

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"limelight/auth"
	"limelight/models"
)

var (
	ErrNoDraft      = errors.New("no website draft loaded")
	ErrUnknownField = errors.New("unknown website field")
)

type websiteUpdater interface {
	UpdateWebsite(token string, site models.Website) (models.Website, error)
}

type sessionState interface {
	SelectedWebsite() (models.Website, bool)
	RefreshWebsites()
}

// Service owns the mutable draft. Authoritative truth stays with the
// session's last-fetched copy; the draft only ever diffs against it.
type Service struct {
	mu       sync.Mutex
	client   websiteUpdater
	tokens   auth.TokenSource
	session  sessionState
	log      *slog.Logger
	baseline map[string]json.RawMessage
	draft    map[string]json.RawMessage
	dirty    map[string]struct{}
}

func NewService(client websiteUpdater, tokens auth.TokenSource, session sessionState) *Service {
	s := &Service{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "webmanager"),
	}
	if site, ok := session.SelectedWebsite(); ok {
		s.Load(site)
	}
	return s
}

// fieldMap flattens a website into its canonical wire fields. Omitted
// (zero) fields are materialised too so draft and baseline always share the
// same key set.
func fieldMap(site models.Website) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(site)
	if err != nil {
		return nil, fmt.Errorf("marshal website: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal website fields: %w", err)
	}
	for _, key := range websiteFieldNames() {
		if _, ok := fields[key]; !ok {
			fields[key] = json.RawMessage("null")
		}
	}
	return fields, nil
}

// websiteFieldNames lists every json field of models.Website. Kept as an
// explicit table so an unknown field name can be rejected up front.
func websiteFieldNames() []string {
	return []string{
		"id", "user_id", "title", "under_title", "description",
		"has_description", "has_booking_section", "embed_spotify",
		"template_id", "spotify_url", "spotify_highlight_url",
		"bandcamp_url", "bandcamp_embed_url", "facebook_url",
		"instagram_url", "youtube_url", "soundcloud_url",
		"ticketmaster_url", "booking_url", "press_material_url",
		"contact_email", "phone_number", "image_url", "mobile_image_url",
		"favicon_url", "subdomain", "repertoire_list", "reference_list",
	}
}

var knownFields = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, key := range websiteFieldNames() {
		m[key] = struct{}{}
	}
	return m
}()

// Load replaces the draft with a fresh copy of the given website and clears
// all pending edits. Called on every selection change: switching site while
// edits are pending discards them, which is the documented behaviour.
func (s *Service) Load(site models.Website) {
	fields, err := fieldMap(site)
	if err != nil {
		s.log.Warn("load draft failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline = fields
	s.draft = make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		s.draft[k] = v
	}
	s.dirty = make(map[string]struct{})
}

// UpdateField mutates one field of the draft and re-evaluates whether that
// field still differs from the baseline. Unknown field names are rejected
// to keep draft and baseline structurally comparable.
func (s *Service) UpdateField(field string, value any) error {
	if _, ok := knownFields[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode field %s: %w", field, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}

	s.draft[field] = raw
	base, ok := s.baseline[field]
	if ok && bytes.Equal(raw, base) {
		delete(s.dirty, field)
	} else {
		s.dirty[field] = struct{}{}
	}
	return nil
}

// HasChanges reports whether any field differs from the baseline.
func (s *Service) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty) > 0
}

// ModifiedFields returns the touched field names, sorted.
func (s *Service) ModifiedFields() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.dirty))
	for k := range s.dirty {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Draft returns the working copy as a website record.
func (s *Service) Draft() (models.Website, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}

func (s *Service) draftLocked() (models.Website, error) {
	if s.draft == nil {
		return models.Website{}, ErrNoDraft
	}
	raw, err := json.Marshal(s.draft)
	if err != nil {
		return models.Website{}, fmt.Errorf("marshal draft: %w", err)
	}
	var site models.Website
	if err := json.Unmarshal(raw, &site); err != nil {
		return models.Website{}, fmt.Errorf("decode draft: %w", err)
	}
	return site, nil
}

// Save sends the entire draft to the platform, then re-reads the website
// list so the authoritative copy comes from a full read, not the mutation
// response. On failure the draft and its change set stay untouched so the
// user can retry without re-entering anything.
func (s *Service) Save() error {
	s.mu.Lock()
	site, err := s.draftLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}

	if _, err := s.client.UpdateWebsite(token, site); err != nil {
		return fmt.Errorf("save website: %w", err)
	}

	s.session.RefreshWebsites()
	if fresh, ok := s.session.SelectedWebsite(); ok {
		s.Load(fresh)
		return nil
	}

	s.mu.Lock()
	s.dirty = make(map[string]struct{})
	s.mu.Unlock()
	return nil
}
