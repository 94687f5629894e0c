package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"limelight/auth"
	"limelight/models"
	"limelight/services/session"

	"github.com/gorilla/mux"
)

type sessionService interface {
	SetUser(userID string)
	UserID() string
	Websites() []models.Website
	SelectedWebsite() (models.Website, bool)
	SelectWebsite(id string) error
	RefreshWebsites()
	HasWebsite() (bool, error)
}

var _ sessionService = (*session.Service)(nil)

type refresher interface {
	RefreshAll() error
}

// SessionHandler exposes identity, website list and selection to the shell.
type SessionHandler struct {
	Service sessionService
	Tokens  *auth.TokenStore
	Syncer  refresher
}

func NewSessionHandler(service sessionService, tokens *auth.TokenStore, syncer refresher) *SessionHandler {
	return &SessionHandler{Service: service, Tokens: tokens, Syncer: syncer}
}

// SetToken stores the bearer token pushed down by the shell after login.
func (h *SessionHandler) SetToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Token) == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	h.Tokens.Set(body.Token)
	w.WriteHeader(http.StatusNoContent)
}

// SetUser records the authenticated identity. An empty id logs out.
func (h *SessionHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Service.SetUser(body.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Websites())
}

func (h *SessionHandler) Selected(w http.ResponseWriter, r *http.Request) {
	site, ok := h.Service.SelectedWebsite()
	if !ok {
		http.Error(w, session.ErrNoWebsite.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(site)
}

func (h *SessionHandler) Select(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := strings.TrimSpace(vars["websiteID"])
	if id == "" {
		http.Error(w, "website id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.SelectWebsite(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrUnknownWebsite) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	site, _ := h.Service.SelectedWebsite()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(site)
}

// Refresh re-reads the website list and all entity collections.
func (h *SessionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.Service.RefreshWebsites()
	if h.Syncer != nil {
		if err := h.Syncer.RefreshAll(); err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Websites())
}

// Status runs the bounded launch check: does the user own a website at all.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	has, err := h.Service.HasWebsite()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrNotAuthenticated) {
			status = http.StatusUnauthorized
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"hasWebsite": has})
}
