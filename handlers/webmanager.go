package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"limelight/models"
	"limelight/services/webmanager"
)

type webmanagerService interface {
	Draft() (models.Website, error)
	HasChanges() bool
	ModifiedFields() []string
	UpdateField(field string, value any) error
	Save() error
}

var _ webmanagerService = (*webmanager.Service)(nil)

// WebmanagerHandler exposes the draft-edit context.
type WebmanagerHandler struct {
	Service webmanagerService
}

func NewWebmanagerHandler(service webmanagerService) *WebmanagerHandler {
	return &WebmanagerHandler{Service: service}
}

func (h *WebmanagerHandler) Draft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.Service.Draft()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, webmanager.ErrNoDraft) {
			status = http.StatusPreconditionFailed
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Draft          models.Website `json:"draft"`
		HasChanges     bool           `json:"hasChanges"`
		ModifiedFields []string       `json:"modifiedFields"`
	}{draft, h.Service.HasChanges(), h.Service.ModifiedFields()})
}

func (h *WebmanagerHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Field == "" {
		http.Error(w, "field name is required", http.StatusBadRequest)
		return
	}

	var value any
	if len(body.Value) > 0 {
		if err := json.Unmarshal(body.Value, &value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.Service.UpdateField(body.Field, value); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, webmanager.ErrUnknownField):
			status = http.StatusBadRequest
		case errors.Is(err, webmanager.ErrNoDraft):
			status = http.StatusPreconditionFailed
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"hasChanges":     h.Service.HasChanges(),
		"modifiedFields": h.Service.ModifiedFields(),
	})
}

func (h *WebmanagerHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Save(); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, webmanager.ErrNoDraft) {
			status = http.StatusPreconditionFailed
		}
		http.Error(w, err.Error(), status)
		return
	}

	draft, err := h.Service.Draft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}
