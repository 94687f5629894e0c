package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"limelight/models"
	"limelight/services/jobs"

	"github.com/gorilla/mux"
)

type jobsService interface {
	Jobs() []models.Job
	Refresh() error
	Add(job models.Job) error
	Update(job models.Job) error
	Delete(jobID string) error
}

var _ jobsService = (*jobs.Service)(nil)

// JobsHandler exposes the event collection.
type JobsHandler struct {
	Service jobsService
}

func NewJobsHandler(service jobsService) *JobsHandler {
	return &JobsHandler{Service: service}
}

func jobsStatus(err error) int {
	switch {
	case errors.Is(err, jobs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, jobs.ErrNoWebsiteSelected):
		return http.StatusPreconditionFailed
	case errors.Is(err, jobs.ErrInvalidDate), errors.Is(err, jobs.ErrInvalidTime):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Jobs())
}

func (h *JobsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Refresh(); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Jobs())
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&job); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(job); err != nil {
		http.Error(w, err.Error(), jobsStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(h.Service.Jobs())
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&job); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if job.ID == "" {
		http.Error(w, "job id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Update(job); err != nil {
		http.Error(w, err.Error(), jobsStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Jobs())
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := strings.TrimSpace(vars["jobID"])
	if id == "" {
		http.Error(w, "job id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		http.Error(w, err.Error(), jobsStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Jobs())
}
