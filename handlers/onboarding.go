package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"limelight/services/onboarding"
)

// The wizard's step-advance semantics live in the service; this handler only
// shuttles field updates and step transitions.

type onboardingWizard interface {
	Step() onboarding.Step
	Draft() onboarding.Draft
	SetField(apply func(*onboarding.Draft))
	Next() (onboarding.Step, error)
	Back() onboarding.Step
}

var _ onboardingWizard = (*onboarding.Wizard)(nil)

type OnboardingHandler struct {
	Wizard onboardingWizard
}

func NewOnboardingHandler(wizard onboardingWizard) *OnboardingHandler {
	return &OnboardingHandler{Wizard: wizard}
}

func onboardingStatus(err error) int {
	switch {
	case errors.Is(err, onboarding.ErrSubdomainTaken):
		return http.StatusConflict
	case errors.Is(err, onboarding.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, onboarding.ErrTitleRequired),
		errors.Is(err, onboarding.ErrTitleTooLong),
		errors.Is(err, onboarding.ErrSubdomainRequired),
		errors.Is(err, onboarding.ErrSubdomainTooLong),
		errors.Is(err, onboarding.ErrSubdomainTooShort),
		errors.Is(err, onboarding.ErrSubdomainForbidden),
		errors.Is(err, onboarding.ErrTemplateRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type wizardView struct {
	Step  onboarding.Step  `json:"step"`
	Draft onboarding.Draft `json:"draft"`
}

func (h *OnboardingHandler) State(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wizardView{h.Wizard.Step(), h.Wizard.Draft()})
}

// SetFields merges the provided answers into the draft. Missing keys leave
// their fields untouched.
func (h *OnboardingHandler) SetFields(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title        *string `json:"title"`
		Subdomain    *string `json:"subdomain"`
		TemplateID   *int    `json:"templateId"`
		ImageURL     *string `json:"imageUrl"`
		ContactEmail *string `json:"contactEmail"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Wizard.SetField(func(d *onboarding.Draft) {
		if body.Title != nil {
			d.Title = *body.Title
		}
		if body.Subdomain != nil {
			d.Subdomain = *body.Subdomain
		}
		if body.TemplateID != nil {
			d.TemplateID = *body.TemplateID
		}
		if body.ImageURL != nil {
			d.ImageURL = *body.ImageURL
		}
		if body.ContactEmail != nil {
			d.ContactEmail = *body.ContactEmail
		}
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wizardView{h.Wizard.Step(), h.Wizard.Draft()})
}

func (h *OnboardingHandler) Next(w http.ResponseWriter, r *http.Request) {
	step, err := h.Wizard.Next()
	if err != nil {
		http.Error(w, err.Error(), onboardingStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wizardView{step, h.Wizard.Draft()})
}

func (h *OnboardingHandler) Back(w http.ResponseWriter, r *http.Request) {
	step := h.Wizard.Back()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wizardView{step, h.Wizard.Draft()})
}
