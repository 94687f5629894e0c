package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"limelight/models"
	"limelight/services/subscription"
)

type subscriptionService interface {
	Plans() map[models.BillingPeriod]models.Plan
	BeginUpgrade(period models.BillingPeriod) (models.PaymentIntent, error)
}

var _ subscriptionService = (*subscription.Service)(nil)

// SubscriptionHandler exposes plans and starts upgrades.
type SubscriptionHandler struct {
	Service subscriptionService
}

func NewSubscriptionHandler(service subscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Service: service}
}

func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Plans())
}

func (h *SubscriptionHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Period models.BillingPeriod `json:"period"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	intent, err := h.Service.BeginUpgrade(body.Period)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, subscription.ErrUnknownPlan):
			status = http.StatusBadRequest
		case errors.Is(err, subscription.ErrNotAuthenticated):
			status = http.StatusUnauthorized
		case errors.Is(err, subscription.ErrNoWebsiteSelected):
			status = http.StatusPreconditionFailed
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(intent)
}
