// Package subscription starts premium upgrades. The payment sheet itself is
// presented by the shell; this service only produces the intent secrets.
package subscription

import (
	"errors"
	"fmt"
	"log/slog"

	"limelight/auth"
	"limelight/models"
	"limelight/services/platform"
)

var (
	ErrUnknownPlan       = errors.New("unknown billing period")
	ErrNotAuthenticated  = errors.New("user is not authenticated")
	ErrNoWebsiteSelected = errors.New("no website selected")
)

// plans mirrors the products configured in the payment provider dashboard.
// Amounts are in øre (DKK minor unit).
var plans = map[models.BillingPeriod]models.Plan{
	models.BillingPeriodMonthly: {
		ProductID: "prod_premium_monthly",
		PriceID:   "price_premium_monthly",
		Amount:    5900,
		Currency:  "dkk",
	},
	models.BillingPeriodYearly: {
		ProductID: "prod_premium_yearly",
		PriceID:   "price_premium_yearly",
		Amount:    59900,
		Currency:  "dkk",
	},
}

type platformClient interface {
	CreatePaymentIntent(token string, intent platform.PaymentIntentRequest) (models.PaymentIntent, error)
}

type sessionState interface {
	UserID() string
	SelectedWebsite() (models.Website, bool)
}

// Service creates payment intents for premium upgrades.
type Service struct {
	client  platformClient
	tokens  auth.TokenSource
	session sessionState
	log     *slog.Logger
}

func NewService(client platformClient, tokens auth.TokenSource, session sessionState) *Service {
	return &Service{
		client:  client,
		tokens:  tokens,
		session: session,
		log:     slog.Default().With("component", "subscription"),
	}
}

// Plan returns the plan for a billing period.
func (s *Service) Plan(period models.BillingPeriod) (models.Plan, error) {
	plan, ok := plans[period]
	if !ok {
		return models.Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, period)
	}
	return plan, nil
}

// Plans returns the full plan table keyed by billing period.
func (s *Service) Plans() map[models.BillingPeriod]models.Plan {
	out := make(map[models.BillingPeriod]models.Plan, len(plans))
	for k, v := range plans {
		out[k] = v
	}
	return out
}

// BeginUpgrade creates a payment intent for the selected website. This is a
// write path: missing preconditions fail loudly.
func (s *Service) BeginUpgrade(period models.BillingPeriod) (models.PaymentIntent, error) {
	plan, err := s.Plan(period)
	if err != nil {
		return models.PaymentIntent{}, err
	}

	userID := s.session.UserID()
	if userID == "" {
		return models.PaymentIntent{}, ErrNotAuthenticated
	}
	site, ok := s.session.SelectedWebsite()
	if !ok {
		return models.PaymentIntent{}, ErrNoWebsiteSelected
	}

	token, err := s.tokens.Token()
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("auth token: %w", err)
	}

	intent, err := s.client.CreatePaymentIntent(token, platform.PaymentIntentRequest{
		Amount:             plan.Amount,
		Currency:           plan.Currency,
		PaymentMethodTypes: []string{"card"},
		Metadata: map[string]string{
			"productId": plan.ProductID,
			"period":    string(period),
			"websiteId": site.ID,
		},
	})
	if err != nil {
		return models.PaymentIntent{}, err
	}

	s.log.Info("payment intent created", "period", period, "website", site.ID)
	return intent, nil
}
