package platform

import (
	"fmt"
	"net/http"

	"limelight/models"
)

// PaymentIntentRequest asks the platform to open a payment flow for a
// premium upgrade.
type PaymentIntentRequest struct {
	Amount             int               `json:"amount"`
	Currency           string            `json:"currency"`
	PaymentMethodTypes []string          `json:"payment_method_types"`
	Metadata           map[string]string `json:"metadata"`
}

// CreatePaymentIntent returns the secrets the shell needs to present the
// payment sheet. Presentation itself is the shell's job.
func (c *Client) CreatePaymentIntent(token string, intent PaymentIntentRequest) (models.PaymentIntent, error) {
	req, err := c.newRequest(http.MethodPost, "/subscription/create-payment-intent", token, intent)
	if err != nil {
		return models.PaymentIntent{}, err
	}

	var created models.PaymentIntent
	if err := c.do(req, &created); err != nil {
		return models.PaymentIntent{}, fmt.Errorf("create payment intent: %w", err)
	}
	if created.ClientSecret == "" {
		return models.PaymentIntent{}, fmt.Errorf("payment intent response missing client secret")
	}
	return created, nil
}
