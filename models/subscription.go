package models

// BillingPeriod selects between the two premium billing cycles.
type BillingPeriod string

const (
	BillingPeriodMonthly BillingPeriod = "monthly"
	BillingPeriodYearly  BillingPeriod = "yearly"
)

// Plan describes one purchasable premium tier. Amount is in the currency's
// minor unit (øre for DKK).
type Plan struct {
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId"`
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
}

// PaymentIntent is the platform's response to a payment-intent creation,
// forwarded to the shell so it can present the payment sheet.
type PaymentIntent struct {
	ClientSecret string `json:"paymentIntent"`
	EphemeralKey string `json:"ephemeralKey"`
	CustomerID   string `json:"customer"`
}
