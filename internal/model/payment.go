package model

const (
	CurrencyINR          = "INR"
	PaymentIntentCreated = "created"
)

// CreatePaymentIntentRequest is the body of a payment-intent request
type CreatePaymentIntentRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// PaymentIntent is a mock payment order handle
type PaymentIntent struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"-"`
}
