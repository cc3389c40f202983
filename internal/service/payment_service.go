package service

import (
	"context"
	"errors"
	"math"

	"wanderwith/internal/model"
	"wanderwith/internal/utils"
)

var ErrInvalidAmount = errors.New("amount must be a finite number within the int64 range")

// PaymentService creates payment orders. No payment provider is contacted.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amount float64) (*model.PaymentIntent, error)
}

type paymentService struct {
	currency   string
	newOrderID func() string
}

// NewPaymentService creates a mock PaymentService charging in INR
func NewPaymentService() PaymentService {
	return &paymentService{currency: model.CurrencyINR, newOrderID: utils.NewOrderID}
}

func (s *paymentService) CreatePaymentIntent(_ context.Context, amount float64) (*model.PaymentIntent, error) {
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount >= math.MaxInt64 || amount < math.MinInt64 {
		return nil, ErrInvalidAmount
	}
	return &model.PaymentIntent{
		OrderID:  s.newOrderID(),
		Amount:   int64(amount), // whole units; fractions are truncated
		Currency: s.currency,
		Status:   model.PaymentIntentCreated,
	}, nil
}
