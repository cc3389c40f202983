package utils

import (
	"strings"

	"github.com/google/uuid"
)

const (
	BookingReferencePrefix = "WW"
	OrderIDPrefix          = "order_"
)

// randomHex returns the first n hex characters of a random UUID
func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:n]
}

// NewBookingReference returns "WW" followed by 8 uppercase hex characters
func NewBookingReference() string {
	return BookingReferencePrefix + strings.ToUpper(randomHex(8))
}

// NewOrderID returns "order_" followed by 12 lowercase hex characters
func NewOrderID() string {
	return OrderIDPrefix + randomHex(12)
}
