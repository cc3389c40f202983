package model

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
)

// DateLayout is the calendar date format used for travel and booking dates
const DateLayout = "2006-01-02"

// Booking represents a reservation of a destination by a user
type Booking struct {
	ID               int64     `json:"id"`
	UserID           int       `json:"user_id"`
	DestinationID    int       `json:"destination_id"`
	BookingDate      time.Time `json:"booking_date"`
	TravelDate       time.Time `json:"travel_date"`
	Amount           float64   `json:"amount"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentID        *string   `json:"payment_id,omitempty"` // Pointer for optional field
	BookingReference string    `json:"booking_reference"`
}

// CreateBookingRequest is used for creating a new booking
type CreateBookingRequest struct {
	DestinationID int      `json:"destination_id" binding:"required"`
	TravelDate    string   `json:"travel_date" binding:"required"` // YYYY-MM-DD
	Amount        *float64 `json:"amount" binding:"required"`
	PaymentID     *string  `json:"payment_id"`
}

// BookingConfirmation is returned after a booking has been stored
type BookingConfirmation struct {
	BookingID        int64   `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	Status           string  `json:"status"`
	TravelDate       string  `json:"travel_date"`
	Amount           float64 `json:"amount"`
}

// BookingSummary is a booking joined with its destination, as listed in a user's history
type BookingSummary struct {
	ID               int64   `json:"id"`
	DestinationName  string  `json:"destination_name"`
	DestinationType  string  `json:"destination_type"`
	TravelDate       string  `json:"travel_date"` // YYYY-MM-DD
	Amount           float64 `json:"amount"`
	PaymentStatus    string  `json:"payment_status"`
	BookingReference string  `json:"booking_reference"`
	BookingDate      string  `json:"booking_date"` // YYYY-MM-DD
}
