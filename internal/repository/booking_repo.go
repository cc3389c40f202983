package repository

import (
	"context"
	"fmt"

	"wanderwith/internal/model"
)

// BookingRepository defines operations for booking data
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByUser(ctx context.Context, userID int) ([]model.BookingSummary, error)
	CountByUser(ctx context.Context, userID int) (int64, error)
}

type bookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a booking inside a transaction; any failure rolls the insert back
func (r *bookingRepository) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	sql := `INSERT INTO bookings (user_id, destination_id, travel_date, amount, payment_status, payment_id, booking_reference)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, booking_date`
	err = tx.QueryRow(ctx, sql, b.UserID, b.DestinationID, b.TravelDate, b.Amount, b.PaymentStatus, b.PaymentID, b.BookingReference).
		Scan(&b.ID, &b.BookingDate)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

// FindByUser retrieves a user's bookings with their destination, most recent first
func (r *bookingRepository) FindByUser(ctx context.Context, userID int) ([]model.BookingSummary, error) {
	sql := `SELECT b.id, d.name, d.type, b.travel_date, b.amount, b.payment_status, b.booking_reference, b.booking_date
            FROM bookings b JOIN destinations d ON b.destination_id = d.id
            WHERE b.user_id = $1
            ORDER BY b.booking_date DESC, b.id DESC`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings by user: %w", err)
	}
	defer rows.Close()

	bookings := []model.BookingSummary{}
	for rows.Next() {
		var s model.BookingSummary
		var b model.Booking
		if err := rows.Scan(
			&s.ID, &s.DestinationName, &s.DestinationType, &b.TravelDate, &s.Amount,
			&s.PaymentStatus, &s.BookingReference, &b.BookingDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		s.TravelDate = b.TravelDate.Format(model.DateLayout)
		s.BookingDate = b.BookingDate.Format(model.DateLayout)
		bookings = append(bookings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}

// CountByUser returns the number of bookings made by a user
func (r *bookingRepository) CountByUser(ctx context.Context, userID int) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings for user: %w", err)
	}
	return count, nil
}
