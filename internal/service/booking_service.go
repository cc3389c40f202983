package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wanderwith/internal/model"
	"wanderwith/internal/repository"
	"wanderwith/internal/utils"
)

var ErrInvalidTravelDate = errors.New("invalid travel_date, use YYYY-MM-DD")

// BookingService defines the booking workflow
type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.BookingConfirmation, error)
}

// BookingOptions configures the booking workflow
type BookingOptions struct {
	// DefaultUserID owns every new booking until requests carry an identity
	DefaultUserID int
	// VerifyDestination checks that the destination exists before inserting
	VerifyDestination bool
}

type bookingService struct {
	repo            repository.BookingRepository
	destinationRepo repository.DestinationRepository
	opts            BookingOptions
	newReference    func() string
}

// NewBookingService creates a new BookingService
func NewBookingService(repo repository.BookingRepository, destinationRepo repository.DestinationRepository, opts BookingOptions) BookingService {
	return &bookingService{
		repo:            repo,
		destinationRepo: destinationRepo,
		opts:            opts,
		newReference:    utils.NewBookingReference,
	}
}

// CreateBooking stores a confirmed booking. The amount is stored as submitted;
// it is not recomputed from the destination price.
func (s *bookingService) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.BookingConfirmation, error) {
	travelDate, err := time.Parse(model.DateLayout, req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTravelDate, err)
	}

	if s.opts.VerifyDestination {
		destination, err := s.destinationRepo.FindByID(ctx, req.DestinationID)
		if err != nil {
			return nil, fmt.Errorf("failed to check destination: %w", err)
		}
		if destination == nil {
			return nil, ErrDestinationNotFound
		}
	}

	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}

	booking := &model.Booking{
		UserID:           s.opts.DefaultUserID,
		DestinationID:    req.DestinationID,
		TravelDate:       travelDate,
		Amount:           amount,
		PaymentStatus:    model.PaymentStatusConfirmed, // payment is mocked end-to-end
		PaymentID:        req.PaymentID,
		BookingReference: s.newReference(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in repo: %w", err)
	}

	return &model.BookingConfirmation{
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		Status:           model.PaymentStatusConfirmed,
		TravelDate:       booking.TravelDate.Format(model.DateLayout),
		Amount:           booking.Amount,
	}, nil
}
