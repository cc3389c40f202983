package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"wanderwith/internal/model"
	"wanderwith/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService provides user profile and booking history
type UserService interface {
	GetUserBookings(ctx context.Context, userID int) ([]model.BookingSummary, error)
	GetUserProfile(ctx context.Context, userID int) (*model.UserProfile, error)
}

type userService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, bookingRepo repository.BookingRepository) UserService {
	return &userService{userRepo: userRepo, bookingRepo: bookingRepo}
}

func (s *userService) GetUserBookings(ctx context.Context, userID int) ([]model.BookingSummary, error) {
	bookings, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings from repo: %w", err)
	}
	if bookings == nil {
		bookings = []model.BookingSummary{}
	}
	return bookings, nil
}

func (s *userService) GetUserProfile(ctx context.Context, userID int) (*model.UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.bookingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count user bookings: %w", err)
	}

	return &model.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		MemberSince:    strconv.Itoa(user.CreatedAt.Year()),
		TripsCompleted: count,
	}, nil
}
