package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wanderwith/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	userRepo := new(mockUserRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewUserService(userRepo, bookingRepo)

	userRepo.On("FindByID", mock.Anything, 1).Return(&model.User{
		ID: 1, Name: "Travel Enthusiast", Email: "user@example.com", Phone: "+91 98765 43210",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	bookingRepo.On("CountByUser", mock.Anything, 1).Return(int64(4), nil)

	profile, err := svc.GetUserProfile(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, &model.UserProfile{
		ID: 1, Name: "Travel Enthusiast", Email: "user@example.com", Phone: "+91 98765 43210",
		MemberSince: "2025", TripsCompleted: 4,
	}, profile)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	bookingRepo := new(mockBookingRepo)
	svc := NewUserService(userRepo, bookingRepo)

	userRepo.On("FindByID", mock.Anything, 42).Return(nil, nil)

	_, err := svc.GetUserProfile(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
	bookingRepo.AssertNotCalled(t, "CountByUser", mock.Anything, mock.Anything)
}

func TestGetUserBookings_NilBecomesEmpty(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := NewUserService(new(mockUserRepo), bookingRepo)

	bookingRepo.On("FindByUser", mock.Anything, 3).Return(nil, nil)

	bookings, err := svc.GetUserBookings(context.Background(), 3)

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestGetUserBookings_RepoError(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := NewUserService(new(mockUserRepo), bookingRepo)

	bookingRepo.On("FindByUser", mock.Anything, 1).Return(nil, errors.New("timeout"))

	_, err := svc.GetUserBookings(context.Background(), 1)
	assert.ErrorContains(t, err, "timeout")
}
