package service

import (
	"context"

	"wanderwith/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockDestinationRepo struct{ mock.Mock }

func (m *mockDestinationRepo) Create(ctx context.Context, d *model.Destination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDestinationRepo) FindByID(ctx context.Context, id int) (*model.Destination, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationRepo) FindAll(ctx context.Context, filters model.DestinationFilters) ([]model.Destination, error) {
	args := m.Called(ctx, filters)
	d, _ := args.Get(0).([]model.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindByUser(ctx context.Context, userID int) ([]model.BookingSummary, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).([]model.BookingSummary)
	return b, args.Error(1)
}

func (m *mockBookingRepo) CountByUser(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
