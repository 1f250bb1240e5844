package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateFunc      func(ctx context.Context, booking *domain.Booking) error
	GetByIdFunc     func(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserIdFunc func(ctx context.Context, userID string) ([]domain.Booking, error)
	GetAllFunc      func(ctx context.Context) ([]domain.Booking, error)
	CheckoutFunc    func(ctx context.Context, checkout domain.Checkout, charge domain.ChargeFunc) (*domain.Booking, error)
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.CreateFunc(ctx, booking)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id string) (*domain.Booking, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBookingRepo) GetByUserId(ctx context.Context, userID string) ([]domain.Booking, error) {
	return m.GetByUserIdFunc(ctx, userID)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockBookingRepo) Checkout(
	ctx context.Context,
	checkout domain.Checkout,
	charge domain.ChargeFunc) (*domain.Booking, error) {

	return m.CheckoutFunc(ctx, checkout, charge)
}
