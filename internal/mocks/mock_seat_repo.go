package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockSeatRepo struct {
	domain.SeatRepository
	CreateFunc              func(ctx context.Context, seat *domain.Seat) error
	GetByIdFunc             func(ctx context.Context, id string) (*domain.Seat, error)
	GetByScreenIdFunc       func(ctx context.Context, screenID string) ([]domain.Seat, error)
	GetByShowIdFunc         func(ctx context.Context, showID string) ([]domain.Seat, error)
	UpdateBookingStatusFunc func(ctx context.Context, id string, isBooked bool) (*domain.Seat, error)
}

func (m *MockSeatRepo) Create(ctx context.Context, seat *domain.Seat) error {
	return m.CreateFunc(ctx, seat)
}

func (m *MockSeatRepo) GetById(ctx context.Context, id string) (*domain.Seat, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockSeatRepo) GetByScreenId(ctx context.Context, screenID string) ([]domain.Seat, error) {
	return m.GetByScreenIdFunc(ctx, screenID)
}

func (m *MockSeatRepo) GetByShowId(ctx context.Context, showID string) ([]domain.Seat, error) {
	return m.GetByShowIdFunc(ctx, showID)
}

func (m *MockSeatRepo) UpdateBookingStatus(ctx context.Context, id string, isBooked bool) (*domain.Seat, error) {
	return m.UpdateBookingStatusFunc(ctx, id, isBooked)
}
