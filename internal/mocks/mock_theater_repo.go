package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	CreateFunc  func(ctx context.Context, theater *domain.Theater) error
	GetByIdFunc func(ctx context.Context, id string) (*domain.Theater, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Theater, error)
	UpdateFunc  func(ctx context.Context, theater *domain.Theater) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	return m.CreateFunc(ctx, theater)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id string) (*domain.Theater, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTheaterRepo) GetAll(ctx context.Context) ([]domain.Theater, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockTheaterRepo) Update(ctx context.Context, theater *domain.Theater) error {
	return m.UpdateFunc(ctx, theater)
}

func (m *MockTheaterRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type MockScreenRepo struct {
	domain.ScreenRepository
	CreateWithSeatsFunc func(ctx context.Context, screen *domain.Screen) error
	GetByIdFunc         func(ctx context.Context, id string) (*domain.Screen, error)
	GetByTheaterIdFunc  func(ctx context.Context, theaterID string) ([]domain.Screen, error)
	UpdateFunc          func(ctx context.Context, screen *domain.Screen) error
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *MockScreenRepo) CreateWithSeats(ctx context.Context, screen *domain.Screen) error {
	return m.CreateWithSeatsFunc(ctx, screen)
}

func (m *MockScreenRepo) GetById(ctx context.Context, id string) (*domain.Screen, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockScreenRepo) GetByTheaterId(ctx context.Context, theaterID string) ([]domain.Screen, error) {
	return m.GetByTheaterIdFunc(ctx, theaterID)
}

func (m *MockScreenRepo) Update(ctx context.Context, screen *domain.Screen) error {
	return m.UpdateFunc(ctx, screen)
}

func (m *MockScreenRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
