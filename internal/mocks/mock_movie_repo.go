package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetByIdFunc func(ctx context.Context, id string) (*domain.Movie, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Movie, error)
	UpdateFunc  func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
