package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockShowRepo struct {
	domain.ShowRepository
	CreateCheckedFunc  func(ctx context.Context, show *domain.Show) error
	UpdateCheckedFunc  func(ctx context.Context, show *domain.Show) error
	GetByIdFunc        func(ctx context.Context, id string) (*domain.Show, error)
	GetAllFunc         func(ctx context.Context) ([]domain.Show, error)
	GetFilteredFunc    func(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, error)
	GetAllForAdminFunc func(ctx context.Context) ([]domain.Show, error)
	DeleteFunc         func(ctx context.Context, id string) error
}

func (m *MockShowRepo) CreateChecked(ctx context.Context, show *domain.Show) error {
	return m.CreateCheckedFunc(ctx, show)
}

func (m *MockShowRepo) UpdateChecked(ctx context.Context, show *domain.Show) error {
	return m.UpdateCheckedFunc(ctx, show)
}

func (m *MockShowRepo) GetById(ctx context.Context, id string) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetAll(ctx context.Context) ([]domain.Show, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockShowRepo) GetFiltered(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, error) {
	return m.GetFilteredFunc(ctx, filters)
}

func (m *MockShowRepo) GetAllForAdmin(ctx context.Context) ([]domain.Show, error) {
	return m.GetAllForAdminFunc(ctx)
}

func (m *MockShowRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
