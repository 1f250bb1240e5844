package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CreateFunc      func(ctx context.Context, user *domain.User) error
	GetByIdFunc     func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	GetAllFunc      func(ctx context.Context) ([]domain.User, error)
	UpsertOAuthFunc func(ctx context.Context, identity domain.OAuthIdentity) (*domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetById(ctx context.Context, id string) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockUserRepo) UpsertOAuth(ctx context.Context, identity domain.OAuthIdentity) (*domain.User, error) {
	return m.UpsertOAuthFunc(ctx, identity)
}
