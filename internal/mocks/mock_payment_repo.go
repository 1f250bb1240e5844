package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
)

type MockPaymentRepo struct {
	domain.PaymentRepository
	CreateFunc       func(ctx context.Context, payment *domain.Payment) error
	GetByIdFunc      func(ctx context.Context, id string) (*domain.Payment, error)
	GetByUserIdFunc  func(ctx context.Context, userID string) ([]domain.Payment, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.CreateFunc(ctx, payment)
}

func (m *MockPaymentRepo) GetById(ctx context.Context, id string) (*domain.Payment, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockPaymentRepo) GetByUserId(ctx context.Context, userID string) ([]domain.Payment, error) {
	return m.GetByUserIdFunc(ctx, userID)
}

func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}
