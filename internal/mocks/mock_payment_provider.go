package mocks

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	args := m.Called(ctx, req)

	result, _ := args.Get(0).(*domain.ChargeResult)
	return result, args.Error(1)
}

func (m *MockPaymentProvider) Refund(ctx context.Context, charge *domain.ChargeResult) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
