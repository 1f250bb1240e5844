package payment

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
)

// SimulatedPaymentProvider completes every charge without contacting a
// payment processor.
type SimulatedPaymentProvider struct{}

func NewSimulatedPaymentProvider() *SimulatedPaymentProvider {
	return &SimulatedPaymentProvider{}
}

func (s *SimulatedPaymentProvider) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &domain.ChargeResult{
		Reference: "sim_" + uuid.NewString(),
		Status:    domain.PaymentStatusCompleted,
	}, nil
}

func (s *SimulatedPaymentProvider) Refund(ctx context.Context, charge *domain.ChargeResult) error {
	return ctx.Err()
}
