package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestSimulatedPaymentProvider_Charge(t *testing.T) {
	provider := NewSimulatedPaymentProvider()

	result, err := provider.Charge(context.Background(), domain.ChargeRequest{
		UserID:        "u1",
		Amount:        decimal.RequireFromString("12.50"),
		PaymentMethod: "CARD",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, result.Status)
	assert.True(t, strings.HasPrefix(result.Reference, "sim_"))
}

func TestSimulatedPaymentProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulatedPaymentProvider().Charge(ctx, domain.ChargeRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"12.50", 1250},
		{"0.01", 1},
		{"9.999", 1000},
		{"100", 10000},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, amountInCents(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestIntentStatus(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusCompleted, intentStatus(stripe.PaymentIntentStatusSucceeded))
	assert.Equal(t, domain.PaymentStatusPending, intentStatus(stripe.PaymentIntentStatusProcessing))
	assert.Equal(t, domain.PaymentStatusFailed, intentStatus(stripe.PaymentIntentStatusRequiresPaymentMethod))
	assert.Equal(t, domain.PaymentStatusFailed, intentStatus(stripe.PaymentIntentStatusCanceled))
}

func TestStripePaymentProvider_PaymentMethod(t *testing.T) {
	provider := NewStripePaymentProvider("pm_card_visa")

	assert.Equal(t, "pm_card_visa", provider.paymentMethod("CARD"))
	assert.Equal(t, "pm_123", provider.paymentMethod("pm_123"))
}

func TestSimulatedPaymentProvider_Refund(t *testing.T) {
	provider := NewSimulatedPaymentProvider()

	charge, err := provider.Charge(context.Background(), domain.ChargeRequest{Amount: decimal.RequireFromString("5")})
	require.NoError(t, err)

	assert.NoError(t, provider.Refund(context.Background(), charge))
}

func TestStripePaymentProvider_RefundSkipsUnchargedResults(t *testing.T) {
	provider := NewStripePaymentProvider("pm_card_visa")

	tests := []struct {
		name   string
		charge *domain.ChargeResult
	}{
		{name: "no result", charge: nil},
		{name: "declined card", charge: &domain.ChargeResult{Status: domain.PaymentStatusFailed}},
		{name: "failed intent", charge: &domain.ChargeResult{Reference: "pi_1", Status: domain.PaymentStatusFailed}},
		{name: "missing reference", charge: &domain.ChargeResult{Status: domain.PaymentStatusCompleted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, provider.Refund(context.Background(), tt.charge))
		})
	}
}
