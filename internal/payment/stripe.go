package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripePaymentProvider charges through a confirmed PaymentIntent. stripe.Key
// must be set before use.
type StripePaymentProvider struct {
	defaultPaymentMethod string
}

func NewStripePaymentProvider(defaultPaymentMethod string) *StripePaymentProvider {
	return &StripePaymentProvider{
		defaultPaymentMethod: defaultPaymentMethod,
	}
}

func (s *StripePaymentProvider) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.ChargeResult, error) {
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountInCents(req.Amount)),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(s.paymentMethod(req.PaymentMethod)),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("user_id", req.UserID)

	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return &domain.ChargeResult{Status: domain.PaymentStatusFailed}, nil
		}

		return nil, err
	}

	return &domain.ChargeResult{
		Reference: pi.ID,
		Status:    intentStatus(pi.Status),
	}, nil
}

// Refund gives back a succeeded PaymentIntent and cancels one that is still
// processing or awaiting capture.
func (s *StripePaymentProvider) Refund(ctx context.Context, charge *domain.ChargeResult) error {
	if charge == nil || charge.Reference == "" || charge.Status == domain.PaymentStatusFailed {
		return nil
	}

	if charge.Status == domain.PaymentStatusPending {
		params := &stripe.PaymentIntentCancelParams{}
		params.Context = ctx

		_, err := paymentintent.Cancel(charge.Reference, params)
		if err != nil {
			return fmt.Errorf("failed to cancel payment intent %s: %w", charge.Reference, err)
		}

		return nil
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(charge.Reference),
	}
	params.Context = ctx

	_, err := refund.New(params)
	if err != nil {
		return fmt.Errorf("failed to refund payment intent %s: %w", charge.Reference, err)
	}

	return nil
}

// paymentMethod passes Stripe payment method ids through and maps generic
// methods such as "CARD" to the configured default.
func (s *StripePaymentProvider) paymentMethod(method string) string {
	if strings.HasPrefix(method, "pm_") {
		return method
	}

	return s.defaultPaymentMethod
}

func intentStatus(status stripe.PaymentIntentStatus) domain.PaymentStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.PaymentStatusCompleted
	case stripe.PaymentIntentStatusProcessing, stripe.PaymentIntentStatusRequiresCapture:
		return domain.PaymentStatusPending
	default:
		return domain.PaymentStatusFailed
	}
}

func amountInCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
