package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type ChargeRequest struct {
	UserID        string
	Email         string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string
	Description   string
}

type ChargeResult struct {
	Reference string
	Status    PaymentStatus
}

// PaymentProvider moves money for checkouts. Refund reverses a charge whose
// booking could not be stored, cancelling it when it has not settled yet.
type PaymentProvider interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	Refund(ctx context.Context, charge *ChargeResult) error
}
