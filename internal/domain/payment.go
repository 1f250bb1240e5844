package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID            string
	UserID        string
	Amount        decimal.Decimal
	Status        PaymentStatus
	PaymentMethod string
	ProviderRef   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id string) (*Payment, error)
	GetByUserId(ctx context.Context, userID string) ([]Payment, error)
	UpdateStatus(ctx context.Context, id string, status PaymentStatus) (*Payment, error)
}
