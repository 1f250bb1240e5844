package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID          string
	UserID      string
	ShowID      string
	SeatID      string
	PaymentID   string
	BookingTime time.Time

	User    *User
	Show    *Show
	Seat    *Seat
	Payment *Payment
}

// Checkout is the input of the atomic booking flow: lock the seat for the
// show, charge, record the payment and the booking, flag the seat.
type Checkout struct {
	UserID        string
	ShowID        string
	SeatID        string
	Amount        decimal.Decimal
	PaymentMethod string
}

type ChargeFunc func(ctx context.Context) (*ChargeResult, error)

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id string) (*Booking, error)
	GetByUserId(ctx context.Context, userID string) ([]Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)
	// Checkout returns ErrSeatAlreadyReserved when the seat is already taken
	// for the show and ErrPaymentDeclined when charge does not complete.
	// Nothing is persisted in either case.
	Checkout(ctx context.Context, checkout Checkout, charge ChargeFunc) (*Booking, error)
}
