package domain

import (
	"context"
	"time"
)

// BookingConfirmedEvent is published after a successful checkout so that
// downstream consumers do not need to query the primary database.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	ShowID      string    `json:"show_id"`
	SeatID      string    `json:"seat_id"`
	SeatLabel   string    `json:"seat_label"`
	PaymentID   string    `json:"payment_id"`
	MovieTitle  string    `json:"movie_title"`
	TheaterName string    `json:"theater_name"`
	ScreenName  string    `json:"screen_name"`
	StartsAt    time.Time `json:"starts_at"`
	Amount      string    `json:"amount"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
	Close() error
}
