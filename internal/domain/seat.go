package domain

import (
	"context"
	"time"
)

const (
	DefaultColumnsPerRow = 10
	SeatHoldTTL          = 10 * time.Minute
)

type Seat struct {
	ID       string
	ScreenID string
	Row      string
	Number   int
	IsBooked bool
}

// SeatRowLabel maps a 1-based seat number to its row letter, assuming
// columnsPerRow seats per row. A non-positive columnsPerRow falls back to
// DefaultColumnsPerRow.
func SeatRowLabel(number, columnsPerRow int) string {
	if columnsPerRow <= 0 {
		columnsPerRow = DefaultColumnsPerRow
	}

	rowIndex := (number - 1) / columnsPerRow
	if rowIndex < 0 {
		rowIndex = 0
	}

	return string(rune('A' + rowIndex))
}

// MaxSeatNumber is the highest seat number that still maps to a row letter
// with columnsPerRow seats per row.
func MaxSeatNumber(columnsPerRow int) int {
	if columnsPerRow <= 0 {
		columnsPerRow = DefaultColumnsPerRow
	}

	return MaxScreenRows * columnsPerRow
}

type SeatRepository interface {
	Create(ctx context.Context, seat *Seat) error
	GetById(ctx context.Context, id string) (*Seat, error)
	GetByScreenId(ctx context.Context, screenID string) ([]Seat, error)
	// GetByShowId returns the seats of the show's screen. IsBooked reports
	// whether a booking exists for that seat in this show, not the seat flag.
	GetByShowId(ctx context.Context, showID string) ([]Seat, error)
	UpdateBookingStatus(ctx context.Context, id string, isBooked bool) (*Seat, error)
}
