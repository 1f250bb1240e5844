package domain

import (
	"context"
	"time"
)

const (
	MaxScreenRows    = 26
	MaxScreenColumns = 50
)

type Theater struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	Screens   []Screen
}

// Screen is a hall inside a theater. Rows and Columns describe the seat grid;
// seats are labelled A..Z by row and numbered 1..Rows*Columns across the grid.
type Screen struct {
	ID        string
	TheaterID string
	Name      string
	Rows      int
	Columns   int
	CreatedAt time.Time
	Theater   *Theater
	Seats     []Seat
}

// SeatGrid returns the seats of a rows x columns screen in row-major order.
func SeatGrid(screenID string, rows, columns int) []Seat {
	seats := make([]Seat, 0, rows*columns)

	for number := 1; number <= rows*columns; number++ {
		seats = append(seats, Seat{
			ScreenID: screenID,
			Row:      SeatRowLabel(number, columns),
			Number:   number,
		})
	}

	return seats
}

type TheaterRepository interface {
	Create(ctx context.Context, theater *Theater) error
	GetById(ctx context.Context, id string) (*Theater, error)
	GetAll(ctx context.Context) ([]Theater, error)
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id string) error
}

type ScreenRepository interface {
	CreateWithSeats(ctx context.Context, screen *Screen) error
	GetById(ctx context.Context, id string) (*Screen, error)
	GetByTheaterId(ctx context.Context, theaterID string) ([]Screen, error)
	Update(ctx context.Context, screen *Screen) error
	Delete(ctx context.Context, id string) error
}
