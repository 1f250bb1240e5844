package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ShowConflictWindow is the minimum distance between two start times on the
// same screen. It does not depend on the movie's duration.
const ShowConflictWindow = 2 * time.Hour

type Show struct {
	ID        string
	MovieID   string
	TheaterID string
	ScreenID  string
	StartTime time.Time
	Price     decimal.Decimal
	CreatedAt time.Time

	Movie        *Movie
	Theater      *Theater
	Screen       *Screen
	BookingCount int
}

// Conflicts reports whether other starts too close to s on the same screen.
func (s Show) Conflicts(other Show) bool {
	if s.ScreenID != other.ScreenID || (s.ID != "" && s.ID == other.ID) {
		return false
	}

	diff := s.StartTime.Sub(other.StartTime)
	if diff < 0 {
		diff = -diff
	}

	return diff < ShowConflictWindow
}

type ShowFilters struct {
	MovieID   string
	TheaterID string
	Date      *time.Time
}

type ShowRepository interface {
	// CreateChecked and UpdateChecked return ErrShowConflict when another show
	// on the same screen is within ShowConflictWindow.
	CreateChecked(ctx context.Context, show *Show) error
	UpdateChecked(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id string) (*Show, error)
	GetAll(ctx context.Context) ([]Show, error)
	GetFiltered(ctx context.Context, filters ShowFilters) ([]Show, error)
	GetAllForAdmin(ctx context.Context) ([]Show, error)
	Delete(ctx context.Context, id string) error
}
