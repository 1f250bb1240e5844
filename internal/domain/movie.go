package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          string
	Title       string
	Duration    int
	Description *string
	PosterUrl   *string
	ReleaseDate *time.Time
	CreatedAt   time.Time
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetById(ctx context.Context, id string) (*Movie, error)
	GetAll(ctx context.Context) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id string) error
}
