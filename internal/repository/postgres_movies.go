package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

const movieColumns = `id, title, duration, description, poster_url, release_date, created_at`

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movies (id, title, duration, description, poster_url, release_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	movie.ID = uuid.NewString()

	return p.db.QueryRow(
		ctx,
		query,
		movie.ID,
		movie.Title,
		movie.Duration,
		movie.Description,
		movie.PosterUrl,
		movie.ReleaseDate,
	).Scan(&movie.CreatedAt)
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Duration,
		&movie.Description,
		&movie.PosterUrl,
		&movie.ReleaseDate,
		&movie.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at DESC, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Duration,
			&movie.Description,
			&movie.PosterUrl,
			&movie.ReleaseDate,
			&movie.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, duration = $3, description = $4, poster_url = $5, release_date = $6
		WHERE id = $1
		RETURNING created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.ID,
		movie.Title,
		movie.Duration,
		movie.Description,
		movie.PosterUrl,
		movie.ReleaseDate,
	).Scan(&movie.CreatedAt)

	return notFoundOr(err)
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id))
}
