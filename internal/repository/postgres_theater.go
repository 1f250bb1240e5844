package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `
		INSERT INTO theaters (id, name, location)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	theater.ID = uuid.NewString()

	return p.db.QueryRow(ctx, query, theater.ID, theater.Name, theater.Location).Scan(&theater.CreatedAt)
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id string) (*domain.Theater, error) {
	query := `SELECT id, name, location, created_at FROM theaters WHERE id = $1`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	query = `
		SELECT id, theater_id, name, seat_rows, seat_columns, created_at
		FROM screens
		WHERE theater_id = $1
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theater.Screens = []domain.Screen{}

	for rows.Next() {
		var screen domain.Screen

		err := rows.Scan(
			&screen.ID,
			&screen.TheaterID,
			&screen.Name,
			&screen.Rows,
			&screen.Columns,
			&screen.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		theater.Screens = append(theater.Screens, screen)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `SELECT id, name, location, created_at FROM theaters ORDER BY name, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := []domain.Theater{}

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location,
			&theater.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `
		UPDATE theaters
		SET name = $2, location = $3
		WHERE id = $1
		RETURNING created_at
	`

	err := p.db.QueryRow(ctx, query, theater.ID, theater.Name, theater.Location).Scan(&theater.CreatedAt)

	return notFoundOr(err)
}

// Delete removes the theater together with its screens, seats and shows.
func (p *PostgresTheaterRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(p.db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id))
}
