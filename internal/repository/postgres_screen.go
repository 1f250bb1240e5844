package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresScreenRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreenRepository(db *pgxpool.Pool) *PostgresScreenRepository {
	return &PostgresScreenRepository{
		db: db,
	}
}

// CreateWithSeats inserts the screen and its full seat grid in one transaction.
func (p *PostgresScreenRepository) CreateWithSeats(ctx context.Context, screen *domain.Screen) error {
	screen.ID = uuid.NewString()

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO screens (id, theater_id, name, seat_rows, seat_columns)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			screen.ID,
			screen.TheaterID,
			screen.Name,
			screen.Rows,
			screen.Columns,
		).Scan(&screen.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		seats := domain.SeatGrid(screen.ID, screen.Rows, screen.Columns)
		rows := make([][]any, 0, len(seats))

		for i := range seats {
			seats[i].ID = uuid.NewString()
			rows = append(rows, []any{seats[i].ID, seats[i].ScreenID, seats[i].Row, seats[i].Number})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"id", "screen_id", "seat_row", "seat_number"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return err
		}

		screen.Seats = seats

		return nil
	})
}

func (p *PostgresScreenRepository) GetById(ctx context.Context, id string) (*domain.Screen, error) {
	query := `
		SELECT
			sc.id, sc.theater_id, sc.name, sc.seat_rows, sc.seat_columns, sc.created_at,
			t.id, t.name, t.location, t.created_at
		FROM screens sc
		JOIN theaters t ON t.id = sc.theater_id
		WHERE sc.id = $1
	`

	var screen domain.Screen
	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.Name,
		&screen.Rows,
		&screen.Columns,
		&screen.CreatedAt,
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	screen.Theater = &theater

	seats, err := querySeats(ctx, p.db, `WHERE screen_id = $1`, id)
	if err != nil {
		return nil, err
	}

	screen.Seats = seats

	return &screen, nil
}

func (p *PostgresScreenRepository) GetByTheaterId(ctx context.Context, theaterID string) ([]domain.Screen, error) {
	query := `
		SELECT id, theater_id, name, seat_rows, seat_columns, created_at
		FROM screens
		WHERE theater_id = $1
		ORDER BY name, id
	`

	rows, err := p.db.Query(ctx, query, theaterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screens := []domain.Screen{}
	index := make(map[string]int)

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

		screen.Seats = []domain.Seat{}
		index[screen.ID] = len(screens)
		screens = append(screens, screen)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(screens) == 0 {
		return screens, nil
	}

	seats, err := querySeats(
		ctx,
		p.db,
		`WHERE screen_id IN (SELECT id FROM screens WHERE theater_id = $1)`,
		theaterID,
	)
	if err != nil {
		return nil, err
	}

	for _, seat := range seats {
		i := index[seat.ScreenID]
		screens[i].Seats = append(screens[i].Seats, seat)
	}

	return screens, nil
}

func (p *PostgresScreenRepository) Update(ctx context.Context, screen *domain.Screen) error {
	query := `
		UPDATE screens
		SET name = $2
		WHERE id = $1
		RETURNING theater_id, seat_rows, seat_columns, created_at
	`

	err := p.db.QueryRow(ctx, query, screen.ID, screen.Name).Scan(
		&screen.TheaterID,
		&screen.Rows,
		&screen.Columns,
		&screen.CreatedAt,
	)

	return notFoundOr(err)
}

// Delete removes the screen together with its seats, shows and their bookings.
func (p *PostgresScreenRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(p.db.Exec(ctx, `DELETE FROM screens WHERE id = $1`, id))
}
