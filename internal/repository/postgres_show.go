package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const showSelect = `
	SELECT
		sh.id, sh.movie_id, sh.theater_id, sh.screen_id, sh.start_time, sh.price, sh.created_at,
		m.id, m.title, m.duration, m.description, m.poster_url, m.release_date, m.created_at,
		t.id, t.name, t.location, t.created_at,
		sc.id, sc.theater_id, sc.name, sc.seat_rows, sc.seat_columns, sc.created_at,
		(SELECT COUNT(*) FROM bookings b WHERE b.show_id = sh.id) AS booking_count
	FROM shows sh
	JOIN movies m ON m.id = sh.movie_id
	JOIN theaters t ON t.id = sh.theater_id
	JOIN screens sc ON sc.id = sh.screen_id
`

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// CreateChecked locks the screen row so concurrent schedulers for the same
// screen are serialized, then inserts the show unless it conflicts.
func (p *PostgresShowRepository) CreateChecked(ctx context.Context, show *domain.Show) error {
	show.ID = uuid.NewString()

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		if err := lockScreen(ctx, tx, show); err != nil {
			return err
		}

		if err := checkShowConflict(ctx, tx, show); err != nil {
			return err
		}

		query := `
			INSERT INTO shows (id, movie_id, theater_id, screen_id, start_time, price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			show.ID,
			show.MovieID,
			show.TheaterID,
			show.ScreenID,
			show.StartTime,
			show.Price,
		).Scan(&show.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		return nil
	})
}

func (p *PostgresShowRepository) UpdateChecked(ctx context.Context, show *domain.Show) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		if err := lockScreen(ctx, tx, show); err != nil {
			return err
		}

		if err := checkShowConflict(ctx, tx, show); err != nil {
			return err
		}

		query := `
			UPDATE shows
			SET movie_id = $2, theater_id = $3, screen_id = $4, start_time = $5, price = $6
			WHERE id = $1
			RETURNING created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			show.ID,
			show.MovieID,
			show.TheaterID,
			show.ScreenID,
			show.StartTime,
			show.Price,
		).Scan(&show.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return notFoundOr(err)
		}

		return nil
	})
}

// lockScreen also verifies that the screen belongs to the show's theater.
func lockScreen(ctx context.Context, tx pgx.Tx, show *domain.Show) error {
	var theaterID string

	err := tx.QueryRow(ctx, `SELECT theater_id FROM screens WHERE id = $1 FOR UPDATE`, show.ScreenID).Scan(&theaterID)
	if err != nil {
		return notFoundOr(err)
	}

	if theaterID != show.TheaterID {
		return domain.ErrRecordNotFound
	}

	return nil
}

func checkShowConflict(ctx context.Context, tx pgx.Tx, show *domain.Show) error {
	query := `
		SELECT id, screen_id, start_time
		FROM shows
		WHERE screen_id = $1
			AND id <> $2
			AND start_time > $3
			AND start_time < $4
	`

	rows, err := tx.Query(
		ctx,
		query,
		show.ScreenID,
		show.ID,
		show.StartTime.Add(-domain.ShowConflictWindow),
		show.StartTime.Add(domain.ShowConflictWindow),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var other domain.Show

		if err := rows.Scan(&other.ID, &other.ScreenID, &other.StartTime); err != nil {
			return err
		}

		if show.Conflicts(other) {
			return domain.ErrShowConflict
		}
	}

	return rows.Err()
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id string) (*domain.Show, error) {
	show, err := scanShow(p.db.QueryRow(ctx, showSelect+`WHERE sh.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return show, nil
}

// GetAll lists upcoming shows only.
func (p *PostgresShowRepository) GetAll(ctx context.Context) ([]domain.Show, error) {
	return p.list(ctx, showSelect+`WHERE sh.start_time >= NOW() ORDER BY sh.start_time, sh.id`)
}

func (p *PostgresShowRepository) GetFiltered(ctx context.Context, filters domain.ShowFilters) ([]domain.Show, error) {
	var (
		conditions []string
		args       []any
	)

	if filters.MovieID != "" {
		args = append(args, filters.MovieID)
		conditions = append(conditions, fmt.Sprintf("sh.movie_id = $%d", len(args)))
	}

	if filters.TheaterID != "" {
		args = append(args, filters.TheaterID)
		conditions = append(conditions, fmt.Sprintf("sh.theater_id = $%d", len(args)))
	}

	if filters.Date != nil {
		day := time.Date(filters.Date.Year(), filters.Date.Month(), filters.Date.Day(), 0, 0, 0, 0, time.UTC)
		args = append(args, day, day.AddDate(0, 0, 1))
		conditions = append(conditions,
			fmt.Sprintf("sh.start_time >= $%d AND sh.start_time < $%d", len(args)-1, len(args)))
	}

	query := showSelect
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sh.start_time, sh.id"

	return p.list(ctx, query, args...)
}

func (p *PostgresShowRepository) GetAllForAdmin(ctx context.Context) ([]domain.Show, error) {
	return p.list(ctx, showSelect+`ORDER BY sh.start_time DESC, sh.id`)
}

func (p *PostgresShowRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(p.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id))
}

func (p *PostgresShowRepository) list(ctx context.Context, query string, args ...any) ([]domain.Show, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []domain.Show{}

	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}

		shows = append(shows, *show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func scanShow(row pgx.Row) (*domain.Show, error) {
	var (
		show    domain.Show
		movie   domain.Movie
		theater domain.Theater
		screen  domain.Screen
	)

	err := row.Scan(
		&show.ID,
		&show.MovieID,
		&show.TheaterID,
		&show.ScreenID,
		&show.StartTime,
		&show.Price,
		&show.CreatedAt,
		&movie.ID,
		&movie.Title,
		&movie.Duration,
		&movie.Description,
		&movie.PosterUrl,
		&movie.ReleaseDate,
		&movie.CreatedAt,
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.CreatedAt,
		&screen.ID,
		&screen.TheaterID,
		&screen.Name,
		&screen.Rows,
		&screen.Columns,
		&screen.CreatedAt,
		&show.BookingCount,
	)
	if err != nil {
		return nil, err
	}

	show.Movie = &movie
	show.Theater = &theater
	show.Screen = &screen

	return &show, nil
}
