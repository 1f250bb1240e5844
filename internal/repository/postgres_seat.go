package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) Create(ctx context.Context, seat *domain.Seat) error {
	query := `
		INSERT INTO seats (id, screen_id, seat_row, seat_number, is_booked)
		VALUES ($1, $2, $3, $4, $5)
	`

	seat.ID = uuid.NewString()

	_, err := p.db.Exec(ctx, query, seat.ID, seat.ScreenID, seat.Row, seat.Number, seat.IsBooked)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresSeatRepository) GetById(ctx context.Context, id string) (*domain.Seat, error) {
	query := `
		SELECT id, screen_id, seat_row, seat_number, is_booked
		FROM seats
		WHERE id = $1
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.ScreenID,
		&seat.Row,
		&seat.Number,
		&seat.IsBooked,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &seat, nil
}

func (p *PostgresSeatRepository) GetByScreenId(ctx context.Context, screenID string) ([]domain.Seat, error) {
	return querySeats(ctx, p.db, `WHERE screen_id = $1`, screenID)
}

func (p *PostgresSeatRepository) GetByShowId(ctx context.Context, showID string) ([]domain.Seat, error) {
	var screenID string

	err := p.db.QueryRow(ctx, `SELECT screen_id FROM shows WHERE id = $1`, showID).Scan(&screenID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	query := `
		SELECT
			se.id, se.screen_id, se.seat_row, se.seat_number,
			EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.show_id = $2 AND b.seat_id = se.id
			) AS is_booked
		FROM seats se
		WHERE se.screen_id = $1
		ORDER BY se.seat_number
	`

	rows, err := p.db.Query(ctx, query, screenID, showID)
	if err != nil {
		return nil, err
	}

	return scanSeats(rows)
}

func (p *PostgresSeatRepository) UpdateBookingStatus(ctx context.Context, id string, isBooked bool) (*domain.Seat, error) {
	query := `
		UPDATE seats
		SET is_booked = $2
		WHERE id = $1
		RETURNING id, screen_id, seat_row, seat_number, is_booked
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, id, isBooked).Scan(
		&seat.ID,
		&seat.ScreenID,
		&seat.Row,
		&seat.Number,
		&seat.IsBooked,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &seat, nil
}

func querySeats(ctx context.Context, q querier, where string, args ...any) ([]domain.Seat, error) {
	query := `
		SELECT id, screen_id, seat_row, seat_number, is_booked
		FROM seats
	` + where + `
		ORDER BY screen_id, seat_number
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return scanSeats(rows)
}

func scanSeats(rows pgx.Rows) ([]domain.Seat, error) {
	defer rows.Close()

	seats := []domain.Seat{}

	for rows.Next() {
		var seat domain.Seat

		err := rows.Scan(
			&seat.ID,
			&seat.ScreenID,
			&seat.Row,
			&seat.Number,
			&seat.IsBooked,
		)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}
