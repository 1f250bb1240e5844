package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingSelect = `
	SELECT
		b.id, b.user_id, b.show_id, b.seat_id, b.payment_id, b.booking_time,
		u.id, u.name, u.email, u.role, u.image, u.created_at,
		sh.id, sh.movie_id, sh.theater_id, sh.screen_id, sh.start_time, sh.price, sh.created_at,
		m.id, m.title, m.duration, m.description, m.poster_url, m.release_date, m.created_at,
		t.id, t.name, t.location, t.created_at,
		sc.id, sc.theater_id, sc.name, sc.seat_rows, sc.seat_columns, sc.created_at,
		se.id, se.screen_id, se.seat_row, se.seat_number, se.is_booked,
		p.id, p.user_id, p.amount, p.status, p.payment_method, p.provider_ref, p.created_at, p.updated_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN shows sh ON sh.id = b.show_id
	JOIN movies m ON m.id = sh.movie_id
	JOIN theaters t ON t.id = sh.theater_id
	JOIN screens sc ON sc.id = sh.screen_id
	JOIN seats se ON se.id = b.seat_id
	JOIN payments p ON p.id = b.payment_id
`

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create inserts the booking as given. It does not check whether the seat is
// already taken for the show; Checkout does.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.NewString()

	return insertBooking(ctx, p.db, booking)
}

func insertBooking(ctx context.Context, q querier, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, show_id, seat_id, payment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING booking_time
	`

	err := q.QueryRow(
		ctx,
		query,
		booking.ID,
		booking.UserID,
		booking.ShowID,
		booking.SeatID,
		booking.PaymentID,
	).Scan(&booking.BookingTime)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := scanBooking(p.db.QueryRow(ctx, bookingSelect+`WHERE b.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return booking, nil
}

func (p *PostgresBookingRepository) GetByUserId(ctx context.Context, userID string) ([]domain.Booking, error) {
	return p.list(ctx, bookingSelect+`WHERE b.user_id = $1 ORDER BY b.booking_time DESC, b.id`, userID)
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return p.list(ctx, bookingSelect+`ORDER BY b.booking_time DESC, b.id`)
}

// Checkout takes the (show, seat) lock, charges, and records the payment and
// the booking in a single transaction. charge runs inside the transaction, so
// a declined or failed charge leaves no rows behind.
func (p *PostgresBookingRepository) Checkout(
	ctx context.Context,
	checkout domain.Checkout,
	charge domain.ChargeFunc) (*domain.Booking, error) {

	booking := &domain.Booking{
		ID:     uuid.NewString(),
		UserID: checkout.UserID,
		ShowID: checkout.ShowID,
		SeatID: checkout.SeatID,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO show_seat_locks (show_id, seat_id, booking_id)
			VALUES ($1, $2, $3)
		`

		_, err := tx.Exec(ctx, query, checkout.ShowID, checkout.SeatID, booking.ID)
		if err != nil {
			switch {
			case isUniqueViolation(err, "show_seat_locks_pkey"):
				return domain.ErrSeatAlreadyReserved
			case isForeignKeyViolation(err):
				return domain.ErrRecordNotFound
			default:
				return err
			}
		}

		// bookings made through Create hold no lock row
		var taken bool

		query = `SELECT EXISTS (SELECT 1 FROM bookings WHERE show_id = $1 AND seat_id = $2)`

		err = tx.QueryRow(ctx, query, checkout.ShowID, checkout.SeatID).Scan(&taken)
		if err != nil {
			return err
		}

		if taken {
			return domain.ErrSeatAlreadyReserved
		}

		result, err := charge(ctx)
		if err != nil {
			return err
		}

		if result.Status != domain.PaymentStatusCompleted {
			return domain.ErrPaymentDeclined
		}

		payment := &domain.Payment{
			UserID:        checkout.UserID,
			Amount:        checkout.Amount,
			Status:        result.Status,
			PaymentMethod: checkout.PaymentMethod,
			ProviderRef:   &result.Reference,
		}

		if err = insertPayment(ctx, tx, payment); err != nil {
			return err
		}

		booking.PaymentID = payment.ID
		booking.Payment = payment

		if err = insertBooking(ctx, tx, booking); err != nil {
			return err
		}

		return affectedOrNotFound(tx.Exec(ctx, `UPDATE seats SET is_booked = TRUE WHERE id = $1`, checkout.SeatID))
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		booking domain.Booking
		user    domain.User
		show    domain.Show
		movie   domain.Movie
		theater domain.Theater
		screen  domain.Screen
		seat    domain.Seat
		payment domain.Payment
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowID,
		&booking.SeatID,
		&booking.PaymentID,
		&booking.BookingTime,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Image,
		&user.CreatedAt,
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
		&seat.ID,
		&seat.ScreenID,
		&seat.Row,
		&seat.Number,
		&seat.IsBooked,
		&payment.ID,
		&payment.UserID,
		&payment.Amount,
		&payment.Status,
		&payment.PaymentMethod,
		&payment.ProviderRef,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	show.Movie = &movie
	show.Theater = &theater
	show.Screen = &screen

	booking.User = &user
	booking.Show = &show
	booking.Seat = &seat
	booking.Payment = &payment

	return &booking, nil
}
