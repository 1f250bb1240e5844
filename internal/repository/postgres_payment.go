package repository

import (
	"context"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return insertPayment(ctx, p.db, payment)
}

func insertPayment(ctx context.Context, q querier, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id,
			user_id,
			amount,
			status,
			payment_method,
			provider_ref
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	payment.ID = uuid.NewString()

	err := q.QueryRow(
		ctx,
		query,
		payment.ID,
		payment.UserID,
		payment.Amount,
		payment.Status,
		payment.PaymentMethod,
		payment.ProviderRef,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresPaymentRepository) GetById(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, user_id, amount, status, payment_method, provider_ref, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	payment, err := scanPayment(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return payment, nil
}

func (p *PostgresPaymentRepository) GetByUserId(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `
		SELECT id, user_id, amount, status, payment_method, provider_ref, created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, *payment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (p *PostgresPaymentRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.PaymentStatus) (*domain.Payment, error) {

	query := `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, amount, status, payment_method, provider_ref, created_at, updated_at
	`

	payment, err := scanPayment(p.db.QueryRow(ctx, query, id, status))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return payment, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment

	err := row.Scan(
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

	return &payment, nil
}
