package repository

import (
	"context"
	"errors"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, role, image, password_hash, oauth_provider, oauth_subject, created_at`

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	return insertUser(ctx, p.db, user)
}

func insertUser(ctx context.Context, q querier, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, role, image, password_hash, oauth_provider, oauth_subject)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	err := q.QueryRow(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		user.Image,
		user.Password.Hash,
		user.OAuthProvider,
		user.OAuthSubject,
	).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return domain.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return user, nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(p.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFoundOr(err)
	}

	return user, nil
}

func (p *PostgresUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (p *PostgresUserRepository) UpsertOAuth(ctx context.Context, identity domain.OAuthIdentity) (*domain.User, error) {
	var user *domain.User

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT ` + userColumns + `
			FROM users
			WHERE (oauth_provider = $1 AND oauth_subject = $2) OR LOWER(email) = LOWER($3)
			ORDER BY (oauth_provider = $1 AND oauth_subject = $2) DESC NULLS LAST
			LIMIT 1
			FOR UPDATE
		`

		existing, err := scanUser(tx.QueryRow(ctx, query, identity.Provider, identity.Subject, identity.Email))
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		if existing == nil {
			user = &domain.User{
				Name:          identity.Name,
				Email:         identity.Email,
				Role:          domain.RoleUser,
				Image:         optional(identity.Image),
				OAuthProvider: &identity.Provider,
				OAuthSubject:  &identity.Subject,
			}

			return insertUser(ctx, tx, user)
		}

		query = `
			UPDATE users
			SET oauth_provider = $2,
				oauth_subject = $3,
				image = COALESCE(image, $4)
			WHERE id = $1
			RETURNING ` + userColumns

		user, err = scanUser(tx.QueryRow(ctx, query, existing.ID, identity.Provider, identity.Subject, optional(identity.Image)))

		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Image,
		&user.Password.Hash,
		&user.OAuthProvider,
		&user.OAuthSubject,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
