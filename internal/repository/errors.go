package repository

import (
	"errors"

	"github.com/cinebook/booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
)

var errNotFound = domain.ErrRecordNotFound

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRecordNotFound
	}

	return err
}
