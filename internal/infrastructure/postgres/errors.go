package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/recipeshare/recipeshare/internal/domain/apperr"
)

const uniqueViolation = "23505"

// translate maps store-level failures to the shared error taxonomy so raw
// driver errors never cross the repository boundary.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.ErrConflict
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.ErrUnavailable
	}
	return err
}
