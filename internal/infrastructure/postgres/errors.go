package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/dailyhub/internal/apperrors"
)

const uniqueViolation = "23505"

// mapError translates pgx errors into the shared taxonomy. Missing rows
// become ErrNotFound, unique-index collisions become ErrConflict, anything
// else passes through for the service layer to treat as a store failure.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrConflict
	}
	return err
}
