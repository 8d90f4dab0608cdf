package postgres

import (
	"errors"

	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// writeErr classifies an INSERT or UPDATE failure.
func writeErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domerrors.Validation("referenced record does not exist")
		case pgUniqueViolation:
			return domerrors.Conflict("record already exists")
		case pgCheckViolation:
			return domerrors.Validation("record violates a constraint")
		}
	}
	return domerrors.Storage(err)
}

// deleteErr classifies a DELETE failure; a foreign-key violation means other
// rows still reference the entity.
func deleteErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domerrors.Conflict(entity + " is referenced by other records")
	}
	return domerrors.Storage(err)
}

// affected turns a zero row count into ErrNotFound.
func affected(n int64, err error, entity string) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domerrors.NotFound(entity)
	}
	return nil
}
