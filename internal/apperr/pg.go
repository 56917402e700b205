package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// FromStore translates a pgx error into the taxonomy. notFoundMsg is used
// when the query matched no rows; constraint violations that slipped past a
// precondition check still come back with a meaningful kind instead of an
// opaque internal error.
func FromStore(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return Wrap(KindReferential, "operation blocked by dependent rows", err)
		case pgUniqueViolation:
			return Wrap(KindConflict, "record already exists", err)
		}
	}
	return Internal("store operation failed", err)
}
