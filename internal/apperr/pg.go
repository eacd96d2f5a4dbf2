package apperr

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the taxonomy understands.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromStorage classifies a storage error. Recognized native codes become
// Conflict or NotFound; sql.ErrNoRows becomes NotFound with the supplied
// resource message; everything else stays Unknown.
func FromStorage(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return Wrap(NotFound, notFoundMsg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Wrap(Conflict, MsgConflict, err)
		case pgForeignKeyViolation:
			// The referenced parent row is gone.
			return Wrap(NotFound, notFoundMsg, err)
		}
	}
	return Wrap(Unknown, MsgInternal, err)
}
