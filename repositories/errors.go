package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func IsUniqueViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.UniqueViolation
}

func IsSerializationFailureError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.SerializationFailure
}

// IsUnavailableError matches the failures a caller should retry after a
// backoff: the store was unreachable or the call timed out, nothing was
// half-applied.
func IsUnavailableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgerrcode.IsConnectionException(pgxErr.Code)
}
