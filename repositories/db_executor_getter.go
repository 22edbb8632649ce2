package repositories

import (
	"context"

	"github.com/caseward/caseward-backend/models"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type databaseSchemaGetter interface {
	DatabaseSchema() models.DatabaseSchema
}

type Executor interface {
	databaseSchemaGetter
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Transaction interface {
	Executor
	RawTx() pgx.Tx
}

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

// Transaction runs fn atomically: the state change and its audit entries are
// one unit of work, committed or rolled back together.
func (g ExecutorGetter) Transaction(
	ctx context.Context,
	databaseSchema models.DatabaseSchema,
	fn func(tx Transaction) error,
) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(PgTx{
			databaseSchema: databaseSchema,
			tx:             tx,
		})
	})

	// The callback can return ErrIgnoreRollBackError to explicitly specify
	// that the error should be ignored.
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return adaptTransactionError(err)
}

// adaptTransactionError sorts a failed unit of work into the error kinds
// callers retry on. A unique violation here means two units raced on the same
// case: the only non-synthetic unique constraint is the per-case audit seq.
func adaptTransactionError(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolationError(err) || IsSerializationFailureError(err) {
		return errors.Join(models.ErrConcurrentModification, err)
	}
	if IsUnavailableError(err) {
		return errors.Join(models.UnavailableError, err)
	}
	return errors.Wrap(err, "error executing transaction")
}

func (g ExecutorGetter) GetExecutor(databaseSchema models.DatabaseSchema) Executor {
	return PgExecutor{
		databaseSchema: databaseSchema,
		exec:           g.connectionPool,
	}
}
