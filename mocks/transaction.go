package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
)

type Transaction struct {
	mock.Mock
}

func (t *Transaction) DatabaseSchema() models.DatabaseSchema {
	args := t.Called()
	return args.Get(0).(models.DatabaseSchema)
}

func (t *Transaction) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := t.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (t *Transaction) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := t.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (t *Transaction) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := t.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

func (t *Transaction) RawTx() pgx.Tx {
	args := t.Called()
	return args.Get(0).(pgx.Tx)
}
