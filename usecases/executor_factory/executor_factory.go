package executor_factory

import (
	"context"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type dbGetter interface {
	GetExecutor(databaseSchema models.DatabaseSchema) repositories.Executor
	Transaction(ctx context.Context, databaseSchema models.DatabaseSchema,
		fn func(tx repositories.Transaction) error) error
}

type DbExecutorFactory struct {
	executorGetter dbGetter
}

func NewDbExecutorFactory(executorGetter dbGetter) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor(models.DATABASE_CASEWARD_SCHEMA)
}

func (factory DbExecutorFactory) Transaction(
	ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	return factory.executorGetter.Transaction(ctx, models.DATABASE_CASEWARD_SCHEMA, fn)
}
