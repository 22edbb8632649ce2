package usecases

import (
	"time"

	"github.com/caseward/caseward-backend/repositories"
	"github.com/caseward/caseward-backend/usecases/executor_factory"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Usecases struct {
	Repositories Repositories

	reassignmentCoolDown time.Duration
	escalationWindow     time.Duration
}

// Repositories groups everything the usecases reach the outside world with.
type Repositories struct {
	ExecutorGetter         repositories.ExecutorGetter
	CasewardDbRepository   *repositories.CasewardDbRepository
	NotificationDispatcher NotificationDispatcher
}

type Option func(*options)

type options struct {
	reassignmentCoolDown time.Duration
	escalationWindow     time.Duration
	dispatcher           NotificationDispatcher
}

// WithReassignmentCoolDown sets the minimum delay between two reassignments of
// the same case by non-admin actors. Zero disables the cool-down.
func WithReassignmentCoolDown(coolDown time.Duration) Option {
	return func(o *options) {
		o.reassignmentCoolDown = coolDown
	}
}

// WithEscalationWindow sets how far ahead of a court date a case is escalated
// to urgent priority.
func WithEscalationWindow(window time.Duration) Option {
	return func(o *options) {
		o.escalationWindow = window
	}
}

func WithNotificationDispatcher(dispatcher NotificationDispatcher) Option {
	return func(o *options) {
		o.dispatcher = dispatcher
	}
}

func NewUsecases(pool *pgxpool.Pool, opts ...Option) Usecases {
	o := &options{
		escalationWindow: DefaultEscalationWindow,
		dispatcher:       repositories.SlogNotificationDispatcher{},
	}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories: Repositories{
			ExecutorGetter:         repositories.NewExecutorGetter(pool),
			CasewardDbRepository:   repositories.NewCasewardDbRepository(),
			NotificationDispatcher: o.dispatcher,
		},
		reassignmentCoolDown: o.reassignmentCoolDown,
		escalationWindow:     o.escalationWindow,
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}
