package usecases

import (
	"context"
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/repositories"
	"github.com/caseward/caseward-backend/usecases/executor_factory"
	"github.com/caseward/caseward-backend/usecases/security"
	"github.com/caseward/caseward-backend/utils"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type caseLifecycleRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor, attrs models.CreateCaseAttributes, newCaseId string) error
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor, caseId string,
		expectedVersion int, status models.CaseStatus) (bool, error)
	UpdateCasePriority(ctx context.Context, exec repositories.Executor, caseId string,
		expectedVersion int, priority models.CasePriority) (bool, error)
	UpdateCourtDate(ctx context.Context, exec repositories.Executor, caseId string,
		expectedVersion int, courtDate time.Time) (bool, error)
	ListCasesWithApproachingCourtDate(ctx context.Context, exec repositories.Executor,
		horizon time.Time) ([]models.Case, error)
}

type caseEventRepository interface {
	CreateCaseEvent(ctx context.Context, tx repositories.Transaction, attrs models.CreateCaseEventAttributes) error
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string,
		cursor models.HistoryCursor) ([]models.CaseEvent, error)
}

type openFollowUpCounter interface {
	CountOpenFollowUps(ctx context.Context, exec repositories.Executor, caseId string) (int, error)
}

const DefaultEscalationWindow = 7 * 24 * time.Hour

type CaseLifecycleUsecase struct {
	enforceSecurity        security.EnforceSecurityCase
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	repository             caseLifecycleRepository
	caseEventRepository    caseEventRepository
	noteRepository         openFollowUpCounter
	notificationDispatcher NotificationDispatcher
	credentials            models.Credentials
	escalationWindow       time.Duration
}

// CreateCase inserts a new Draft case and its first audit entry as one unit of
// work. Assignment is a separate, explicit operation.
func (uc CaseLifecycleUsecase) CreateCase(ctx context.Context, attrs models.CreateCaseAttributes) (models.Case, error) {
	if err := uc.enforceSecurity.CreateCase(); err != nil {
		return models.Case{}, err
	}
	if err := attrs.Validate(); err != nil {
		return models.Case{}, err
	}
	if attrs.CourtDate != nil && attrs.CourtDate.Before(time.Now()) {
		return models.Case{}, errors.Wrap(models.BadParameterError, "court date must be in the future")
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			newCaseId := uuid.NewString()
			if err := uc.repository.CreateCase(ctx, tx, attrs, newCaseId); err != nil {
				return models.Case{}, err
			}

			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:    newCaseId,
				ActorId:   uc.credentials.ActorId(),
				EventType: models.CaseCreated,
				NewValue:  pure_utils.Ptr(string(models.CaseDraft)),
				OriginIp:  uc.credentials.OriginIp,
			}); err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseById(ctx, tx, newCaseId)
		})
}

func (uc CaseLifecycleUsecase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	c, err := uc.repository.GetCaseById(ctx, uc.executorFactory.NewExecutor(), caseId)
	if err != nil {
		return models.Case{}, err
	}
	if err := uc.enforceSecurity.ReadCase(c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

// TransitionCase validates the edge, the actor's right to use it and the
// edge-specific preconditions, then applies the new status and the audit entry
// atomically. A version conflict surfaces as ErrConcurrentModification and
// leaves the case untouched.
func (uc CaseLifecycleUsecase) TransitionCase(
	ctx context.Context,
	caseId string,
	target models.CaseStatus,
	params models.TransitionParams,
) (models.Case, error) {
	updatedCase, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}

			if err := uc.enforceSecurity.TransitionCase(c, target); err != nil {
				return models.Case{}, err
			}
			if !c.Status.CanTransition(target) {
				return models.Case{}, errors.Wrapf(models.ErrInvalidTransition,
					"%s to %s", c.Status, target)
			}
			if err := uc.checkTransitionPreconditions(ctx, tx, c, target, params); err != nil {
				return models.Case{}, err
			}

			applied, err := uc.repository.UpdateCaseStatus(ctx, tx, c.Id, c.Version, target)
			if err != nil {
				return models.Case{}, err
			}
			if !applied {
				return models.Case{}, errors.Wrapf(models.ErrConcurrentModification,
					"case %s version %d", c.Id, c.Version)
			}

			var reason *string
			if params.Reason != "" {
				reason = &params.Reason
			}
			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        c.Id,
				ActorId:       uc.credentials.ActorId(),
				EventType:     models.CaseStatusUpdated,
				PreviousValue: pure_utils.Ptr(string(c.Status)),
				NewValue:      pure_utils.Ptr(string(target)),
				Reason:        reason,
				OriginIp:      uc.credentials.OriginIp,
			}); err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseById(ctx, tx, c.Id)
		})
	if err != nil {
		return models.Case{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case status updated",
		"case_id", updatedCase.Id,
		"status", updatedCase.Status)
	return updatedCase, nil
}

func (uc CaseLifecycleUsecase) checkTransitionPreconditions(
	ctx context.Context,
	tx repositories.Transaction,
	c models.Case,
	target models.CaseStatus,
	params models.TransitionParams,
) error {
	switch target {
	case models.CaseOnHold:
		if params.Reason == "" {
			return errors.Wrap(models.ErrPreconditionFailed, "putting a case on hold requires a reason")
		}
	case models.CaseClosed:
		openFollowUps, err := uc.noteRepository.CountOpenFollowUps(ctx, tx, c.Id)
		if err != nil {
			return err
		}
		if openFollowUps > 0 {
			return errors.Wrapf(models.ErrPreconditionFailed,
				"case has %d open follow-up notes", openFollowUps)
		}
	}
	return nil
}

// UpdateCourtDate changes the court date; while the case is on hold the new
// date is re-validated to be in the future.
func (uc CaseLifecycleUsecase) UpdateCourtDate(ctx context.Context, caseId string, courtDate time.Time) (models.Case, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Case, error) {
			c, err := uc.repository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Case{}, err
			}
			if err := uc.enforceSecurity.UpdateCourtDate(c); err != nil {
				return models.Case{}, err
			}
			if c.Status.IsTerminal() {
				return models.Case{}, errors.Wrap(models.ErrCaseTerminal, "cannot change court date")
			}
			if c.Status == models.CaseOnHold && courtDate.Before(time.Now()) {
				return models.Case{}, errors.Wrap(models.ErrPreconditionFailed,
					"court date must be in the future while the case is on hold")
			}

			applied, err := uc.repository.UpdateCourtDate(ctx, tx, c.Id, c.Version, courtDate)
			if err != nil {
				return models.Case{}, err
			}
			if !applied {
				return models.Case{}, errors.Wrapf(models.ErrConcurrentModification,
					"case %s version %d", c.Id, c.Version)
			}

			var previous *string
			if c.CourtDate != nil {
				formatted := c.CourtDate.Format(time.RFC3339)
				previous = &formatted
			}
			newValue := courtDate.Format(time.RFC3339)
			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        c.Id,
				ActorId:       uc.credentials.ActorId(),
				EventType:     models.CourtDateUpdated,
				PreviousValue: previous,
				NewValue:      &newValue,
				OriginIp:      uc.credentials.OriginIp,
			}); err != nil {
				return models.Case{}, err
			}

			return uc.repository.GetCaseById(ctx, tx, c.Id)
		})
}

// EscalateApproachingCourtDates flags still-open cases whose court date falls
// within the escalation window as urgent. Run by the background job with
// system credentials; returns how many cases were escalated.
func (uc CaseLifecycleUsecase) EscalateApproachingCourtDates(ctx context.Context) (int, error) {
	window := uc.escalationWindow
	if window <= 0 {
		window = DefaultEscalationWindow
	}

	cases, err := uc.repository.ListCasesWithApproachingCourtDate(
		ctx, uc.executorFactory.NewExecutor(), time.Now().Add(window))
	if err != nil {
		return 0, err
	}

	logger := utils.LoggerFromContext(ctx)
	escalated := 0
	for _, c := range cases {
		if !c.NeedsEscalation(time.Now(), window) {
			continue
		}

		err := uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
			applied, err := uc.repository.UpdateCasePriority(ctx, tx, c.Id, c.Version, models.PriorityUrgent)
			if err != nil {
				return err
			}
			if !applied {
				// someone else touched the case, the next run will catch it
				return errors.Wrap(models.ErrIgnoreRollBackError, "case moved concurrently")
			}
			previous := string(c.Priority)
			newValue := string(models.PriorityUrgent)
			return uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        c.Id,
				EventType:     models.CaseEscalated,
				PreviousValue: &previous,
				NewValue:      &newValue,
			})
		})
		if err != nil {
			return escalated, err
		}

		if c.AssignedTo != nil {
			uc.notificationDispatcher.Dispatch(ctx, models.NotificationIntent{
				Kind:        models.NotificationCaseEscalated,
				CaseId:      c.Id,
				RecipientId: *c.AssignedTo,
			})
		}

		logger.InfoContext(ctx, "case escalated for approaching court date",
			"case_id", c.Id, "court_date", c.CourtDate)
		escalated++
	}
	return escalated, nil
}
