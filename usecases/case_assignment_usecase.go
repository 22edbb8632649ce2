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

type assignmentRepository interface {
	GetActiveAssignment(ctx context.Context, exec repositories.Executor, caseId string) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, tx repositories.Transaction,
		attrs models.CreateAssignmentAttributes, newAssignmentId string) error
	SupersedeActiveAssignment(ctx context.Context, tx repositories.Transaction, caseId string) error
}

type advocateRepository interface {
	GetAdvocateById(ctx context.Context, exec repositories.Executor, advocateId models.UserId) (models.Advocate, error)
	ListEligibleAdvocates(ctx context.Context, exec repositories.Executor,
		caseTags []string) ([]models.AdvocateWithCaseLoad, error)
	TouchLastAssignedAt(ctx context.Context, tx repositories.Transaction, advocateId models.UserId) error
}

type caseAssignmentRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	AssignCase(ctx context.Context, exec repositories.Executor, caseId string,
		expectedVersion int, advocateId models.UserId) (bool, error)
}

// NotificationDispatcher delivers intents after the surrounding transaction
// has committed. Implementations must not block case processing.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, intent models.NotificationIntent)
}

type CaseAssignmentUsecase struct {
	enforceSecurity        security.EnforceSecurityCase
	transactionFactory     executor_factory.TransactionFactory
	executorFactory        executor_factory.ExecutorFactory
	caseRepository         caseAssignmentRepository
	assignmentRepository   assignmentRepository
	advocateRepository     advocateRepository
	caseEventRepository    caseEventRepository
	notificationDispatcher NotificationDispatcher
	credentials            models.Credentials
	reassignmentCoolDown   time.Duration
}

// AssignCase picks an advocate for the case and records the assignment. The
// selection is load-balanced: among eligible advocates (verified, active,
// sharing a specialization tag with the case) the one with the fewest active
// cases wins, ties broken by who was assigned least recently.
func (uc CaseAssignmentUsecase) AssignCase(ctx context.Context, caseId string) (models.Assignment, error) {
	if err := uc.enforceSecurity.Permission(models.CASE_ASSIGN); err != nil {
		return models.Assignment{}, err
	}

	assignment, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Assignment, error) {
			c, err := uc.caseRepository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Assignment{}, err
			}
			if c.Status.IsTerminal() {
				return models.Assignment{}, errors.Wrapf(models.ErrCaseTerminal,
					"case %s is %s", c.Id, c.Status)
			}

			candidates, err := uc.advocateRepository.ListEligibleAdvocates(ctx, tx, c.Tags)
			if err != nil {
				return models.Assignment{}, err
			}
			picked, found := models.SelectAdvocateForAssignment(candidates, c.Tags)
			if !found {
				return models.Assignment{}, errors.Wrapf(models.ErrNoEligibleAdvocate,
					"no advocate matches tags %v", c.Tags)
			}

			reason := models.AssignmentInitial
			if c.AssignedTo != nil {
				reason = models.AssignmentReassignment
				if err := uc.assignmentRepository.SupersedeActiveAssignment(ctx, tx, c.Id); err != nil {
					return models.Assignment{}, err
				}
			}

			return uc.recordAssignment(ctx, tx, c, picked.UserId, reason)
		})
	if err != nil {
		return models.Assignment{}, err
	}

	uc.notificationDispatcher.Dispatch(ctx, models.NotificationIntent{
		Kind:        models.NotificationCaseAssigned,
		CaseId:      assignment.CaseId,
		RecipientId: assignment.AdvocateId,
	})
	return assignment, nil
}

// ReassignCase hands the case to a named advocate. Only an admin or the
// currently assigned advocate may do so, the target must itself be an
// assignable advocate, and reassignments are rate-limited by the configured
// cool-down (admins bypass the cool-down).
func (uc CaseAssignmentUsecase) ReassignCase(
	ctx context.Context,
	caseId string,
	newAdvocateId models.UserId,
) (models.Assignment, error) {
	assignment, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Assignment, error) {
			c, err := uc.caseRepository.GetCaseById(ctx, tx, caseId)
			if err != nil {
				return models.Assignment{}, err
			}
			if err := uc.enforceSecurity.ReassignCase(c); err != nil {
				return models.Assignment{}, err
			}
			if c.Status.IsTerminal() {
				return models.Assignment{}, errors.Wrapf(models.ErrCaseTerminal,
					"case %s is %s", c.Id, c.Status)
			}

			target, err := uc.advocateRepository.GetAdvocateById(ctx, tx, newAdvocateId)
			if err != nil {
				return models.Assignment{}, err
			}
			if !target.EligibleFor(c.Tags) {
				return models.Assignment{}, errors.Wrapf(models.ErrAdvocateNotAssignable,
					"advocate %s is not eligible for case %s", newAdvocateId, c.Id)
			}
			if c.AssignedTo != nil && *c.AssignedTo == newAdvocateId {
				return models.Assignment{}, errors.Wrap(models.BadParameterError,
					"case is already assigned to this advocate")
			}

			active, err := uc.assignmentRepository.GetActiveAssignment(ctx, tx, c.Id)
			if err != nil {
				return models.Assignment{}, err
			}
			if err := uc.checkCoolDown(active); err != nil {
				return models.Assignment{}, err
			}
			if active != nil {
				if err := uc.assignmentRepository.SupersedeActiveAssignment(ctx, tx, c.Id); err != nil {
					return models.Assignment{}, err
				}
			}

			return uc.recordAssignment(ctx, tx, c, newAdvocateId, models.AssignmentReassignment)
		})
	if err != nil {
		return models.Assignment{}, err
	}

	uc.notificationDispatcher.Dispatch(ctx, models.NotificationIntent{
		Kind:        models.NotificationCaseReassigned,
		CaseId:      assignment.CaseId,
		RecipientId: assignment.AdvocateId,
	})
	return assignment, nil
}

func (uc CaseAssignmentUsecase) checkCoolDown(active *models.Assignment) error {
	if uc.reassignmentCoolDown <= 0 || active == nil {
		return nil
	}
	if uc.credentials.Role == models.ADMIN || uc.credentials.Role == models.SYSTEM {
		return nil
	}
	if elapsed := time.Since(active.AssignedAt); elapsed < uc.reassignmentCoolDown {
		return errors.Wrapf(models.ErrReassignmentCoolDown,
			"last assignment was %s ago, cool-down is %s", elapsed.Round(time.Second), uc.reassignmentCoolDown)
	}
	return nil
}

func (uc CaseAssignmentUsecase) recordAssignment(
	ctx context.Context,
	tx repositories.Transaction,
	c models.Case,
	advocateId models.UserId,
	reason models.AssignmentReason,
) (models.Assignment, error) {
	newAssignmentId := uuid.NewString()
	if err := uc.assignmentRepository.CreateAssignment(ctx, tx, models.CreateAssignmentAttributes{
		CaseId:     c.Id,
		AdvocateId: advocateId,
		Reason:     reason,
	}, newAssignmentId); err != nil {
		return models.Assignment{}, err
	}

	applied, err := uc.caseRepository.AssignCase(ctx, tx, c.Id, c.Version, advocateId)
	if err != nil {
		return models.Assignment{}, err
	}
	if !applied {
		return models.Assignment{}, errors.Wrapf(models.ErrConcurrentModification,
			"case %s version %d", c.Id, c.Version)
	}

	if err := uc.advocateRepository.TouchLastAssignedAt(ctx, tx, advocateId); err != nil {
		return models.Assignment{}, err
	}

	eventType := models.CaseAssigned
	if reason == models.AssignmentReassignment {
		eventType = models.CaseReassigned
	}
	var previous *string
	if c.AssignedTo != nil {
		previous = pure_utils.Ptr(string(*c.AssignedTo))
	}
	if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
		CaseId:        c.Id,
		ActorId:       uc.credentials.ActorId(),
		EventType:     eventType,
		PreviousValue: previous,
		NewValue:      pure_utils.Ptr(string(advocateId)),
		ResourceId:    &newAssignmentId,
		ResourceType:  pure_utils.Ptr(models.AssignmentResourceType),
		OriginIp:      uc.credentials.OriginIp,
	}); err != nil {
		return models.Assignment{}, err
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "case assigned",
		"case_id", c.Id,
		"advocate_id", advocateId,
		"reason", reason)

	return models.Assignment{
		Id:         newAssignmentId,
		CaseId:     c.Id,
		AdvocateId: advocateId,
		Reason:     reason,
		AssignedAt: time.Now(),
	}, nil
}
