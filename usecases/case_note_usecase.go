package usecases

import (
	"context"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/repositories"
	"github.com/caseward/caseward-backend/usecases/executor_factory"
	"github.com/caseward/caseward-backend/usecases/security"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type caseNoteRepository interface {
	GetCaseNoteById(ctx context.Context, exec repositories.Executor, noteId string) (models.CaseNote, error)
	CreateCaseNote(ctx context.Context, exec repositories.Executor, attrs models.CreateCaseNoteAttributes,
		authorId models.UserId, newNoteId string) error
	CompleteFollowUp(ctx context.Context, exec repositories.Executor, noteId string) (bool, error)
}

type CaseNoteUsecase struct {
	enforceSecurity     security.EnforceSecurityCase
	transactionFactory  executor_factory.TransactionFactory
	executorFactory     executor_factory.ExecutorFactory
	caseRepository      accessCaseRepository
	caseNoteRepository  caseNoteRepository
	caseEventRepository caseEventRepository
	credentials         models.Credentials
}

func (uc CaseNoteUsecase) AddCaseNote(ctx context.Context, attrs models.CreateCaseNoteAttributes) (models.CaseNote, error) {
	if err := attrs.Validate(); err != nil {
		return models.CaseNote{}, err
	}
	// Clients write general notes only.
	if uc.credentials.Role == models.CLIENT && attrs.NoteType != models.NoteGeneral {
		return models.CaseNote{}, errors.Wrapf(models.ForbiddenError,
			"clients may not create %s notes", attrs.NoteType)
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.CaseNote, error) {
			c, err := uc.caseRepository.GetCaseById(ctx, tx, attrs.CaseId)
			if err != nil {
				return models.CaseNote{}, err
			}
			if err := uc.enforceSecurity.AddCaseNote(c); err != nil {
				return models.CaseNote{}, err
			}
			if c.Status.IsTerminal() {
				return models.CaseNote{}, errors.Wrapf(models.ErrCaseTerminal,
					"case %s is %s", c.Id, c.Status)
			}

			authorId := uc.credentials.ActorIdentity.UserId
			newNoteId := uuid.NewString()
			if err := uc.caseNoteRepository.CreateCaseNote(ctx, tx, attrs, authorId, newNoteId); err != nil {
				return models.CaseNote{}, err
			}

			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:       c.Id,
				ActorId:      uc.credentials.ActorId(),
				EventType:    models.NoteAdded,
				NewValue:     pure_utils.Ptr(string(attrs.NoteType)),
				ResourceId:   &newNoteId,
				ResourceType: pure_utils.Ptr(models.NoteResourceType),
				OriginIp:     uc.credentials.OriginIp,
			}); err != nil {
				return models.CaseNote{}, err
			}

			return uc.caseNoteRepository.GetCaseNoteById(ctx, tx, newNoteId)
		})
}

// CompleteFollowUp marks a follow-up note done, unblocking the case's path to
// Closed. Completing an already-done follow-up is rejected.
func (uc CaseNoteUsecase) CompleteFollowUp(ctx context.Context, noteId string) (models.CaseNote, error) {
	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.CaseNote, error) {
			note, err := uc.caseNoteRepository.GetCaseNoteById(ctx, tx, noteId)
			if err != nil {
				return models.CaseNote{}, err
			}
			c, err := uc.caseRepository.GetCaseById(ctx, tx, note.CaseId)
			if err != nil {
				return models.CaseNote{}, err
			}
			if err := uc.enforceSecurity.AddCaseNote(c); err != nil {
				return models.CaseNote{}, err
			}

			done, err := uc.caseNoteRepository.CompleteFollowUp(ctx, tx, noteId)
			if err != nil {
				return models.CaseNote{}, err
			}
			if !done {
				return models.CaseNote{}, errors.Wrapf(models.BadParameterError,
					"note %s is not an open follow-up", noteId)
			}

			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:       c.Id,
				ActorId:      uc.credentials.ActorId(),
				EventType:    models.FollowUpCompleted,
				ResourceId:   &noteId,
				ResourceType: pure_utils.Ptr(models.NoteResourceType),
				OriginIp:     uc.credentials.OriginIp,
			}); err != nil {
				return models.CaseNote{}, err
			}

			return uc.caseNoteRepository.GetCaseNoteById(ctx, tx, noteId)
		})
}
