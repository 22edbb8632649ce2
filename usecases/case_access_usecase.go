package usecases

import (
	"context"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/repositories"
	"github.com/caseward/caseward-backend/usecases/executor_factory"
	"github.com/caseward/caseward-backend/utils"
)

type accessResourceRepository interface {
	GetCaseDocumentById(ctx context.Context, exec repositories.Executor, documentId string) (models.CaseDocument, error)
	GetCaseNoteById(ctx context.Context, exec repositories.Executor, noteId string) (models.CaseNote, error)
}

type accessCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
}

// CaseAccessUsecase answers "may this actor do this to that resource". The
// decision itself is a pure table lookup in models.EvaluateAccess; this
// usecase loads the resource and its case, and writes an audit entry when the
// answer is no.
type CaseAccessUsecase struct {
	executorFactory     executor_factory.ExecutorFactory
	transactionFactory  executor_factory.TransactionFactory
	caseRepository      accessCaseRepository
	resourceRepository  accessResourceRepository
	caseEventRepository caseEventRepository
	credentials         models.Credentials
}

func (uc CaseAccessUsecase) CheckDocumentAccess(
	ctx context.Context,
	documentId string,
	action models.AccessAction,
) (models.AccessDecision, error) {
	exec := uc.executorFactory.NewExecutor()
	document, err := uc.resourceRepository.GetCaseDocumentById(ctx, exec, documentId)
	if err != nil {
		return models.AccessDecision{}, err
	}
	c, err := uc.caseRepository.GetCaseById(ctx, exec, document.CaseId)
	if err != nil {
		return models.AccessDecision{}, err
	}

	decision := models.EvaluateAccess(uc.credentials, c, models.AccessResource{
		Kind:       models.ResourceDocument,
		Level:      document.AccessLevel,
		ScanStatus: document.ScanStatus,
	}, action)

	return decision, uc.recordDenial(ctx, c.Id, documentId, models.DocumentResourceType, action, decision)
}

func (uc CaseAccessUsecase) CheckNoteAccess(
	ctx context.Context,
	noteId string,
	action models.AccessAction,
) (models.AccessDecision, error) {
	exec := uc.executorFactory.NewExecutor()
	note, err := uc.resourceRepository.GetCaseNoteById(ctx, exec, noteId)
	if err != nil {
		return models.AccessDecision{}, err
	}
	c, err := uc.caseRepository.GetCaseById(ctx, exec, note.CaseId)
	if err != nil {
		return models.AccessDecision{}, err
	}

	// Notes have no stored level of their own: internal notes behave as
	// restricted material, everything else as public.
	level := models.LevelPublic
	if note.NoteType == models.NoteInternal {
		level = models.LevelRestricted
	}
	decision := models.EvaluateAccess(uc.credentials, c, models.AccessResource{
		Kind:       models.ResourceNote,
		Level:      level,
		NoteType:   note.NoteType,
		SharedWith: note.SharedWith,
	}, action)

	return decision, uc.recordDenial(ctx, c.Id, noteId, models.NoteResourceType, action, decision)
}

// recordDenial appends an access_denied entry for every refused check. Grants
// are not logged, only refusals.
func (uc CaseAccessUsecase) recordDenial(
	ctx context.Context,
	caseId string,
	resourceId string,
	resourceType models.CaseEventResourceType,
	action models.AccessAction,
	decision models.AccessDecision,
) error {
	if decision.Allowed {
		return nil
	}

	utils.LoggerFromContext(ctx).WarnContext(ctx, "access denied",
		"case_id", caseId,
		"resource_id", resourceId,
		"action", action,
		"reason", decision.Reason)

	return uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:       caseId,
			ActorId:      uc.credentials.ActorId(),
			EventType:    models.AccessDenied,
			NewValue:     pure_utils.Ptr(string(action)),
			Reason:       pure_utils.Ptr(string(decision.Reason)),
			ResourceId:   &resourceId,
			ResourceType: &resourceType,
			OriginIp:     uc.credentials.OriginIp,
		})
	})
}
