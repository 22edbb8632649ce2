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

type caseDocumentRepository interface {
	GetCaseDocumentById(ctx context.Context, exec repositories.Executor, documentId string) (models.CaseDocument, error)
	CreateCaseDocument(ctx context.Context, exec repositories.Executor, attrs models.CreateCaseDocumentAttributes,
		uploadedBy models.UserId, newDocumentId string) error
	UpdateDocumentScanStatus(ctx context.Context, exec repositories.Executor, documentId string,
		status models.ScanStatus) (bool, error)
}

type CaseDocumentUsecase struct {
	enforceSecurity        security.EnforceSecurityCase
	transactionFactory     executor_factory.TransactionFactory
	executorFactory        executor_factory.ExecutorFactory
	caseRepository         accessCaseRepository
	caseDocumentRepository caseDocumentRepository
	caseEventRepository    caseEventRepository
	credentials            models.Credentials
}

// AttachDocument records document metadata on the case. The document starts
// with a pending scan status and stays unreadable until a scanner marks it
// clean.
func (uc CaseDocumentUsecase) AttachDocument(
	ctx context.Context,
	attrs models.CreateCaseDocumentAttributes,
) (models.CaseDocument, error) {
	if err := attrs.Validate(); err != nil {
		return models.CaseDocument{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.CaseDocument, error) {
			c, err := uc.caseRepository.GetCaseById(ctx, tx, attrs.CaseId)
			if err != nil {
				return models.CaseDocument{}, err
			}
			if err := uc.enforceSecurity.AttachDocument(c); err != nil {
				return models.CaseDocument{}, err
			}
			if c.Status.IsTerminal() {
				return models.CaseDocument{}, errors.Wrapf(models.ErrCaseTerminal,
					"case %s is %s", c.Id, c.Status)
			}

			newDocumentId := uuid.NewString()
			if err := uc.caseDocumentRepository.CreateCaseDocument(
				ctx, tx, attrs, uc.credentials.ActorIdentity.UserId, newDocumentId); err != nil {
				return models.CaseDocument{}, err
			}

			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:       c.Id,
				ActorId:      uc.credentials.ActorId(),
				EventType:    models.DocumentAdded,
				NewValue:     &attrs.FileName,
				ResourceId:   &newDocumentId,
				ResourceType: pure_utils.Ptr(models.DocumentResourceType),
				OriginIp:     uc.credentials.OriginIp,
			}); err != nil {
				return models.CaseDocument{}, err
			}

			return uc.caseDocumentRepository.GetCaseDocumentById(ctx, tx, newDocumentId)
		})
}

// UpdateScanStatus is called by the (external) malware scanner through an
// admin or system identity once a verdict is in.
func (uc CaseDocumentUsecase) UpdateScanStatus(
	ctx context.Context,
	documentId string,
	status models.ScanStatus,
) (models.CaseDocument, error) {
	if err := uc.enforceSecurity.UpdateScanStatus(); err != nil {
		return models.CaseDocument{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.CaseDocument, error) {
			document, err := uc.caseDocumentRepository.GetCaseDocumentById(ctx, tx, documentId)
			if err != nil {
				return models.CaseDocument{}, err
			}
			if document.ScanStatus != models.ScanPending {
				return models.CaseDocument{}, errors.Wrapf(models.BadParameterError,
					"document %s already has a scan verdict", documentId)
			}

			updated, err := uc.caseDocumentRepository.UpdateDocumentScanStatus(ctx, tx, documentId, status)
			if err != nil {
				return models.CaseDocument{}, err
			}
			if !updated {
				return models.CaseDocument{}, errors.Wrapf(models.NotFoundError,
					"document %s", documentId)
			}

			if err := uc.caseEventRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        document.CaseId,
				ActorId:       uc.credentials.ActorId(),
				EventType:     models.DocumentScanned,
				PreviousValue: pure_utils.Ptr(string(document.ScanStatus)),
				NewValue:      pure_utils.Ptr(string(status)),
				ResourceId:    &documentId,
				ResourceType:  pure_utils.Ptr(models.DocumentResourceType),
				OriginIp:      uc.credentials.OriginIp,
			}); err != nil {
				return models.CaseDocument{}, err
			}

			return uc.caseDocumentRepository.GetCaseDocumentById(ctx, tx, documentId)
		})
}
