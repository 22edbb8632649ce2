package usecases

import (
	"context"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/usecases/executor_factory"
	"github.com/caseward/caseward-backend/usecases/security"
)

type CaseAuditUsecase struct {
	enforceSecurity     security.EnforceSecurityCase
	executorFactory     executor_factory.ExecutorFactory
	caseRepository      accessCaseRepository
	caseEventRepository caseEventRepository
}

// GetCaseHistory returns the case's audit trail in sequence order. Paginate by
// passing the last seen Seq as cursor.AfterSeq; replaying the pages always
// yields the same ordering because Seq is assigned at commit time.
func (uc CaseAuditUsecase) GetCaseHistory(
	ctx context.Context,
	caseId string,
	cursor models.HistoryCursor,
) ([]models.CaseEvent, error) {
	exec := uc.executorFactory.NewExecutor()
	c, err := uc.caseRepository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return nil, err
	}
	if err := uc.enforceSecurity.ReadCaseEvents(c); err != nil {
		return nil, err
	}

	return uc.caseEventRepository.ListCaseEvents(ctx, exec, caseId, cursor)
}
