package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type CaseEventRepository struct {
	mock.Mock
}

func (r *CaseEventRepository) CreateCaseEvent(ctx context.Context, tx repositories.Transaction,
	attrs models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, tx, attrs)
	return args.Error(0)
}

func (r *CaseEventRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor,
	caseId string, cursor models.HistoryCursor,
) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId, cursor)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}
