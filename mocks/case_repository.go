package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseAttributes, newCaseId string,
) error {
	args := r.Called(ctx, exec, attrs, newCaseId)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, expectedVersion int, status models.CaseStatus,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, expectedVersion, status)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) UpdateCasePriority(ctx context.Context, exec repositories.Executor,
	caseId string, expectedVersion int, priority models.CasePriority,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, expectedVersion, priority)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) UpdateCourtDate(ctx context.Context, exec repositories.Executor,
	caseId string, expectedVersion int, courtDate time.Time,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, expectedVersion, courtDate)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) AssignCase(ctx context.Context, exec repositories.Executor,
	caseId string, expectedVersion int, advocateId models.UserId,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, expectedVersion, advocateId)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) ListCasesWithApproachingCourtDate(ctx context.Context,
	exec repositories.Executor, horizon time.Time,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, horizon)
	return args.Get(0).([]models.Case), args.Error(1)
}
