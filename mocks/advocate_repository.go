package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type AdvocateRepository struct {
	mock.Mock
}

func (r *AdvocateRepository) GetAdvocateById(ctx context.Context, exec repositories.Executor, advocateId models.UserId) (models.Advocate, error) {
	args := r.Called(ctx, exec, advocateId)
	return args.Get(0).(models.Advocate), args.Error(1)
}

func (r *AdvocateRepository) ListEligibleAdvocates(ctx context.Context, exec repositories.Executor,
	caseTags []string,
) ([]models.AdvocateWithCaseLoad, error) {
	args := r.Called(ctx, exec, caseTags)
	return args.Get(0).([]models.AdvocateWithCaseLoad), args.Error(1)
}

func (r *AdvocateRepository) TouchLastAssignedAt(ctx context.Context, tx repositories.Transaction, advocateId models.UserId) error {
	args := r.Called(ctx, tx, advocateId)
	return args.Error(0)
}
