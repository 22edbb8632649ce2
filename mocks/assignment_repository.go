package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type AssignmentRepository struct {
	mock.Mock
}

func (r *AssignmentRepository) GetActiveAssignment(ctx context.Context, exec repositories.Executor, caseId string) (*models.Assignment, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(*models.Assignment), args.Error(1)
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, tx repositories.Transaction,
	attrs models.CreateAssignmentAttributes, newAssignmentId string,
) error {
	args := r.Called(ctx, tx, attrs, newAssignmentId)
	return args.Error(0)
}

func (r *AssignmentRepository) SupersedeActiveAssignment(ctx context.Context, tx repositories.Transaction, caseId string) error {
	args := r.Called(ctx, tx, caseId)
	return args.Error(0)
}
