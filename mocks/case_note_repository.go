package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type CaseNoteRepository struct {
	mock.Mock
}

func (r *CaseNoteRepository) GetCaseNoteById(ctx context.Context, exec repositories.Executor, noteId string) (models.CaseNote, error) {
	args := r.Called(ctx, exec, noteId)
	return args.Get(0).(models.CaseNote), args.Error(1)
}

func (r *CaseNoteRepository) CreateCaseNote(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseNoteAttributes, authorId models.UserId, newNoteId string,
) error {
	args := r.Called(ctx, exec, attrs, authorId, newNoteId)
	return args.Error(0)
}

func (r *CaseNoteRepository) CompleteFollowUp(ctx context.Context, exec repositories.Executor, noteId string) (bool, error) {
	args := r.Called(ctx, exec, noteId)
	return args.Bool(0), args.Error(1)
}

func (r *CaseNoteRepository) CountOpenFollowUps(ctx context.Context, exec repositories.Executor, caseId string) (int, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Int(0), args.Error(1)
}
