package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories"
)

type CaseDocumentRepository struct {
	mock.Mock
}

func (r *CaseDocumentRepository) GetCaseDocumentById(ctx context.Context, exec repositories.Executor, documentId string) (models.CaseDocument, error) {
	args := r.Called(ctx, exec, documentId)
	return args.Get(0).(models.CaseDocument), args.Error(1)
}

func (r *CaseDocumentRepository) CreateCaseDocument(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseDocumentAttributes, uploadedBy models.UserId, newDocumentId string,
) error {
	args := r.Called(ctx, exec, attrs, uploadedBy, newDocumentId)
	return args.Error(0)
}

func (r *CaseDocumentRepository) UpdateDocumentScanStatus(ctx context.Context, exec repositories.Executor,
	documentId string, status models.ScanStatus,
) (bool, error) {
	args := r.Called(ctx, exec, documentId, status)
	return args.Bool(0), args.Error(1)
}
