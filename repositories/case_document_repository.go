package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
)

func (repo *CasewardDbRepository) GetCaseDocumentById(ctx context.Context, exec Executor, documentId string) (models.CaseDocument, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseDocumentColumn...).
			From(dbmodels.TABLE_CASE_DOCUMENTS).
			Where(squirrel.Eq{"id": documentId}),
		dbmodels.AdaptCaseDocument,
	)
}

func (repo *CasewardDbRepository) CreateCaseDocument(
	ctx context.Context,
	exec Executor,
	attrs models.CreateCaseDocumentAttributes,
	uploadedBy models.UserId,
	newDocumentId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_DOCUMENTS).
			Columns(
				"id",
				"case_id",
				"uploaded_by",
				"access_level",
				"file_name",
				"mime_type",
				"file_size_byte",
				"scan_status",
			).
			Values(
				newDocumentId,
				attrs.CaseId,
				uploadedBy,
				attrs.AccessLevel,
				attrs.FileName,
				attrs.MimeType,
				attrs.FileSizeByte,
				models.ScanPending,
			),
	)
	return err
}

func (repo *CasewardDbRepository) UpdateDocumentScanStatus(
	ctx context.Context,
	exec Executor,
	documentId string,
	status models.ScanStatus,
) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASE_DOCUMENTS).
			Set("scan_status", status).
			Where(squirrel.Eq{"id": documentId}),
	)
	return affected > 0, err
}
