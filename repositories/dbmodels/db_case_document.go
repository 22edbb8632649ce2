package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/utils"
)

type DBCaseDocument struct {
	Id           string    `db:"id"`
	CaseId       string    `db:"case_id"`
	UploadedBy   string    `db:"uploaded_by"`
	AccessLevel  string    `db:"access_level"`
	FileName     string    `db:"file_name"`
	MimeType     string    `db:"mime_type"`
	FileSizeByte int64     `db:"file_size_byte"`
	ScanStatus   string    `db:"scan_status"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_CASE_DOCUMENTS = "case_documents"

var SelectCaseDocumentColumn = utils.ColumnList[DBCaseDocument]()

func AdaptCaseDocument(db DBCaseDocument) (models.CaseDocument, error) {
	return models.CaseDocument{
		Id:           db.Id,
		CaseId:       db.CaseId,
		UploadedBy:   models.UserId(db.UploadedBy),
		AccessLevel:  models.AccessLevel(db.AccessLevel),
		FileName:     db.FileName,
		MimeType:     db.MimeType,
		FileSizeByte: db.FileSizeByte,
		ScanStatus:   models.ScanStatus(db.ScanStatus),
		CreatedAt:    db.CreatedAt,
	}, nil
}
