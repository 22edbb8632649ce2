package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/utils"
)

type DBCaseNote struct {
	Id           string     `db:"id"`
	CaseId       string     `db:"case_id"`
	AuthorId     string     `db:"author_id"`
	NoteType     string     `db:"note_type"`
	Body         string     `db:"body"`
	SharedWith   []string   `db:"shared_with"`
	FollowUpDue  *time.Time `db:"follow_up_due"`
	FollowUpDone bool       `db:"follow_up_done"`
	CreatedAt    time.Time  `db:"created_at"`
}

const TABLE_CASE_NOTES = "case_notes"

var SelectCaseNoteColumn = utils.ColumnList[DBCaseNote]()

func AdaptCaseNote(db DBCaseNote) (models.CaseNote, error) {
	return models.CaseNote{
		Id:       db.Id,
		CaseId:   db.CaseId,
		AuthorId: models.UserId(db.AuthorId),
		NoteType: models.CaseNoteType(db.NoteType),
		Body:     db.Body,
		SharedWith: pure_utils.Map(db.SharedWith, func(id string) models.UserId {
			return models.UserId(id)
		}),
		FollowUpDue:  db.FollowUpDue,
		FollowUpDone: db.FollowUpDone,
		CreatedAt:    db.CreatedAt,
	}, nil
}
