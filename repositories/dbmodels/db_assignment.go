package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/utils"
)

type DBAssignment struct {
	Id           string     `db:"id"`
	CaseId       string     `db:"case_id"`
	AdvocateId   string     `db:"advocate_id"`
	Reason       string     `db:"reason"`
	AssignedAt   time.Time  `db:"assigned_at"`
	SupersededAt *time.Time `db:"superseded_at"`
}

const TABLE_ASSIGNMENTS = "assignments"

var SelectAssignmentColumn = utils.ColumnList[DBAssignment]()

func AdaptAssignment(db DBAssignment) (models.Assignment, error) {
	return models.Assignment{
		Id:           db.Id,
		CaseId:       db.CaseId,
		AdvocateId:   models.UserId(db.AdvocateId),
		Reason:       models.AssignmentReason(db.Reason),
		AssignedAt:   db.AssignedAt,
		SupersededAt: db.SupersededAt,
	}, nil
}
