package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/utils"
)

type DBCase struct {
	Id         string     `db:"id"`
	ClientId   string     `db:"client_id"`
	AssignedTo *string    `db:"assigned_to"`
	Status     string     `db:"status"`
	Priority   string     `db:"priority"`
	CourtDate  *time.Time `db:"court_date"`
	Tags       []string   `db:"tags"`
	Version    int        `db:"version"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:         db.Id,
		ClientId:   models.UserId(db.ClientId),
		AssignedTo: (*models.UserId)(db.AssignedTo),
		Status:     models.CaseStatus(db.Status),
		Priority:   models.CasePriority(db.Priority),
		CourtDate:  db.CourtDate,
		Tags:       db.Tags,
		Version:    db.Version,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}, nil
}
