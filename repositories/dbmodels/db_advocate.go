package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/utils"
)

// Advocates live in the users table owned by the (excluded) auth subsystem;
// this projection only reads the columns the assignment engine cares about.
type DBAdvocate struct {
	Id             string     `db:"id"`
	Role           string     `db:"role"`
	Verified       bool       `db:"verified"`
	Active         bool       `db:"active"`
	Tags           []string   `db:"tags"`
	LastAssignedAt *time.Time `db:"last_assigned_at"`
}

const TABLE_USERS = "users"

var SelectAdvocateColumn = utils.ColumnList[DBAdvocate]()

func AdaptAdvocate(db DBAdvocate) (models.Advocate, error) {
	return models.Advocate{
		UserId:         models.UserId(db.Id),
		Role:           models.RoleFromString(db.Role),
		Verified:       db.Verified,
		Active:         db.Active,
		Tags:           db.Tags,
		LastAssignedAt: db.LastAssignedAt,
	}, nil
}

type DBAdvocateWithCaseLoad struct {
	DBAdvocate
	ActiveCaseCount int `db:"active_case_count"`
}

func AdaptAdvocateWithCaseLoad(db DBAdvocateWithCaseLoad) (models.AdvocateWithCaseLoad, error) {
	advocate, err := AdaptAdvocate(db.DBAdvocate)
	if err != nil {
		return models.AdvocateWithCaseLoad{}, err
	}
	return models.AdvocateWithCaseLoad{
		Advocate:        advocate,
		ActiveCaseCount: db.ActiveCaseCount,
	}, nil
}
