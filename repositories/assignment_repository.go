package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
)

func (repo *CasewardDbRepository) GetActiveAssignment(ctx context.Context, exec Executor, caseId string) (*models.Assignment, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAssignmentColumn...).
			From(dbmodels.TABLE_ASSIGNMENTS).
			Where(squirrel.Eq{"case_id": caseId, "superseded_at": nil}),
		dbmodels.AdaptAssignment,
	)
}

func (repo *CasewardDbRepository) CreateAssignment(
	ctx context.Context,
	tx Transaction,
	attrs models.CreateAssignmentAttributes,
	newAssignmentId string,
) error {
	_, err := ExecBuilder(
		ctx,
		tx,
		NewQueryBuilder().Insert(dbmodels.TABLE_ASSIGNMENTS).
			Columns(
				"id",
				"case_id",
				"advocate_id",
				"reason",
			).
			Values(
				newAssignmentId,
				attrs.CaseId,
				attrs.AdvocateId,
				attrs.Reason,
			),
	)
	return err
}

// SupersedeActiveAssignment closes the current assignment without deleting it:
// history stays reconstructible from the table alone.
func (repo *CasewardDbRepository) SupersedeActiveAssignment(ctx context.Context, tx Transaction, caseId string) error {
	_, err := ExecBuilder(
		ctx,
		tx,
		NewQueryBuilder().Update(dbmodels.TABLE_ASSIGNMENTS).
			Set("superseded_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"case_id": caseId, "superseded_at": nil}),
	)
	return err
}
