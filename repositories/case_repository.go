package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
)

func (repo *CasewardDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseColumn...).
			From(dbmodels.TABLE_CASES).
			Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
}

func (repo *CasewardDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attrs models.CreateCaseAttributes,
	newCaseId string,
) error {
	priority := attrs.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"client_id",
				"status",
				"priority",
				"court_date",
				"tags",
			).
			Values(
				newCaseId,
				attrs.ClientId,
				models.CaseDraft,
				priority,
				attrs.CourtDate,
				attrs.Tags,
			),
	)
	return err
}

// UpdateCaseStatus applies the transition guarded by the version the case was
// read at. It returns false when another writer got there first.
func (repo *CasewardDbRepository) UpdateCaseStatus(
	ctx context.Context,
	exec Executor,
	caseId string,
	expectedVersion int,
	status models.CaseStatus,
) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", status).
			Set("version", expectedVersion+1).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": caseId, "version": expectedVersion}),
	)
	return affected > 0, err
}

func (repo *CasewardDbRepository) AssignCase(
	ctx context.Context,
	exec Executor,
	caseId string,
	expectedVersion int,
	advocateId models.UserId,
) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("assigned_to", advocateId).
			Set("version", expectedVersion+1).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": caseId, "version": expectedVersion}),
	)
	return affected > 0, err
}

func (repo *CasewardDbRepository) UpdateCasePriority(
	ctx context.Context,
	exec Executor,
	caseId string,
	expectedVersion int,
	priority models.CasePriority,
) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("priority", priority).
			Set("version", expectedVersion+1).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": caseId, "version": expectedVersion}),
	)
	return affected > 0, err
}

func (repo *CasewardDbRepository) UpdateCourtDate(
	ctx context.Context,
	exec Executor,
	caseId string,
	expectedVersion int,
	courtDate time.Time,
) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("court_date", courtDate).
			Set("version", expectedVersion+1).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": caseId, "version": expectedVersion}),
	)
	return affected > 0, err
}

// ListCasesWithApproachingCourtDate feeds the escalation job: non-urgent Draft
// or Active cases whose court date falls before the horizon.
func (repo *CasewardDbRepository) ListCasesWithApproachingCourtDate(
	ctx context.Context,
	exec Executor,
	horizon time.Time,
) ([]models.Case, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseColumn...).
			From(dbmodels.TABLE_CASES).
			Where(squirrel.Lt{"court_date": horizon}).
			Where(squirrel.Eq{"status": []models.CaseStatus{models.CaseDraft, models.CaseActive}}).
			Where(squirrel.NotEq{"priority": models.PriorityUrgent}).
			OrderBy("court_date"),
		dbmodels.AdaptCase,
	)
}
