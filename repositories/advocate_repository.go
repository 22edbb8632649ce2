package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
	"github.com/jackc/pgx/v5"
)

func (repo *CasewardDbRepository) GetAdvocateById(ctx context.Context, exec Executor, advocateId models.UserId) (models.Advocate, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAdvocateColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": advocateId, "role": models.ADVOCATE.String()}),
		dbmodels.AdaptAdvocate,
	)
}

// ListEligibleAdvocates returns verified, active advocates whose tags overlap
// the case tags (any advocate when the case has none), with their current
// count of active cases. The order by is a pre-sort only: the authoritative
// eligibility filter and ranking are models.SelectAdvocateForAssignment.
func (repo *CasewardDbRepository) ListEligibleAdvocates(
	ctx context.Context,
	exec Executor,
	caseTags []string,
) ([]models.AdvocateWithCaseLoad, error) {
	sql := `
		select
		  u.id, u.role, u.verified, u.active, u.tags, u.last_assigned_at,
		  count(c.id) filter (where c.status = 'active') as active_case_count
		from users u
		left join cases c on c.assigned_to = u.id
		where
		  u.role = 'ADVOCATE' and
		  u.verified and
		  u.active and
		  (cardinality($1::text[]) = 0 or u.tags && $1::text[])
		group by u.id
		order by active_case_count, u.last_assigned_at asc nulls first, u.id
	`

	if caseTags == nil {
		caseTags = []string{}
	}

	rows, err := exec.Query(ctx, sql, caseTags)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dbAdvocates, err := pgx.CollectRows(rows, pgx.RowToStructByName[dbmodels.DBAdvocateWithCaseLoad])
	if err != nil {
		return nil, err
	}

	return pure_utils.MapErr(dbAdvocates, dbmodels.AdaptAdvocateWithCaseLoad)
}

// TouchLastAssignedAt keeps the round-robin tie-break moving.
func (repo *CasewardDbRepository) TouchLastAssignedAt(ctx context.Context, tx Transaction, advocateId models.UserId) error {
	_, err := ExecBuilder(
		ctx,
		tx,
		NewQueryBuilder().Update(dbmodels.TABLE_USERS).
			Set("last_assigned_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": advocateId}),
	)
	return err
}
