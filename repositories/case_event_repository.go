package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// CreateCaseEvent appends one entry to the case ledger. The per-case sequence
// number is computed inside the caller's transaction; the unique index on
// (case_id, seq) turns a racing append into a serialization failure instead
// of a silent reordering. Events are only ever inserted, never updated.
func (repo *CasewardDbRepository) CreateCaseEvent(
	ctx context.Context,
	tx Transaction,
	attrs models.CreateCaseEventAttributes,
) error {
	if attrs.CaseId == "" {
		return errors.Wrap(models.BadParameterError, "case event requires a case id")
	}

	_, err := ExecBuilder(
		ctx,
		tx,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_EVENTS).
			Columns(
				"id",
				"case_id",
				"seq",
				"actor_id",
				"event_type",
				"previous_value",
				"new_value",
				"reason",
				"resource_id",
				"resource_type",
				"origin_ip",
			).
			Select(
				squirrel.Select().
					Column("?", uuid.NewString()).
					Column("?", attrs.CaseId).
					Column("coalesce(max(seq), 0) + 1").
					Column("?", attrs.ActorId).
					Column("?", attrs.EventType).
					Column("?", attrs.PreviousValue).
					Column("?", attrs.NewValue).
					Column("?", attrs.Reason).
					Column("?", attrs.ResourceId).
					Column("?", attrs.ResourceType).
					Column("nullif(?, '')::inet", attrs.OriginIp).
					From(dbmodels.TABLE_CASE_EVENTS).
					Where(squirrel.Eq{"case_id": attrs.CaseId}),
			),
	)
	return err
}

// ListCaseEvents returns the forward-ordered slice of the ledger strictly
// after the cursor sequence number.
func (repo *CasewardDbRepository) ListCaseEvents(
	ctx context.Context,
	exec Executor,
	caseId string,
	cursor models.HistoryCursor,
) ([]models.CaseEvent, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumn...).
			From(dbmodels.TABLE_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			Where(squirrel.Gt{"seq": cursor.AfterSeq}).
			OrderBy("seq").
			Limit(uint64(cursor.LimitOrDefault())),
		dbmodels.AdaptCaseEvent,
	)
}
