package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/repositories/dbmodels"
)

func (repo *CasewardDbRepository) GetCaseNoteById(ctx context.Context, exec Executor, noteId string) (models.CaseNote, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseNoteColumn...).
			From(dbmodels.TABLE_CASE_NOTES).
			Where(squirrel.Eq{"id": noteId}),
		dbmodels.AdaptCaseNote,
	)
}

func (repo *CasewardDbRepository) CreateCaseNote(
	ctx context.Context,
	exec Executor,
	attrs models.CreateCaseNoteAttributes,
	authorId models.UserId,
	newNoteId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_NOTES).
			Columns(
				"id",
				"case_id",
				"author_id",
				"note_type",
				"body",
				"shared_with",
				"follow_up_due",
			).
			Values(
				newNoteId,
				attrs.CaseId,
				authorId,
				attrs.NoteType,
				attrs.Body,
				attrs.SharedWith,
				attrs.FollowUpDue,
			),
	)
	return err
}

// CountOpenFollowUps guards the Resolved -> Closed transition.
func (repo *CasewardDbRepository) CountOpenFollowUps(ctx context.Context, exec Executor, caseId string) (int, error) {
	query, args, err := NewQueryBuilder().
		Select("count(*)").
		From(dbmodels.TABLE_CASE_NOTES).
		Where(squirrel.Eq{
			"case_id":        caseId,
			"note_type":      models.NoteFollowUp,
			"follow_up_done": false,
		}).
		Where(squirrel.NotEq{"follow_up_due": nil}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := exec.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *CasewardDbRepository) CompleteFollowUp(ctx context.Context, exec Executor, noteId string) (bool, error) {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASE_NOTES).
			Set("follow_up_done", true).
			Where(squirrel.Eq{
				"id":             noteId,
				"note_type":      models.NoteFollowUp,
				"follow_up_done": false,
			}),
	)
	return affected > 0, err
}
