package dbmodels

import (
	"time"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/pure_utils"
	"github.com/caseward/caseward-backend/utils"
)

type DBCaseEvent struct {
	Id            string    `db:"id"`
	CaseId        string    `db:"case_id"`
	Seq           int64     `db:"seq"`
	ActorId       *string   `db:"actor_id"`
	EventType     string    `db:"event_type"`
	PreviousValue *string   `db:"previous_value"`
	NewValue      *string   `db:"new_value"`
	Reason        *string   `db:"reason"`
	ResourceId    *string   `db:"resource_id"`
	ResourceType  *string   `db:"resource_type"`
	OriginIp      *string   `db:"origin_ip"`
	CreatedAt     time.Time `db:"created_at"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	return models.CaseEvent{
		Id:            db.Id,
		CaseId:        db.CaseId,
		Seq:           db.Seq,
		ActorId:       (*models.UserId)(db.ActorId),
		EventType:     models.CaseEventTypeFrom(db.EventType),
		PreviousValue: pure_utils.PtrValueOrDefault(db.PreviousValue, ""),
		NewValue:      pure_utils.PtrValueOrDefault(db.NewValue, ""),
		Reason:        pure_utils.PtrValueOrDefault(db.Reason, ""),
		ResourceId:    pure_utils.PtrValueOrDefault(db.ResourceId, ""),
		ResourceType:  models.CaseEventResourceTypeFrom(pure_utils.PtrValueOrDefault(db.ResourceType, "")),
		OriginIp:      pure_utils.PtrValueOrDefault(db.OriginIp, ""),
		CreatedAt:     db.CreatedAt,
	}, nil
}
