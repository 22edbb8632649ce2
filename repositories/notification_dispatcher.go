package repositories

import (
	"context"

	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/utils"
)

// SlogNotificationDispatcher is the default, fire-and-forget sink for
// notification intents. The real email/SMS transport lives outside the core;
// swapping it in is a matter of implementing the usecases' dispatcher
// interface.
type SlogNotificationDispatcher struct{}

func (SlogNotificationDispatcher) Dispatch(ctx context.Context, intent models.NotificationIntent) {
	utils.LoggerFromContext(ctx).InfoContext(ctx, "notification intent",
		"kind", intent.Kind,
		"case_id", intent.CaseId,
		"recipient_id", intent.RecipientId)
}
