package jobs

import (
	"context"

	"github.com/caseward/caseward-backend/usecases"
	"github.com/caseward/caseward-backend/utils"
)

// EscalateCourtDateCases bumps still-open cases with an imminent court date to
// urgent priority. Meant to run on a schedule, typically daily.
func EscalateCourtDateCases(ctx context.Context, uc usecases.Usecases) error {
	return executeWithMonitoring(ctx, uc, "escalate_court_dates",
		func(ctx context.Context, uc usecases.Usecases) error {
			usecasesWithCreds := GenerateUsecaseWithCredForSystem(uc)
			lifecycle := usecasesWithCreds.NewCaseLifecycleUsecase()

			escalated, err := lifecycle.EscalateApproachingCourtDates(ctx)
			if err != nil {
				return err
			}

			utils.LoggerFromContext(ctx).InfoContext(ctx, "court date escalation pass done",
				"escalated", escalated)
			return nil
		})
}
