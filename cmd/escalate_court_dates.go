package cmd

import (
	"context"

	"github.com/caseward/caseward-backend/infra"
	"github.com/caseward/caseward-backend/jobs"
	"github.com/caseward/caseward-backend/usecases"
	"github.com/caseward/caseward-backend/utils"
)

// RunEscalateCourtDates runs one escalation pass and exits. Schedule it from
// cron or the platform's job runner.
func RunEscalateCourtDates() error {
	config := loadAppConfig()

	logger := utils.NewLogger(config.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, config.pgConfig.GetConnectionString())
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := usecases.NewUsecases(pool,
		usecases.WithReassignmentCoolDown(config.reassignmentCoolDown),
		usecases.WithEscalationWindow(config.escalationWindow),
	)

	return jobs.EscalateCourtDateCases(ctx, uc)
}
