package cmd

import (
	"context"
	"fmt"

	"github.com/caseward/caseward-backend/repositories"
	"github.com/caseward/caseward-backend/utils"
)

func RunMigrations() error {
	config := loadAppConfig()

	logger := utils.NewLogger(config.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	migrater := repositories.NewMigrater(config.pgConfig, logger)
	if err := migrater.Run(ctx); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
