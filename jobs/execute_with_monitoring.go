package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/caseward/caseward-backend/models"
	"github.com/caseward/caseward-backend/usecases"
	"github.com/caseward/caseward-backend/utils"
	"github.com/cockroachdb/errors"
)

const jobRetryAttempts = 3

// executeWithMonitoring wraps a job run with logging and retries transient
// database unavailability. Business errors fail the job immediately.
func executeWithMonitoring(
	ctx context.Context,
	uc usecases.Usecases,
	jobName string,
	fn func(context.Context, usecases.Usecases) error,
) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, fmt.Sprintf("Start job %s", jobName))

	err := retry.Do(
		func() error {
			return fn(ctx, uc)
		},
		retry.Context(ctx),
		retry.Attempts(jobRetryAttempts),
		retry.Delay(time.Second),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, models.UnavailableError)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, fmt.Sprintf("Retrying job %s", jobName),
				"attempt", n+1,
				"error", err.Error())
		}),
	)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("error executing job %s", jobName))
	}

	logger.InfoContext(ctx, fmt.Sprintf("Done executing job %s", jobName))
	return nil
}
