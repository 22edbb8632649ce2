package utils

import (
	"context"
	"log/slog"
)

type ContextKey int

const ContextKeyLogger ContextKey = iota

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		// better a default logger than a nil pointer panic deep in a usecase
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}
