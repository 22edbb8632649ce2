package utils

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Format "json" is what we run in
// production; anything else falls back to the human-readable text handler.
func NewLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})
	}
	return slog.New(handler)
}
