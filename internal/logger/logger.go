// Package logger configures the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// New builds a stderr logger tagged with a unique invocation ID. Command output
// on stdout is the user interface, so anything below Warn stays hidden unless
// SHORTENIT_DEBUG is set.
func New() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("SHORTENIT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("invocation_id", uuid.New().String()))
}
