package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. JSON output so log lines are ingestible as-is.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
