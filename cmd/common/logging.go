package common

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogging configures slog to write text records to stderr.
// Debug records are only shown when verbose is set.
func SetupLogging(verbose bool) {
	slog.SetDefault(NewLogger(os.Stderr, verbose))
}

func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
