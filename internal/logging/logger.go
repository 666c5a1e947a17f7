// Package logging wraps log/slog with the fields the valvenet CLI reports.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger wraps slog.Logger with search-specific helpers.
type Logger struct {
	*slog.Logger
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", s, err)
	}
	return lvl, nil
}

// New creates a Logger writing to w. format is "text" or "json".
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch format {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// Noop returns a Logger that discards everything.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithAgents tags the logger with the number of cooperating agents.
func (l *Logger) WithAgents(n int) *Logger {
	return &Logger{Logger: l.Logger.With("agents", n)}
}

// LogLevel reports one expanded search level at debug.
func (l *Logger) LogLevel(ctx context.Context, minute, live int) {
	l.DebugContext(ctx, "level expanded",
		"minute", minute,
		"live", live,
	)
}

// LogSolve reports a finished (or failed) solve.
func (l *Logger) LogSolve(ctx context.Context, budget int, reward int64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"budget", budget,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "solve completed",
		"budget", budget,
		"reward", reward,
		"elapsed", elapsed,
	)
}
