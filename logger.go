package cliquego

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with cliquego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithThreshold adds the chi-squared threshold field to the logger.
func (l *Logger) WithThreshold(threshold float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("threshold", threshold),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(id uuid.UUID, edges int, err error) {
	if err != nil {
		l.Error("insert failed",
			"id", id,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"id", id,
			"edges", edges,
		)
	}
}

// LogBatchInsert logs a batch construction.
func (l *Logger) LogBatchInsert(count, edges int, err error) {
	if err != nil {
		l.Error("batch construction failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Info("batch construction completed",
			"count", count,
			"edges", edges,
		)
	}
}

// LogCliques logs a clique enumeration.
func (l *Logger) LogCliques(count int, duration time.Duration) {
	l.Debug("clique enumeration completed",
		"cliques", count,
		"duration", duration,
	)
}
