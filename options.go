package cliquego

import (
	"log/slog"
	"runtime"
)

type options struct {
	logger  *Logger
	metrics MetricsCollector
	workers int
}

// Option configures CliqueIndex constructor behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging (the default).
//
// Example with JSON logging:
//
//	logger := cliquego.NewJSONLogger(slog.LevelInfo)
//	ci, _ := cliquego.New(cliquego.ChiSquared2DOF95, cliquego.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection (the default).
//
// Example with BasicMetricsCollector:
//
//	metrics := &cliquego.BasicMetricsCollector{}
//	ci, _ := cliquego.New(cliquego.ChiSquared2DOF95, cliquego.WithMetricsCollector(metrics))
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithWorkers bounds the worker pool used for the pairwise compatibility
// pass in [FromObservations]. Values below 1 fall back to GOMAXPROCS.
//
// The pool only lives for the duration of the call; the public API stays
// synchronous and the resulting graph does not depend on scheduling.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}
