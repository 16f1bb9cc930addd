package distances

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with distances-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(metric string) *Logger {
	return &Logger{Logger: l.Logger.With("metric", metric)}
}

// WithBackend adds a backend field to the logger.
func (l *Logger) WithBackend(backend string) *Logger {
	return &Logger{Logger: l.Logger.With("backend", backend)}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dimension", dim)}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// LogCheck logs one dimensionality of a conformance check.
func (l *Logger) LogCheck(ctx context.Context, name string, dim, pairs, failures int, elapsed time.Duration, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "conformance check failed",
			"check", name,
			"dimension", dim,
			"error", err,
		)
	case failures > 0:
		l.WarnContext(ctx, "conformance check found mismatches",
			"check", name,
			"dimension", dim,
			"pairs", pairs,
			"failures", failures,
			"elapsed", elapsed,
		)
	default:
		l.DebugContext(ctx, "conformance check passed",
			"check", name,
			"dimension", dim,
			"pairs", pairs,
			"elapsed", elapsed,
		)
	}
}

// LogFixture logs a fixture load, distinguishing store hits from generation.
func (l *Logger) LogFixture(ctx context.Context, name string, hit bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fixture unavailable",
			"fixture", name,
			"error", err,
		)
		return
	}
	if hit {
		l.DebugContext(ctx, "fixture loaded", "fixture", name)
	} else {
		l.InfoContext(ctx, "fixture generated", "fixture", name)
	}
}

// LogSummary logs the outcome of a whole run.
func (l *Logger) LogSummary(ctx context.Context, checks, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "conformance run completed with failures",
			"checks", checks,
			"failed", failed,
			"passed", checks-failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "conformance run completed",
			"checks", checks,
			"elapsed", elapsed,
		)
	}
}
