package drawgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/drawkit/drawgo/shape"
)

// Logger wraps slog.Logger with drawgo-specific context.
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

// WithKind adds a shape kind field to the logger.
func (l *Logger) WithKind(k shape.Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithHandle adds a handle field to the logger.
func (l *Logger) WithHandle(h shape.Handle) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", uint32(h)),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs a shape insertion.
func (l *Logger) LogInsert(ctx context.Context, k shape.Kind, h shape.Handle, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"kind", k.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"kind", k.String(),
			"handle", uint32(h),
		)
	}
}

// LogBatch logs a batch transform.
func (l *Logger) LogBatch(ctx context.Context, op string, processed, skipped int) {
	if skipped > 0 {
		l.WarnContext(ctx, "batch completed with skips",
			"op", op,
			"processed", processed,
			"skipped", skipped,
		)
	} else {
		l.DebugContext(ctx, "batch completed",
			"op", op,
			"processed", processed,
		)
	}
}

// LogQuery logs a spatial query.
func (l *Logger) LogQuery(ctx context.Context, op string, results int) {
	l.DebugContext(ctx, "query completed",
		"op", op,
		"results", results,
	)
}

// LogSnapshot logs a save operation.
func (l *Logger) LogSnapshot(ctx context.Context, filename string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"filename", filename,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"filename", filename,
		)
	}
}
