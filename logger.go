package numlit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with numlit-specific context.
// This provides structured logging with consistent field names.
//
// The conversion functions themselves never log; Logger is used by the
// batch and scan layers and by the command line tool.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSource adds the name of the blob or input being processed.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// WithCount adds the number of literals to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogFailure logs a single failed conversion at debug level.
func (l *Logger) LogFailure(ctx context.Context, index int, err *NumError) {
	l.DebugContext(ctx, "conversion failed",
		"index", index,
		"func", err.Func,
		"num", err.Num,
		"cause", err.Kind().String(),
		"error", err.Cause,
	)
}

// LogBatch logs the outcome of a batch conversion.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
		)
	}
}

// LogScan logs reading one blob of literals. Attach the blob with
// WithSource and, on success, the literal count with WithCount.
func (l *Logger) LogScan(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed", "error", err)
		return
	}
	l.DebugContext(ctx, "scan loaded")
}
