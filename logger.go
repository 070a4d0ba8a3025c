package cliffgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cliffgo-specific context.
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

// WithSignature adds a signature field to the logger.
func (l *Logger) WithSignature(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("signature", name),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogBasisVector logs a basis vector lookup.
func (l *Logger) LogBasisVector(index int, err error) {
	if err != nil {
		l.Warn("basis vector rejected",
			"index", index,
			"error", err,
		)
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(blades, size int, err error) {
	if err != nil {
		l.Error("encode failed",
			"blades", blades,
			"error", err,
		)
	} else {
		l.Debug("encode completed",
			"blades", blades,
			"bytes", size,
		)
	}
}

// LogDecode logs a decode operation.
func (l *Logger) LogDecode(size, blades int, err error) {
	if err != nil {
		l.Error("decode failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.Debug("decode completed",
			"bytes", size,
			"blades", blades,
		)
	}
}
