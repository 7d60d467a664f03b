// Package log provides a structured logging interface for model fitting and
// cross-validation operations.
//
// It defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing domain-specific
// structured attributes (operations, data shapes, quality metrics). The
// interface integrates with Go's standard log/slog package and with
// stacktrace-carrying errors from cockroachdb/errors.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("crossval").With(
//	    log.ModelNameKey, "CrossValidation",
//	)
//	logger.Info("fit complete",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	    log.VariablesKey, 500,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. Fields are alternating key-value pairs. With returns a derived
// logger carrying pre-populated fields, enabling contextual loggers per
// model instance or operation.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs carry detailed diagnostic information and are usually
	// disabled outside development.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warnings indicate situations that do not prevent the operation from
	// completing, such as an ill-defined quality metric.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// When an error value is passed under the "error" key, the default
	// handler extracts and attaches its stack trace.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated in all
	// subsequent log messages.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive attribute values for records that
	// would be discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. It allows dependency
// injection and testing with different logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
