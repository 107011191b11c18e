package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider supplies the context used by the non-Context
// package-level logging functions below. It defaults to [context.TODO] and
// may be reassigned at program startup if a request-scoped or otherwise
// ambient context should be threaded through instead.
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

// defaultLog is the package-level [Logger] used by the package-level
// logging functions. Configure it once at startup via [Config].
//
//nolint:gochecknoglobals
var defaultLog = Make(os.Stderr)

// Config replaces the package-level default logger, applying opts on top of
// [WithDefaults] for [os.Stderr].
func Config(opts ...Option) {
	defaultLog = Make(os.Stderr, opts...)
}

// TraceContext logs a message at Trace level on the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.TraceContext(ctx, msg, attrs...)
}

// Trace logs a message at Trace level on the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	defaultLog.Trace(msg, attrs...)
}

// DebugContext logs a message at Debug level on the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.DebugContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level on the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	defaultLog.Debug(msg, attrs...)
}

// InfoContext logs a message at Info level on the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.InfoContext(ctx, msg, attrs...)
}

// Info logs a message at Info level on the default logger.
func Info(msg string, attrs ...slog.Attr) {
	defaultLog.Info(msg, attrs...)
}

// WarnContext logs a message at Warn level on the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.WarnContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level on the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	defaultLog.Warn(msg, attrs...)
}

// ErrorContext logs a message at Error level on the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.ErrorContext(ctx, msg, attrs...)
}

// Error logs a message at Error level on the default logger.
func Error(msg string, attrs ...slog.Attr) {
	defaultLog.Error(msg, attrs...)
}

// With returns a copy of the default logger with the given attributes
// attached to every subsequent message.
func With(attrs ...slog.Attr) Logger {
	return defaultLog.With(attrs...)
}
