package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// DefaultContextProvider supplies the context.Context used by the
// context-unaware logging methods and package-level functions. It
// defaults to context.TODO and may be reassigned by an application that
// wants ambient logging calls to carry a request-scoped context.
var DefaultContextProvider = func() context.Context { return context.TODO() } //nolint:gochecknoglobals

var (
	defaultLogMu sync.RWMutex        //nolint:gochecknoglobals
	defaultLog   = Make(os.Stderr) //nolint:gochecknoglobals
)

// Config reconfigures the package-level default Logger used by the
// Trace/Debug/Info/Warn/Error package functions, applying opts on top of
// its current configuration.
func Config(opts ...Option) {
	defaultLogMu.Lock()
	defer defaultLogMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// Default returns the package-level default Logger.
func Default() Logger {
	defaultLogMu.RLock()
	defer defaultLogMu.RUnlock()

	return defaultLog
}

// TraceContext logs a message at Trace level on the default Logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Trace logs a message at Trace level on the default Logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().Trace(msg, attrs...)
}

// DebugContext logs a message at Debug level on the default Logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level on the default Logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().Debug(msg, attrs...)
}

// InfoContext logs a message at Info level on the default Logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Info logs a message at Info level on the default Logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().Info(msg, attrs...)
}

// WarnContext logs a message at Warn level on the default Logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level on the default Logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().Warn(msg, attrs...)
}

// ErrorContext logs a message at Error level on the default Logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}

// Error logs a message at Error level on the default Logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().Error(msg, attrs...)
}
