package sysutil

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is the slog level used for trace messages. It sits below
// slog.LevelDebug so trace output stays hidden unless explicitly enabled.
const LevelTrace = slog.LevelDebug - 4

// Logger accepts leveled messages from the adapter. Messages are
// fire-and-forget; implementations must not block.
//
// Trace is for expected, high-volume conditions (environment lookups),
// Warn for recoverable degradations (save-directory fallback), Error for
// failed operations (shell-open nonzero exit).
type Logger interface {
	Trace(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
// This enables integration with Go's structured logging facilities.
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sysutil.LevelTrace})
//	opts := sysutil.DefaultOptions()
//	opts.Logger = sysutil.NewSlogAdapter(slog.New(handler))
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger adapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Trace logs a trace-level message with optional key-value pairs.
func (s *SlogAdapter) Trace(msg string, args ...any) {
	s.logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

// Error logs an error-level message with optional key-value pairs.
func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// DefaultLogger returns a Logger configured for typical use cases.
// It logs to stderr with text format at Warn level, so only fallbacks
// and failures are visible.
func DefaultLogger() Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})
	return &SlogAdapter{logger: slog.New(handler)}
}

// TraceLogger returns a Logger that emits everything including trace
// messages. Useful when debugging environment or save-directory issues.
func TraceLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelTrace,
	})
	return &SlogAdapter{logger: slog.New(handler)}
}

// NopLogger returns a Logger that discards all log messages.
// Use this when logging should be completely disabled.
func NopLogger() Logger {
	return &nopLogger{}
}

// nopLogger implements Logger but discards all messages.
type nopLogger struct{}

func (n *nopLogger) Trace(msg string, args ...any) {}
func (n *nopLogger) Warn(msg string, args ...any)  {}
func (n *nopLogger) Error(msg string, args ...any) {}
