package logging

import (
	"context"

	"github.com/puffsec/lockdown/internal/ports"
)

// NopLogger discards all log messages.
type NopLogger struct {
	level ports.Level
}

// NewNopLogger creates a logger that does nothing.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug does nothing.
func (l *NopLogger) Debug(context.Context, string, ...ports.Field) {}

// Info does nothing.
func (l *NopLogger) Info(context.Context, string, ...ports.Field) {}

// Warn does nothing.
func (l *NopLogger) Warn(context.Context, string, ...ports.Field) {}

// Error does nothing.
func (l *NopLogger) Error(context.Context, string, ...ports.Field) {}

// With returns the same logger.
func (l *NopLogger) With(...ports.Field) ports.Logger {
	return l
}

// Level returns the minimum log level.
func (l *NopLogger) Level() ports.Level {
	return l.level
}

// SetLevel sets the minimum log level.
func (l *NopLogger) SetLevel(level ports.Level) {
	l.level = level
}

// Ensure NopLogger implements Logger.
var _ ports.Logger = (*NopLogger)(nil)
