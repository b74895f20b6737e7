package logger

import "github.com/user/pgmtool/pkg/ports"

// NoopLogger discards all log messages. Used for quiet mode and tests.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

// Debug discards the message.
func (l *NoopLogger) Debug(msg string, args ...interface{}) {}

// Info discards the message.
func (l *NoopLogger) Info(msg string, args ...interface{}) {}

// Warn discards the message.
func (l *NoopLogger) Warn(msg string, args ...interface{}) {}

// Error discards the message.
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns the same no-op logger.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}
