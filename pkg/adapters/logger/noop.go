package logger

import "github.com/user/colorlog/pkg/ports"

// NoopSink is a sink that discards all messages.
// Used for quiet mode when no output is desired.
type NoopSink struct{}

// NewNoop creates a new no-op sink.
func NewNoop() *NoopSink {
	return &NoopSink{}
}

// Log does nothing.
func (s *NoopSink) Log(level ports.LogLevel, msg string) {}

// LogError does nothing.
func (s *NoopSink) LogError(level ports.LogLevel, msg string, err error) {}

var _ ports.Sink = (*NoopSink)(nil)
