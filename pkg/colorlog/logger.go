// Package colorlog decorates log messages that contain legacy colour codes
// and forwards them to a ports.Sink.
//
// A Logger translates its prefix once, when it is set, and each message on
// every call:
//
//	log := colorlog.New("&9[Tag]&r ")
//	log.Info("&aready")
//
// Logger is safe for concurrent use; SetPrefix and SetSink only affect calls
// made after they return.
package colorlog

import (
	"sync"

	"github.com/user/colorlog/pkg/adapters/logger"
	"github.com/user/colorlog/pkg/colorcode"
	"github.com/user/colorlog/pkg/ports"
)

// Logger prefixes and translates messages before handing them to a sink.
type Logger struct {
	mu     sync.RWMutex
	prefix string
	sink   ports.Sink
}

// New creates a Logger writing to the default sink.
func New(prefix string) *Logger {
	return NewWithSink(prefix, nil)
}

// NewWithSink creates a Logger writing to sink.
// A nil sink selects DefaultSink().
func NewWithSink(prefix string, sink ports.Sink) *Logger {
	if sink == nil {
		sink = DefaultSink()
	}
	return &Logger{
		prefix: colorcode.Translate(prefix),
		sink:   sink,
	}
}

// DefaultSink returns the sink used when none is given: a console sink on
// stdout/stderr at info level.
func DefaultSink() ports.Sink {
	return logger.NewConsole(ports.LevelInfo)
}

// SetPrefix translates and stores a new prefix.
func (l *Logger) SetPrefix(prefix string) {
	translated := colorcode.Translate(prefix)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = translated
}

// SetSink replaces the sink. A nil sink selects DefaultSink().
func (l *Logger) SetSink(sink ports.Sink) {
	if sink == nil {
		sink = DefaultSink()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sink = sink
}

// Prefix returns the translated prefix.
func (l *Logger) Prefix() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix
}

// Sink returns the current sink.
func (l *Logger) Sink() ports.Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sink
}

// Log sends prefix+Translate(msg) to the sink.
func (l *Logger) Log(level ports.LogLevel, msg string) {
	prefix, sink := l.snapshot()
	sink.Log(level, prefix+colorcode.Translate(msg))
}

// LogError sends prefix+Translate(msg) and err to the sink.
func (l *Logger) LogError(level ports.LogLevel, msg string, err error) {
	prefix, sink := l.snapshot()
	sink.LogError(level, prefix+colorcode.Translate(msg), err)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) {
	l.Log(ports.LevelDebug, msg)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	l.Log(ports.LevelInfo, msg)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string) {
	l.Log(ports.LevelWarn, msg)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string) {
	l.Log(ports.LevelError, msg)
}

// snapshot reads the state without holding the lock during the sink call.
func (l *Logger) snapshot() (string, ports.Sink) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefix, l.sink
}
