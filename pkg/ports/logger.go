// Package ports defines the Sink interface that decorated log lines are
// delivered to.
package ports

import "strings"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for detailed debugging information (FINE).
	LevelDebug LogLevel = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for recoverable problems (WARNING).
	LevelWarn
	// LevelError is for unrecoverable problems (SEVERE).
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// levelNames maps config and flag spellings to levels, including the
// FINE/WARNING/SEVERE names used by JVM hosts.
var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"fine":    LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
	"severe":  LevelError,
	"quiet":   LevelQuiet,
}

// ParseLogLevel parses a string into a LogLevel.
// Unknown names fall back to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	if level, ok := LookupLogLevel(s); ok {
		return level
	}
	return LevelInfo
}

// LookupLogLevel parses a string into a LogLevel and reports whether the
// name was recognised.
func LookupLogLevel(s string) (LogLevel, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return level, ok
}

// Sink receives finished, already-decorated log lines.
// Implementations own all I/O and its failures.
type Sink interface {
	// Log writes msg at the given level.
	Log(level LogLevel, msg string)

	// LogError writes msg at the given level together with err.
	LogError(level LogLevel, msg string, err error)
}
