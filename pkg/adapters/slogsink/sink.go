// Package slogsink forwards decorated lines to a log/slog logger.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/user/colorlog/pkg/ports"
)

// ErrorKey is the attribute that LogError records its error under.
const ErrorKey = "error"

// Sink is a ports.Sink backed by a *slog.Logger.
type Sink struct {
	logger *slog.Logger
}

// New creates a sink on top of logger. A nil logger uses slog.Default()
// at call time.
func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Level converts a LogLevel to the matching slog level.
func Level(level ports.LogLevel) slog.Level {
	switch level {
	case ports.LevelDebug:
		return slog.LevelDebug
	case ports.LevelWarn:
		return slog.LevelWarn
	case ports.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Log writes msg at the given level.
func (s *Sink) Log(level ports.LogLevel, msg string) {
	if level >= ports.LevelQuiet {
		return
	}
	s.target().Log(context.Background(), Level(level), msg)
}

// LogError writes msg with err attached under ErrorKey.
func (s *Sink) LogError(level ports.LogLevel, msg string, err error) {
	if level >= ports.LevelQuiet {
		return
	}
	if err == nil {
		s.Log(level, msg)
		return
	}
	s.target().Log(context.Background(), Level(level), msg, slog.String(ErrorKey, err.Error()))
}

func (s *Sink) target() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

var _ ports.Sink = (*Sink)(nil)
