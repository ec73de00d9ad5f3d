// Package filesink provides a rotating JSON file sink.
package filesink

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/x/ansi"
	"github.com/user/colorlog/pkg/adapters/slogsink"
	"github.com/user/colorlog/pkg/ports"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the file and rotation settings.
type Config struct {
	Path       string
	Level      ports.LogLevel
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// Sink writes one JSON object per line to a rotating file.
// ANSI escapes are removed before writing.
type Sink struct {
	level  ports.LogLevel
	writer *lumberjack.Logger
	target *slogsink.Sink
}

// New opens a file sink. The file is created lazily on first write.
func New(cfg Config) (*Sink, error) {
	if cfg.Path == "" {
		return nil, errors.New("filesink: path is required")
	}

	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}
	// Set defaults if zero
	if w.MaxSize == 0 {
		w.MaxSize = 100
	}
	if w.MaxBackups == 0 {
		w.MaxBackups = 3
	}
	if w.MaxAge == 0 {
		w.MaxAge = 28
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogsink.Level(cfg.Level),
	})

	return &Sink{
		level:  cfg.Level,
		writer: w,
		target: slogsink.New(slog.New(handler)),
	}, nil
}

// Log writes msg if level passes the threshold.
func (s *Sink) Log(level ports.LogLevel, msg string) {
	if level < s.level {
		return
	}
	s.target.Log(level, ansi.Strip(msg))
}

// LogError writes msg and err if level passes the threshold.
func (s *Sink) LogError(level ports.LogLevel, msg string, err error) {
	if level < s.level {
		return
	}
	s.target.LogError(level, ansi.Strip(msg), err)
}

// Close closes the underlying file.
func (s *Sink) Close() error {
	return s.writer.Close()
}

var _ ports.Sink = (*Sink)(nil)
