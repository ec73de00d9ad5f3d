// Package logger provides console and no-op sink implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/colorlog/pkg/ports"
)

// labelAttrs colours the level label in front of each line.
var labelAttrs = map[ports.LogLevel]color.Attribute{
	ports.LevelDebug: color.FgHiBlack,
	ports.LevelInfo:  color.FgCyan,
	ports.LevelWarn:  color.FgYellow,
	ports.LevelError: color.FgRed,
}

// ConsoleSink writes decorated lines to the console.
// Warnings and errors go to the error stream, everything else to the output
// stream. When colour is disabled all ANSI escapes are removed from the line.
type ConsoleSink struct {
	mu     sync.Mutex
	level  ports.LogLevel
	out    io.Writer
	errOut io.Writer
	color  bool
}

// NewConsole creates a console sink on stdout/stderr with the given level.
// Color output is automatically enabled when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleSink {
	return &ConsoleSink{
		level:  level,
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  IsTerminal(os.Stdout),
	}
}

// NewConsoleWriters creates a console sink on arbitrary writers.
func NewConsoleWriters(level ports.LogLevel, out, errOut io.Writer, color bool) *ConsoleSink {
	return &ConsoleSink{
		level:  level,
		out:    out,
		errOut: errOut,
		color:  color,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColor forces colour output on or off.
func (s *ConsoleSink) SetColor(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = enabled
}

// Color reports whether colour output is enabled.
func (s *ConsoleSink) Color() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// Log writes msg if level passes the threshold.
func (s *ConsoleSink) Log(level ports.LogLevel, msg string) {
	s.write(level, msg, nil)
}

// LogError writes msg followed by err if level passes the threshold.
func (s *ConsoleSink) LogError(level ports.LogLevel, msg string, err error) {
	s.write(level, msg, err)
}

func (s *ConsoleSink) write(level ports.LogLevel, msg string, err error) {
	if level < s.level || level >= ports.LevelQuiet {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	label := color.New(labelAttrs[level])
	if s.color {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	line := fmt.Sprintf("%s %s", label.Sprintf("[%s]", levelLabel(level)), msg)
	if err != nil {
		line = fmt.Sprintf("%s: %v", line, err)
	}
	if !s.color {
		line = ansi.Strip(line)
	}

	w := s.out
	if level >= ports.LevelWarn {
		w = s.errOut
	}
	fmt.Fprintln(w, line)
}

// levelLabel returns the localized upper-case label for a level.
func levelLabel(level ports.LogLevel) string {
	switch level {
	case ports.LevelDebug:
		return l10n.T("DEBUG")
	case ports.LevelInfo:
		return l10n.T("INFO")
	case ports.LevelWarn:
		return l10n.T("WARN")
	case ports.LevelError:
		return l10n.T("ERROR")
	default:
		return level.String()
	}
}

var _ ports.Sink = (*ConsoleSink)(nil)
