// Package config provides configuration loading and management.
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/user/colorlog/pkg/adapters/filesink"
	"github.com/user/colorlog/pkg/adapters/logger"
	"github.com/user/colorlog/pkg/adapters/slogsink"
	"github.com/user/colorlog/pkg/colorlog"
	"github.com/user/colorlog/pkg/ports"
)

// Output destinations.
const (
	OutputConsole = "console"
	OutputFile    = "file"
	OutputSlog    = "slog"
	OutputQuiet   = "quiet"
)

// Color modes for console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the full configuration for a colour logger.
type Config struct {
	Prefix string     `yaml:"prefix"`
	Level  string     `yaml:"level"`
	Output string     `yaml:"output"`
	Color  string     `yaml:"color"`
	File   FileConfig `yaml:"file"`
}

// FileConfig represents the file output and its rotation.
type FileConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Level:  "info",
		Output: OutputConsole,
		Color:  ColorAuto,
		File: FileConfig{
			Path:       "colorlog.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), errors.Wrapf(err, "read config %s", path)
	}
	return parse(data, path)
}

// Load reads a YAML config named name from fsys.
func Load(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Defaults(), errors.Wrapf(err, "read config %s", name)
	}
	return parse(data, name)
}

// parse decodes and validates data. Fields missing from the document keep
// their default values.
func parse(data []byte, path string) (Config, error) {
	cfg := Defaults()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, ok := ports.LookupLogLevel(c.Level); !ok {
		return errors.Errorf("unknown level %q", c.Level)
	}

	switch strings.ToLower(c.Output) {
	case OutputConsole, OutputSlog, OutputQuiet:
	case OutputFile:
		if c.File.Path == "" {
			return errors.New("file output requires file.path")
		}
	default:
		return errors.Errorf("unknown output %q", c.Output)
	}

	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("unknown color mode %q", c.Color)
	}

	return nil
}

// LogLevel returns the parsed level.
func (c Config) LogLevel() ports.LogLevel {
	return ports.ParseLogLevel(c.Level)
}

// Sink builds the configured sink on stdout/stderr. File sinks must be
// closed by the caller once logging is done.
func (c Config) Sink() (ports.Sink, error) {
	return c.SinkTo(os.Stdout, os.Stderr)
}

// SinkTo builds the configured sink with console and slog output directed
// at out and errOut.
func (c Config) SinkTo(out, errOut io.Writer) (ports.Sink, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	level := c.LogLevel()
	if level == ports.LevelQuiet {
		return logger.NewNoop(), nil
	}

	switch strings.ToLower(c.Output) {
	case OutputQuiet:
		return logger.NewNoop(), nil
	case OutputFile:
		sink, err := filesink.New(filesink.Config{
			Path:       c.File.Path,
			Level:      level,
			MaxSize:    c.File.MaxSize,
			MaxBackups: c.File.MaxBackups,
			MaxAge:     c.File.MaxAge,
		})
		if err != nil {
			return nil, errors.Wrap(err, "open file sink")
		}
		return sink, nil
	case OutputSlog:
		handler := slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slogsink.Level(level)})
		return slogsink.New(slog.New(handler)), nil
	default:
		return logger.NewConsoleWriters(level, out, errOut, c.colorFor(out)), nil
	}
}

func (c Config) colorFor(out io.Writer) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && logger.IsTerminal(f)
	}
}

// NewLogger builds a colour logger with the configured prefix and sink.
func (c Config) NewLogger() (*colorlog.Logger, error) {
	sink, err := c.Sink()
	if err != nil {
		return nil, err
	}
	return colorlog.NewWithSink(c.Prefix, sink), nil
}
