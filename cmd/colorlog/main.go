// Package main provides the CLI entry point for colorlog.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/colorlog/pkg/colorcode"
	"github.com/user/colorlog/pkg/colorlog"
	"github.com/user/colorlog/pkg/config"
)

var version = "dev"

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI with explicit streams.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "colorlog",
		Usage:     l10n.T("Translate legacy colour codes into ANSI escapes"),
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			translateCommand(),
			logCommand(),
			codesCommand(),
		},
	}
}

func translateCommand() *cli.Command {
	return &cli.Command{
		Name:      "translate",
		Usage:     l10n.T("Translate text, or each line of stdin, to ANSI"),
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "strip",
				Aliases: []string{"s"},
				Usage:   l10n.T("Remove colour codes instead of translating them"),
			},
		},
		Action: runTranslate,
	}
}

func runTranslate(c *cli.Context) error {
	convert := colorcode.Translate
	if c.Bool("strip") {
		convert = colorcode.Strip
	}

	w := c.App.Writer
	if c.Args().Len() > 0 {
		fmt.Fprintln(w, convert(strings.Join(c.Args().Slice(), " ")))
		return nil
	}

	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		fmt.Fprintln(w, convert(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func logCommand() *cli.Command {
	return &cli.Command{
		Name:      "log",
		Usage:     l10n.T("Decorate a message and write it to the configured sink"),
		ArgsUsage: "message...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   l10n.T("Prefix placed before every message"),
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: l10n.T("Colour mode (auto, always, never)"),
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: l10n.T("Output (console, file, slog, quiet)"),
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: l10n.T("Log file path for file output"),
			},
			&cli.StringFlag{
				Name:    "error",
				Aliases: []string{"e"},
				Usage:   l10n.T("Error text attached to the message"),
			},
		},
		Action: runLog,
	}
}

func runLog(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return errors.New(l10n.T("Message is required"))
	}

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override the file
	if c.IsSet("prefix") {
		cfg.Prefix = c.String("prefix")
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("file") {
		cfg.File.Path = c.String("file")
	}

	sink, err := cfg.SinkTo(c.App.Writer, c.App.ErrWriter)
	if err != nil {
		return err
	}
	if closer, ok := sink.(io.Closer); ok {
		defer closer.Close()
	}

	log := colorlog.NewWithSink(cfg.Prefix, sink)
	msg := strings.Join(c.Args().Slice(), " ")
	if text := c.String("error"); text != "" {
		log.LogError(cfg.LogLevel(), msg, errors.New(text))
	} else {
		log.Log(cfg.LogLevel(), msg)
	}
	return nil
}

func codesCommand() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: l10n.T("List the supported colour and format codes"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "plain",
				Usage: l10n.T("Do not render samples"),
			},
		},
		Action: runCodes,
	}
}

func runCodes(c *cli.Context) error {
	w := c.App.Writer
	for _, code := range colorcode.Codes() {
		sample := code.Name
		if !c.Bool("plain") {
			sample = colorcode.Translate(code.String() + code.Name)
		}
		fmt.Fprintf(w, "%s  %-6s %3d  %s\n", code.String(), code.Family, code.Param, sample)
	}
	return nil
}
