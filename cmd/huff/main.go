// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/config"
	"github.com/jba/huff/internal/prompt"
)

// version is set with -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	a := &app{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: prompt.IsInteractive(os.Stdin, os.Stdout),
	}
	if err := a.run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// app holds what a command needs from its environment.
type app struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive bool

	// Set by setup.
	cfg    *config.Config
	logger *slog.Logger
	quiet  bool
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }
func (e *usageError) ExitCode() int { return 2 }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

type command struct {
	name    string
	summary string
	run     func(a *app, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"compress", "compress a file", (*app).compress},
		{"decompress", "decompress a file", (*app).decompress},
		{"stats", "report the code table and compression ratio of a file", (*app).stats},
		{"verify", "check that a file survives a compression round trip", (*app).verify},
		{"interactive", "ask for the operation and paths", (*app).interactiveCmd},
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		if a.interactive {
			return a.interactiveCmd(nil)
		}
		a.printUsage()
		return usagef("no command given")
	}
	switch args[0] {
	case "--version", "version":
		fmt.Fprintf(a.stdout, "huff %s\n", version)
		return nil
	case "-h", "--help", "help":
		a.printUsage()
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			err := c.run(a, args[1:])
			if errors.Is(err, pflag.ErrHelp) {
				return nil
			}
			return err
		}
	}
	a.printUsage()
	return usagef("unknown command %q", args[0])
}

func (a *app) printUsage() {
	fmt.Fprintf(a.stderr, "Usage: huff <command> [flags] [args]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-12s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(a.stderr, "\nRun 'huff <command> --help' for the flags of a command.\n")
}

// newFlagSet returns a flag set carrying the flags every command accepts.
func (a *app) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.String("config", "", "YAML configuration file (default $"+config.EnvVar+")")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.BoolP("quiet", "q", false, "do not log progress")
	return fs
}

// setup parses args, loads the configuration and builds the logger.
// It returns the positional arguments.
func (a *app) setup(fs *pflag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, usagef("%v", err)
	}
	path, _ := fs.GetString("config")
	var err error
	if path != "" {
		a.cfg, err = config.LoadFile(path)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if level, _ := fs.GetString("log-level"); level != "" {
		a.cfg.LogLevel = level
		if err := a.cfg.Validate(); err != nil {
			return nil, usagef("--log-level: %v", err)
		}
	}
	a.quiet, _ = fs.GetBool("quiet")
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: a.cfg.SlogLevel()}))
	return fs.Args(), nil
}

// progress returns the option that logs progress for the named file.
// It logs nothing under --quiet or when the configuration turns progress off.
func (a *app) progress(name string) huff.Option {
	if a.quiet || !a.cfg.Progress {
		return huff.WithProgress(nil)
	}
	return huff.WithProgress(func(s huff.Stage, percent int) {
		a.logger.Info("progress", "file", name, "stage", s.String(), "percent", percent)
	})
}

// oneArg checks that exactly one positional argument was given.
func oneArg(name string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", usagef("%s: missing input file", name)
	case 1:
		return args[0], nil
	default:
		return "", usagef("%s: unexpected argument %q", name, args[1])
	}
}
