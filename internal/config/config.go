// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package config loads the YAML configuration of the huff command.
//
// The file is named by the --config flag or, failing that, the HUFF_CONFIG
// environment variable. There is no search path: without either, the
// defaults from [Default] apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted by [Load].
const EnvVar = "HUFF_CONFIG"

// Config is the configuration of the huff command.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Progress enables progress log lines at each ten-percent step.
	Progress bool `yaml:"progress"`

	// LargeFileWarning is the input size in bytes above which a warning
	// is logged before compressing. Zero disables the warning.
	LargeFileWarning int64 `yaml:"large_file_warning"`

	// OutputSuffix is appended to the input name to form the default
	// compressed file name, and stripped from it when decompressing.
	OutputSuffix string `yaml:"output_suffix"`

	// ReportFormat is the default format of the stats command:
	// text, json, yaml or cbor.
	ReportFormat string `yaml:"report_format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		Progress:         true,
		LargeFileWarning: 100_000_000,
		OutputSuffix:     ".huf",
		ReportFormat:     "text",
	}
}

// Load reads the file named by HUFF_CONFIG, or returns [Default] if the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path. Fields absent from the file
// keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
// Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	reportFormats = []string{"text", "json", "yaml", "cbor"}
)

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level %q: must be one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(reportFormats, c.ReportFormat) {
		return fmt.Errorf("report_format %q: must be one of %s", c.ReportFormat, strings.Join(reportFormats, ", "))
	}
	if c.LargeFileWarning < 0 {
		return fmt.Errorf("large_file_warning %d: must not be negative", c.LargeFileWarning)
	}
	if c.OutputSuffix == "" {
		return errors.New("output_suffix: must not be empty")
	}
	return nil
}

// SlogLevel returns LogLevel as a [slog.Level].
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
