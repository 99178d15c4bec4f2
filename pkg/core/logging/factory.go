// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating the CLI loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	mdwlog "github.com/msto63/cskit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the command
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt). Empty selects console on
	// a terminal and text otherwise.
	Format string

	// RunID stamped on every entry. Empty generates a new one.
	RunID string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:  name,
		Level: "warn",
	}
}

// NewLogger creates a foundation logger from cfg. Invalid level or format
// names fall back to the defaults.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := ParseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	format := ResolveFormat(cfg.Format, output)

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
		RunID:  runID,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewRunID returns a fresh correlation id for one CLI invocation
func NewRunID() string {
	return uuid.NewString()
}

// ResolveFormat maps a format name to a formatter. An empty name picks the
// console formatter when w is a terminal.
func ResolveFormat(name string, w io.Writer) mdwlog.Format {
	if name != "" {
		if format, err := mdwlog.ParseFormat(name); err == nil {
			return format
		}
		return mdwlog.FormatText
	}
	if IsTerminal(w) {
		return mdwlog.FormatConsole
	}
	return mdwlog.FormatText
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
