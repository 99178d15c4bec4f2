// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     logging
// Description: Level names accepted on the command line and in config files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"strings"

	mdwlog "github.com/msto63/cskit/foundation/core/log"
)

// LevelNames lists the accepted level names in increasing severity
var LevelNames = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// ParseLevel converts a level name to mdwlog.Level. Unknown names map to
// warn, the CLI default.
func ParseLevel(level string) mdwlog.Level {
	if level == "" {
		return mdwlog.LevelWarn
	}
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return parsed
}

// ValidLevel reports whether level is one of LevelNames or an accepted alias
func ValidLevel(level string) bool {
	_, err := mdwlog.ParseLevel(level)
	return err == nil && strings.TrimSpace(level) != ""
}
