// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the cskit components
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Component versions
	Cstr     = "1.0.0"
	Rx       = "1.0.0"
	Parsex   = "1.0.0"
	Timex    = "1.0.0"
	Filex    = "1.0.0"
	Bytex    = "1.0.0"
	Skeleton = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/cskit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Toolkit   string `json:"toolkit"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cstr":
		return Cstr
	case "rx":
		return Rx
	case "parsex":
		return Parsex
	case "timex":
		return Timex
	case "filex":
		return Filex
	case "bytex":
		return Bytex
	case "skeleton":
		return Skeleton
	default:
		return Toolkit
	}
}

// Get returns the build info for component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   ComponentVersion(component),
		Toolkit:   Toolkit,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("%s %s (cskit %s, commit %s, built %s, %s %s)",
		i.Component, i.Version, i.Toolkit, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
