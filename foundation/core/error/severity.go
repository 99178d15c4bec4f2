// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Most string and parse
//              failures are expected outcomes and rank low; file and
//              configuration failures abort a CLI run and rank higher.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-09-02 v0.2.0: ParseSeverity, code mapping for the new code set

package error

import "strings"

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks expected outcomes such as a failed search or an
	// out of range index
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh marks failures that end the current operation, such as
	// unreadable files
	SeverityHigh

	// SeverityCritical marks internal faults
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a name into a Severity
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityMedium, false
	}
}

// ShouldAlert returns true if this severity level should be reported loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeFileNotFound, CodeFileAccess, CodeFileRead,
		CodeConfigNotFound, CodeConfigInvalid, CodeConversionUnavailable:
		return SeverityHigh

	case CodeConversionFailed, CodeRegexCompile, CodeRegexMatch, CodeConfigMissingKey:
		return SeverityMedium

	case CodeNotFound, CodeInvalidInput, CodeOutOfRange, CodeMalformedEncoding,
		CodeInvalidFormat, CodeOverflow, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
