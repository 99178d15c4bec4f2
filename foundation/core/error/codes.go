// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the cskit foundation and
//              the skeleton CLI. Codes classify failures of the string type,
//              the regex matcher, parameter parsing, file access and
//              configuration loading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-09-02 v0.2.0: Replaced service codes with string/parse/file codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String handling
	CodeOutOfRange            Code = "OUT_OF_RANGE"
	CodeMalformedEncoding     Code = "MALFORMED_ENCODING"
	CodeConversionUnavailable Code = "CONVERSION_UNAVAILABLE"
	CodeConversionFailed      Code = "CONVERSION_FAILED"

	// Parsing
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeOverflow      Code = "OVERFLOW"
	CodeRegexCompile  Code = "REGEX_COMPILE"
	CodeRegexMatch    Code = "REGEX_MATCH"

	// Files
	CodeFileNotFound Code = "FILE_NOT_FOUND"
	CodeFileAccess   Code = "FILE_ACCESS"
	CodeFileRead     Code = "FILE_READ"

	// Configuration
	CodeConfigNotFound   Code = "CONFIG_NOT_FOUND"
	CodeConfigInvalid    Code = "CONFIG_INVALID"
	CodeConfigMissingKey Code = "CONFIG_MISSING_KEY"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOutOfRange, CodeMalformedEncoding, CodeConversionUnavailable, CodeConversionFailed,
		CodeInvalidFormat, CodeOverflow, CodeRegexCompile, CodeRegexMatch,
		CodeFileNotFound, CodeFileAccess, CodeFileRead,
		CodeConfigNotFound, CodeConfigInvalid, CodeConfigMissingKey,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeOutOfRange, CodeMalformedEncoding, CodeConversionUnavailable, CodeConversionFailed:
		return "string"
	case CodeInvalidFormat, CodeOverflow, CodeRegexCompile, CodeRegexMatch:
		return "parse"
	case CodeFileNotFound, CodeFileAccess, CodeFileRead:
		return "file"
	case CodeConfigNotFound, CodeConfigInvalid, CodeConfigMissingKey:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps a code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "parse", "validation", "configuration":
		return 2
	case "file":
		return 3
	default:
		return 1
	}
}
