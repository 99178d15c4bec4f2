// File: modules.go
// Title: Module Error Constructors
// Description: Convenience constructors for the foundation modules (cstr,
//              rx, parsex, timex, filex, bytex, config) so every module reports
//              failures with the same codes and detail keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-25 v0.1.0: stringx/mathx/slicex helpers
// - 2025-09-02 v0.2.0: Helpers for the string toolkit modules

package errors

import (
	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleCstr   = "cstr"
	ModuleRx     = "rx"
	ModuleParsex = "parsex"
	ModuleTimex  = "timex"
	ModuleFilex  = "filex"
	ModuleBytex  = "bytex"
	ModuleConfig = "config"
)

// CstrOutOfRange reports an index or width outside the content of a string
func CstrOutOfRange(operation string, index, length int) *mdwerror.Error {
	return OutOfRange(ModuleCstr, operation, index, 0, length)
}

// CstrMalformed reports a byte sequence that does not decode as UTF-8
func CstrMalformed(operation string, index int) *mdwerror.Error {
	return NewErrorBuilder(ModuleCstr).
		Operation(operation).
		Messagef("malformed UTF-8 sequence at codepoint %d", index).
		Code(mdwerror.CodeMalformedEncoding).
		Detail("index", index).
		Build()
}

// CstrConversionUnavailable reports an encoding name without a converter
func CstrConversionUnavailable(from, to string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleCstr).
		Operation("Iconv").
		Messagef("no converter from %s to %s", from, to).
		Code(mdwerror.CodeConversionUnavailable).
		Cause(cause).
		Detail("from", from).
		Detail("to", to).
		Build()
}

// CstrConversionFailed reports a conversion that stopped mid-stream
func CstrConversionFailed(from, to string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleCstr).
		Operation("Iconv").
		Messagef("conversion from %s to %s failed", from, to).
		Code(mdwerror.CodeConversionFailed).
		Cause(cause).
		Detail("from", from).
		Detail("to", to).
		Build()
}

// RxCompile reports a pattern the regex engine rejected
func RxCompile(pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleRx).
		Operation("compile").
		Messagef("cannot compile pattern %q", pattern).
		Code(mdwerror.CodeRegexCompile).
		Cause(cause).
		Detail("pattern", pattern).
		Build()
}

// RxMatch reports a failure of the engine while matching
func RxMatch(offset int, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleRx).
		Operation("match").
		Messagef("matching failed at offset %d", offset).
		Code(mdwerror.CodeRegexMatch).
		Cause(cause).
		Detail("offset", offset).
		Build()
}

// ParsexInvalid reports a parameter that is not in the expected notation
func ParsexInvalid(operation, input, expected string) *mdwerror.Error {
	return InvalidFormat(ModuleParsex, operation, input, expected)
}

// ParsexOverflow reports a number that does not fit into 64 bits
func ParsexOverflow(operation, input string) *mdwerror.Error {
	return NewErrorBuilder(ModuleParsex).
		Operation(operation).
		Messagef("value %q overflows 64 bits", input).
		Code(mdwerror.CodeOverflow).
		Detail("input", input).
		Build()
}

// TimexParseError reports a date/time string that cannot be converted
func TimexParseError(input, expectedFormat string) *mdwerror.Error {
	return InvalidFormat(ModuleTimex, "parse", input, expectedFormat)
}

// FilexNotFound reports a missing input file
func FilexNotFound(path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("open").
		Messagef("file not found: %s", path).
		Code(mdwerror.CodeFileNotFound).
		Cause(cause).
		Detail("path", path).
		Build()
}

// FilexAccess reports a file that exists but cannot be used
func FilexAccess(path, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("cannot %s %s", operation, path).
		Code(mdwerror.CodeFileAccess).
		Cause(cause).
		Detail("path", path).
		Build()
}

// FilexShortRead reports a read that delivered fewer bytes than requested
func FilexShortRead(want, got int, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation("read").
		Messagef("short read: %d of %d bytes", got, want).
		Code(mdwerror.CodeFileRead).
		Cause(cause).
		Detail("want", want).
		Detail("got", got).
		Build()
}

// BytexOutOfRange reports a coordinate outside its valid range
func BytexOutOfRange(field string, value, lower, upper float64) *mdwerror.Error {
	return OutOfRange(ModuleBytex, field, value, lower, upper)
}

// ConfigMissingKey reports a required configuration key without a value
func ConfigMissingKey(key string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("required configuration key %q is missing", key).
		Code(mdwerror.CodeConfigMissingKey).
		Detail("key", key).
		Build()
}
