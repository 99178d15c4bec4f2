// File: builder_test.go
// Title: Error Builder Tests
// Description: Tests for the builder and the module constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("explicit fields", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Code(mdwerror.CodeNotFound).
			Severity(mdwerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("module = %v, want testmodule", details["module"])
		}
		if details["key"] != "value" {
			t.Errorf("key = %v, want value", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
		if err.Code() != mdwerror.CodeNotFound {
			t.Errorf("Code() = %v", err.Code())
		}
	})

	t.Run("default message", func(t *testing.T) {
		err := NewErrorBuilder("cstr").Operation("Mid").Build()
		if err.Error() != "cstr.Mid failed" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err := NewErrorBuilder("cstr").Build(); err.Error() != "cstr operation failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("cause", func(t *testing.T) {
		cause := errors.New("disk gone")
		err := NewErrorBuilder("filex").Message("read").Cause(cause).Build()
		if !errors.Is(err, cause) {
			t.Error("errors.Is(err, cause) = false")
		}
		if err.Error() != "read: disk gone" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("severity follows code", func(t *testing.T) {
		err := NewErrorBuilder("filex").Code(mdwerror.CodeFileNotFound).Build()
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
	})
}

func TestModuleConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *mdwerror.Error
		code   mdwerror.Code
		module string
		text   string
	}{
		{"cstr out of range", CstrOutOfRange("SplitAt", 9, 6), mdwerror.CodeOutOfRange, ModuleCstr, "9 out of range [0, 6]"},
		{"cstr malformed", CstrMalformed("CodepointAt", 2), mdwerror.CodeMalformedEncoding, ModuleCstr, "codepoint 2"},
		{"conversion unavailable", CstrConversionUnavailable("x-foo", "UTF-8", nil), mdwerror.CodeConversionUnavailable, ModuleCstr, "x-foo"},
		{"conversion failed", CstrConversionFailed("UTF-8", "ISO-8859-1", errors.New("boom")), mdwerror.CodeConversionFailed, ModuleCstr, "boom"},
		{"rx compile", RxCompile("(", errors.New("missing )")), mdwerror.CodeRegexCompile, ModuleRx, "missing )"},
		{"rx match", RxMatch(3, errors.New("timeout")), mdwerror.CodeRegexMatch, ModuleRx, "offset 3"},
		{"parsex invalid", ParsexInvalid("ParseHexLong", "0xZZ", "hex digits"), mdwerror.CodeInvalidFormat, ModuleParsex, "0xZZ"},
		{"parsex overflow", ParsexOverflow("ParseHexLong", "99999999999999999999"), mdwerror.CodeOverflow, ModuleParsex, "overflows"},
		{"timex", TimexParseError("2024-01-01", "YYYY/MM/DD"), mdwerror.CodeInvalidFormat, ModuleTimex, "YYYY/MM/DD"},
		{"file not found", FilexNotFound("a.bin", nil), mdwerror.CodeFileNotFound, ModuleFilex, "a.bin"},
		{"file access", FilexAccess("a.bin", "stat", nil), mdwerror.CodeFileAccess, ModuleFilex, "cannot stat a.bin"},
		{"short read", FilexShortRead(12, 5, nil), mdwerror.CodeFileRead, ModuleFilex, "5 of 12"},
		{"bytex range", BytexOutOfRange("latitude", 91, -90, 90), mdwerror.CodeOutOfRange, ModuleBytex, "91"},
		{"config key", ConfigMissingKey("log.level"), mdwerror.CodeConfigMissingKey, ModuleConfig, "log.level"},
		{"not found", NotFound("rx", "group", "name"), mdwerror.CodeNotFound, "rx", "name not found"},
		{"invalid input", InvalidInput("rx", "flags", "q", "x, i, m or s"), mdwerror.CodeInvalidInput, "rx", "rx.flags"},
		{"validation", ValidationFailed("skeleton", "year", 1969, "before 1970"), mdwerror.CodeValidationFailed, "skeleton", "before 1970"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if got := ExtractModule(tt.err); got != tt.module {
				t.Errorf("ExtractModule() = %q, want %q", got, tt.module)
			}
			if !strings.Contains(tt.err.Error(), tt.text) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.text)
			}
		})
	}
}

func TestExtractModuleForeignError(t *testing.T) {
	if got := ExtractModule(errors.New("plain")); got != "" {
		t.Errorf("ExtractModule() = %q, want empty", got)
	}
}
