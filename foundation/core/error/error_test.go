// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity
//              mapping and the JSON representation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-09-02 v0.2.0: Tests for code based Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			message: "wrapper",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original"),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("no such file").WithCode(CodeFileNotFound),
			message:  "open input",
			wantMsg:  "open input: no such file",
			wantCode: CodeFileNotFound,
		},
		{
			name:     "wrap coded error behind fmt wrapper",
			err:      fmt.Errorf("ctx: %w", New("bad hex").WithCode(CodeInvalidFormat)),
			message:  "parse",
			wantMsg:  "parse: ctx: bad hex",
			wantCode: CodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("index out of range").WithCode(CodeOutOfRange)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"same instance", sentinel, true},
		{"same code with details", New("pos 9").WithCode(CodeOutOfRange).WithDetail("pos", 9), true},
		{"wrapped same code", Wrap(New("x").WithCode(CodeOutOfRange), "split"), true},
		{"different code", New("x").WithCode(CodeNotFound), false},
		{"standard error", errors.New("index out of range"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, sentinel); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}

	unknown := New("a")
	if errors.Is(New("b"), unknown) {
		t.Error("errors without code must not match each other")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeFileRead)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if depth := chainDepth(err); depth > MaxErrorChainDepth {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth)
	}
	if GetCode(err) != CodeFileRead {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeFileRead)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeOutOfRange, SeverityLow},
		{CodeConversionFailed, SeverityMedium},
		{CodeFileNotFound, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeOutOfRange)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("bad").WithCode(CodeMalformedEncoding)
	outer := fmt.Errorf("decode: %w", inner)

	if !HasCode(outer, CodeMalformedEncoding) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(outer, CodeNotFound) {
		t.Error("HasCode(CodeNotFound) = true, want false")
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(outer); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityLow)
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("offset", 4)
	d := err.Details()
	d["offset"] = 99

	if err.Details()["offset"] != 4 {
		t.Error("Details() must return a copy")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("cannot open").
		WithCode(CodeFileNotFound).
		WithOperation("filex.OpenFile").
		WithDetail("path", "a.bin").
		WithCause(errors.New("no such file"))

	s := err.String()
	for _, want := range []string{"Error: cannot open", "Code: FILE_NOT_FOUND", "Operation: filex.OpenFile", "path=a.bin", "Cause: no such file"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "FILE_NOT_FOUND" {
		t.Errorf("code = %v, want FILE_NOT_FOUND", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["operation"] != "filex.OpenFile" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeOutOfRange, "string", 1},
		{CodeInvalidFormat, "parse", 2},
		{CodeFileRead, "file", 3},
		{CodeConfigMissingKey, "configuration", 2},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false")
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid(NOPE) = true")
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		got, ok := ParseSeverity(strings.ToUpper(s.String()))
		if !ok || got != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSeverity("loud"); ok {
		t.Error("ParseSeverity(loud) ok = true")
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert() mismatch")
	}
}
