// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, typed access, environment overrides,
//              validation, decoding and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02

package config

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "logfmt"

[scan]
min_year = 2001
max_year = 2020
header = true
equals = ["ox=0x10", "ox=0x20"]
ratio = 0.5
`

const yamlContent = `
log:
  level: warn
scan:
  min_year: 1999
  header: false
`

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
	return fs
}

func TestLoadFormats(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/etc/cskit.toml": tomlContent,
		"/etc/cskit.yml":  yamlContent,
	})

	tests := []struct {
		path       string
		wantFormat Format
		wantLevel  string
		wantYear   int
		wantHeader bool
	}{
		{"/etc/cskit.toml", FormatTOML, "debug", 2001, true},
		{"/etc/cskit.yml", FormatYAML, "warn", 1999, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			cfg, err := LoadWithOptions(tt.path, LoadOptions{Format: FormatAuto, Fs: fs})
			if err != nil {
				t.Fatalf("LoadWithOptions() error = %v", err)
			}
			if cfg.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.wantFormat)
			}
			if got := cfg.GetString("log.level"); got != tt.wantLevel {
				t.Errorf("GetString(log.level) = %q, want %q", got, tt.wantLevel)
			}
			if got := cfg.GetInt("scan.min_year"); got != tt.wantYear {
				t.Errorf("GetInt(scan.min_year) = %d, want %d", got, tt.wantYear)
			}
			if got := cfg.GetBool("scan.header"); got != tt.wantHeader {
				t.Errorf("GetBool(scan.header) = %v, want %v", got, tt.wantHeader)
			}
			if cfg.FilePath() != tt.path {
				t.Errorf("FilePath() = %q", cfg.FilePath())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	fs := memFs(t, map[string]string{"/bad.toml": "[log\nlevel="})

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"empty path", " ", mdwerror.CodeInvalidInput},
		{"missing file", "/nope.toml", mdwerror.CodeConfigNotFound},
		{"syntax error", "/bad.toml", mdwerror.CodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithOptions(tt.path, LoadOptions{Fs: fs})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestGettersAndDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetString("log.missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt64("scan.max_year"); got != 2020 {
		t.Errorf("GetInt64 = %d", got)
	}
	if got := cfg.GetFloat("scan.ratio"); got != 0.5 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := cfg.GetStringSlice("scan.equals"); !reflect.DeepEqual(got, []string{"ox=0x10", "ox=0x20"}) {
		t.Errorf("GetStringSlice = %v", got)
	}
	if got := cfg.GetInt("scan.nothing", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if cfg.Has("scan.nothing") || !cfg.Has("scan.header") {
		t.Error("Has() mismatch")
	}

	cfg.Set("output.file", "out.tsv")
	if got := cfg.GetString("output.file"); got != "out.tsv" {
		t.Errorf("after Set = %q", got)
	}

	wantKeys := []string{"log.format", "log.level", "output.file", "scan.equals", "scan.header", "scan.max_year", "scan.min_year", "scan.ratio"}
	if got := cfg.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg.envPrefix = "cskit"
	env := map[string]string{
		"CSKIT_LOG_LEVEL":     "error",
		"CSKIT_SCAN_MIN_YEAR": "0x7d0",
		"CSKIT_SCAN_HEADER":   "false",
		"CSKIT_EXTRA_KEY":     "yes",
	}
	cfg.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("GetString = %q, want error", got)
	}
	if got := cfg.GetInt("scan.min_year"); got != 2000 {
		t.Errorf("GetInt = %d, want 2000", got)
	}
	if cfg.GetBool("scan.header") {
		t.Error("GetBool = true, want false")
	}
	if !cfg.Has("extra.key") {
		t.Error("Has(extra.key) = false for env-only key")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		rules ValidationRules
		code  mdwerror.Code
	}{
		{
			name: "valid",
			rules: ValidationRules{
				"log.level":     {Required: true, Allowed: []string{"trace", "debug", "info", "warn", "error"}},
				"scan.min_year": {Type: "int", Min: Bound(1970), Max: Bound(2038)},
				"scan.header":   {Type: "bool"},
				"scan.ratio":    {Type: "float"},
			},
		},
		{
			name:  "missing required",
			rules: ValidationRules{"input.file": {Required: true}},
			code:  mdwerror.CodeConfigMissingKey,
		},
		{
			name:  "out of bounds",
			rules: ValidationRules{"scan.max_year": {Type: "int", Max: Bound(2010)}},
			code:  mdwerror.CodeConfigInvalid,
		},
		{
			name:  "not allowed",
			rules: ValidationRules{"log.format": {Allowed: []string{"json", "text"}}},
			code:  mdwerror.CodeConfigInvalid,
		},
		{
			name:  "wrong type",
			rules: ValidationRules{"log.level": {Type: "int"}},
			code:  mdwerror.CodeConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.Validate(tt.rules)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	type settings struct {
		Log struct {
			Level  string `toml:"level" yaml:"level"`
			Format string `toml:"format" yaml:"format"`
		} `toml:"log" yaml:"log"`
		Scan struct {
			MinYear int  `toml:"min_year" yaml:"min_year"`
			Header  bool `toml:"header" yaml:"header"`
		} `toml:"scan" yaml:"scan"`
	}

	for _, tc := range []struct {
		content string
		format  Format
		level   string
		year    int
	}{
		{tomlContent, FormatTOML, "debug", 2001},
		{yamlContent, FormatYAML, "warn", 1999},
	} {
		t.Run(tc.format.String(), func(t *testing.T) {
			cfg, err := LoadFromString(tc.content, tc.format)
			if err != nil {
				t.Fatal(err)
			}
			var s settings
			if err := cfg.Decode(&s); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if s.Log.Level != tc.level || s.Scan.MinYear != tc.year {
				t.Errorf("Decode() = %+v", s)
			}
		})
	}
}

func TestDefaultsMerge(t *testing.T) {
	fs := memFs(t, map[string]string{"/c.toml": "[log]\nlevel = \"warn\"\n"})
	cfg, err := LoadWithOptions("/c.toml", LoadOptions{
		Fs: fs,
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{"level": "info", "format": "text"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GetString("log.level") != "warn" || cfg.GetString("log.format") != "text" {
		t.Errorf("merged = %v / %v", cfg.GetString("log.level"), cfg.GetString("log.format"))
	}
}

func TestDiscover(t *testing.T) {
	fs := memFs(t, map[string]string{"/home/u/.config/cskit/cskit.yaml": yamlContent})
	opts := DiscoveryOptions{
		Paths:     []string{".", "/home/u/.config/cskit"},
		Filenames: []string{"cskit"},
		Fs:        fs,
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !strings.HasSuffix(cfg.FilePath(), "cskit.yaml") {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}

	opts.Paths = []string{"/elsewhere"}
	cfg, err = Discover(opts)
	if err != nil || len(cfg.Keys()) != 0 {
		t.Errorf("optional Discover() = %v, %v", cfg, err)
	}

	opts.Required = true
	_, err = Discover(opts)
	if !errors.Is(err, mdwerror.New("").WithCode(mdwerror.CodeConfigNotFound)) {
		t.Errorf("required Discover() error = %v", err)
	}
}
