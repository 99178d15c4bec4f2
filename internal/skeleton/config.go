// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     skeleton
// Description: [scan] configuration section and its precedence
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package skeleton

import (
	"github.com/msto63/cskit/foundation/core/config"
	mdwerror "github.com/msto63/cskit/foundation/core/error"
	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/parsex"
	"github.com/msto63/cskit/pkg/core/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. CSKIT_SCAN_MIN_YEAR
const EnvPrefix = "CSKIT"

// Configuration keys and the flags that override them
var configFlags = map[string][]string{
	"scan.header":   {"header"},
	"scan.offset":   {"offset"},
	"scan.debug":    {"debug"},
	"scan.optx":     {"optx", "hex"},
	"scan.optx_str": {"optx-str"},
	"scan.rx":       {"rx"},
	"scan.rx_flags": {"rxF"},
	"scan.min_year": {"min-year"},
	"scan.max_year": {"max-year"},
	"scan.output":   {"output"},
}

// ConfigRules validates the keys read by ApplyConfig
func ConfigRules() config.ValidationRules {
	return config.ValidationRules{
		"log.level":     {Allowed: logging.LevelNames},
		"log.format":    {Allowed: []string{"json", "text", "console", "logfmt"}},
		"scan.header":   {Type: "bool"},
		"scan.offset":   {Type: "bool"},
		"scan.debug":    {Type: "bool"},
		"scan.min_year": {Type: "int", Min: config.Bound(1970), Max: config.Bound(2038)},
		"scan.max_year": {Type: "int", Min: config.Bound(0), Max: config.Bound(2038)},
	}
}

// ApplyConfig copies the [scan] section of cfg into o. Keys whose flag was
// set on the command line, or that a key=value argument already set, are
// skipped.
func ApplyConfig(cfg *config.Config, o *Options, flagSet func(name string) bool) error {
	if cfg == nil {
		return nil
	}
	if err := cfg.Validate(ConfigRules()); err != nil {
		return err
	}

	use := func(key string) bool {
		if o.Given(key) {
			return false
		}
		if flagSet != nil {
			for _, name := range configFlags[key] {
				if flagSet(name) {
					return false
				}
			}
		}
		return cfg.Has(key)
	}

	if use("scan.header") {
		o.Header = cfg.GetBool("scan.header")
	}
	if use("scan.offset") {
		o.PrintOffset = cfg.GetBool("scan.offset")
	}
	if use("scan.debug") {
		o.Debug = cfg.GetBool("scan.debug")
	}
	if use("scan.optx") {
		v, err := parsex.ParseHexLong(cstr.New(cfg.GetString("scan.optx")))
		if err != nil {
			return mdwerror.Wrap(err, "invalid scan.optx").
				WithCode(mdwerror.CodeConfigInvalid).
				WithOperation("skeleton.ApplyConfig")
		}
		o.OptX = v
	}
	if use("scan.optx_str") {
		o.OptXStr = cfg.GetString("scan.optx_str")
	}
	if use("scan.rx") {
		o.Rx = cfg.GetString("scan.rx")
	}
	if use("scan.rx_flags") {
		o.RxFlags = cfg.GetString("scan.rx_flags")
	}
	if use("scan.min_year") {
		o.MinYear = cfg.GetInt("scan.min_year")
	}
	if use("scan.max_year") {
		o.MaxYear = cfg.GetInt("scan.max_year")
	}
	if use("scan.output") {
		o.Output = cfg.GetString("scan.output")
	}
	return nil
}
