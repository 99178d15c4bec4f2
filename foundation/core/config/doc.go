// Package config loads TOML and YAML configuration for cskit tools.
//
// Package: config
// Title: cskit Configuration
// Description: Files are parsed into nested maps and read with dotted keys
//              (GetString("log.level")). An environment prefix lets
//              CSKIT_LOG_LEVEL override log.level. Validate checks presence,
//              type, bounds and allowed values; Decode maps the file onto a
//              struct using the file's own format.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-09-02 v0.2.0: afero filesystem and discovery for the skeleton CLI
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("cskit.toml", config.LoadOptions{
//		Format:    config.FormatAuto,
//		EnvPrefix: "CSKIT",
//	})
//	level := cfg.GetString("log.level", "info")
//	minYear := cfg.GetInt("scan.min_year", 1970)
package config
