// Package log provides structured logging for cskit tools.
//
// Package: log
// Title: cskit Structured Logging
// Description: Levels from trace to fatal, persistent context fields, a per
//              run id and JSON, text, console and logfmt output. Library
//              packages of the foundation never log; the skeleton CLI creates
//              one logger per run and passes it down explicitly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-09-02 v0.2.0: Trimmed to the CLI use case
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "skeleton",
//	})
//	logger.Info("scanning file", log.Fields{"file": name, "size": size})
//	logger.LogError(err)
package log
