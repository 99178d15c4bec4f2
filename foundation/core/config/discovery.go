// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known directories for a configuration file
//              and loads the first one found.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of discovery
// - 2025-09-02 v0.2.0: afero based lookup, optional result

package config

import (
	"path/filepath"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

// DiscoveryOptions configures the search for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Required   bool
	Fs         afero.Fs
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	exts := options.Extensions
	if len(exts) == 0 {
		exts = []string{".toml", ".yaml", ".yml"}
	}
	var files []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range exts {
				files = append(files, filepath.Join(dir, name+ext))
			}
		}
	}
	return files
}

// Discover loads the first candidate file that exists. Without a match it
// returns an empty configuration, or a CONFIG_NOT_FOUND error when a file
// is required.
func Discover(options DiscoveryOptions) (*Config, error) {
	fs := options.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		info, err := fs.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Fs:        fs,
		})
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found").
			WithCode(mdwerror.CodeConfigNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}
	return Empty(options.EnvPrefix), nil
}
