package cmd

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msto63/cskit/foundation/core/config"
	mdwlog "github.com/msto63/cskit/foundation/core/log"
	"github.com/msto63/cskit/internal/skeleton"
	"github.com/msto63/cskit/pkg/core/logging"
)

// globalState carries everything a command touches outside its flags so
// tests can swap the filesystem, the streams and the clock
type globalState struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	home   string

	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

func newGlobalState() *globalState {
	home, _ := os.UserHomeDir()
	return &globalState{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		now:    time.Now,
		home:   home,
		logger: mdwlog.Discard(),
	}
}

// setup loads the configuration and builds the logger. Flags win over the
// environment, the environment over the file.
func (gs *globalState) setup(cmd *cobra.Command) error {
	var err error
	if gs.cfgFile != "" {
		gs.cfg, err = config.LoadWithOptions(gs.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: skeleton.EnvPrefix,
			Fs:        gs.fs,
		})
	} else {
		gs.cfg, err = config.Discover(config.DiscoveryOptions{
			Paths:     gs.configPaths(),
			Filenames: []string{"cskit"},
			EnvPrefix: skeleton.EnvPrefix,
			Fs:        gs.fs,
		})
	}
	if err != nil {
		return err
	}
	if err := gs.cfg.Validate(skeleton.ConfigRules()); err != nil {
		return err
	}

	level := gs.logLevel
	if !cmd.Flags().Changed("log-level") {
		level = gs.cfg.GetString("log.level", "warn")
	}
	format := gs.logFormat
	if !cmd.Flags().Changed("log-format") {
		format = gs.cfg.GetString("log.format")
	}

	gs.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   cmd.Name(),
		Level:  level,
		Format: format,
		Output: gs.stderr,
	})
	gs.logger.Debug("configuration loaded", mdwlog.Fields{"file": gs.cfg.FilePath()})
	return nil
}

func (gs *globalState) configPaths() []string {
	paths := []string{"."}
	if gs.home != "" {
		paths = append(paths, filepath.Join(gs.home, ".config", "cskit"))
	}
	return paths
}
