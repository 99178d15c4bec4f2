package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwlog "github.com/msto63/cskit/foundation/core/log"
	"github.com/msto63/cskit/internal/skeleton"
	"github.com/msto63/cskit/pkg/core/logging"
	"github.com/msto63/cskit/pkg/core/version"
)

// Execute runs the command line against the process environment
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, newGlobalState(), nil)
}

func execute(ctx context.Context, gs *globalState, args []string) error {
	root := newRootCmd(gs)
	if args != nil {
		root.SetArgs(args)
	}
	if err := root.ExecuteContext(ctx); err != nil {
		printError(gs.stderr, err)
		return err
	}
	return nil
}

func newRootCmd(gs *globalState) *cobra.Command {
	opts := skeleton.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "skeleton [flags] [ox=hex] file1 [file2 ...]",
		Short: "Scan position records and exercise the cskit string toolkit",
		Long: `skeleton reads records of three little-endian int32 values (longitude,
latitude, unix ticks) from each file and prints the ones that fall into the
year range as tab separated lines.

'-e' and 'ox=' take a hexadecimal value with '0x' prefix or a decimal with
postfix K, M or G (Kilo-, Mega- and Gigabytes based on 1024).`,
		Version:       version.Get("skeleton").Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return gs.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, gs, &opts, args)
		},
	}
	rootCmd.SetIn(gs.stdin)
	rootCmd.SetOut(gs.stdout)
	rootCmd.SetErr(gs.stderr)
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gs.cfgFile, "config", "", "config file (default: ./cskit.{toml,yaml} or ~/.config/cskit/cskit.*)")
	pf.StringVar(&gs.logLevel, "log-level", "warn", fmt.Sprintf("log level %v", logging.LevelNames))
	pf.StringVar(&gs.logFormat, "log-format", "", "log format json, text, console or logfmt (default: console on a terminal)")

	f := rootCmd.Flags()
	f.BoolVarP(&opts.Header, "header", "t", false, "print the column header")
	f.BoolVarP(&opts.PrintOffset, "offset", "o", false, "print additional offset column")
	f.VarP(newIntValue(&opts.OptX), "optx", "x", "this is an option eating n")
	f.StringVarP(&opts.OptXStr, "optx-str", "X", opts.OptXStr, "this is an option eating a string")
	f.StringVar(&opts.Rx, "rx", opts.Rx, "regex to match the string given by '-X'")
	f.StringVar(&opts.RxFlags, "rxF", "", "flags the regex is compiled with (i.e. 'xims')")
	f.VarP(newHexValue(&opts.OptX), "hex", "e", "this is a hex/dec option eating a hex/dec string")
	f.VarP(newYearValue(&opts.MinYear), "min-year", "y", "min year to consider a record as valid (default 2002)")
	f.VarP(newYearValue(&opts.MaxYear), "max-year", "Y", "max year to consider a record as valid (default 'now')")
	f.StringVar(&opts.Output, "output", "", "write entries to this file instead of stdout")
	f.BoolVar(&opts.Debug, "debug", false, "print options, string internals and regex runs before scanning")

	rootCmd.AddCommand(
		newInspectCmd(gs),
		newRxCmd(gs),
		newParseCmd(gs),
		newTranscodeCmd(gs),
		newDumpCmd(gs),
		newInputCmd(gs),
		newVersionCmd(gs),
	)
	return rootCmd
}

func runScan(cmd *cobra.Command, gs *globalState, opts *skeleton.Options, args []string) error {
	if err := opts.SplitArgs(args); err != nil {
		return err
	}
	if err := skeleton.ApplyConfig(gs.cfg, opts, cmd.Flags().Changed); err != nil {
		return err
	}
	if err := opts.Validate(gs.now()); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := gs.fs.Create(opts.Output)
		if err != nil {
			return mdwerror.Wrap(err, "cannot create output").
				WithCode(mdwerror.CodeFileAccess).
				WithDetail("path", opts.Output)
		}
		defer f.Close()
		out = f
	}

	if opts.Debug {
		if err := skeleton.Debug(cmd.OutOrStdout(), *opts); err != nil {
			return err
		}
	}

	stats, err := skeleton.Run(cmd.Context(), gs.fs, *opts, out, gs.logger)
	if err != nil {
		return err
	}
	gs.logger.Debug("scan stats", mdwlog.Fields{
		"truncated":   stats.Truncated,
		"out_of_time": stats.OutOfTime,
	})
	return nil
}

func errMissingArgument(what string) error {
	return mdwerror.New("missing argument: " + what).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("skeleton.args")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
