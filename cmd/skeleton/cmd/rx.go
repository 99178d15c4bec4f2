package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/rx"
	"github.com/msto63/cskit/internal/skeleton"
)

func newRxCmd(gs *globalState) *cobra.Command {
	var (
		flags   string
		offsets bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rx <subject> <pattern>",
		Short: "Match a regex repeatedly against a string and print every group",
		Long: `Matches pattern against subject from the start, then again from the end
of each match, and prints the groups of every match. Flags: x ignores
whitespace in the pattern, i matches caselessly, m lets ^ and $ match at
line breaks, s lets '.' match a newline.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !offsets {
				return skeleton.DoRegex(cmd.OutOrStdout(), args[0], args[1], flags)
			}
			return printOffsets(cmd, args[0], args[1], flags, timeout)
		},
	}

	cmd.Flags().StringVarP(&flags, "flags", "f", "", "compile flags (i.e. 'xims')")
	cmd.Flags().BoolVar(&offsets, "offsets", false, "print byte offsets of every group")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "match timeout (default: no limit)")
	return cmd
}

func printOffsets(cmd *cobra.Command, subject, pattern, flags string, timeout time.Duration) error {
	m, err := rx.NewMatcher(cstr.New(subject), pattern, flags)
	if err != nil {
		return err
	}
	m.SetTimeout(timeout)

	out := cmd.OutOrStdout()
	for n := 0; ; n++ {
		ok, err := m.Match()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "%d matches\n", n)
			return nil
		}
		for i := 0; i < m.Count(); i++ {
			fmt.Fprintf(out, "%d.%d\t%d\t%d\t'%s'\n", n, i, m.Starts[i], m.Ends[i], m.Captures[i])
		}
	}
}
