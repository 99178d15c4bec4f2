package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/filex"
	"github.com/msto63/cskit/internal/skeleton"
	"github.com/msto63/cskit/internal/tui"
)

func newInspectCmd(gs *globalState) *cobra.Command {
	var (
		plain bool
		dump  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <text> [text...]",
		Short: "Show lengths, capacity and codepoints of a string",
		Long: `Shows the byte length, codepoint length and capacity of each argument
followed by one line per codepoint. On a terminal the report is rendered as
a styled box unless --plain is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styled := !plain && tui.IsTerminal(out)

			for _, arg := range args {
				s := cstr.New(arg)
				if styled {
					fmt.Fprintln(out, tui.RenderSummary(s))
				} else {
					if err := skeleton.PrintInternals(out, s); err != nil {
						return err
					}
					fmt.Fprintf(out, "graphemes     = %d\n", tui.Graphemes(arg))
					fmt.Fprintf(out, "columns       = %d\n", tui.Width(arg))
				}
				if dump {
					if err := filex.HexDump(out, s.Bytes(), 0); err != nil {
						return err
					}
				}
			}
			gs.logger.Debug("inspected strings: " + strings.Join(args, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "plain text report even on a terminal")
	cmd.Flags().BoolVar(&dump, "hex", false, "append a hex dump of the bytes")
	return cmd
}
