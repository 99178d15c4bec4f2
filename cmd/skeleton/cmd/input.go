package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/cskit/internal/tui"
)

func newInputCmd(gs *globalState) *cobra.Command {
	var (
		prompt string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "input",
		Short: "Read lines interactively and report their lengths",
		Long: `Reads lines from stdin and prints byte and codepoint length of each.
On a terminal an interactive prompt is shown; enter accepts a line, esc or
ctrl+c ends the input. Otherwise lines are read up to end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if !tui.IsTerminal(in) {
				in = bufio.NewReader(in)
			}
			out := cmd.OutOrStdout()

			for n := 0; count <= 0 || n < count; n++ {
				line, err := tui.ReadLine(cmd.Context(), in, out, prompt)
				if errors.Is(err, tui.ErrCancelled) {
					return nil
				}
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				if !line.IsEmpty() || err == nil {
					fmt.Fprintf(out, "'%s' (%d bytes, %d codepoints)\n", line, line.Len(), line.LenUTF8())
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "> ", "prompt text")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after n lines (default: until end of input)")
	return cmd
}
