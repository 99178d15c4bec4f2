package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/parsex"
	"github.com/msto63/cskit/foundation/utils/timex"
)

func newParseCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value> [value...]",
		Short: "Classify values as number, hex/size parameter or date/time",
		Long: `Reports for each value whether it is an integer or float, what it yields
as a hex/size parameter ('0x' prefix or K, M, G postfix) and whether it is
a date ("YYYY/MM/DD") or date/time ("YYYY/MM/DD, hh:mm:ss") in UTC.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printClassification(out, cstr.New(arg))
			}
			gs.logger.Debug(fmt.Sprintf("classified %d values", len(args)))
			return nil
		},
	}
}

func printClassification(w io.Writer, s cstr.Str) {
	fmt.Fprintf(w, "value    = '%s'\n", s)

	kind, sign := parsex.IsNumber(s)
	fmt.Fprintf(w, "number   = %s (sign %d)\n", kind, sign)
	switch kind {
	case parsex.NumInt:
		fmt.Fprintf(w, "int      = %d\n", cstr.ToInt(s))
	case parsex.NumFloat:
		fmt.Fprintf(w, "float    = %s\n", cstr.FloatStr(cstr.ToFloat(s)))
	}

	if v, err := parsex.ParseHexLong(s); err != nil {
		fmt.Fprintf(w, "hexlong  = error: %v\n", err)
	} else {
		fmt.Fprintf(w, "hexlong  = %d (%s)\n", v, cstr.HexStr(v))
	}

	dt := parsex.CheckDateTime(s)
	fmt.Fprintf(w, "datetime = %s\n", dt)
	if dt != parsex.DTNone {
		if ticks, err := timex.DateTimeToTicks(s); err == nil {
			fmt.Fprintf(w, "ticks    = %d (%s)\n", ticks, timex.TicksToDateTime(ticks, " UTC"))
		}
	}
}
