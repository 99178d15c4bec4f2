package cmd

import (
	"io"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/cskit/foundation/core/log"
	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/filex"
)

func newTranscodeCmd(gs *globalState) *cobra.Command {
	var (
		from   string
		to     string
		file   string
		factor int
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "transcode [text]",
		Short: "Convert text or a file between character encodings",
		Long: `Converts the argument, or the content of --file, from one encoding to
another and writes the raw result. Encoding names follow IANA and WHATWG
(e.g. UTF-8, ISO-8859-1, latin1, windows-1252, UTF-16LE).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := transcodeSource(gs, file, args)
			if err != nil {
				return err
			}

			var result cstr.Str
			if err := result.Iconv(source, from, to, factor); err != nil {
				return err
			}
			gs.logger.Debug("transcoded", mdwlog.Fields{
				"from": from, "to": to, "in": source.Len(), "out": result.Len(),
			})

			out := cmd.OutOrStdout()
			if dump {
				return filex.HexDump(out, result.Bytes(), 0)
			}
			_, err = out.Write(result.Bytes())
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "UTF-8", "source encoding")
	cmd.Flags().StringVar(&to, "to", "UTF-8", "target encoding")
	cmd.Flags().StringVar(&file, "file", "", "read the source from this file")
	cmd.Flags().IntVar(&factor, "factor", 2, "expected output/input size ratio")
	cmd.Flags().BoolVar(&dump, "hex", false, "write a hex dump instead of raw bytes")
	return cmd
}

func transcodeSource(gs *globalState, file string, args []string) (cstr.Str, error) {
	if file == "" {
		if len(args) == 0 {
			return cstr.Str{}, errMissingArgument("text or --file")
		}
		return cstr.New(args[0]), nil
	}

	f, err := filex.OpenFile(gs.fs, file)
	if err != nil {
		return cstr.Str{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return cstr.Str{}, err
	}
	return cstr.NewBytes(data), nil
}
