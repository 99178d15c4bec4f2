package cmd

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwlog "github.com/msto63/cskit/foundation/core/log"
	"github.com/msto63/cskit/foundation/utils/filex"
)

func newDumpCmd(gs *globalState) *cobra.Command {
	var (
		offset int64
		length int64
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump a file",
		Long: `Writes a hex dump of the file. --offset and --length take a hexadecimal
value with '0x' prefix or a decimal with postfix K, M or G.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filex.OpenFile(gs.fs, args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			size, err := filex.Size(f)
			if err != nil {
				return err
			}
			gs.logger.Debug("dumping file", mdwlog.Fields{"file": args[0], "size": filex.FormatSize(size)})

			data, err := readRange(f, offset, length, size)
			if err != nil {
				return err
			}
			return filex.HexDump(cmd.OutOrStdout(), data, offset)
		},
	}

	cmd.Flags().Var(newHexValue(&offset), "offset", "first byte to dump")
	cmd.Flags().Var(newHexValue(&length), "length", "number of bytes to dump (default: up to the end)")
	return cmd
}

func readRange(f afero.File, offset, length, size int64) ([]byte, error) {
	if offset < 0 || offset > size {
		return nil, mdwerror.New("offset beyond end of file").
			WithCode(mdwerror.CodeOutOfRange).
			WithDetail("offset", offset).
			WithDetail("size", size)
	}
	if length <= 0 || length > size-offset {
		length = size - offset
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, mdwerror.Wrap(err, "seek failed").WithCode(mdwerror.CodeFileRead)
	}
	buf := make([]byte, length)
	if _, err := filex.ReadBytes(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
