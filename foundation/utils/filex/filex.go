// File: filex.go
// Title: File Utilities
// Description: File helpers on top of an afero.Fs: opening with classified
//              errors, sizes, fixed-length record reads, hex dumps and the
//              program name taken from argv[0].
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with file utilities
// - 2025-09-03 v0.2.0: afero backed record reading, hex dumps, MeName

package filex

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
	"github.com/msto63/cskit/foundation/utils/cstr"
)

// BytesPerLine is the number of bytes HexDump prints per line
const BytesPerLine = 16

// ===============================
// File Existence and Size
// ===============================

// Exists reports whether path exists in fs
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsFile reports whether path exists in fs and is not a directory
func IsFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// OpenFile opens name for reading. A missing file is reported with code
// FILE_NOT_FOUND, any other failure with FILE_ACCESS.
func OpenFile(fs afero.Fs, name string) (afero.File, error) {
	f, err := fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerrors.FilexNotFound(name, err)
		}
		return nil, mdwerrors.FilexAccess(name, "open", err)
	}

	info, err := f.Stat()
	if err == nil && info.IsDir() {
		f.Close()
		return nil, mdwerrors.FilexAccess(name, "open", errors.New("is a directory"))
	}
	return f, nil
}

// Size returns the size of an open file in bytes
func Size(f afero.File) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, mdwerrors.FilexAccess(f.Name(), "stat", err)
	}
	return info.Size(), nil
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// ===============================
// Record Reading
// ===============================

// ReadBytes fills buf completely from r. It returns false without error at
// a clean end of input, and FILE_READ when the input ends inside buf.
func ReadBytes(r io.Reader, buf []byte) (bool, error) {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, io.EOF):
		return false, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return false, mdwerrors.FilexShortRead(len(buf), n, err)
	default:
		return false, mdwerror.Wrap(err, "read failed").
			WithCode(mdwerror.CodeFileRead).
			WithOperation("filex.read")
	}
}

// ===============================
// Dumps
// ===============================

// HexString returns data as "0x" followed by two lower case hex digits per
// byte
func HexString(data []byte) cstr.Str {
	var s cstr.Str
	s.Setf("0x%x", data)
	return s
}

// HexDump writes data in lines of BytesPerLine bytes: the offset of the
// line, the bytes in hex and their printable ASCII characters. offset is
// the position of data[0] in its source.
func HexDump(w io.Writer, data []byte, offset int64) error {
	for start := 0; start < len(data); start += BytesPerLine {
		end := start + BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[start:end]

		var s cstr.Str
		s.Setf("%08x ", offset+int64(start))
		for i := 0; i < BytesPerLine; i++ {
			if i == BytesPerLine/2 {
				s.CatString(s, " ")
			}
			if i < len(line) {
				s.CatString(s, fmt.Sprintf(" %02x", line[i]))
			} else {
				s.CatString(s, "   ")
			}
		}
		s.CatString(s, "  |"+printable(line)+"|\n")

		if _, err := io.WriteString(w, s.String()); err != nil {
			return mdwerror.Wrap(err, "cannot write dump").
				WithCode(mdwerror.CodeFileAccess).
				WithOperation("filex.HexDump")
		}
	}
	return nil
}

func printable(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		out[i] = c
	}
	return string(out)
}

// ===============================
// Program Name
// ===============================

// MeName returns the part of argv0 after its last '/', or argv0 itself
func MeName(argv0 string) cstr.Str {
	path := cstr.New(argv0)
	pos, ok := cstr.FindLast(path, cstr.New("/"), path.Len())
	if !ok {
		return path
	}

	var dir, name cstr.Str
	if err := cstr.SplitAt(pos, &dir, &name, path, 1); err != nil {
		return path
	}
	return name
}
