// File: input.go
// Title: Line Input
// Description: Reads one line byte by byte into a Str.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-02
// Modified: 2025-09-02

package cstr

import (
	"errors"
	"io"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
)

// Input writes prompt to w (when both are set) and reads bytes from r up to
// the next '\n', which is consumed but not stored. At end of stream the
// bytes read so far are returned together with io.EOF. Other read errors
// are returned wrapped, also with the partial line.
func Input(w io.Writer, prompt string, r io.ByteReader) (Str, error) {
	if w != nil && prompt != "" {
		if _, err := io.WriteString(w, prompt); err != nil {
			return New(""), mdwerror.Wrap(err, "cannot write prompt").
				WithCode(mdwerror.CodeFileAccess).
				WithOperation("cstr.Input")
		}
	}

	line := make([]byte, 0, InitialCapacity)
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return NewBytes(line), io.EOF
			}
			return NewBytes(line), mdwerror.Wrap(err, "cannot read input").
				WithCode(mdwerror.CodeFileRead).
				WithOperation("cstr.Input")
		}
		if c == '\n' {
			return NewBytes(line), nil
		}
		line = append(line, c)
	}
}
