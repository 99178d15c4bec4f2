// File: query.go
// Title: String Queries
// Description: Read-only operations on Str: byte offset search forward and
//              backward, byte and codepoint access, and the non-ASCII test.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-11
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-11 v0.1.0: Find, FindLast, ByteAt
// - 2025-08-24 v0.2.0: CodepointAt with distinct range and encoding errors

package cstr

import (
	"bytes"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
)

// Find returns the byte offset of the first occurrence of needle in
// haystack at or after start. It reports false for an empty needle, a start
// outside haystack or no match.
func Find(haystack, needle Str, start int) (int, bool) {
	h, n := haystack.view(), needle.view()
	if len(n) == 0 || start < 0 || start >= len(h) {
		return NotFound, false
	}
	i := bytes.Index(h[start:], n)
	if i < 0 {
		return NotFound, false
	}
	return start + i, true
}

// FindLast returns the byte offset of the last occurrence of needle in
// haystack that starts at or before limit.
func FindLast(haystack, needle Str, limit int) (int, bool) {
	last := NotFound
	for pos := 0; ; {
		i, ok := Find(haystack, needle, pos)
		if !ok || i > limit {
			break
		}
		last = i
		pos = i + 1
	}
	return last, last != NotFound
}

// ByteAt returns the byte at offset i
func ByteAt(source Str, i int) (byte, bool) {
	if i < 0 || i >= source.Len() {
		return 0, false
	}
	return source.buf[i], true
}

// CodepointAt returns the raw bytes of the codepoint with index i, counted
// the same way as LenUTF8. It fails with ErrOutOfRange when i is not below
// LenUTF8 and with ErrMalformed when the sequence at that position is not
// valid UTF-8.
func CodepointAt(source Str, i int) ([]byte, error) {
	if i < 0 || i >= source.LenUTF8() {
		return nil, mdwerrors.CstrOutOfRange("CodepointAt", i, source.LenUTF8())
	}

	b := source.view()
	off := -1
	for idx, count := 0, 0; idx < len(b); idx++ {
		if isContinuation(b[idx]) {
			continue
		}
		if count == i {
			off = idx
			break
		}
		count++
	}

	n := CodepointLen(b, off)
	if n == 0 {
		return nil, mdwerrors.CstrMalformed("CodepointAt", i)
	}
	return bytes.Clone(b[off : off+n]), nil
}

// Codepoints splits source into the raw bytes of its codepoints. A
// malformed sequence stops the walk with ErrMalformed.
func Codepoints(source Str) ([][]byte, error) {
	b := source.view()
	out := make([][]byte, 0, source.LenUTF8())
	for off := 0; off < len(b); {
		if isContinuation(b[off]) {
			off++
			continue
		}
		n := CodepointLen(b, off)
		if n == 0 {
			return out, mdwerrors.CstrMalformed("Codepoints", len(out))
		}
		out = append(out, bytes.Clone(b[off:off+n]))
		off += n
	}
	return out, nil
}

// IsUTF8 reports whether source contains at least one multi-byte sequence,
// i.e. its codepoint length differs from its byte length
func IsUTF8(source Str) bool {
	return source.LenUTF8() != source.Len()
}
