// File: mutate.go
// Title: String Mutators
// Description: Operations that replace the content of a destination Str:
//              set, formatted set, concatenation, BASIC style MID$, split,
//              trim and control character removal. Sources are taken by
//              value and read completely before the destination changes,
//              so a Str may be passed as its own source.
// Author: msto63
// Version: v0.3.0
// Created: 2025-08-11
// Modified: 2025-09-02
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation
// - 2025-08-24 v0.2.0: SplitAt, bounds-checked Trim
// - 2025-09-02 v0.3.0: Sanitize

package cstr

import (
	"fmt"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
)

// Set replaces the content of s with text
func (s *Str) Set(text string) {
	s.install([]byte(text))
}

// SetBytes replaces the content of s with a copy of b
func (s *Str) SetBytes(b []byte) {
	s.install(b)
}

// SetStr replaces the content of s with the content of src
func (s *Str) SetStr(src Str) {
	s.install(src.view())
}

// Setf replaces the content of s with the formatted text
func (s *Str) Setf(format string, args ...interface{}) {
	s.install([]byte(fmt.Sprintf(format, args...)))
}

// Cat sets s to left followed by right. s may be left or right.
func (s *Str) Cat(left, right Str) {
	joined := make([]byte, 0, left.Len()+right.Len())
	joined = append(joined, left.view()...)
	joined = append(joined, right.view()...)
	s.install(joined)
}

// CatString sets s to left followed by right
func (s *Str) CatString(left Str, right string) {
	s.Cat(left, New(right))
}

// Mid sets s to length bytes of source starting at offset.
//
// A negative offset counts from the end of source. Rest (or any negative
// length) selects everything from offset on. An offset outside source or a
// zero length yields an empty result; longer lengths are clamped.
func (s *Str) Mid(source Str, offset, length int) {
	s.install(midBytes(source.view(), offset, length))
}

func midBytes(src []byte, offset, length int) []byte {
	n := len(src)
	if offset < 0 {
		offset = n + offset
	}
	if offset < 0 || offset > n || length == 0 {
		return nil
	}
	if length < 0 || length > n-offset {
		length = n - offset
	}
	return src[offset : offset+length]
}

// Split finds the first delimiter in source and sets left to the bytes
// before it and right to the bytes after it. Without a match left and right
// are untouched and the result is (NotFound, false).
func Split(left, right *Str, source, delimiter Str) (int, bool) {
	pos, ok := Find(source, delimiter, 0)
	if !ok {
		return NotFound, false
	}
	src := source.view()
	l := src[:pos]
	r := src[pos+delimiter.Len():]
	left.install(l)
	right.install(r)
	return pos, true
}

// SplitAt sets left to source[:pos] and right to the bytes following the
// width bytes at pos. pos and width must each lie in [0, source.Len()];
// otherwise left and right are untouched and ErrOutOfRange is returned.
func SplitAt(pos int, left, right *Str, source Str, width int) error {
	n := source.Len()
	if pos < 0 || pos > n {
		return mdwerrors.CstrOutOfRange("SplitAt", pos, n)
	}
	if width < 0 || width > n {
		return mdwerrors.CstrOutOfRange("SplitAt", width, n)
	}

	src := source.view()
	end := pos + width
	if end > n {
		end = n
	}
	l := src[:pos]
	r := src[end:]
	left.install(l)
	right.install(r)
	return nil
}

func isBlank(c byte, withNewlines bool) bool {
	switch c {
	case ' ', '\t':
		return true
	case '\n', '\r':
		return withNewlines
	default:
		return false
	}
}

// Trim sets s to source without leading and trailing spaces and tabs, and
// without CR and LF when withNewlines is set.
func (s *Str) Trim(source Str, withNewlines bool) {
	src := source.view()
	lo, hi := 0, len(src)
	for lo < hi && isBlank(src[lo], withNewlines) {
		lo++
	}
	for hi > lo && isBlank(src[hi-1], withNewlines) {
		hi--
	}
	s.install(src[lo:hi])
}

// Sanitize removes every byte below 0x20 from s
func (s *Str) Sanitize() {
	src := s.view()
	out := make([]byte, 0, len(src))
	for _, c := range src {
		if c >= 0x20 {
			out = append(out, c)
		}
	}
	s.install(out)
}
