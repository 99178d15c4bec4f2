// File: cstr.go
// Title: String Value Type
// Description: Str is an owned byte string with cached byte length,
//              codepoint length and a capacity that grows by doubling from
//              InitialCapacity. Every mutator builds a fresh buffer from
//              the fully read source and installs it, so copies of a Str
//              never observe later mutations of the original.
// Author: msto63
// Version: v0.3.0
// Created: 2025-08-11
// Modified: 2025-09-02
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation
// - 2025-08-24 v0.2.0: Codepoint access, numeric conversions
// - 2025-09-02 v0.3.0: Transcoding and line input

package cstr

import (
	"bytes"
)

// InitialCapacity is the capacity of a new or cleared Str
const InitialCapacity = 256

// NotFound is the offset reported by searches without a match
const NotFound = -1

// Rest requests the remainder of the source in Mid
const Rest = -1

// Str is a byte string with UTF-8 aware length bookkeeping.
//
// The zero value behaves like a freed Str: it reads as empty and any
// mutator re-initialises it.
type Str struct {
	buf      []byte
	lenUTF8  int
	capacity int
}

// New returns a Str holding a copy of s
func New(s string) Str {
	var out Str
	out.install([]byte(s))
	return out
}

// NewBytes returns a Str holding a copy of b
func NewBytes(b []byte) Str {
	var out Str
	out.install(b)
	return out
}

// Clear resets s to the empty state with the initial capacity
func (s *Str) Clear() {
	s.buf = make([]byte, 0, InitialCapacity)
	s.lenUTF8 = 0
	s.capacity = InitialCapacity
}

// Free releases the buffer and zeroes all fields. Freeing twice is a no-op.
func (s *Str) Free() {
	s.buf = nil
	s.lenUTF8 = 0
	s.capacity = 0
}

// Len returns the number of bytes
func (s Str) Len() int {
	return len(s.buf)
}

// LenUTF8 returns the number of codepoints found by the lenient scan
func (s Str) LenUTF8() int {
	return s.lenUTF8
}

// Cap returns the reserved capacity including the terminator slot
func (s Str) Cap() int {
	return s.capacity
}

// String returns the content as a Go string
func (s Str) String() string {
	return string(s.buf)
}

// Bytes returns a copy of the content
func (s Str) Bytes() []byte {
	return bytes.Clone(s.buf)
}

// IsEmpty reports whether s has no content
func (s Str) IsEmpty() bool {
	return len(s.buf) == 0
}

// Equal reports whether a and b hold the same bytes
func Equal(a, b Str) bool {
	return bytes.Equal(a.buf, b.buf)
}

// view exposes the content without copying. Callers must not modify it.
func (s Str) view() []byte {
	return s.buf
}

// install replaces the content of s with a private copy of content
func (s *Str) install(content []byte) {
	fresh := Str{capacity: InitialCapacity}
	fresh.grow(len(content))
	fresh.buf = make([]byte, len(content), fresh.capacity)
	copy(fresh.buf, content)
	fresh.lenUTF8 = scan(fresh.buf)
	*s = fresh
}

// grow doubles the capacity until n more bytes plus the terminator fit
func (s *Str) grow(n int) {
	if s.capacity < InitialCapacity {
		s.capacity = InitialCapacity
	}
	need := len(s.buf) + n + 1
	for need > s.capacity {
		s.capacity *= 2
	}
}

// isContinuation reports whether b has the bit pattern 10xxxxxx
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// scan counts codepoints: every byte that is not a continuation byte starts
// one. Malformed input is counted, never rejected.
func scan(b []byte) int {
	n := 0
	for _, c := range b {
		if !isContinuation(c) {
			n++
		}
	}
	return n
}

// CodepointLen returns the number of bytes of the codepoint starting at
// b[i]: 1 to 4 for a lead byte followed by its continuation bytes, 0 for a
// malformed sequence or an index outside b.
func CodepointLen(b []byte, i int) int {
	if i < 0 || i >= len(b) {
		return 0
	}

	var n int
	switch lead := b[i]; {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		n = 2
	case lead&0xF0 == 0xE0:
		n = 3
	case lead&0xF8 == 0xF0:
		n = 4
	default:
		return 0
	}

	if i+n > len(b) {
		return 0
	}
	for _, c := range b[i+1 : i+n] {
		if !isContinuation(c) {
			return 0
		}
	}
	return n
}
