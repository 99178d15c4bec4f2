// File: doc.go
// Title: Package Documentation for cstr
// Description: Package cstr provides Str, a byte string with UTF-8 aware
//              length bookkeeping, doubling capacity and BASIC style
//              substring operations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-08-11
// Modified: 2025-09-02
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation
// - 2025-09-02 v0.3.0: Transcoding, line input, documentation

// Package cstr provides Str, an owned byte string that tracks its byte
// length, its codepoint length and a doubling capacity.
//
// # Lengths
//
// Len counts bytes. LenUTF8 counts every byte that is not a UTF-8
// continuation byte (10xxxxxx). The scan is lenient: malformed sequences
// are counted, not rejected. Only CodepointAt and Codepoints decode and
// report ErrMalformed. Bytes are stored verbatim, including NUL.
//
// # Capacity
//
// A new or cleared Str has capacity InitialCapacity (256). Capacity doubles
// until the content plus one terminator slot fits; it never shrinks below
// what the content needs and is always 256 times a power of two.
//
// # Value semantics
//
// Mutators (Set, Setf, Cat, Mid, Trim, Sanitize, Split, SplitAt, FromInt,
// FromHex, FromFloat, Iconv) read their sources completely and install a
// fresh buffer. A Str can be its own source, and a copy made with plain
// assignment keeps its content when the original is mutated later.
//
// # Offsets
//
// All offsets are byte offsets. Mid accepts a negative offset counted from
// the end and the Rest length for "to the end":
//
//	var s cstr.Str
//	s.Mid(cstr.New("abcdefgh"), -3, cstr.Rest) // "fgh"
//	s.Mid(cstr.New("abcdefgh"), 2, 3)          // "cde"
//
// # Failures
//
// Searches report (NotFound, false). Range and encoding problems are
// *mdwerror.Error values matching ErrOutOfRange, ErrMalformed,
// ErrConversionUnavailable or ErrConversionFailed under errors.Is. The
// package never logs and never panics on bad input.
package cstr
