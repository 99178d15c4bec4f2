// File: datetime.go
// Title: Date/Time Format Check
// Description: Recognises the short "YYYY/MM/DD" and the long
//              "YYYY/MM/DD, hh:mm:ss" date/time notations by length and
//              digit positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

package parsex

import (
	"github.com/msto63/cskit/foundation/utils/cstr"
)

// DateTimeKind tells which date/time notation a string uses
type DateTimeKind int

const (
	DTNone DateTimeKind = iota
	DTShort
	DTLong
)

// Lengths of the two notations in bytes
const (
	ShortDateTimeLen = len("2006/01/02")
	LongDateTimeLen  = len("2006/01/02, 15:04:05")
)

var (
	dateDigits = []int{0, 1, 2, 3, 5, 6, 8, 9}
	timeDigits = []int{12, 13, 15, 16, 18, 19}
)

// String returns the name of the notation
func (k DateTimeKind) String() string {
	switch k {
	case DTShort:
		return "short"
	case DTLong:
		return "long"
	default:
		return "none"
	}
}

// CheckDateTime reports the notation of s. Only the digit positions are
// checked, so any separator characters are accepted.
func CheckDateTime(s cstr.Str) DateTimeKind {
	if s.Len() != ShortDateTimeLen && s.Len() != LongDateTimeLen {
		return DTNone
	}

	b := s.Bytes()
	if !digitsAt(b, dateDigits) {
		return DTNone
	}
	if s.Len() == ShortDateTimeLen {
		return DTShort
	}
	if !digitsAt(b, timeDigits) {
		return DTNone
	}
	return DTLong
}

func digitsAt(b []byte, positions []int) bool {
	for _, p := range positions {
		if !IsDigit(b[p]) {
			return false
		}
	}
	return true
}
