// File: numeric.go
// Title: Numeric Conversions
// Description: Conversions between Str and 64 bit integers (decimal and
//              hexadecimal) and floats. Parsing is lenient in the manner of
//              strtoll: leading blanks are skipped, the longest numeric
//              prefix is used and anything after it is ignored. Integer
//              overflow saturates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-24
// Modified: 2025-09-02
//
// Change History:
// - 2025-08-24 v0.1.0: Decimal and hex conversions
// - 2025-09-02 v0.2.0: Hex values round-trip through their bit pattern

package cstr

import (
	"math"
	"strconv"
)

const floatDigits = 6

// FromInt sets s to the decimal representation of v
func (s *Str) FromInt(v int64) {
	s.install(strconv.AppendInt(nil, v, 10))
}

// IntStr returns a new Str holding the decimal representation of v
func IntStr(v int64) Str {
	var s Str
	s.FromInt(v)
	return s
}

// ToInt parses the leading decimal integer of s. Input without digits
// yields 0; values beyond the int64 range saturate.
func ToInt(s Str) int64 {
	b := s.view()
	i := skipBlanks(b, 0)
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	var acc uint64
	overflow := false
	for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
		d := uint64(b[i] - '0')
		if acc > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		acc = acc*10 + d
	}

	switch {
	case neg && (overflow || acc > 1<<63):
		return math.MinInt64
	case neg:
		return -int64(acc)
	case overflow || acc > math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(acc)
	}
}

// FromHex sets s to "0x" followed by the lower case hex digits of the bit
// pattern of v
func (s *Str) FromHex(v int64) {
	out := append([]byte("0x"), strconv.FormatUint(uint64(v), 16)...)
	s.install(out)
}

// HexStr returns a new Str holding the hex representation of v
func HexStr(v int64) Str {
	var s Str
	s.FromHex(v)
	return s
}

// HexToInt parses the leading hex integer of s, with or without 0x prefix.
// Up to 16 digits are read as a 64 bit pattern, so HexToInt inverts FromHex
// for every value. Longer inputs saturate.
func HexToInt(s Str) int64 {
	b := s.view()
	i := skipBlanks(b, 0)
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}
	if i+1 < len(b) && b[i] == '0' && (b[i+1] == 'x' || b[i+1] == 'X') && i+2 < len(b) && hexDigit(b[i+2]) >= 0 {
		i += 2
	}

	var acc uint64
	overflow := false
	for ; i < len(b); i++ {
		d := hexDigit(b[i])
		if d < 0 {
			break
		}
		if acc > math.MaxUint64>>4 {
			overflow = true
			continue
		}
		acc = acc<<4 | uint64(d)
	}

	switch {
	case overflow && neg:
		return math.MinInt64
	case overflow:
		return math.MaxInt64
	case neg:
		return -int64(acc)
	default:
		return int64(acc)
	}
}

// FromFloat sets s to v in fixed notation with six decimals
func (s *Str) FromFloat(v float64) {
	s.install(strconv.AppendFloat(nil, v, 'f', floatDigits, 64))
}

// FloatStr returns a new Str holding v in fixed notation
func FloatStr(v float64) Str {
	var s Str
	s.FromFloat(v)
	return s
}

// ToFloat parses the leading decimal floating point number of s. Input
// without a number yields 0.
func ToFloat(s Str) float64 {
	b := s.view()
	start := skipBlanks(b, 0)
	end := floatPrefix(b, start)
	if end == start {
		return 0
	}
	// out of range input yields ±Inf or 0 together with an error
	v, _ := strconv.ParseFloat(string(b[start:end]), 64)
	return v
}

// floatPrefix returns the end of the longest [+-]digits[.digits][e[+-]digits]
// prefix of b starting at i
func floatPrefix(b []byte, i int) int {
	start := i
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(b) && isDigit(b[i]); i++ {
		digits++
	}
	if i < len(b) && b[i] == '.' {
		j := i + 1
		frac := 0
		for ; j < len(b) && isDigit(b[j]); j++ {
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		k := j
		for ; k < len(b) && isDigit(b[k]); k++ {
		}
		if k > j {
			i = k
		}
	}
	return i
}

func skipBlanks(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r' || b[i] == '\v' || b[i] == '\f') {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
