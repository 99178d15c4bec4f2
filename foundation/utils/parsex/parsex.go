// File: parsex.go
// Title: Parameter Parsing
// Description: Classification and parsing of command line parameters:
//              integer/float detection, decimal integers and the hex or
//              size notation ("0x1A", "4K", "2M", "1G").
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

package parsex

import (
	"math"
	"strconv"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
	"github.com/msto63/cskit/foundation/utils/cstr"
)

// Kind classifies the notation of a number
type Kind int

const (
	NumNone Kind = iota
	NumInt
	NumFloat
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case NumInt:
		return "int"
	case NumFloat:
		return "float"
	default:
		return "none"
	}
}

const (
	hexPrefix    = "0x"
	maxHexDigits = 16
)

// IsDigit reports whether c is an ASCII decimal digit
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsNumber classifies s as an optionally signed integer ("-12") or float
// ("+1.5", "3.") and returns the sign: -1 for '-', 1 for '+', 0 without.
// At least one digit is required; a second decimal point or any other
// character makes s NumNone.
func IsNumber(s cstr.Str) (Kind, int) {
	b := s.Bytes()
	sign, i := 0, 0
	if len(b) > 0 {
		switch b[0] {
		case '-':
			sign, i = -1, 1
		case '+':
			sign, i = 1, 1
		}
	}

	point, digits := false, 0
	for ; i < len(b); i++ {
		switch {
		case b[i] == '.':
			if point {
				return NumNone, sign
			}
			point = true
		case IsDigit(b[i]):
			digits++
		default:
			return NumNone, sign
		}
	}

	switch {
	case digits == 0:
		return NumNone, sign
	case point:
		return NumFloat, sign
	default:
		return NumInt, sign
	}
}

// ParseLong parses an optionally signed decimal integer
func ParseLong(s cstr.Str) (int64, error) {
	if kind, _ := IsNumber(s); kind != NumInt {
		return 0, mdwerrors.ParsexInvalid("ParseLong", s.String(), "decimal integer")
	}
	v, err := strconv.ParseInt(s.String(), 10, 64)
	if err != nil {
		return 0, mdwerrors.ParsexOverflow("ParseLong", s.String())
	}
	return v, nil
}

// multiplier returns the factor of a K, M or G postfix (case insensitive)
func multiplier(c byte) int64 {
	switch c {
	case 'k', 'K':
		return 1 << 10
	case 'm', 'M':
		return 1 << 20
	case 'g', 'G':
		return 1 << 30
	default:
		return 1
	}
}

// ParseHexLong parses a parameter given either as hexadecimal with a 0x
// prefix or as a decimal integer with an optional K, M or G postfix
// multiplying by 1024, 1024^2 or 1024^3. Hex values take up to 16 digits
// and are read as a 64 bit pattern. A postfix on a hex value, an empty
// parameter and a result beyond 64 bits are errors.
func ParseHexLong(s cstr.Str) (int64, error) {
	const op = "ParseHexLong"
	const expected = "0x<hex> or <decimal>[K|M|G]"

	if s.IsEmpty() {
		return 0, mdwerrors.ParsexInvalid(op, "", expected)
	}

	var pre, post, body cstr.Str
	pre.Mid(s, 0, len(hexPrefix))
	post.Mid(s, -1, 1)
	last, _ := cstr.ByteAt(post, 0)
	mult := multiplier(last)

	if pre.String() == hexPrefix {
		if mult > 1 {
			return 0, mdwerrors.ParsexInvalid(op, s.String(), "no size postfix on hex values")
		}
		body.Mid(s, len(hexPrefix), cstr.Rest)
		if body.IsEmpty() || !isHex(body) {
			return 0, mdwerrors.ParsexInvalid(op, s.String(), expected)
		}
		if body.Len() > maxHexDigits {
			return 0, mdwerrors.ParsexOverflow(op, s.String())
		}
		return cstr.HexToInt(body), nil
	}

	body = s
	if mult > 1 {
		body.Mid(s, 0, s.Len()-1)
	}
	if kind, _ := IsNumber(body); kind != NumInt {
		return 0, mdwerrors.ParsexInvalid(op, s.String(), expected)
	}
	v, err := strconv.ParseInt(body.String(), 10, 64)
	if err != nil {
		return 0, mdwerrors.ParsexOverflow(op, s.String())
	}
	if v > math.MaxInt64/mult || v < math.MinInt64/mult {
		return 0, mdwerrors.ParsexOverflow(op, s.String())
	}
	return v * mult, nil
}

func isHex(s cstr.Str) bool {
	for _, c := range s.Bytes() {
		if !IsDigit(c) && !(c >= 'a' && c <= 'f') && !(c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
