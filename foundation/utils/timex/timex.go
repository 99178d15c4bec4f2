// File: timex.go
// Title: Tick Conversions
// Description: Converts between Unix ticks (seconds, UTC) and the
//              "YYYY/MM/DD, hh:mm:ss" notation, computes year bounds and
//              models the inclusive tick range records are checked against.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with time utilities
// - 2025-09-03 v0.2.0: Reduced to tick conversions on cstr.Str values

package timex

import (
	"fmt"
	"time"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/parsex"
)

// Layouts of the short and long date/time notation
const (
	DateLayout     = "2006/01/02"
	DateTimeLayout = "2006/01/02, 15:04:05"
)

// Year limits of 32 bit tick values
const (
	MinYear = 1970
	MaxYear = 2038
)

// ===============================
// Conversions
// ===============================

// TicksToDateTime formats ticks as "YYYY/MM/DD, hh:mm:ss" in UTC followed by
// suffix
func TicksToDateTime(ticks int64, suffix string) cstr.Str {
	var s cstr.Str
	s.Setf("%s%s", time.Unix(ticks, 0).UTC().Format(DateTimeLayout), suffix)
	return s
}

// TicksFromFields returns the ticks of the given UTC date and time. Values
// outside their usual ranges are normalised, so month 13 is January of the
// following year.
func TicksFromFields(year, month, day, hour, minute, sec int) int64 {
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC).Unix()
}

// field reads the decimal number of width bytes at offset
func field(s cstr.Str, offset, width int) int {
	var item cstr.Str
	item.Mid(s, offset, width)
	return int(cstr.ToInt(item))
}

// DateTimeToTicks converts "YYYY/MM/DD" or "YYYY/MM/DD, hh:mm:ss" (UTC) to
// ticks
func DateTimeToTicks(s cstr.Str) (int64, error) {
	kind := parsex.CheckDateTime(s)
	if kind == parsex.DTNone {
		return 0, mdwerrors.TimexParseError(s.String(), DateTimeLayout)
	}

	year, month, day := field(s, 0, 4), field(s, 5, 2), field(s, 8, 2)
	var hour, min, sec int
	if kind == parsex.DTLong {
		hour, min, sec = field(s, 12, 2), field(s, 15, 2), field(s, 18, 2)
	}
	return TicksFromFields(year, month, day, hour, min, sec), nil
}

// ===============================
// Year Bounds
// ===============================

// YearStart returns the ticks of January 1st, 00:00:00 of year
func YearStart(year int) int64 {
	return TicksFromFields(year, 1, 1, 0, 0, 0)
}

// YearEnd returns the ticks of December 31st, 23:59:59 of year
func YearEnd(year int) int64 {
	return TicksFromFields(year, 12, 31, 23, 59, 59)
}

// ===============================
// Ranges
// ===============================

// Range is an inclusive range of ticks
type Range struct {
	Min int64
	Max int64
}

// YearRange returns the range from the start of first to the end of the
// year before last. A last of zero leaves the upper bound at now.
func YearRange(first, last int, now time.Time) Range {
	r := Range{Min: YearStart(first), Max: now.Unix()}
	if last != 0 {
		r.Max = YearEnd(last - 1)
	}
	return r
}

// Contains reports whether ticks lies within r
func (r Range) Contains(ticks int64) bool {
	return ticks >= r.Min && ticks <= r.Max
}

// IsValid reports whether r is not empty
func (r Range) IsValid() bool {
	return r.Min < r.Max
}

// Duration returns the length of r
func (r Range) Duration() time.Duration {
	return time.Duration(r.Max-r.Min) * time.Second
}

// String returns both bounds in date/time notation
func (r Range) String() string {
	return fmt.Sprintf("%s .. %s", TicksToDateTime(r.Min, ""), TicksToDateTime(r.Max, ""))
}
