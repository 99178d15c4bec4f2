// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex converts between Unix ticks and the
//              "YYYY/MM/DD, hh:mm:ss" notation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-09-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-09-03 v0.2.0: Tick conversions on cstr.Str values

// Package timex converts between Unix ticks (seconds since the epoch, UTC)
// and the date/time notation used in reports and on the command line.
//
//	s := timex.TicksToDateTime(1509707663, " (UTC)") // "2017/11/03, 11:14:23 (UTC)"
//	ticks, err := timex.DateTimeToTicks(cstr.New("2017/11/03"))
//
// All conversions are in UTC; the local time zone is never consulted.
//
// Range models the inclusive tick window built from a first and last year:
//
//	r := timex.YearRange(2002, 2020, time.Now()) // 2002/01/01 .. 2019/12/31, 23:59:59
//	r.Contains(ticks)
package timex
