// File: doc.go
// Title: Package Documentation for rx
// Description: Package rx provides an iterative regular expression
//              matcher over cstr.Str subjects.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

// Package rx walks the matches of a pattern in a subject one at a time.
//
//	m, err := rx.NewMatcher(cstr.New("a=1, b=22"), `(\w)=(\d+)`, "")
//	if err != nil {
//		return err
//	}
//	for {
//		ok, err := m.Match()
//		if err != nil || !ok {
//			break
//		}
//		fmt.Println(m.Captures[1], m.Captures[2], m.Offset())
//	}
//
// Captures, Starts and Ends describe the last successful match; group 0 is
// the whole match. Groups that did not participate have empty captures and
// Unmatched offsets. The cursor moves past empty matches by one codepoint
// so iteration always terminates.
//
// Compile failures are reported with code REGEX_COMPILE, unknown flag
// letters with INVALID_INPUT and engine failures such as timeouts with
// REGEX_MATCH.
package rx
