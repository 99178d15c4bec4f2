// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     skeleton
// Description: String internals, regex and option reports
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package skeleton

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/rx"
	"github.com/msto63/cskit/foundation/utils/timex"
)

// Separator is the ruler printed around codepoint listings
var Separator = strings.Repeat("-", 80)

// PrintInternals writes the length bookkeeping of s followed by one line
// per codepoint
func PrintInternals(w io.Writer, s cstr.Str) error {
	kind := "ASCII"
	if cstr.IsUTF8(s) {
		kind = "UTF-8"
	}

	p := &printer{w: w}
	p.printf("cstr.len      = %d\n", s.Len())
	p.printf("cstr.lenUTF8  = %d\n", s.LenUTF8())
	p.printf("cstr.capacity = %d\n", s.Cap())
	p.printf("cstr.text     = %s (%s)\n", s, kind)
	p.printf("%s\n", Separator)
	for i := 0; i < s.LenUTF8(); i++ {
		cp, err := cstr.CodepointAt(s, i)
		if err != nil {
			p.printf("cstr @ [%02d] = <%v>\n", i, err)
			break
		}
		if len(cp) == 1 {
			p.printf("cstr @ [%02d] = '%s' (1 byte)\n", i, cp)
		} else {
			p.printf("cstr @ [%02d] = '%s' (%d bytes)\n", i, cp, len(cp))
		}
	}
	p.printf("%s\n", Separator)
	return p.err
}

// DoRegex matches pattern against subject repeatedly and writes every
// group of every match. A pattern that does not compile is reported in the
// output and returned.
func DoRegex(w io.Writer, subject, pattern, flags string) error {
	p := &printer{w: w}
	p.printf("\nMatch: '%s'\n", subject)
	p.printf("With:  '%s'\n", pattern)
	p.printf("Flags: '%s'\n", flags)

	m, err := rx.NewMatcher(cstr.New(subject), pattern, flags)
	if err != nil {
		p.printf("%v\n", err)
		if p.err != nil {
			return p.err
		}
		return err
	}

	p.printf("Start offset = %d\n", m.Offset())
	for {
		ok, err := m.Match()
		if err != nil {
			p.printf("%v\n", err)
			return err
		}
		if !ok {
			break
		}
		for i, c := range m.Captures {
			p.printf("$%d = '%s'\n", i, c)
		}
		p.printf("Next offset = %d\n", m.Offset())
	}
	p.printf("----\n")
	return p.err
}

// PrintOptions writes the effective option set
func PrintOptions(w io.Writer, o Options) error {
	p := &printer{w: w}
	p.printf("header      = %t\n", o.Header)
	p.printf("printOffset = %t\n", o.PrintOffset)
	p.printf("optX        = %d\n", o.OptX)
	p.printf("optXStr     = '%s'\n", o.OptXStr)
	p.printf("rx          = '%s'\n", o.Rx)
	p.printf("rxFlags     = '%s'\n", o.RxFlags)
	p.printf("ticksMin    = %10d (%s)\n", o.Range.Min, timex.TicksToDateTime(o.Range.Min, " (UTC)"))
	p.printf("ticksMax    = %10d (%s)\n", o.Range.Max, timex.TicksToDateTime(o.Range.Max, " (UTC)"))
	p.printf("files       = %s\n", strings.Join(o.Files, ", "))
	return p.err
}

// Debug writes the option set, the internals of a few sample strings and
// the regex runs for the built in and the configured pattern
func Debug(w io.Writer, o Options) error {
	for _, sample := range []string{"abcd", "aßcöäüd", "ñáè"} {
		if err := PrintInternals(w, cstr.New(sample)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := PrintOptions(w, o); err != nil {
		return err
	}

	sub := cstr.New("([0-9A-F]{2})")
	var pattern cstr.Str
	pattern.Setf("%s : %s : %s : %s : %s", sub, sub, sub, sub, sub)
	if err := DoRegex(w, DefaultOptXStr, pattern.String(), "xi"); err != nil {
		return err
	}
	return DoRegex(w, o.OptXStr, o.Rx, o.RxFlags)
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
