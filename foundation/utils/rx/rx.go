// File: rx.go
// Title: Iterative Regular Expression Matcher
// Description: Matcher walks a subject match by match, storing every
//              capture group as a cstr.Str together with its byte offsets.
//              Patterns use the Perl/.NET syntax of regexp2, so lookaround
//              and backreferences are available.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-03
// Modified: 2025-09-03

package rx

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
	"github.com/msto63/cskit/foundation/utils/cstr"
)

// Unmatched is the offset reported for a group that took no part in a match
const Unmatched = -1

// Result holds the groups of one successful match. Index 0 is the whole
// match, index i the i-th capture group. Offsets are byte offsets into the
// subject.
type Result struct {
	Captures []cstr.Str
	Starts   []int
	Ends     []int
}

// Count returns the number of groups including the whole match
func (r Result) Count() int {
	return len(r.Captures)
}

// Matcher iterates over the matches of a compiled pattern in one subject.
// After a successful Match the embedded Result describes it.
type Matcher struct {
	Result

	re      *regexp2.Regexp
	pattern string
	flags   string
	subject cstr.Str

	runes   []rune
	offsets []int // byte offset of each rune, plus len(subject)

	pos int
}

// NewMatcher compiles pattern with flags and positions the cursor at the
// start of subject. Flag letters: x ignores pattern whitespace, i matches
// caselessly, m makes ^ and $ match at line breaks, s lets . match '\n'.
func NewMatcher(subject cstr.Str, pattern, flags string) (*Matcher, error) {
	opts, err := ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, mdwerrors.RxCompile(pattern, err)
	}

	m := &Matcher{
		re:      re,
		pattern: pattern,
		flags:   flags,
		subject: subject,
	}
	m.decode()
	return m, nil
}

// ParseFlags converts flag letters into regexp2 options
func ParseFlags(flags string) (regexp2.RegexOptions, error) {
	var opts regexp2.RegexOptions
	for _, c := range flags {
		switch c {
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		default:
			return 0, mdwerrors.InvalidInput(mdwerrors.ModuleRx, "ParseFlags", flags, "flag letters x, i, m, s")
		}
	}
	return opts, nil
}

// decode splits the subject into runes and records the byte offset of each.
// Invalid bytes become U+FFFD of width one.
func (m *Matcher) decode() {
	b := m.subject.Bytes()
	m.runes = make([]rune, 0, m.subject.LenUTF8())
	m.offsets = make([]int, 0, m.subject.LenUTF8()+1)
	for off := 0; off < len(b); {
		r, size := utf8.DecodeRune(b[off:])
		m.runes = append(m.runes, r)
		m.offsets = append(m.offsets, off)
		off += size
	}
	m.offsets = append(m.offsets, len(b))
}

// Pattern returns the source of the compiled pattern
func (m *Matcher) Pattern() string { return m.pattern }

// Flags returns the flag letters the pattern was compiled with
func (m *Matcher) Flags() string { return m.flags }

// Subject returns the subject being matched
func (m *Matcher) Subject() cstr.Str { return m.subject }

// SetTimeout bounds the time a single Match may spend in the engine.
// Zero disables the bound.
func (m *Matcher) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = regexp2.DefaultMatchTimeout
	}
	m.re.MatchTimeout = d
}

// Offset returns the byte offset the next Match starts from
func (m *Matcher) Offset() int { return m.pos }

// Reset moves the cursor to byte offset start. An offset inside a multi-byte
// sequence is moved forward to the next codepoint.
func (m *Matcher) Reset(start int) {
	if start < 0 {
		start = 0
	}
	if start <= m.subject.Len() {
		start = m.offsets[m.runeIndex(start)]
	}
	m.pos = start
	m.Result = Result{}
}

// runeIndex maps a byte offset to the index of the first rune at or after it
func (m *Matcher) runeIndex(off int) int {
	return sort.SearchInts(m.offsets, off)
}

// Match searches from the cursor. On success it fills the embedded Result
// and advances the cursor to the end of the match, or one codepoint further
// when the match is empty. It reports false once no further match exists or
// the cursor has passed the end of the subject.
func (m *Matcher) Match() (bool, error) {
	if m.pos > m.subject.Len() {
		return false, nil
	}

	start := m.runeIndex(m.pos)
	found, err := m.re.FindRunesMatchStartingAt(m.runes, start)
	if err != nil {
		return false, mdwerrors.RxMatch(m.pos, err)
	}
	if found == nil {
		m.pos = m.subject.Len() + 1
		m.Result = Result{}
		return false, nil
	}

	groups := found.Groups()
	res := Result{
		Captures: make([]cstr.Str, len(groups)),
		Starts:   make([]int, len(groups)),
		Ends:     make([]int, len(groups)),
	}
	src := m.subject
	for i, g := range groups {
		if len(g.Captures) == 0 {
			res.Starts[i], res.Ends[i] = Unmatched, Unmatched
			res.Captures[i] = cstr.New("")
			continue
		}
		s, e := m.offsets[g.Index], m.offsets[g.Index+g.Length]
		res.Starts[i], res.Ends[i] = s, e
		res.Captures[i].Mid(src, s, e-s)
	}
	m.Result = res

	m.pos = res.Ends[0]
	if res.Ends[0] == res.Starts[0] {
		m.pos = m.nextCodepoint(m.pos)
	}
	return true, nil
}

// nextCodepoint returns the byte offset following the codepoint at off, or
// off+1 at the end of the subject
func (m *Matcher) nextCodepoint(off int) int {
	i := m.runeIndex(off)
	if i+1 < len(m.offsets) {
		return m.offsets[i+1]
	}
	return off + 1
}

// FindAll collects every match of pattern in subject
func FindAll(subject cstr.Str, pattern, flags string) ([]Result, error) {
	m, err := NewMatcher(subject, pattern, flags)
	if err != nil {
		return nil, err
	}

	var all []Result
	for {
		ok, err := m.Match()
		if err != nil {
			return all, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, m.Result)
	}
}
