// File: mutate_test.go
// Title: String Mutator Tests
// Description: Tests for Set, Cat, Mid, Split, SplitAt, Trim and Sanitize,
//              including destinations that alias their source.
// Author: msto63
// Version: v0.3.0
// Created: 2025-08-11
// Modified: 2025-09-02

package cstr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSetVariants(t *testing.T) {
	var s Str
	s.Set("plain")
	if s.String() != "plain" {
		t.Errorf("Set() = %q", s.String())
	}
	s.SetBytes([]byte{'b', 0, 'c'})
	if s.Len() != 3 {
		t.Errorf("SetBytes() Len() = %d, want 3", s.Len())
	}
	s.SetStr(New("copy"))
	if s.String() != "copy" {
		t.Errorf("SetStr() = %q", s.String())
	}
	s.Setf("%s-%04d-%x", "id", 42, 255)
	if s.String() != "id-0042-ff" {
		t.Errorf("Setf() = %q", s.String())
	}
}

func TestCat(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		{"", "", ""},
		{"ab", "", "ab"},
		{"", "cd", "cd"},
		{"Grüß", " Gott", "Grüß Gott"},
	}

	for _, tt := range tests {
		var s Str
		s.Cat(New(tt.left), New(tt.right))
		if s.String() != tt.want {
			t.Errorf("Cat(%q, %q) = %q; want %q", tt.left, tt.right, s.String(), tt.want)
		}
		if s.LenUTF8() != New(tt.want).LenUTF8() {
			t.Errorf("Cat(%q, %q) LenUTF8() = %d", tt.left, tt.right, s.LenUTF8())
		}
	}
}

func TestCatAliasing(t *testing.T) {
	s := New("ab")
	s.Cat(s, s)
	if s.String() != "abab" {
		t.Errorf("Cat(s, s) = %q, want abab", s.String())
	}
	s.CatString(s, "!")
	if s.String() != "abab!" {
		t.Errorf("CatString(s, !) = %q", s.String())
	}
}

func TestMid(t *testing.T) {
	src := New("abcdefgh")

	tests := []struct {
		name           string
		offset, length int
		want           string
	}{
		{"middle", 2, 3, "cde"},
		{"from start", 0, 2, "ab"},
		{"rest", 5, Rest, "fgh"},
		{"negative offset rest", -3, Rest, "fgh"},
		{"negative offset length", -4, 2, "ef"},
		{"whole via negative", -8, Rest, "abcdefgh"},
		{"clamped length", 6, 100, "gh"},
		{"zero length", 3, 0, ""},
		{"offset at end", 8, Rest, ""},
		{"offset past end", 9, 1, ""},
		{"negative beyond start", -9, Rest, ""},
		{"any negative length", 1, -5, "bcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Str
			s.Mid(src, tt.offset, tt.length)
			if s.String() != tt.want {
				t.Errorf("Mid(%q, %d, %d) = %q; want %q", src, tt.offset, tt.length, s.String(), tt.want)
			}
		})
	}
}

func TestMidOffsetNormalization(t *testing.T) {
	src := New("0123456789")
	n := src.Len()
	for k := 1; k <= n; k++ {
		for _, length := range []int{0, 1, 3, Rest, n} {
			var neg, pos Str
			neg.Mid(src, -k, length)
			pos.Mid(src, n-k, length)
			if !Equal(neg, pos) {
				t.Errorf("Mid(-%d, %d) = %q, Mid(%d, %d) = %q", k, length, neg, n-k, length, pos)
			}
		}
	}
}

func TestMidRestSentinel(t *testing.T) {
	src := New("sentinel")
	n := src.Len()
	for off := 0; off <= n; off++ {
		var rest, explicit Str
		rest.Mid(src, off, Rest)
		explicit.Mid(src, off, n-off)
		if !Equal(rest, explicit) {
			t.Errorf("offset %d: Rest = %q, explicit = %q", off, rest, explicit)
		}
	}
}

func TestMidAliasing(t *testing.T) {
	s := New("abcdef")
	s.Mid(s, 1, 3)
	if s.String() != "bcd" {
		t.Errorf("Mid(s, 1, 3) = %q, want bcd", s.String())
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name, source, delim string
		wantPos             int
		wantOK              bool
		wantLeft, wantRight string
	}{
		{"equals", "key=value", "=", 3, true, "key", "value"},
		{"first of many", "a,b,c", ",", 1, true, "a", "b,c"},
		{"multi byte delimiter", "left::right", "::", 4, true, "left", "right"},
		{"at start", "=x", "=", 0, true, "", "x"},
		{"at end", "x=", "=", 1, true, "x", ""},
		{"no match", "abc", ";", NotFound, false, "L", "R"},
		{"empty delimiter", "abc", "", NotFound, false, "L", "R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := New("L"), New("R")
			pos, ok := Split(&left, &right, New(tt.source), New(tt.delim))
			if pos != tt.wantPos || ok != tt.wantOK {
				t.Errorf("Split(%q, %q) = %d, %v; want %d, %v", tt.source, tt.delim, pos, ok, tt.wantPos, tt.wantOK)
			}
			if left.String() != tt.wantLeft || right.String() != tt.wantRight {
				t.Errorf("Split(%q, %q) left %q right %q; want %q %q", tt.source, tt.delim, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestSplitConcatInverse(t *testing.T) {
	inputs := []struct{ s, delim string }{
		{"name=value", "="},
		{"Straße|Weg", "|"},
		{"=leading", "="},
		{"trailing=", "="},
		{"a<sep>b", "<sep>"},
	}

	for _, in := range inputs {
		var left, right, joined Str
		if _, ok := Split(&left, &right, New(in.s), New(in.delim)); !ok {
			t.Fatalf("Split(%q, %q) found nothing", in.s, in.delim)
		}
		joined.Cat(left, New(in.delim))
		joined.Cat(joined, right)
		if joined.String() != in.s {
			t.Errorf("rejoined %q, want %q", joined, in.s)
		}
	}
}

func TestSplitAliasing(t *testing.T) {
	s := New("head:tail")
	var rest Str
	if _, ok := Split(&s, &rest, s, New(":")); !ok {
		t.Fatal("Split() found nothing")
	}
	if s.String() != "head" || rest.String() != "tail" {
		t.Errorf("Split into source = %q, %q", s, rest)
	}
}

func TestSplitAt(t *testing.T) {
	tests := []struct {
		name       string
		pos, width int
		wantLeft   string
		wantRight  string
		wantErr    bool
	}{
		{"scenario C", 3, 2, "abc", "f", false},
		{"zero width", 2, 0, "ab", "cdef", false},
		{"at start", 0, 1, "", "bcdef", false},
		{"at end", 6, 0, "abcdef", "", false},
		{"width clamped", 5, 3, "abcde", "", false},
		{"full width", 0, 6, "", "", false},
		{"negative pos", -1, 1, "L", "R", true},
		{"pos past end", 7, 0, "L", "R", true},
		{"negative width", 1, -1, "L", "R", true},
		{"width past length", 0, 7, "L", "R", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := New("L"), New("R")
			err := SplitAt(tt.pos, &left, &right, New("abcdef"), tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitAt(%d, %d) error = %v, wantErr %v", tt.pos, tt.width, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("SplitAt(%d, %d) error = %v, want ErrOutOfRange", tt.pos, tt.width, err)
			}
			if left.String() != tt.wantLeft || right.String() != tt.wantRight {
				t.Errorf("SplitAt(%d, %d) = %q, %q; want %q, %q", tt.pos, tt.width, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		input        string
		withNewlines bool
		want         string
	}{
		{"", false, ""},
		{"   ", false, ""},
		{"\t \t", true, ""},
		{"  hi  ", false, "hi"},
		{"\thi there\t", false, "hi there"},
		{"\n hi \n", false, "\n hi \n"},
		{"\r\n hi \r\n", true, "hi"},
		{"x", false, "x"},
		{" ä ", false, "ä"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%v", tt.input, tt.withNewlines), func(t *testing.T) {
			var s Str
			s.Trim(New(tt.input), tt.withNewlines)
			if s.String() != tt.want {
				t.Errorf("Trim(%q, %v) = %q; want %q", tt.input, tt.withNewlines, s.String(), tt.want)
			}

			var again Str
			again.Trim(s, tt.withNewlines)
			if !Equal(again, s) {
				t.Errorf("Trim not idempotent: %q -> %q", s, again)
			}
		})
	}
}

func TestTrimAliasing(t *testing.T) {
	s := New("  padded  ")
	s.Trim(s, false)
	if s.String() != "padded" {
		t.Errorf("Trim(s) = %q", s.String())
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"clean", "clean"},
		{"a\tb\x00c\x1fd\x7f", "abcd\x7f"},
		{"line\r\n", "line"},
		{"\x01\x02\x03", ""},
		{"ü\n", "ü"},
	}

	for _, tt := range tests {
		s := New(tt.input)
		s.Sanitize()
		if s.String() != tt.want {
			t.Errorf("Sanitize(%q) = %q; want %q", tt.input, s.String(), tt.want)
		}
	}
}
