// File: iconv.go
// Title: Codepage Transcoding
// Description: Converts the bytes of a Str between two named character
//              encodings using golang.org/x/text. Names are resolved through
//              the IANA registry first and the WHATWG label set second. The
//              output buffer starts at len(source)*factor bytes and grows by
//              factor whenever the converter runs out of room.
// Author: msto63
// Version: v0.1.0
// Created: 2025-09-02
// Modified: 2025-09-14

package cstr

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
)

const minGrowFactor = 2

// LookupEncoding resolves an encoding name such as "ISO-8859-1", "latin1"
// or "windows-1252"
func LookupEncoding(name string) (encoding.Encoding, error) {
	clean := strings.TrimSpace(name)
	switch strings.ToUpper(clean) {
	case "UTF-8", "UTF8":
		return unicode.UTF8, nil
	case "":
		return nil, unknownEncoding(name)
	}

	if enc, err := ianaindex.IANA.Encoding(clean); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(clean); err == nil && enc != nil {
		return enc, nil
	}
	return nil, unknownEncoding(name)
}

func unknownEncoding(name string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCstr).
		Operation("LookupEncoding").
		Messagef("unknown encoding %q", name).
		Code(mdwerror.CodeConversionUnavailable).
		Detail("name", name).
		Build()
}

// Iconv sets s to the content of source converted from the encoding from
// to the encoding to. factor is the expected size ratio of output to input
// and controls the initial buffer and its growth. On failure s is untouched
// and the error matches ErrConversionUnavailable or ErrConversionFailed.
func (s *Str) Iconv(source Str, from, to string, factor int) error {
	fromEnc, err := LookupEncoding(from)
	if err != nil {
		return mdwerrors.CstrConversionUnavailable(from, to, err)
	}
	toEnc, err := LookupEncoding(to)
	if err != nil {
		return mdwerrors.CstrConversionUnavailable(from, to, err)
	}

	steps := []transform.Transformer{fromEnc.NewDecoder(), toEnc.NewEncoder()}
	// the UTF-8 decoder replaces invalid sequences with U+FFFD
	if fromEnc == unicode.UTF8 {
		steps = append([]transform.Transformer{encoding.UTF8Validator}, steps...)
	}

	out, err := convert(transform.Chain(steps...), source.view(), factor)
	if err != nil {
		return mdwerrors.CstrConversionFailed(from, to, err)
	}
	s.install(out)
	return nil
}

// convert runs t over src, restarting with a larger destination buffer
// each time t reports transform.ErrShortDst
func convert(t transform.Transformer, src []byte, factor int) ([]byte, error) {
	if factor < 1 {
		factor = 1
	}
	grow := factor
	if grow < minGrowFactor {
		grow = minGrowFactor
	}

	size := len(src) * factor
	if size == 0 {
		size = InitialCapacity
	}

	for {
		dst := make([]byte, size)
		t.Reset()
		nDst, _, err := t.Transform(dst, src, true)
		switch {
		case err == nil:
			return dst[:nDst], nil
		case errors.Is(err, transform.ErrShortDst):
			size *= grow
		default:
			return nil, err
		}
	}
}
