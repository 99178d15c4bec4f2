// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     skeleton
// Description: Option model of the skeleton command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package skeleton

import (
	"time"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	mdwerrors "github.com/msto63/cskit/foundation/core/errors"
	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/parsex"
	"github.com/msto63/cskit/foundation/utils/timex"
)

// Module is the error module name of this package
const Module = "skeleton"

// Defaults
const (
	DefaultOptXStr = "0f:aa:08:7e:50"
	DefaultRx      = "([0-9a-fA-F]{2})(:?)"
	DefaultMinYear = 2002
)

// Options holds the arguments and options of one skeleton run
type Options struct {
	Files       []string
	Output      string
	Header      bool
	PrintOffset bool
	Debug       bool

	OptX    int64
	OptXStr string
	Rx      string
	RxFlags string

	// MinYear and MaxYear bound the accepted record ticks. A MaxYear of
	// zero accepts records up to now.
	MinYear int
	MaxYear int

	// Range is computed by Validate
	Range timex.Range

	// config keys set through key=value arguments
	given map[string]bool
}

// DefaultOptions returns the options used when nothing is given
func DefaultOptions() Options {
	return Options{
		OptXStr: DefaultOptXStr,
		Rx:      DefaultRx,
		MinYear: DefaultMinYear,
	}
}

// Validate checks the option set and computes Range relative to now
func (o *Options) Validate(now time.Time) error {
	if len(o.Files) == 0 {
		return argsError("No file")
	}
	if o.MinYear < timex.MinYear || o.MinYear > timex.MaxYear {
		return argsError("Min year out of limits (1970 - 2038)").WithDetail("year", o.MinYear)
	}
	if o.MaxYear != 0 && (o.MaxYear < timex.MinYear || o.MaxYear > timex.MaxYear) {
		return argsError("Max year out of limits (1970 - 2038)").WithDetail("year", o.MaxYear)
	}

	o.Range = timex.YearRange(o.MinYear, o.MaxYear, now)
	if !o.Range.IsValid() {
		return argsError("'-Y' should be greater than '-y'").
			WithDetail("min", o.MinYear).
			WithDetail("max", o.MaxYear)
	}
	return nil
}

// ParseEquals handles an argument of the form key=value. It reports false
// for arguments without '=' so they can be taken as file names.
func (o *Options) ParseEquals(arg string) (bool, error) {
	var key, value cstr.Str
	if _, ok := cstr.Split(&key, &value, cstr.New(arg), cstr.New("=")); !ok {
		return false, nil
	}
	// "=x" is a file name
	if key.IsEmpty() {
		return false, nil
	}

	switch key.String() {
	case "ox":
		v, err := parsex.ParseHexLong(value)
		if err != nil {
			return true, mdwerror.Wrap(err, "No valid ox or missing").WithOperation("skeleton.ParseEquals")
		}
		o.OptX = v
		o.markGiven("scan.optx")
		return true, nil
	default:
		return true, mdwerrors.InvalidInput(Module, "ParseEquals", arg, "ox=<hex|dec>").
			WithDetail("key", key.String())
	}
}

// SplitArgs sorts positional arguments into key=value options and files
func (o *Options) SplitArgs(args []string) error {
	for _, arg := range args {
		if arg == "" {
			continue
		}
		handled, err := o.ParseEquals(arg)
		if err != nil {
			return err
		}
		if !handled {
			o.Files = append(o.Files, arg)
		}
	}
	return nil
}

func (o *Options) markGiven(key string) {
	if o.given == nil {
		o.given = make(map[string]bool)
	}
	o.given[key] = true
}

// Given reports whether the config key was set by a key=value argument
func (o *Options) Given(key string) bool {
	return o.given[key]
}

func argsError(message string) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(Module).
		Operation("Validate").
		Message(message).
		Code(mdwerror.CodeValidationFailed).
		Build()
}
