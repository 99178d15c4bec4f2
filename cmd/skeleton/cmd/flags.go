package cmd

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/msto63/cskit/foundation/utils/cstr"
	"github.com/msto63/cskit/foundation/utils/parsex"
)

// hexValue accepts "0x<hex>" or a decimal with an optional K, M or G
// postfix (multiples of 1024)
type hexValue struct {
	target *int64
	text   string
}

var _ pflag.Value = (*hexValue)(nil)

func newHexValue(target *int64) *hexValue {
	return &hexValue{target: target}
}

func (v *hexValue) Set(s string) error {
	n, err := parsex.ParseHexLong(cstr.New(s))
	if err != nil {
		return err
	}
	*v.target = n
	v.text = s
	return nil
}

func (v *hexValue) String() string {
	if v.text != "" {
		return v.text
	}
	if v.target == nil {
		return "0"
	}
	return strconv.FormatInt(*v.target, 10)
}

func (v *hexValue) Type() string { return "hex" }

// intValue accepts a plain decimal integer
type intValue struct {
	target *int64
}

var _ pflag.Value = (*intValue)(nil)

func newIntValue(target *int64) *intValue {
	return &intValue{target: target}
}

func (v *intValue) Set(s string) error {
	n, err := parsex.ParseLong(cstr.New(s))
	if err != nil {
		return err
	}
	*v.target = n
	return nil
}

func (v *intValue) String() string {
	if v.target == nil {
		return "0"
	}
	return strconv.FormatInt(*v.target, 10)
}

func (v *intValue) Type() string { return "int" }

// yearValue accepts a four digit year; the range is checked by
// skeleton.Options.Validate
type yearValue struct {
	target *int
}

var _ pflag.Value = (*yearValue)(nil)

func newYearValue(target *int) *yearValue {
	return &yearValue{target: target}
}

func (v *yearValue) Set(s string) error {
	n, err := parsex.ParseLong(cstr.New(s))
	if err != nil {
		return err
	}
	*v.target = int(n)
	return nil
}

func (v *yearValue) String() string {
	if v.target == nil || *v.target == 0 {
		return ""
	}
	return strconv.Itoa(*v.target)
}

func (v *yearValue) Type() string { return "yyyy" }
