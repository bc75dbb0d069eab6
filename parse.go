// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a value literal. Three forms are accepted:
//
//	4'b1011  8'hff  8'd255  6'o17   Verilog style sized literals
//	0b1011  0xff  0o17              unsized, width from the value
//	42  -5                          decimal, minimal auto-sized shape
//
// Sized literals are unsigned at exactly the declared width, with the parsed
// number truncated to that width. The underscore digit separator is accepted
// in all bases.
//
func Parse(s string) (Value, error) {
	if s == "" {
		return Value{}, parseError(s, 0, "empty literal")
	}
	if q := strings.IndexByte(s, '\''); q >= 0 {
		return parseSized(s, q)
	}
	if len(s) > 1 && s[0] == '0' && strings.IndexByte("bBoOxX", s[1]) >= 0 {
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return Value{}, parseError(s, 2, "invalid digits")
		}
		return unsignedOf(u), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, parseError(s, 0, "expected number")
	}
	return New(n), nil
}

func parseSized(s string, q int) (Value, error) {
	size, err := strconv.Atoi(s[:q])
	if err != nil {
		return Value{}, parseError(s, 0, "missing literal size")
	}
	if size < 1 || size > 64 {
		return Value{}, errors.Wrapf(ErrInvalidWidth, "literal %q", s)
	}
	if q+1 >= len(s) {
		return Value{}, parseError(s, q+1, "missing base")
	}
	var base int
	switch s[q+1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 'D':
		base = 10
	case 'h', 'H':
		base = 16
	default:
		return Value{}, parseError(s, q+1, "unknown base "+s[q+1:q+2])
	}
	digits := strings.ReplaceAll(s[q+2:], "_", "")
	if digits == "" {
		return Value{}, parseError(s, q+2, "missing digits")
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return Value{}, parseError(s, q+2, "invalid digits for base "+strconv.Itoa(base))
	}
	return Unsigned(size).Value(int64(u)), nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
