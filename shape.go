// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// A Shape describes a fixed-width signed or unsigned integer domain: the set
// of values representable by a register of a given bit width. Shapes are
// comparable values; two shapes are equal iff they have the same signedness
// and width.
//
type Shape struct {
	signed bool
	bits   int
}

// MakeShape returns the shape of a register of the given width. Widths
// outside [0, 64] fail with ErrInvalidWidth.
//
func MakeShape(signed bool, nbits int) (Shape, error) {
	if nbits < 0 || nbits > 64 {
		return Shape{}, errors.Wrapf(ErrInvalidWidth, "%d bits", nbits)
	}
	return Shape{signed: signed, bits: nbits}, nil
}

// Signed returns the shape of a signed register of the given width.
// It panics if the width is invalid.
//
func Signed(nbits int) Shape {
	s, err := MakeShape(true, nbits)
	if err != nil {
		panic(err)
	}
	return s
}

// Unsigned returns the shape of an unsigned register of the given width.
// It panics if the width is invalid.
//
func Unsigned(nbits int) Shape {
	s, err := MakeShape(false, nbits)
	if err != nil {
		panic(err)
	}
	return s
}

// ShapeOf returns the minimal shape whose range contains every given value:
// unsigned if all values are non-negative, signed otherwise, with the width
// sized by the extreme values. With no arguments it returns Unsigned(1).
//
func ShapeOf(vs ...int64) Shape {
	if len(vs) == 0 {
		return Shape{bits: 1}
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min >= 0 {
		if max <= 1 {
			return Shape{bits: 1}
		}
		return Shape{bits: bits.Len64(uint64(max))}
	}
	if min == -1 {
		if max <= 1 {
			return Shape{signed: true, bits: 2}
		}
		return Shape{signed: true, bits: ceilLog2(uint64(max)+1) + 1}
	}
	mag := uint64(min)
	mag = -mag
	n := ceilLog2(mag) + 1
	if max > 1 {
		if p := ceilLog2(uint64(max)+1) + 1; p > n {
			n = p
		}
	}
	return Shape{signed: true, bits: n}
}

func ceilLog2(v uint64) int {
	return bits.Len64(v - 1)
}

// IsSigned returns true for signed shapes.
//
func (s Shape) IsSigned() bool { return s.signed }

// Bits returns the shape's width in bits.
//
func (s Shape) Bits() int { return s.bits }

// Modulo returns 2^bits. For 64 bit shapes the result wraps to 0.
//
func (s Shape) Modulo() uint64 {
	if s.bits == 64 {
		return 0
	}
	return 1 << uint(s.bits)
}

// mask returns the residue mask for the shape's width.
func (s Shape) mask() uint64 {
	if s.bits == 0 {
		return 0
	}
	return ^uint64(0) >> uint(64-s.bits)
}

// Min returns the smallest value in the shape's range.
//
func (s Shape) Min() int64 {
	if !s.signed || s.bits == 0 {
		return 0
	}
	return int64(-1) << uint(s.bits-1)
}

// Max returns the largest value in the shape's range. The maximum of
// Unsigned(64) does not fit in an int64 and wraps to -1.
//
func (s Shape) Max() int64 {
	if s.bits == 0 {
		return 0
	}
	if s.signed {
		return int64(uint64(1)<<uint(s.bits-1) - 1)
	}
	return int64(s.mask())
}

// Contains returns true if v falls within the shape's range.
//
func (s Shape) Contains(v int64) bool {
	if s.signed {
		if s.bits == 0 {
			return false
		}
		return v >= s.Min() && v <= s.Max()
	}
	if v < 0 {
		return false
	}
	if s.bits == 64 {
		return true
	}
	return v <= s.Max()
}

func (s Shape) String() string {
	if s.signed {
		return "Signed(" + strconv.Itoa(s.bits) + ")"
	}
	return "Unsigned(" + strconv.Itoa(s.bits) + ")"
}

// Value returns v constrained to the shape's modular ring.
//
func (s Shape) Value(v int64) Value {
	return Value{raw: uint64(v) & s.mask(), shape: s}
}

// Signal returns a new signal of this shape with the given initial value.
//
func (s Shape) Signal(v int64) *Signal {
	sig := &Signal{val: s.Value(v)}
	sig.prev = sig.val.raw
	return sig
}
