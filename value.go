// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
)

// A Value is an integer constrained to the modular ring of a Shape. It is
// always stored as its non-negative residue in [0, 2^bits); Int returns the
// signed interpretation when the shape is signed.
//
// Values are immutable: every operation returns a new Value and never alters
// its operands. Raw-domain operations (Add, Sub, Mul, Div, And, Or, Xor)
// combine the raw residues and size the result's shape from the raw integer
// result, so results escape the operands' declared width; use As to truncate
// back to a target shape, the way hardware truncation is an explicit step.
// Comparisons and Mod operate on the signed interpretations instead.
//
type Value struct {
	raw   uint64
	shape Shape
}

// New returns v under its minimal auto-sized shape: unsigned for
// non-negative v, signed otherwise (see ShapeOf).
//
func New(v int64) Value {
	s := ShapeOf(v)
	return Value{raw: uint64(v) & s.mask(), shape: s}
}

// unsignedOf wraps a raw integer result under its minimal unsigned shape.
func unsignedOf(u uint64) Value {
	n := bits.Len64(u)
	if n == 0 {
		n = 1
	}
	return Value{raw: u, shape: Shape{bits: n}}
}

func boolValue(b bool) Value {
	if b {
		return Value{raw: 1, shape: Shape{bits: 1}}
	}
	return Value{shape: Shape{bits: 1}}
}

func maskN(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return ^uint64(0) >> uint(64-n)
}

// Raw returns the value's non-negative residue.
//
func (v Value) Raw() uint64 { return v.raw }

// Shape returns the value's shape.
//
func (v Value) Shape() Shape { return v.shape }

// Bits returns the value's width in bits.
//
func (v Value) Bits() int { return v.shape.bits }

// IsSigned returns true if the value's shape is signed.
//
func (v Value) IsSigned() bool { return v.shape.signed }

// Int returns the value under its shape's interpretation: the raw residue
// for unsigned shapes, the two's complement reading for signed ones.
//
func (v Value) Int() int64 {
	if v.shape.signed && v.shape.bits > 0 {
		if v.raw>>uint(v.shape.bits-1)&1 != 0 {
			return int64(v.raw | ^v.shape.mask())
		}
	}
	return int64(v.raw)
}

// Bool returns true iff the raw residue is exactly 1. A multi-bit value with
// several bits set is not "true".
//
func (v Value) Bool() bool { return v.raw == 1 }

// Bin returns the raw residue as a binary string of exactly Bits characters,
// most significant bit first.
//
func (v Value) Bin() string {
	b := make([]byte, v.shape.bits)
	for i := range b {
		b[i] = byte('0' + v.raw>>uint(v.shape.bits-1-i)&1)
	}
	return string(b)
}

func (v Value) String() string {
	return fmt.Sprintf("%d %v", v.Int(), v.shape)
}

// bitIndex wraps a negative index and panics with ErrOutOfBounds if the
// index falls outside [0, bits) after the wrap.
func (v Value) bitIndex(i int) int {
	if i < 0 {
		i += v.shape.bits
	}
	if i < 0 || i >= v.shape.bits {
		panic(errors.Wrapf(ErrOutOfBounds, "bit %d of %v", i, v.shape))
	}
	return i
}

// Bit returns bit i of the raw residue as 0 or 1. Negative indices count
// from the most significant bit down, like negative slice indices.
//
func (v Value) Bit(i int) int {
	i = v.bitIndex(i)
	return int(v.raw >> uint(i) & 1)
}

// WithBit returns a copy of v with bit i replaced by the low bit of b.
//
func (v Value) WithBit(i, b int) Value {
	i = v.bitIndex(i)
	m := uint64(1) << uint(i)
	raw := v.raw &^ m
	if b&1 != 0 {
		raw |= m
	}
	return Value{raw: raw, shape: v.shape}
}

func (v Value) checkSlice(hi, lo int) {
	if lo > hi {
		panic(errors.Wrapf(ErrInvalidRange, "slice [%d:%d]", hi, lo))
	}
	if lo < 0 || hi >= v.shape.bits {
		panic(errors.Wrapf(ErrOutOfBounds, "slice [%d:%d] of %v", hi, lo, v.shape))
	}
}

// Slice returns bits [lo, hi] of the raw residue (closed interval, Verilog
// style) as an unsigned value of width hi-lo+1. It panics with
// ErrInvalidRange if lo > hi and with ErrOutOfBounds if either bound falls
// outside [0, bits).
//
func (v Value) Slice(hi, lo int) Value {
	v.checkSlice(hi, lo)
	n := hi - lo + 1
	return Value{raw: v.raw >> uint(lo) & maskN(n), shape: Shape{bits: n}}
}

// WithSlice returns a copy of v with bits [lo, hi] replaced by o. If o is
// wider than the slice it is truncated modulo the slice width first; bits of
// v outside the slice are preserved. Bounds are validated like Slice, before
// anything is computed.
//
func (v Value) WithSlice(hi, lo int, o Value) Value {
	v.checkSlice(hi, lo)
	n := hi - lo + 1
	or := o.raw & maskN(n)
	raw := v.raw&^(maskN(n)<<uint(lo)) | or<<uint(lo)
	return Value{raw: raw, shape: v.shape}
}

// Reverse returns the raw residue with its Bits low bits in reverse order.
// The result is auto-sized unsigned, so leading zero bits of the reversed
// word do not survive in the result's width.
//
func (v Value) Reverse() Value {
	r, w := uint64(0), v.raw
	for i := 0; i < v.shape.bits; i++ {
		r = r<<1 | w&1
		w >>= 1
	}
	return unsignedOf(r)
}

// As reinterprets the raw residue under another shape. No arithmetic is
// performed; widening keeps the residue, narrowing truncates it.
//
func (v Value) As(s Shape) Value {
	return Value{raw: v.raw & s.mask(), shape: s}
}

// AsSigned reinterprets the raw residue as signed at the same width.
//
func (v Value) AsSigned() Value {
	return v.As(Shape{signed: true, bits: v.shape.bits})
}

// Add returns the sum of the raw residues under its minimal unsigned shape.
//
func (v Value) Add(o Value) Value { return unsignedOf(v.raw + o.raw) }

// Sub is Add of the negation: the subtrahend is negated within its own
// declared width first, then added in the raw domain.
//
func (v Value) Sub(o Value) Value { return v.Add(o.Neg()) }

// Mul returns the product of the raw residues under its minimal unsigned
// shape.
//
func (v Value) Mul(o Value) Value { return unsignedOf(v.raw * o.raw) }

// Div returns the floor quotient of the raw residues under its minimal
// unsigned shape. Note the asymmetry with Mod, which divides the signed
// interpretations. Div panics with a runtime divide error when o's residue
// is zero.
//
func (v Value) Div(o Value) Value { return unsignedOf(v.raw / o.raw) }

// And returns the bitwise and of the raw residues.
//
func (v Value) And(o Value) Value { return unsignedOf(v.raw & o.raw) }

// Or returns the bitwise or of the raw residues.
//
func (v Value) Or(o Value) Value { return unsignedOf(v.raw | o.raw) }

// Xor returns the bitwise xor of the raw residues.
//
func (v Value) Xor(o Value) Value { return unsignedOf(v.raw ^ o.raw) }

// Neg returns modulo − raw under the value's own shape. This is the only
// arithmetic operation that preserves the operand's shape.
//
func (v Value) Neg() Value {
	return Value{raw: -v.raw & v.shape.mask(), shape: v.shape}
}

// Not returns the bitwise complement of the raw residue within the value's
// own width, under the same shape.
//
func (v Value) Not() Value {
	return Value{raw: ^v.raw & v.shape.mask(), shape: v.shape}
}

// Mod returns the floored modulus of the signed interpretations: the result
// takes the sign of the divisor. The result is auto-shaped. Mod panics with
// a runtime divide error when o is zero.
//
func (v Value) Mod(o Value) Value {
	x, y := v.Int(), o.Int()
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return New(r)
}

// Comparisons operate on the signed interpretations and return a one bit
// unsigned Value, itself usable in further arithmetic.

// Eq returns 1 if the signed interpretations are equal, else 0.
//
func (v Value) Eq(o Value) Value { return boolValue(v.Int() == o.Int()) }

// Lt returns 1 if v is less than o under signed interpretation, else 0.
//
func (v Value) Lt(o Value) Value { return boolValue(v.Int() < o.Int()) }

// Le returns 1 if v is less than or equal to o, else 0.
//
func (v Value) Le(o Value) Value { return boolValue(v.Int() <= o.Int()) }

// Gt returns 1 if v is greater than o, else 0.
//
func (v Value) Gt(o Value) Value { return boolValue(v.Int() > o.Int()) }

// Ge returns 1 if v is greater than or equal to o, else 0.
//
func (v Value) Ge(o Value) Value { return boolValue(v.Int() >= o.Int()) }
