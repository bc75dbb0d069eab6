// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

// A Signal models a circuit wire or register: a mutable cell holding a
// current Value plus the raw residue last observed, used for edge detection.
// Create one per wire at circuit setup and share the pointer between the
// tasks that read and drive it.
//
// The arithmetic and comparison surface of Value is available by delegation;
// the signal's current value is the left operand. To combine two signals,
// unwrap the right one explicitly: a.Add(b.Value()).
//
type Signal struct {
	val  Value
	prev uint64
}

// NewSignal returns a signal with the given initial value under its minimal
// auto-sized shape. Use Shape.Signal to fix the width explicitly.
//
func NewSignal(v int64) *Signal {
	return ShapeOf(v).Signal(v)
}

// NewSignedSignal returns a signal with the given initial value under a
// minimal signed shape, even when v is non-negative.
//
func NewSignedSignal(v int64) *Signal {
	return ShapeOf(v, -1).Signal(v)
}

// Shape returns the signal's shape.
//
func (s *Signal) Shape() Shape { return s.val.shape }

// Value returns the signal's current value.
//
func (s *Signal) Value() Value { return s.val }

// Read returns the current value under the signal's interpretation.
//
func (s *Signal) Read() int64 { return s.val.Int() }

// Write stores v modulo the signal's width, keeping the signal's shape. The
// previous residue is remembered for edge detection before the update.
//
func (s *Signal) Write(v int64) {
	s.prev = s.val.raw
	s.val = s.val.shape.Value(v)
}

// WriteValue stores v's raw residue under the signal's shape.
//
func (s *Signal) WriteValue(v Value) {
	s.prev = s.val.raw
	s.val = Value{raw: v.raw & s.val.shape.mask(), shape: s.val.shape}
}

// SetBit replaces bit i of the signal in place.
//
func (s *Signal) SetBit(i, b int) {
	s.prev = s.val.raw
	s.val = s.val.WithBit(i, b)
}

// SetSlice replaces bits [lo, hi] of the signal in place, with Value.WithSlice
// truncation semantics.
//
func (s *Signal) SetSlice(hi, lo int, v Value) {
	s.prev = s.val.raw
	s.val = s.val.WithSlice(hi, lo, v)
}

// Copy returns a new signal with the same shape and current value.
//
func (s *Signal) Copy() *Signal {
	return s.val.shape.Signal(int64(s.val.raw))
}

// Bin returns the current value's binary string.
//
func (s *Signal) Bin() string { return s.val.Bin() }

// Bool reports whether the current raw residue is exactly 1.
//
func (s *Signal) Bool() bool { return s.val.Bool() }

func (s *Signal) String() string { return s.val.String() }

// Delegated Value operations.

func (s *Signal) Add(o Value) Value { return s.val.Add(o) }
func (s *Signal) Sub(o Value) Value { return s.val.Sub(o) }
func (s *Signal) Mul(o Value) Value { return s.val.Mul(o) }
func (s *Signal) Div(o Value) Value { return s.val.Div(o) }
func (s *Signal) Mod(o Value) Value { return s.val.Mod(o) }
func (s *Signal) And(o Value) Value { return s.val.And(o) }
func (s *Signal) Or(o Value) Value  { return s.val.Or(o) }
func (s *Signal) Xor(o Value) Value { return s.val.Xor(o) }
func (s *Signal) Not() Value        { return s.val.Not() }
func (s *Signal) Neg() Value        { return s.val.Neg() }
func (s *Signal) Eq(o Value) Value  { return s.val.Eq(o) }
func (s *Signal) Lt(o Value) Value  { return s.val.Lt(o) }
func (s *Signal) Le(o Value) Value  { return s.val.Le(o) }
func (s *Signal) Gt(o Value) Value  { return s.val.Gt(o) }
func (s *Signal) Ge(o Value) Value  { return s.val.Ge(o) }

// An Edge selects the transition kind an EdgeCond tests for.
//
type Edge int

// Edge kinds.
const (
	Rising Edge = iota
	Falling
	AnyEdge
)

// An EdgeCond is a transition predicate bound to one signal. Eval consumes
// the transition: it updates the signal's previous-residue marker, so an
// edge condition must be evaluated at most once per tick — a second Eval in
// the same tick sees no transition. Use Peek to test without consuming.
//
type EdgeCond struct {
	sig  *Signal
	edge Edge
}

// Posedge returns a rising edge condition bound to s.
//
func (s *Signal) Posedge() *EdgeCond {
	return &EdgeCond{sig: s, edge: Rising}
}

// Negedge returns a falling edge condition bound to s.
//
func (s *Signal) Negedge() *EdgeCond {
	return &EdgeCond{sig: s, edge: Falling}
}

// Anyedge returns an any-transition edge condition bound to s.
//
func (s *Signal) Anyedge() *EdgeCond {
	return &EdgeCond{sig: s, edge: AnyEdge}
}

func (c *EdgeCond) test() bool {
	cur, prev := c.sig.val.raw, c.sig.prev
	switch c.edge {
	case Rising:
		return cur > prev
	case Falling:
		return cur < prev
	default:
		return cur != prev
	}
}

// Eval reports whether the signal transitioned since the last write or Eval,
// and marks the transition as observed.
//
func (c *EdgeCond) Eval() bool {
	r := c.test()
	c.sig.prev = c.sig.val.raw
	return r
}

// Peek reports whether Eval would fire, without consuming the transition.
//
func (c *EdgeCond) Peek() bool {
	return c.test()
}
