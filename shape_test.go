// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim_test

import (
	"math/bits"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bitsim"
)

func TestShapeOf_unsigned(t *testing.T) {
	for i := int64(0); i < 256; i++ {
		want := bits.Len64(uint64(i))
		if want == 0 {
			want = 1
		}
		require.Equal(t, bitsim.Unsigned(want), bitsim.ShapeOf(i), "ShapeOf(%d)", i)
	}
}

func TestShapeOf_signed(t *testing.T) {
	// {-1, i} needs one more bit than i alone.
	for i := int64(0); i < 256; i++ {
		w := bits.Len64(uint64(i))
		if w == 0 {
			w = 1
		}
		require.Equal(t, bitsim.Signed(w+1), bitsim.ShapeOf(-1, i), "ShapeOf(-1, %d)", i)
	}
}

func TestShapeOf_ranges(t *testing.T) {
	td := []struct {
		vs   []int64
		want bitsim.Shape
	}{
		{[]int64{-4}, bitsim.Signed(3)},
		{[]int64{-4, 4}, bitsim.Signed(4)},
		{[]int64{-5}, bitsim.Signed(4)},
		{[]int64{-5, 4}, bitsim.Signed(4)},
		{[]int64{-8}, bitsim.Signed(4)},
		{[]int64{-8, 8}, bitsim.Signed(5)},
		{[]int64{0}, bitsim.Unsigned(1)},
		{[]int64{1}, bitsim.Unsigned(1)},
		{[]int64{-1}, bitsim.Signed(2)},
		{nil, bitsim.Unsigned(1)},
	}
	for _, d := range td {
		require.Equal(t, d.want, bitsim.ShapeOf(d.vs...), "ShapeOf(%v)", d.vs)
	}
}

func TestShape_ranges(t *testing.T) {
	for i := 1; i <= 62; i++ {
		u := bitsim.Unsigned(i)
		require.Equal(t, int64(0), u.Min())
		require.Equal(t, int64(1)<<uint(i)-1, u.Max())

		s := bitsim.Signed(i)
		require.Equal(t, -(int64(1) << uint(i-1)), s.Min())
		require.Equal(t, int64(1)<<uint(i-1)-1, s.Max())
	}
	require.Equal(t, uint64(16), bitsim.Unsigned(4).Modulo())
}

func TestShape_contains(t *testing.T) {
	s := bitsim.Signed(3)
	require.True(t, s.Contains(-4))
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(-5))
	require.False(t, s.Contains(4))

	u := bitsim.Unsigned(3)
	require.True(t, u.Contains(0))
	require.True(t, u.Contains(7))
	require.False(t, u.Contains(-1))
	require.False(t, u.Contains(8))
}

func TestMakeShape_width(t *testing.T) {
	_, err := bitsim.MakeShape(false, -1)
	require.Error(t, err)
	require.Equal(t, bitsim.ErrInvalidWidth, errors.Cause(err))
	_, err = bitsim.MakeShape(true, 65)
	require.Equal(t, bitsim.ErrInvalidWidth, errors.Cause(err))

	require.Panics(t, func() { bitsim.Signed(-1) })
	require.Panics(t, func() { bitsim.Unsigned(65) })
}

func TestShape_string(t *testing.T) {
	require.Equal(t, "Signed(4)", bitsim.Signed(4).String())
	require.Equal(t, "Unsigned(8)", bitsim.Unsigned(8).String())
}
