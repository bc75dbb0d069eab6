// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitlib_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bitsim"
	"github.com/db47h/bitsim/bitlib"
)

func TestDelay(t *testing.T) {
	d := bitlib.Delay(3)
	for i := 0; i < 3; i++ {
		_, ok := d.Resume()
		require.True(t, ok, "resume %d", i+1)
	}
	_, ok := d.Resume()
	require.False(t, ok)

	_, ok = bitlib.Delay(0).Resume()
	require.False(t, ok)
}

func TestOscillator_config(t *testing.T) {
	sig := bitsim.NewSignal(0)
	_, err := bitlib.Oscillator(sig, bitlib.Config{})
	require.Error(t, err)
	require.Equal(t, bitlib.ErrInvalidConfig, errors.Cause(err))

	_, err = bitlib.Oscillator(sig, bitlib.Config{Period: 4, Low: 6})
	require.Equal(t, bitlib.ErrInvalidConfig, errors.Cause(err))
}

// osc builds an oscillator task or fails the test.
func osc(t *testing.T, sig *bitsim.Signal, cfg bitlib.Config) bitsim.Task {
	t.Helper()
	task, err := bitlib.Oscillator(sig, cfg)
	require.NoError(t, err)
	return task
}

// trace records sig after each of d ticks driven by the oscillator.
func trace(t *testing.T, cfg bitlib.Config, d int64) []int64 {
	t.Helper()
	sig := bitsim.NewSignal(0)
	rec := bitlib.NewRecorder()
	snap := bitsim.One(rec.Snap(sig.Read))
	probe := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return snap, true
	})
	sim := bitsim.NewSimulator(rec.Ticker(), osc(t, sig, cfg), probe)
	sim.RunFor(d)
	return rec.Column(0)
}

func TestOscillator_fastClock(t *testing.T) {
	got := trace(t, bitlib.Config{Low: 1, High: 1}, 10)
	require.Equal(t, []int64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0}, got)
}

func TestOscillator_slowClock(t *testing.T) {
	got := trace(t, bitlib.Config{Low: 2, High: 2}, 10)
	require.Equal(t, []int64{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1}, got)
}

func TestOscillator_normalize(t *testing.T) {
	// low only: high defaults to low
	require.Equal(t, trace(t, bitlib.Config{Low: 2, High: 2}, 10), trace(t, bitlib.Config{Low: 2}, 10))
	// high only: low defaults to high
	require.Equal(t, trace(t, bitlib.Config{Low: 3, High: 3}, 12), trace(t, bitlib.Config{High: 3}, 12))
	// period only: low defaults to period/2
	require.Equal(t, trace(t, bitlib.Config{Low: 2, High: 2}, 10), trace(t, bitlib.Config{Period: 4}, 10))
	// period and high
	require.Equal(t, trace(t, bitlib.Config{Low: 3, High: 1}, 10), trace(t, bitlib.Config{Period: 4, High: 1}, 10))
	// period and low
	require.Equal(t, trace(t, bitlib.Config{Low: 1, High: 3}, 10), trace(t, bitlib.Config{Period: 4, Low: 1}, 10))
}

func TestOscillator_phase(t *testing.T) {
	// phase pre-advances the oscillator, shifting the whole trace
	got := trace(t, bitlib.Config{Low: 1, High: 1, Phase: 1}, 6)
	require.Equal(t, []int64{1, 0, 1, 0, 1, 0, 1}, got)

	// phase is taken modulo the period
	require.Equal(t, trace(t, bitlib.Config{Low: 1, High: 1, Phase: 1}, 6),
		trace(t, bitlib.Config{Low: 1, High: 1, Phase: 3}, 6))
}

func TestInput(t *testing.T) {
	n := int64(0)
	sig := bitsim.Unsigned(8).Signal(0)
	in := bitlib.Input(sig, func() int64 { n++; return n })
	var got []int64
	probe := bitsim.TaskFunc(func() (out bitsim.Output, ok bool) {
		return bitsim.One(bitsim.TriggerFunc(func() { got = append(got, sig.Read()) })), true
	})
	bitsim.NewSimulator(in, probe).RunFor(4)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, got)
}

func TestOutput(t *testing.T) {
	sig := bitsim.NewSignal(0)
	var got []int64
	out := bitlib.Output(sig, func(v int64) { got = append(got, v) })
	// the observer runs in the trigger phase and sees the oscillator's
	// write even though it is registered first
	bitsim.NewSimulator(out, osc(t, sig, bitlib.Config{Low: 1, High: 1})).RunFor(4)
	require.Equal(t, []int64{0, 1, 0, 1, 0}, got)
}

func TestAssign(t *testing.T) {
	src := bitsim.Unsigned(1).Signal(0)
	dst := bitsim.Unsigned(1).Signal(0)
	assign := bitlib.Assign(dst, func() bitsim.Value { return src.Not() })
	var got []int64
	probe := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return bitsim.One(bitsim.TriggerFunc(func() { got = append(got, dst.Read()) })), true
	})
	// the oscillator writes src before assign recomputes dst in task order
	bitsim.NewSimulator(osc(t, src, bitlib.Config{Low: 1, High: 1}), assign, probe).RunFor(4)
	require.Equal(t, []int64{1, 0, 1, 0, 1}, got)
}

func TestWatch(t *testing.T) {
	sig := bitsim.NewSignal(0)
	edges := 0
	watch := bitsim.One(bitlib.Watch(sig.Posedge(), func() { edges++ }))
	watcher := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return watch, true
	})
	bitsim.NewSimulator(osc(t, sig, bitlib.Config{Low: 1, High: 1}), watcher).RunFor(10)
	// rising transitions at ticks 2, 4, 6, 8, 10
	require.Equal(t, 5, edges)
}
