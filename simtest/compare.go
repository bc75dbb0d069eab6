// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/bitsim"
)

// Trace runs the given tasks on a fresh simulator for d ticks and returns
// sig's value after every tick, boundary tick included. The probe samples in
// the trigger phase, so each element is the settled value of its tick.
//
func Trace(sig *bitsim.Signal, tasks []bitsim.Task, d int64) []int64 {
	var out []int64
	sample := bitsim.One(bitsim.TriggerFunc(func() {
		out = append(out, sig.Read())
	}))
	probe := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return sample, true
	})
	all := append([]bitsim.Task{probe}, tasks...)
	bitsim.NewSimulator(all...).RunFor(d)
	return out
}

// CompareTasks builds each task against its own fresh signal and requires
// both traces to be identical over d ticks. Use it to check that two
// formulations of a process drive a signal the same way.
//
func CompareTasks(t *testing.T, d int64, mk1, mk2 func(*bitsim.Signal) bitsim.Task) {
	t.Helper()
	s1, s2 := bitsim.NewSignal(0), bitsim.NewSignal(0)
	tr1 := Trace(s1, []bitsim.Task{mk1(s1)}, d)
	tr2 := Trace(s2, []bitsim.Task{mk2(s2)}, d)
	require.Equal(t, tr1, tr2)
}
