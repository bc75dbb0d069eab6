// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bitlib provides a library of reusable processes for bitsim:
// delays, clock oscillators, signal probes and a timestamped recorder.
//
package bitlib

import (
	"github.com/pkg/errors"

	"github.com/db47h/bitsim"
)

// ErrInvalidConfig is reported by Oscillator when the configuration gives no
// usable timing.
var ErrInvalidConfig = errors.New("invalid oscillator configuration")

// Delay returns a task that suspends exactly n times before completing.
// Registered alongside other tasks it acts as an n tick countdown.
//
func Delay(n int) bitsim.Task {
	return bitsim.TaskFunc(func() (bitsim.Output, bool) {
		if n <= 0 {
			return nil, false
		}
		n--
		return nil, true
	})
}

// Config holds oscillator timing. Fields at 0 or below count as unset; at
// least one of Low, High, Period must be set.
//
type Config struct {
	Low    int // ticks spent at 0 in each period
	High   int // ticks spent at 1 in each period
	Period int // Low + High
	Phase  int // start position within the period, taken modulo Period
}

// Oscillator returns an infinite task toggling sig between 0 and 1: each
// period starts with Low ticks at 0 followed by High ticks at 1. Missing
// durations are normalized from the ones given; with only Period set, Low
// defaults to Period/2. The phase offset is applied by pre-resuming the
// returned task, so the corresponding writes to sig happen before Oscillator
// returns.
//
func Oscillator(sig *bitsim.Signal, cfg Config) (bitsim.Task, error) {
	low, high, period := cfg.Low, cfg.High, cfg.Period
	if low <= 0 && high <= 0 && period <= 0 {
		return nil, errors.WithStack(ErrInvalidConfig)
	}
	if period <= 0 {
		if low <= 0 {
			low = high
		}
		if high <= 0 {
			high = low
		}
		period = low + high
	} else {
		if low <= 0 {
			if high > 0 {
				low = period - high
			} else {
				low = period / 2
			}
		}
		high = period - low
	}
	if low < 0 || high < 0 || period < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "low %d, high %d, period %d", low, high, period)
	}

	pos := 0
	task := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		if pos == 0 {
			sig.Write(0)
		}
		if pos == low && low < period {
			sig.Write(1)
		}
		pos++
		if pos >= period {
			pos = 0
		}
		return nil, true
	})
	phase := cfg.Phase % period
	if phase < 0 {
		phase += period
	}
	for i := 0; i < phase; i++ {
		task.Resume()
	}
	return task, nil
}

// Input returns a task driving sig from f on every tick.
//
func Input(sig *bitsim.Signal, f func() int64) bitsim.Task {
	return bitsim.TaskFunc(func() (bitsim.Output, bool) {
		sig.Write(f())
		return nil, true
	})
}

// Output returns a task observing sig on every tick. f runs in the trigger
// phase, after all tasks of the tick have been resumed, so it sees the
// settled post-tick value.
//
func Output(sig *bitsim.Signal, f func(int64)) bitsim.Task {
	probe := bitsim.One(bitsim.TriggerFunc(func() {
		f(sig.Read())
	}))
	return bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return probe, true
	})
}

// Assign returns a continuous assignment: dst is rewritten from f on every
// tick, in task order.
//
func Assign(dst *bitsim.Signal, f func() bitsim.Value) bitsim.Task {
	return bitsim.TaskFunc(func() (bitsim.Output, bool) {
		dst.WriteValue(f())
		return nil, true
	})
}

// Watch wraps an edge condition and a callback into a trigger: when fired,
// it evaluates the condition (consuming the transition) and runs f if the
// edge was taken. Fire it at most once per tick.
//
func Watch(c *bitsim.EdgeCond, f func()) bitsim.Trigger {
	return bitsim.TriggerFunc(func() {
		if c.Eval() {
			f()
		}
	})
}
