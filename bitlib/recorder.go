// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitlib

import (
	"github.com/db47h/bitsim"
)

// An Entry is one recorded line: the recorder's time when it was taken plus
// the sampled values.
//
type Entry struct {
	Time int64
	Vals []int64
}

// A Recorder is an append-only timestamped event sink. Its clock does not
// advance by itself: register the Ticker task with the simulator driving the
// circuit so that recorded timestamps track the simulator's tick counter.
//
type Recorder struct {
	time    int64
	entries []Entry
}

// NewRecorder returns an empty recorder at time 0.
//
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Time returns the recorder's current timestamp.
//
func (r *Recorder) Time() int64 { return r.time }

// Reset drops all entries and rewinds the clock to 0.
//
func (r *Recorder) Reset() {
	r.entries = nil
	r.time = 0
}

// Record appends one entry with the given values at the current time.
//
func (r *Recorder) Record(vals ...int64) {
	r.entries = append(r.entries, Entry{Time: r.time, Vals: vals})
}

// Snap returns a trigger sampling the given probes. Each time it fires, all
// probes are read in order and recorded as one entry.
//
func (r *Recorder) Snap(probes ...func() int64) bitsim.Trigger {
	return bitsim.TriggerFunc(func() {
		vals := make([]int64, len(probes))
		for i, p := range probes {
			vals[i] = p()
		}
		r.Record(vals...)
	})
}

// Ticker returns the task advancing the recorder's clock: it increments time
// on every resume after the first, matching the convention that a task's
// first resume covers the time interval [0, 1).
//
func (r *Recorder) Ticker() bitsim.Task {
	first := true
	return bitsim.TaskFunc(func() (bitsim.Output, bool) {
		if first {
			first = false
		} else {
			r.time++
		}
		return nil, true
	})
}

// Entries returns the recorded entries, oldest first.
//
func (r *Recorder) Entries() []Entry { return r.entries }

// Len returns the number of recorded entries.
//
func (r *Recorder) Len() int { return len(r.entries) }

// Column returns the i-th sampled value of every entry, in record order.
// Entries with fewer values are skipped.
//
func (r *Recorder) Column(i int) []int64 {
	col := make([]int64, 0, len(r.entries))
	for _, e := range r.entries {
		if i < len(e.Vals) {
			col = append(col, e.Vals[i])
		}
	}
	return col
}
