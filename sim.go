// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

import (
	"github.com/rs/zerolog"
)

// A Task is a cooperative, suspendable unit of circuit behavior. The
// simulator resumes every active task exactly once per tick. Resume returns
// ok == true while the task is merely suspended, along with the task's
// output for the tick (which may be nil); ok == false reports completion,
// after which the task is dropped and never resumed again.
//
// Task logic that wants to wait n ticks before acting must itself return
// from Resume n times before producing its first real output; the simulator
// does not count on its behalf (see bitlib.Delay).
//
type Task interface {
	Resume() (out Output, ok bool)
}

// TaskFunc adapts a closure to the Task interface.
//
type TaskFunc func() (Output, bool)

// Resume calls f.
func (f TaskFunc) Resume() (Output, bool) { return f() }

// An Output is what a task hands back from one resume: nothing (nil), a
// single trigger, or an arbitrarily nested group. The simulator flattens it
// depth first in one pass per tick before firing anything.
//
type Output interface {
	flatten(dst []Trigger) []Trigger
}

type single struct {
	t Trigger
}

// One wraps a single trigger as a task output.
//
func One(t Trigger) Output {
	if t == nil {
		return nil
	}
	return single{t: t}
}

func (s single) flatten(dst []Trigger) []Trigger {
	return append(dst, s.t)
}

type group []Output

// Group nests several outputs, nil entries included, into one.
//
func Group(outs ...Output) Output {
	return group(outs)
}

func (g group) flatten(dst []Trigger) []Trigger {
	for _, o := range g {
		if o != nil {
			dst = o.flatten(dst)
		}
	}
	return dst
}

// A Simulator drives a set of cooperative tasks through discrete ticks. It
// is single threaded and fully deterministic: within one tick, tasks resume
// in registration order, completed tasks are dropped with the survivors'
// order preserved, and all collected triggers fire only after every task has
// been resumed, in flattened left-to-right order. Signal state is therefore
// safe to share between tasks without synchronization.
//
// The first resume of every task corresponds to the simulated time interval
// [0, 1).
//
type Simulator struct {
	tasks []Task
	added []Task
	time  int64
	log   zerolog.Logger
}

// NewSimulator returns a simulator driving the given tasks.
//
func NewSimulator(tasks ...Task) *Simulator {
	return &Simulator{tasks: tasks, log: zerolog.Nop()}
}

// SetLogger makes the simulator emit one debug event per tick to l.
//
func (s *Simulator) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Add registers an extra task. Tasks added while a run is in progress, even
// from inside a Resume or a trigger, join at the end of the resume order
// starting with the next tick.
//
func (s *Simulator) Add(t Task) {
	s.added = append(s.added, t)
}

// Time returns the tick counter.
//
func (s *Simulator) Time() int64 { return s.time }

// Active returns the number of tasks still running, pending additions
// included.
//
func (s *Simulator) Active() int { return len(s.tasks) + len(s.added) }

// Step advances the simulation by one tick: resume every task once, drop
// completed ones, then fire the collected triggers and increment time.
// Pending additions join the task list before anything is resumed.
//
func (s *Simulator) Step() {
	var trigs []Trigger
	s.tasks = append(s.tasks, s.added...)
	s.added = s.added[:0]
	survivors := s.tasks[:0]
	for _, t := range s.tasks {
		out, ok := t.Resume()
		if !ok {
			continue
		}
		survivors = append(survivors, t)
		if out != nil {
			trigs = out.flatten(trigs)
		}
	}
	s.tasks = survivors
	for _, tr := range trigs {
		tr.Trigger()
	}
	s.log.Debug().
		Int64("time", s.time).
		Int("tasks", len(s.tasks)).
		Int("triggers", len(trigs)).
		Msg("tick")
	s.time++
}

// Run resets the tick counter and steps until no task remains active, then
// performs one extra tick so that effects scheduled for the final boundary
// tick are still applied.
//
func (s *Simulator) Run() {
	s.time = 0
	for s.Active() > 0 {
		s.Step()
	}
	s.Step()
}

// RunFor resets the tick counter and steps until time reaches duration, then
// performs one extra tick. Ticks keep advancing even once all tasks have
// completed, so a bounded run always covers the full duration.
//
func (s *Simulator) RunFor(duration int64) {
	s.time = 0
	for s.time < duration {
		s.Step()
	}
	s.Step()
}
