// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim

// A Trigger is anything a task can hand to the simulator for execution at
// the end of a round: a log capture, an edge-driven callback, a composite
// event group. Triggers fire after every task of the round has been resumed,
// so all tasks decide their next action against the same pre-round state.
//
type Trigger interface {
	Trigger()
}

// TriggerFunc adapts a plain function to the Trigger interface.
//
type TriggerFunc func()

// Trigger calls f.
func (f TriggerFunc) Trigger() { f() }

// An Event is a composite trigger: an ordered list of triggers fired in
// sequence when the event itself is triggered. It lets a whole per-tick
// round of callbacks look like a single trigger to the simulator.
//
type Event struct {
	triggers []Trigger
}

// NewEvent returns an event firing the given triggers in order.
//
func NewEvent(ts ...Trigger) *Event {
	return &Event{triggers: ts}
}

// Append adds a trigger at the end of the event.
//
func (e *Event) Append(t Trigger) {
	e.triggers = append(e.triggers, t)
}

// Add adds a callback at the end of the event and returns it, so it can be
// used as a decorator around function literals.
//
func (e *Event) Add(f func()) func() {
	e.triggers = append(e.triggers, TriggerFunc(f))
	return f
}

// Trigger fires all of the event's triggers in order.
//
func (e *Event) Trigger() {
	for _, t := range e.triggers {
		t.Trigger()
	}
}
