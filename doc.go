// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package bitsim models digital circuit state over discrete time.

It provides bit-accurate modular arithmetic over fixed-width signed and
unsigned shapes (Shape, Value), a wire/register abstraction with clock edge
detection (Signal, EdgeCond), and a deterministic cooperative scheduler
(Simulator) that advances many circuit behavior tasks in lockstep ticks,
collecting and firing their triggerable outputs once per tick.

Reusable processes (delays, clock oscillators, probes, a timestamped
recorder) live in the bitlib subpackage; simtest has helpers for testing
circuits.
*/
package bitsim
