// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench builds runnable simulations from YAML testbench
// descriptions: named clock signals, a tick duration and an optional list of
// probed signals recorded after every tick.
//
// A minimal testbench:
//
//	duration: 10
//	clocks:
//	  - name: clk
//	    low: 1
//	    high: 1
//	probes: [clk]
//
package bench

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/bitsim"
	"github.com/db47h/bitsim/bitlib"
)

// A Clock describes one oscillator-driven signal. Init accepts any literal
// form understood by bitsim.Parse ("0", "4'b1010", "0xff"). Bits fixes the
// signal width; when 0, the width is sized from the initial value.
//
type Clock struct {
	Name   string `yaml:"name"`
	Bits   int    `yaml:"bits"`
	Init   string `yaml:"init"`
	Low    int    `yaml:"low"`
	High   int    `yaml:"high"`
	Period int    `yaml:"period"`
	Phase  int    `yaml:"phase"`
}

// A Config is a parsed testbench description.
//
type Config struct {
	Duration int64    `yaml:"duration"`
	Clocks   []Clock  `yaml:"clocks"`
	Probes   []string `yaml:"probes"`
}

// Load decodes and validates a testbench. Unknown fields are rejected.
//
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode testbench")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Duration <= 0 {
		return errors.Errorf("duration %d: must be positive", c.Duration)
	}
	names := make(map[string]bool, len(c.Clocks))
	for _, ck := range c.Clocks {
		if ck.Name == "" {
			return errors.New("clock with empty name")
		}
		if names[ck.Name] {
			return errors.Errorf("duplicate clock %q", ck.Name)
		}
		names[ck.Name] = true
	}
	for _, p := range c.Probes {
		if !names[p] {
			return errors.Errorf("probe %q does not match any clock", p)
		}
	}
	return nil
}

// A Bench is a built testbench, ready to run.
//
type Bench struct {
	Signals map[string]*bitsim.Signal
	Rec     *bitlib.Recorder
	Sim     *bitsim.Simulator

	duration int64
}

// Build creates the signals, oscillators, recorder and simulator described
// by the configuration.
//
func (c *Config) Build() (*Bench, error) {
	b := &Bench{
		Signals:  make(map[string]*bitsim.Signal, len(c.Clocks)),
		Rec:      bitlib.NewRecorder(),
		duration: c.Duration,
	}
	tasks := []bitsim.Task{b.Rec.Ticker()}
	for _, ck := range c.Clocks {
		var init int64
		if ck.Init != "" {
			v, err := bitsim.Parse(ck.Init)
			if err != nil {
				return nil, errors.Wrapf(err, "clock %q init", ck.Name)
			}
			init = v.Int()
		}
		var sig *bitsim.Signal
		if ck.Bits > 0 {
			sig = bitsim.Unsigned(ck.Bits).Signal(init)
		} else {
			sig = bitsim.NewSignal(init)
		}
		b.Signals[ck.Name] = sig
		task, err := bitlib.Oscillator(sig, bitlib.Config{
			Low:    ck.Low,
			High:   ck.High,
			Period: ck.Period,
			Phase:  ck.Phase,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "clock %q", ck.Name)
		}
		tasks = append(tasks, task)
	}
	if len(c.Probes) > 0 {
		probes := make([]func() int64, len(c.Probes))
		for i, name := range c.Probes {
			probes[i] = b.Signals[name].Read
		}
		snap := bitsim.One(b.Rec.Snap(probes...))
		tasks = append(tasks, bitsim.TaskFunc(func() (bitsim.Output, bool) {
			return snap, true
		}))
	}
	b.Sim = bitsim.NewSimulator(tasks...)
	return b, nil
}

// Run drives the simulation for the configured duration.
//
func (b *Bench) Run() {
	b.Sim.RunFor(b.duration)
}
