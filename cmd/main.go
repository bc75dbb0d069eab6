// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command bitsim runs a YAML testbench and prints the recorded trace.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/db47h/bitsim/bench"
)

func main() {
	var (
		duration int64
		debug    bool
	)
	cmd := &cobra.Command{
		Use:           "bitsim <testbench.yaml>",
		Short:         "run a bitsim testbench and print the recorded trace",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			cfg, err := bench.Load(f)
			if err != nil {
				return err
			}
			if duration > 0 {
				cfg.Duration = duration
			}
			b, err := cfg.Build()
			if err != nil {
				return err
			}
			if debug {
				log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					Level(zerolog.DebugLevel)
				b.Sim.SetLogger(log)
			}
			b.Run()
			for _, e := range b.Rec.Entries() {
				fmt.Printf("%6d:", e.Time)
				for _, v := range e.Vals {
					fmt.Printf(" %d", v)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&duration, "duration", 0, "override the testbench duration")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every simulation tick")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
