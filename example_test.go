// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitsim_test

import (
	"fmt"

	"github.com/db47h/bitsim"
	"github.com/db47h/bitsim/bitlib"
)

// A two bit counter advancing on every rising clock edge.
func Example() {
	clk := bitsim.Unsigned(1).Signal(0)
	count := bitsim.Unsigned(2).Signal(0)

	osc, err := bitlib.Oscillator(clk, bitlib.Config{Low: 1, High: 1})
	if err != nil {
		panic(err)
	}
	step := bitsim.One(bitlib.Watch(clk.Posedge(), func() {
		count.WriteValue(count.Add(bitsim.New(1)))
	}))
	counter := bitsim.TaskFunc(func() (bitsim.Output, bool) {
		return step, true
	})
	var out []int64
	probe := bitlib.Output(count, func(v int64) { out = append(out, v) })

	bitsim.NewSimulator(osc, counter, probe).RunFor(8)
	fmt.Println(out)
	// Output:
	// [0 1 1 2 2 3 3 0 0]
}
