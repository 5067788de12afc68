// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hacksim simulates the logic circuits of the Hack computer: gates,
arithmetic units, registers, RAM and memory mapped I/O, composed recursively
into larger chips.

Circuits

A Circuit is an arena of single bit wires addressed by number. Pins and buses
are views on groups of wires, and components read and write wires by number.
Two pins connected together share the same wires, there is no copy involved in
signal propagation.

Chips are described with a ChipSpec: its inputs, outputs and parts. Each part
is a named chip, either a builtin written in Go or another chip definition, and
a list of wires connecting the part's pins to signals of the enclosing chip:

	xor := &hacksim.ChipSpec{
		Name: "Xor",
		In:   hacksim.In("a, b"),
		Out:  hacksim.Out("out"),
		Parts: hacksim.Parts{
			hacksim.NewPart("Nand", "a=a, b=b, out=nab"),
			hacksim.NewPart("Nand", "a=a, b=nab, out=x"),
			hacksim.NewPart("Nand", "a=nab, b=b, out=y"),
			hacksim.NewPart("Nand", "a=x, b=y, out=out"),
		},
	}

A Builder resolves part names in a Registry, checks the wiring and flattens the
chip into a list of components sorted in evaluation order. A cycle of
combinational components is rejected. Feedback through a clocked component,
like a DFF, is legal.

Running chips

A Chip is a runnable instance. Combinational chips are driven with SetInput,
Eval and Output. Clocked chips are driven by their Clock: Tick samples the
inputs of every clocked component, Tock commits their new state. All clocked
components tick before any of them tocks, so that a register reading the
output of another register sees its value from the previous cycle.

The hwlib package provides the builtins and chip definitions of the Hack
platform, up to the Memory chip, and the hwtest package helpers to compare
chips against each other.

*/
package hacksim
