// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hacksim"

// Builtins returns the builtin chips of the library.
//
func Builtins() []*hacksim.PartSpec {
	return []*hacksim.PartSpec{
		nand, not, and, or, xor, nor, xnor,
		not16, and16, nand16, or16, nor16, or8Way,
		mux, dmux, mux16, mux4Way16, mux8Way16, dmux4Way, dmux8Way,
		hAdder, adder, add16, inc16, alu,
		dff, screen, keyboard, rom32K,
	}
}

// Definitions returns the chips of the library defined as compositions of
// other chips.
//
func Definitions() []*hacksim.ChipSpec {
	return []*hacksim.ChipSpec{
		BitSpec, RegisterSpec, ARegisterSpec, DRegisterSpec, PCSpec,
		RAM8Spec, RAM64Spec, RAM512Spec, RAM4KSpec, RAM16KSpec,
		MemorySpec,
	}
}

// Registry returns a new registry holding all the chips of the library.
//
func Registry() *hacksim.Registry {
	r := hacksim.NewRegistry()
	if err := r.Register(Builtins()...); err != nil {
		panic(err)
	}
	if err := r.Define(Definitions()...); err != nil {
		panic(err)
	}
	return r
}
