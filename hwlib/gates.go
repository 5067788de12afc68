// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the builtin chips of the Hack platform and the chip
// definitions built on top of them.
//
// Gates, multiplexers and arithmetic chips are builtins computed in Go. The
// DFF is the only clocked builtin for storage: Bit, Register, PC and the RAM
// chips are chip definitions made of DFFs and builtin gates. Screen, Keyboard
// and ROM32K are builtins backed by the devices of the circuit they are
// mounted in.
//
package hwlib

import (
	"strconv"

	"github.com/db47h/hacksim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// make a list of pin declarations of the same width
func decls(bits int, names ...string) []hacksim.PinDecl {
	ds := make([]hacksim.PinDecl, len(names))
	for i, n := range names {
		ds[i] = hacksim.PinDecl{Name: n, Width: bits}
	}
	return ds
}

var nand = newGate("Nand", func(a, b bool) bool { return !(a && b) })

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(w string) hacksim.Part { return nand.NewPart(w) }

var not = &hacksim.PartSpec{
	Name:    "Not",
	Inputs:  decls(1, pIn),
	Outputs: decls(1, pOut),
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []*hacksim.Component{
			s.Component(func(c *hacksim.Circuit) { c.Set(out, !c.Get(in)) }),
		}
	},
}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(w string) hacksim.Part { return not.NewPart(w) }

// other gates
type gate func(a, b bool) bool

func (g gate) mount(s *hacksim.Socket) []*hacksim.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []*hacksim.Component{
		s.Component(func(c *hacksim.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) }),
	}
}

func newGate(name string, fn func(a, b bool) bool) *hacksim.PartSpec {
	return &hacksim.PartSpec{
		Name:    name,
		Inputs:  decls(1, pA, pB),
		Outputs: decls(1, pOut),
		Mount:   gate(fn).mount,
	}
}

var (
	and  = newGate("And", func(a, b bool) bool { return a && b })
	or   = newGate("Or", func(a, b bool) bool { return a || b })
	nor  = newGate("Nor", func(a, b bool) bool { return !(a || b) })
	xor  = newGate("Xor", func(a, b bool) bool { return a && !b || !a && b })
	xnor = newGate("Xnor", func(a, b bool) bool { return a && b || !a && !b })
)

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(w string) hacksim.Part { return and.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(w string) hacksim.Part { return or.NewPart(w) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(w string) hacksim.Part { return nor.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(w string) hacksim.Part { return xor.NewPart(w) }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(w string) hacksim.Part { return xnor.NewPart(w) }

// NotN returns the spec of a N-bits NOT gate named "Not<bits>".
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(bits int) *hacksim.PartSpec {
	mask := int64(1)<<uint(bits) - 1
	return &hacksim.PartSpec{
		Name:    "Not" + strconv.Itoa(bits),
		Inputs:  decls(bits, pIn),
		Outputs: decls(bits, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			in, out := s.Bus(pIn), s.Bus(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					out.SetInt64(c, ^in.GetInt64(c)&mask)
				}),
			}
		}}
}

var not16 = NotN(16)

// Not16 returns a 16 bits NOT gate.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = !in[i] }
//
func Not16(w string) hacksim.Part { return not16.NewPart(w) }

// GateN returns the spec of a N-bits logic gate named name+bits. The function
// f operates on the whole a and b buses at once and its result is truncated to
// bits.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = f(a, b)
//
func GateN(name string, bits int, f func(a, b int64) int64) *hacksim.PartSpec {
	mask := int64(1)<<uint(bits) - 1
	return &hacksim.PartSpec{
		Name:    name + strconv.Itoa(bits),
		Inputs:  decls(bits, pA, pB),
		Outputs: decls(bits, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			a, b, out := s.Bus(pA), s.Bus(pB), s.Bus(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					out.SetInt64(c, f(a.GetInt64(c), b.GetInt64(c))&mask)
				}),
			}
		}}
}

var (
	and16  = GateN("And", 16, func(a, b int64) int64 { return a & b })
	nand16 = GateN("Nand", 16, func(a, b int64) int64 { return ^(a & b) })
	or16   = GateN("Or", 16, func(a, b int64) int64 { return a | b })
	nor16  = GateN("Nor", 16, func(a, b int64) int64 { return ^(a | b) })
)

// And16 returns a 16 bits AND gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func And16(w string) hacksim.Part { return and16.NewPart(w) }

// Nand16 returns a 16 bits NAND gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = !(a[i] && b[i]) }
//
func Nand16(w string) hacksim.Part { return nand16.NewPart(w) }

// Or16 returns a 16 bits OR gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = (a[i] || b[i]) }
//
func Or16(w string) hacksim.Part { return or16.NewPart(w) }

// Nor16 returns a 16 bits NOR gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = !(a[i] || b[i]) }
//
func Nor16(w string) hacksim.Part { return nor16.NewPart(w) }

// OrNWay returns the spec of a N-Way OR gate named "Or<ways>Way".
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[ways-1]
//
func OrNWay(ways int) *hacksim.PartSpec {
	return &hacksim.PartSpec{
		Name:    "Or" + strconv.Itoa(ways) + "Way",
		Inputs:  decls(ways, pIn),
		Outputs: decls(1, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			in, out := s.Bus(pIn), s.Pin(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					c.Set(out, in.GetInt64(c) != 0)
				}),
			}
		}}
}

// AndNWay returns the spec of a N-Way AND gate named "And<ways>Way".
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[ways-1]
//
func AndNWay(ways int) *hacksim.PartSpec {
	all := int64(1)<<uint(ways) - 1
	return &hacksim.PartSpec{
		Name:    "And" + strconv.Itoa(ways) + "Way",
		Inputs:  decls(ways, pIn),
		Outputs: decls(1, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			in, out := s.Bus(pIn), s.Pin(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					c.Set(out, in.GetInt64(c) == all)
				}),
			}
		}}
}

var or8Way = OrNWay(8)

// Or8Way returns a 8-Way OR gate.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[7]
//
func Or8Way(w string) hacksim.Part { return or8Way.NewPart(w) }
