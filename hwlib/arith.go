// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/hacksim"
)

var hAdder = &hacksim.PartSpec{
	Name:    "HalfAdder",
	Inputs:  decls(1, pA, pB),
	Outputs: decls(1, "sum", "carry"),
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		a, b := s.Pin(pA), s.Pin(pB)
		sum, carry := s.Pin("sum"), s.Pin("carry")
		return []*hacksim.Component{
			s.Component(func(c *hacksim.Circuit) {
				va, vb := c.Get(a), c.Get(b)
				c.Set(sum, va != vb)
				c.Set(carry, va && vb)
			})}
	}}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: sum, carry
//	Function: sum = lsb(a + b)
//	          carry = msb(a + b)
//
func HalfAdder(w string) hacksim.Part { return hAdder.NewPart(w) }

var adder = &hacksim.PartSpec{
	Name:    "FullAdder",
	Inputs:  decls(1, pA, pB, "c"),
	Outputs: decls(1, "sum", "carry"),
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		a, b, cin := s.Pin(pA), s.Pin(pB), s.Pin("c")
		sum, carry := s.Pin("sum"), s.Pin("carry")
		return []*hacksim.Component{
			s.Component(func(c *hacksim.Circuit) {
				va, vb, vc := c.Get(a), c.Get(b), c.Get(cin)
				x := va != vb
				c.Set(sum, x != vc)
				c.Set(carry, x && vc || va && vb)
			})}
	}}

// FullAdder returns a 3 bits adder.
//
//	Inputs: a, b, c
//	Outputs: sum, carry
//	Function: sum = lsb(a + b + c)
//	          carry = msb(a + b + c)
//
func FullAdder(w string) hacksim.Part { return adder.NewPart(w) }

// AdderN returns the spec of a N-bits adder named "Add<bits>". The carry out
// of the most significant bit is dropped.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = a + b
//
func AdderN(bits int) *hacksim.PartSpec {
	mask := int64(1)<<uint(bits) - 1
	return &hacksim.PartSpec{
		Name:    "Add" + strconv.Itoa(bits),
		Inputs:  decls(bits, pA, pB),
		Outputs: decls(bits, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			a, b, out := s.Bus(pA), s.Bus(pB), s.Bus(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					out.SetInt64(c, (a.GetInt64(c)+b.GetInt64(c))&mask)
				})}
		}}
}

var add16 = AdderN(16)

// Add16 returns a 16 bits adder.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: out = a + b
//
func Add16(w string) hacksim.Part { return add16.NewPart(w) }

var inc16 = &hacksim.PartSpec{
	Name:    "Inc16",
	Inputs:  decls(16, pIn),
	Outputs: decls(16, pOut),
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		in, out := s.Bus(pIn), s.Bus(pOut)
		return []*hacksim.Component{
			s.Component(func(c *hacksim.Circuit) {
				out.SetInt64(c, (in.GetInt64(c)+1)&0xffff)
			})}
	}}

// Inc16 returns a 16 bits incrementer.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: out = in + 1
//
func Inc16(w string) hacksim.Part { return inc16.NewPart(w) }

type aluImpl struct {
	X   [16]int `hw:"in"`
	Y   [16]int `hw:"in"`
	ZX  int     `hw:"in"`
	NX  int     `hw:"in"`
	ZY  int     `hw:"in"`
	NY  int     `hw:"in"`
	F   int     `hw:"in"`
	NO  int     `hw:"in"`
	Out [16]int `hw:"out"`
	ZR  int     `hw:"out"`
	NG  int     `hw:"out"`
}

func (a *aluImpl) Update(c *hacksim.Circuit) {
	x := hacksim.Bus(a.X[:]).GetInt64(c)
	y := hacksim.Bus(a.Y[:]).GetInt64(c)
	if c.Get(a.ZX) {
		x = 0
	}
	if c.Get(a.NX) {
		x = ^x & 0xffff
	}
	if c.Get(a.ZY) {
		y = 0
	}
	if c.Get(a.NY) {
		y = ^y & 0xffff
	}
	var out int64
	if c.Get(a.F) {
		out = (x + y) & 0xffff
	} else {
		out = x & y
	}
	if c.Get(a.NO) {
		out = ^out & 0xffff
	}
	hacksim.Bus(a.Out[:]).SetInt64(c, out)
	c.Set(a.ZR, out == 0)
	c.Set(a.NG, out&0x8000 != 0)
}

var alu = func() *hacksim.PartSpec {
	p := hacksim.MakePart((*aluImpl)(nil))
	p.Name = "ALU"
	return p
}()

// ALU returns the Hack ALU.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
func ALU(w string) hacksim.Part { return alu.NewPart(w) }
