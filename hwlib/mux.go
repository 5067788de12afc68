// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hacksim"
	"github.com/pkg/errors"
)

// way input/output names: a, b, c, ...
var wayNames = [...]string{"a", "b", "c", "d", "e", "f", "g", "h"}

// checkWays panics unless ways is 2, 4 or 8.
//
func checkWays(name string, ways int) {
	switch ways {
	case 2, 4, 8:
		return
	}
	panic(errors.Errorf("unsupported number of ways %d for %q", ways, name))
}

func selWidth(ways int) int {
	n := 0
	for 1<<uint(n) < ways {
		n++
	}
	return n
}

// MuxWay returns the spec of a multiplexer with 2, 4 or 8 inputs of the given
// width. It panics if ways is not 2, 4 or 8.
//
//	Inputs: a[bits], b[bits], ..., sel[log2(ways)]
//	Outputs: out[bits]
//	Function: out = input number sel
//
func MuxWay(name string, ways, bits int) *hacksim.PartSpec {
	checkWays(name, ways)
	ins := append(decls(bits, wayNames[:ways]...), hacksim.PinDecl{Name: pSel, Width: selWidth(ways)})
	return &hacksim.PartSpec{
		Name:    name,
		Inputs:  ins,
		Outputs: decls(bits, pOut),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			in := make([]hacksim.Bus, ways)
			for i := range in {
				in[i] = s.Bus(wayNames[i])
			}
			sel, out := s.Bus(pSel), s.Bus(pOut)
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					out.SetInt64(c, in[sel.GetInt64(c)].GetInt64(c))
				}),
			}
		}}
}

// DMuxWay returns the spec of a single bit demultiplexer with 2, 4 or 8
// outputs. It panics if ways is not 2, 4 or 8.
//
//	Inputs: in, sel[log2(ways)]
//	Outputs: a, b, ...
//	Function: output number sel = in, other outputs = 0
//
func DMuxWay(name string, ways int) *hacksim.PartSpec {
	checkWays(name, ways)
	return &hacksim.PartSpec{
		Name:    name,
		Inputs:  []hacksim.PinDecl{{Name: pIn, Width: 1}, {Name: pSel, Width: selWidth(ways)}},
		Outputs: decls(1, wayNames[:ways]...),
		Mount: func(s *hacksim.Socket) []*hacksim.Component {
			in, sel := s.Pin(pIn), s.Bus(pSel)
			out := make([]int, ways)
			for i := range out {
				out[i] = s.Pin(wayNames[i])
			}
			return []*hacksim.Component{
				s.Component(func(c *hacksim.Circuit) {
					n := int(sel.GetInt64(c))
					v := c.Get(in)
					for i, o := range out {
						c.Set(o, i == n && v)
					}
				}),
			}
		}}
}

var (
	mux       = MuxWay("Mux", 2, 1)
	mux16     = MuxWay("Mux16", 2, 16)
	mux4Way16 = MuxWay("Mux4Way16", 4, 16)
	mux8Way16 = MuxWay("Mux8Way16", 8, 16)
	dmux      = DMuxWay("DMux", 2)
	dmux4Way  = DMuxWay("DMux4Way", 4)
	dmux8Way  = DMuxWay("DMux8Way", 8)
)

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(w string) hacksim.Part { return mux.NewPart(w) }

// Mux16 returns a 16-bits Mux.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux16(w string) hacksim.Part { return mux16.NewPart(w) }

// Mux4Way16 returns a 4-way 16-bits Mux.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
//	Function: out = a, b, c or d for sel = 0, 1, 2 or 3
//
func Mux4Way16(w string) hacksim.Part { return mux4Way16.NewPart(w) }

// Mux8Way16 returns a 8-way 16-bits Mux.
//
//	Inputs: a[16], b[16], ..., h[16], sel[3]
//	Outputs: out[16]
//	Function: out = a, b, ..., h for sel = 0, 1, ..., 7
//
func Mux8Way16(w string) hacksim.Part { return mux8Way16.NewPart(w) }

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(w string) hacksim.Part { return dmux.NewPart(w) }

// DMux4Way returns a 4-way demultiplexer.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
//
func DMux4Way(w string) hacksim.Part { return dmux4Way.NewPart(w) }

// DMux8Way returns a 8-way demultiplexer.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
//
func DMux8Way(w string) hacksim.Part { return dmux8Way.NewPart(w) }
