// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hacksim"

type dffImpl struct {
	in, out   int
	cur, next bool
}

func (d *dffImpl) Tick(c *hacksim.Circuit) { d.next = c.Get(d.in) }
func (d *dffImpl) Tock()                   { d.cur = d.next }
func (d *dffImpl) Reset()                  { d.cur, d.next = false, false }

var dff = &hacksim.PartSpec{
	Name:    "DFF",
	Inputs:  decls(1, pIn),
	Outputs: decls(1, pOut),
	Clocked: []string{pIn},
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		d := &dffImpl{in: s.Pin(pIn), out: s.Pin(pOut)}
		return []*hacksim.Component{
			s.ClockedComponent(d, func(c *hacksim.Circuit) { c.Set(d.out, d.cur) }),
		}
	}}

// DFF returns a clocked data flip flop.
//
//	Inputs: in
//	Outputs: out
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(w string) hacksim.Part { return dff.NewPart(w) }
