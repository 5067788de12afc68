// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

// mount mounts a compiled chip definition: it maps every net of the plan to a
// wire, then mounts each part with a socket built from these wires.
//
// Nets driving chip outputs reuse the wire allocated by the container for that
// output, so that no copy is needed. When a net drives more than one output,
// the extra outputs are fed through a buffer.
//
func (p *plan) mount(s *Socket) []*Component {
	var comps []*Component

	wires := make([]int, p.nets)
	for i := range wires {
		wires[i] = undriven
	}
	wires[cstFalse], wires[cstTrue] = cstFalse, cstTrue
	n := cstCount
	for _, b := range s.pins[:len(p.spec.Inputs)] {
		for _, w := range b {
			wires[n] = w
			n++
		}
	}

	var bufs [][2]int // net, wire
	k := 0
	for _, b := range s.pins[len(p.spec.Inputs):] {
		for _, w := range b {
			net := p.outs[k]
			k++
			switch {
			case net == cstFalse:
				// undriven output, never written.
			case wires[net] == undriven:
				wires[net] = w
			default:
				bufs = append(bufs, [2]int{net, w})
			}
		}
	}
	for i := n; i < p.nets; i++ {
		if wires[i] == undriven {
			wires[i] = s.c.allocPin()
		}
	}
	for _, b := range bufs {
		comps = append(comps, buffer(s.name, wires[b[0]], b[1]))
	}

	for i := range p.parts {
		pp := &p.parts[i]
		ps := pp.spec
		pins := make([]Bus, len(ps.Inputs)+len(ps.Outputs))
		k := 0
		for j, d := range ps.Inputs {
			b := make(Bus, d.width())
			for bit := range b {
				b[bit] = wires[pp.ins[k]]
				k++
			}
			pins[j] = b
		}
		net := pp.outBase
		for j, d := range ps.Outputs {
			b := make(Bus, d.width())
			for bit := range b {
				b[bit] = wires[net]
				net++
			}
			pins[len(ps.Inputs)+j] = b
		}
		comps = append(comps, ps.Mount(newSocket(s.c, ps, s.name+"/"+pp.name, pins))...)
	}
	return comps
}
