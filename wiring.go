// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Nets are the single bit signals of a chip definition. Nets 0 and 1 are the
// constants, followed by one net per chip input bit and one net per part output
// bit. Every net has exactly one driver.

const undriven = -1

// signal is a named signal in a chip definition: an input or output of the
// chip, or an internal signal. drivers holds the net driving each bit.
//
type signal struct {
	name    string
	drivers []int
	input   bool
	output  bool
}

func undrivenBits(n int) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = undriven
	}
	return b
}

type planPart struct {
	spec    *PartSpec
	name    string
	ins     []int // net of each input bit
	outBase int   // net of the first output bit
}

// plan is the resolved wiring of a chip definition.
//
type plan struct {
	spec  *PartSpec
	parts []planPart
	nets  int
	outs  []int // net of each chip output bit
}

func busWidth(ds []PinDecl) int {
	n := 0
	for _, d := range ds {
		n += d.width()
	}
	return n
}

func bitOffset(ds []PinDecl, i int) int {
	return busWidth(ds[:i])
}

// checkIO validates the interface of a chip definition and returns its
// normalized inputs and outputs.
//
func checkIO(cs *ChipSpec) (ins, outs []PinDecl, err error) {
	seen := make(map[string]bool)
	norm := func(ds []PinDecl) ([]PinDecl, error) {
		out := make([]PinDecl, len(ds))
		for i, d := range ds {
			switch {
			case d.Name == "":
				return nil, errors.Wrap(ErrUnknownPin, "empty pin name")
			case d.Name == True || d.Name == False:
				return nil, errors.Wrapf(ErrDuplicatePin, "pin %s shadows a constant", d.Name)
			case seen[d.Name]:
				return nil, errors.Wrapf(ErrDuplicatePin, "pin %s", d.Name)
			case d.Width < 0 || d.Width > MaxWidth:
				return nil, errors.Wrapf(ErrWidth, "pin %s[%d]", d.Name, d.Width)
			}
			seen[d.Name] = true
			out[i] = PinDecl{d.Name, d.width()}
		}
		return out, nil
	}
	if ins, err = norm(cs.In); err != nil {
		return nil, nil, err
	}
	if outs, err = norm(cs.Out); err != nil {
		return nil, nil, err
	}
	for _, n := range cs.Clocked {
		found := false
		for _, d := range ins {
			if d.Name == n {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, errors.Wrapf(ErrUnknownPin, "clocked pin %s is not an input", n)
		}
	}
	return ins, outs, nil
}

// bounds returns the normalized bit range of r within a pin of the given
// width.
//
func (r PinRef) bounds(width int) (lo, hi int, err error) {
	if !r.Ranged {
		return 0, width - 1, nil
	}
	lo, hi = r.Start, r.End
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi >= width {
		return 0, 0, errors.Wrapf(ErrBadRange, "%v in %d bits pin", r, width)
	}
	return lo, hi, nil
}

// newPlan resolves the wiring of cs. specs[i] is the resolved spec of
// cs.Parts[i].
//
func newPlan(cs *ChipSpec, specs []*PartSpec) (*plan, error) {
	ins, outs, err := checkIO(cs)
	if err != nil {
		return nil, err
	}
	p := &plan{
		spec: &PartSpec{
			Name:    cs.Name,
			Inputs:  ins,
			Outputs: outs,
			Clocked: append([]string(nil), cs.Clocked...),
		},
		parts: make([]planPart, len(cs.Parts)),
		nets:  cstCount,
	}
	p.spec.Mount = p.mount

	sigs := make(map[string]*signal)
	for _, d := range ins {
		s := &signal{name: d.Name, input: true, drivers: make([]int, d.Width)}
		for i := range s.drivers {
			s.drivers[i] = p.nets
			p.nets++
		}
		sigs[d.Name] = s
	}
	for _, d := range outs {
		sigs[d.Name] = &signal{name: d.Name, output: true, drivers: undrivenBits(d.Width)}
	}

	for i := range cs.Parts {
		ps := specs[i]
		p.parts[i] = planPart{
			spec:    ps,
			name:    cs.Parts[i].Name + "#" + strconv.Itoa(i),
			ins:     undrivenBits(busWidth(ps.Inputs)),
			outBase: p.nets,
		}
		p.nets += busWidth(ps.Outputs)
	}

	// drivers first: connections may reference signals driven by later parts.
	for i := range cs.Parts {
		pp := &p.parts[i]
		for _, w := range cs.Parts[i].Wires {
			idx, ok := pp.spec.pin(w.Part.Name)
			if !ok {
				return nil, errors.Wrapf(ErrUnknownPin, "part %s: %v: no pin %s in %s", pp.name, w, w.Part.Name, pp.spec.Name)
			}
			if idx < len(pp.spec.Inputs) {
				continue
			}
			if err = p.connectOutput(sigs, pp, idx-len(pp.spec.Inputs), w); err != nil {
				return nil, errors.Wrapf(err, "part %s: %v", pp.name, w)
			}
		}
	}
	for i := range cs.Parts {
		pp := &p.parts[i]
		for _, w := range cs.Parts[i].Wires {
			idx, _ := pp.spec.pin(w.Part.Name)
			if idx >= len(pp.spec.Inputs) {
				continue
			}
			if err = p.connectInput(sigs, pp, idx, w); err != nil {
				return nil, errors.Wrapf(err, "part %s: %v", pp.name, w)
			}
		}
		// omitted inputs are false
		for j, n := range pp.ins {
			if n == undriven {
				pp.ins[j] = cstFalse
			}
		}
	}

	for _, d := range outs {
		for _, n := range sigs[d.Name].drivers {
			if n == undriven {
				n = cstFalse
			}
			p.outs = append(p.outs, n)
		}
	}
	return p, nil
}

func (p *plan) connectOutput(sigs map[string]*signal, pp *planPart, out int, w Wire) error {
	d := pp.spec.Outputs[out]
	lo, hi, err := w.Part.bounds(d.width())
	if err != nil {
		return err
	}
	if w.Const || w.Chip.Name == True || w.Chip.Name == False {
		return errors.Wrapf(ErrInvalidWire, "output %s connected to a constant", d.Name)
	}
	name := w.Chip.Name
	if name == "" {
		return errors.Wrapf(ErrUnknownPin, "output %s connected to an unnamed signal", d.Name)
	}
	s := sigs[name]
	if s == nil {
		s = &signal{name: name}
		sigs[name] = s
	}
	if s.input {
		return errors.Wrapf(ErrInvalidWire, "output %s drives chip input %s", d.Name, name)
	}

	var clo, chi int
	switch {
	case w.Chip.Ranged:
		width := MaxWidth
		if s.output {
			width = len(s.drivers)
		}
		if clo, chi, err = w.Chip.bounds(width); err != nil {
			return err
		}
	case s.output:
		clo, chi = 0, len(s.drivers)-1
	default:
		clo, chi = 0, hi-lo
	}
	if chi-clo != hi-lo {
		return errors.Wrapf(ErrWidthMismatch, "%d bits from %s to %d bits of %s", hi-lo+1, d.Name, chi-clo+1, name)
	}
	for len(s.drivers) <= chi {
		s.drivers = append(s.drivers, undriven)
	}

	base := pp.outBase + bitOffset(pp.spec.Outputs, out) + lo
	for i := 0; i <= hi-lo; i++ {
		if s.drivers[clo+i] != undriven {
			return errors.Wrapf(ErrMultipleDrivers, "%s", subName(name, clo+i, clo+i))
		}
		s.drivers[clo+i] = base + i
	}
	return nil
}

func (p *plan) connectInput(sigs map[string]*signal, pp *planPart, in int, w Wire) error {
	d := pp.spec.Inputs[in]
	lo, hi, err := w.Part.bounds(d.width())
	if err != nil {
		return err
	}
	n := hi - lo + 1
	nets := make([]int, n)

	switch {
	case w.Const:
		v := w.Value
		switch {
		case v == AllOnes:
			v = 1<<uint(n) - 1
		case v < 0 || v >= 1<<uint(n):
			return errors.Wrapf(ErrWidthMismatch, "constant %d does not fit in %d bits", v, n)
		}
		for i := range nets {
			nets[i] = cstFalse
			if v&(1<<uint(i)) != 0 {
				nets[i] = cstTrue
			}
		}
	case w.Chip.Name == True || w.Chip.Name == False:
		cst := cstFalse
		if w.Chip.Name == True {
			cst = cstTrue
		}
		for i := range nets {
			nets[i] = cst
		}
	default:
		s := sigs[w.Chip.Name]
		if s == nil {
			return errors.Wrapf(ErrNotConnected, "signal %s has no driver", w.Chip.Name)
		}
		clo, chi, err := w.Chip.bounds(len(s.drivers))
		if err != nil {
			return err
		}
		if chi-clo+1 != n {
			return errors.Wrapf(ErrWidthMismatch, "%d bits of %s from %d bits of %s", n, d.Name, chi-clo+1, s.name)
		}
		for i := range nets {
			dn := s.drivers[clo+i]
			if dn == undriven {
				if !s.output {
					return errors.Wrapf(ErrNotConnected, "signal %s has no driver", subName(s.name, clo+i, clo+i))
				}
				dn = cstFalse
			}
			nets[i] = dn
		}
	}

	base := bitOffset(pp.spec.Inputs, in) + lo
	for i, dn := range nets {
		if pp.ins[base+i] != undriven {
			return errors.Wrapf(ErrMultipleDrivers, "%s connected more than once", subName(d.Name, lo+i, lo+i))
		}
		pp.ins[base+i] = dn
	}
	return nil
}
