// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"strconv"
)

// Constant signal names. They can be used on the chip side of a part input
// connection.
//
const (
	True  = "true"
	False = "false"
)

// AllOnes is the Value of a constant Wire connected to True. It sets every bit
// of the part pin range.
//
const AllOnes int64 = -1

// PinDecl declares a chip input or output.
//
type PinDecl struct {
	Name  string
	Width int // 0 means 1
}

func (d PinDecl) width() int {
	if d.Width == 0 {
		return 1
	}
	return d.Width
}

func (d PinDecl) String() string {
	if d.width() == 1 {
		return d.Name
	}
	return d.Name + "[" + strconv.Itoa(d.width()) + "]"
}

// PinRef references a pin, or the bits Start to End of a pin, both inclusive.
//
type PinRef struct {
	Name   string
	Start  int
	End    int
	Ranged bool
}

func (r PinRef) String() string {
	if !r.Ranged {
		return r.Name
	}
	return subName(r.Name, r.Start, r.End)
}

// Wire connects a pin of a part to a signal of the enclosing chip.
//
// The chip side is either an input or output of the chip, an internal signal
// or, when Const is set, the constant Value. A Value of AllOnes sets every bit
// of the part pin.
//
type Wire struct {
	Part  PinRef
	Chip  PinRef
	Const bool
	Value int64
}

func (w Wire) String() string {
	if w.Const {
		switch w.Value {
		case AllOnes:
			return w.Part.String() + "=" + True
		case 0:
			return w.Part.String() + "=" + False
		}
		return w.Part.String() + "=" + strconv.FormatInt(w.Value, 10)
	}
	return w.Part.String() + "=" + w.Chip.String()
}

// Part is a named part instantiation in a chip definition. The name is
// resolved by the Builder, either as another chip definition or as a builtin.
//
type Part struct {
	Name  string
	Wires []Wire
}

// Parts is a convenience type for a slice of Part.
//
type Parts []Part

// ChipSpec is the structural description of a chip: its interface and the
// parts it is made of. ChipSpecs are only read by the Builder.
//
type ChipSpec struct {
	Name  string
	In    []PinDecl
	Out   []PinDecl
	Parts Parts
	// Clocked lists the inputs that only have an effect on clock edges.
	Clocked []string
}

// A MountFn mounts a part into a circuit and returns its components. The
// socket gives access to the wires connected to the part's pins.
//
type MountFn func(s *Socket) []*Component

// PartSpec is the compiled, immutable form of a part. Builtins are written
// directly as a PartSpec, chip definitions are compiled into one by the
// Builder. A PartSpec can be mounted any number of times, in any number of
// circuits.
//
type PartSpec struct {
	Name    string
	Inputs  []PinDecl
	Outputs []PinDecl
	// Clocked lists the inputs that only have an effect on clock edges.
	Clocked []string
	Mount   MountFn
}

// NewPart returns a Part instantiating p with the given connections. It
// panics if the connection string cannot be parsed.
//
func (p *PartSpec) NewPart(conns string) Part {
	return NewPart(p.Name, conns)
}

// pin returns the pin declaration index of the named pin in the concatenation
// of p.Inputs and p.Outputs.
//
func (p *PartSpec) pin(name string) (int, bool) {
	for i := range p.Inputs {
		if p.Inputs[i].Name == name {
			return i, true
		}
	}
	for i := range p.Outputs {
		if p.Outputs[i].Name == name {
			return len(p.Inputs) + i, true
		}
	}
	return -1, false
}

// isClocked reports whether the named input is a clocked input.
//
func (p *PartSpec) isClocked(name string) bool {
	for _, n := range p.Clocked {
		if n == name {
			return true
		}
	}
	return false
}
