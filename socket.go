// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

// A Socket maps a part's pin names to wires in a circuit.
//
type Socket struct {
	c    *Circuit
	spec *PartSpec
	name string
	pins []Bus // inputs then outputs, in declaration order
}

func newSocket(c *Circuit, spec *PartSpec, name string, pins []Bus) *Socket {
	return &Socket{c, spec, name, pins}
}

// Circuit returns the circuit the part is being mounted in.
//
func (s *Socket) Circuit() *Circuit { return s.c }

// Name returns the instance name of the mounted part, like "CPU/ALU#3".
//
func (s *Socket) Name() string { return s.name }

// Bus returns the wires connected to the named pin. This function panics if
// the part has no such pin.
//
func (s *Socket) Bus(name string) Bus {
	i, ok := s.spec.pin(name)
	if !ok {
		panic("pin " + name + " does not exist in " + s.spec.Name)
	}
	return s.pins[i]
}

// Pin returns the wire connected to the named single bit pin. This function
// panics if the part has no such pin.
//
func (s *Socket) Pin(name string) int {
	return s.Bus(name)[0]
}

// Inputs returns the wires connected to the non-clocked inputs of the part.
//
func (s *Socket) Inputs() []int {
	var out []int
	for i, d := range s.spec.Inputs {
		if !s.spec.isClocked(d.Name) {
			out = append(out, s.pins[i]...)
		}
	}
	return out
}

// Outputs returns the wires connected to the outputs of the part.
//
func (s *Socket) Outputs() []int {
	var out []int
	for _, b := range s.pins[len(s.spec.Inputs):] {
		out = append(out, b...)
	}
	return out
}

// Component returns a combinational component for the mounted part. Its
// dependencies are the non-clocked inputs and it drives every output.
//
func (s *Socket) Component(update func(c *Circuit)) *Component {
	return &Component{
		Name:   s.name,
		Deps:   s.Inputs(),
		Drives: s.Outputs(),
		Update: update,
	}
}

// ClockedComponent returns a component with clocked state for the mounted
// part. update may be nil if the part has no outputs.
//
func (s *Socket) ClockedComponent(cl Clocked, update func(c *Circuit)) *Component {
	cp := s.Component(update)
	cp.Clocked = cl
	return cp
}
