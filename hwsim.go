// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

// A Clocked component holds state across clock cycles.
//
// The Clock calls Tick on every clocked component of a circuit before calling
// Tock on any of them, so a component never observes a state committed during
// the same clock edge.
//
type Clocked interface {
	// Tick samples the component's inputs and computes its next state without
	// making it visible.
	Tick(c *Circuit)
	// Tock commits the state computed by the last Tick.
	Tock()
	// Reset forces the component's state to its zero value.
	Reset()
}

// A Component is a mounted primitive part.
//
// Update recomputes the wires in Drives from the wires in Deps. Clocked
// components also set Clocked; their sampled inputs are not listed in Deps
// since they do not affect the outputs before the next clock edge. This is what
// makes feedback loops through a DFF legal.
//
type Component struct {
	Name    string
	Deps    []int
	Drives  []int
	Update  func(c *Circuit)
	Clocked Clocked
}

// Constant wires.
//
const (
	cstFalse = iota
	cstTrue
	cstCount
)

// Circuit is the wire arena of a chip instance. Wires are single bits
// addressed by their index in the arena. Pins, buses and components refer to
// wires by index only.
//
// A Circuit and everything mounted in it must be used by a single goroutine at
// a time. Independent circuits share no state.
//
type Circuit struct {
	wires   []bool
	comps   []*Component // evaluation order
	clocked []*Component // build order
	clk     Clock

	screen *Screen
	kbd    *Keyboard
	rom    *ROM
}

// NewCircuit returns an empty circuit with room for the constant wires.
//
func NewCircuit() *Circuit {
	c := &Circuit{wires: make([]bool, cstCount, 64)}
	c.wires[cstTrue] = true
	c.clk.c = c
	return c
}

// allocPin allocates a wire and returns its number.
//
func (c *Circuit) allocPin() int {
	c.wires = append(c.wires, false)
	return len(c.wires) - 1
}

// Get returns the state of wire n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
//
func (c *Circuit) Get(n int) bool {
	return c.wires[n]
}

// Set sets the state of wire n.
//
func (c *Circuit) Set(n int, s bool) {
	c.wires[n] = s
}

// Toggle toggles the state of wire n.
//
func (c *Circuit) Toggle(n int) {
	c.wires[n] = !c.wires[n]
}

// Eval runs every component once, in evaluation order.
//
func (c *Circuit) Eval() {
	for _, cp := range c.comps {
		if cp.Update != nil {
			cp.Update(c)
		}
	}
}

// Clock returns the circuit's clock.
//
func (c *Circuit) Clock() *Clock { return &c.clk }

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.comps) }

// Wires returns the number of wires allocated in the circuit, constants
// included.
//
func (c *Circuit) Wires() int { return len(c.wires) }

// clear zeroes every wire except constants and the wires in keep.
//
func (c *Circuit) clear(keep []Bus) {
	saved := make([][]bool, len(keep))
	for i, b := range keep {
		saved[i] = make([]bool, len(b))
		for j, n := range b {
			saved[i][j] = c.wires[n]
		}
	}
	for i := cstCount; i < len(c.wires); i++ {
		c.wires[i] = false
	}
	for i, b := range keep {
		for j, n := range b {
			c.wires[n] = saved[i][j]
		}
	}
}
