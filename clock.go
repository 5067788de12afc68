// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

// Clock drives the clocked components of a circuit.
//
// A clock cycle has two phases. Tick samples the inputs of every clocked
// component and Tock commits the sampled state. Every component completes its
// Tick before any component starts its Tock, so a component never sees a value
// committed during the same cycle.
//
type Clock struct {
	c     *Circuit
	cycle uint64
	high  bool
}

// Tick evaluates the circuit then lets every clocked component sample its
// inputs, in build order. Calling Tick twice in a row samples the inputs
// again.
//
func (k *Clock) Tick() {
	k.c.Eval()
	for _, cp := range k.c.clocked {
		cp.Clocked.Tick(k.c)
	}
	k.high = true
}

// Tock commits the state of every clocked component, in build order, then
// evaluates the circuit and increments the cycle counter. If the clock is low,
// Tock performs the missing Tick first.
//
func (k *Clock) Tock() {
	if !k.high {
		k.Tick()
	}
	for _, cp := range k.c.clocked {
		cp.Clocked.Tock()
	}
	k.c.Eval()
	k.high = false
	k.cycle++
}

// Pulse runs a full clock cycle: Tick, then Tock.
//
func (k *Clock) Pulse() {
	k.Tick()
	k.Tock()
}

// Reset sets the cycle counter back to 0, forces the state of every clocked
// component to its zero value and evaluates the circuit.
//
func (k *Clock) Reset() {
	k.cycle = 0
	k.high = false
	for _, cp := range k.c.clocked {
		cp.Clocked.Reset()
	}
	k.c.Eval()
}

// Cycle returns the number of completed clock cycles since the last reset.
//
func (k *Clock) Cycle() uint64 { return k.cycle }

// High reports whether the clock has ticked and is waiting for a tock.
//
func (k *Clock) High() bool { return k.high }
