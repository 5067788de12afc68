// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"github.com/pkg/errors"
)

// Chip is a runnable chip instance, as returned by the Builder.
//
// Inputs are set with SetInput and the results read back with Output after a
// call to Eval for combinational chips, or Pulse for clocked chips. Failed calls
// leave the chip untouched and usable.
//
// A Chip must only be used by one goroutine at a time.
//
type Chip struct {
	c    *Circuit
	spec *PartSpec
	ins  []Pin
	outs []Pin
}

// Name returns the chip name.
//
func (ch *Chip) Name() string { return ch.spec.Name }

// Spec returns the PartSpec the chip was built from.
//
func (ch *Chip) Spec() *PartSpec { return ch.spec }

// Circuit returns the chip's circuit.
//
func (ch *Chip) Circuit() *Circuit { return ch.c }

// Inputs returns the chip's input pins.
//
func (ch *Chip) Inputs() []Pin { return ch.ins }

// Outputs returns the chip's output pins.
//
func (ch *Chip) Outputs() []Pin { return ch.outs }

// Size returns the number of components in the chip.
//
func (ch *Chip) Size() int { return ch.c.Size() }

// IsClocked reports whether the chip holds clocked state or declares clocked
// inputs.
//
func (ch *Chip) IsClocked() bool {
	return len(ch.c.clocked) > 0 || len(ch.spec.Clocked) > 0
}

func (ch *Chip) lookup(name string) (Pin, bool, error) {
	r, err := ParsePinRef(name)
	if err != nil {
		return Pin{}, false, errors.Wrapf(ErrNoSuchPin, "%s: %v", ch.spec.Name, err)
	}
	var (
		p     Pin
		input bool
		found bool
	)
	for _, q := range ch.ins {
		if q.name == r.Name {
			p, input, found = q, true, true
			break
		}
	}
	if !found {
		for _, q := range ch.outs {
			if q.name == r.Name {
				p, found = q, true
				break
			}
		}
	}
	if !found {
		return Pin{}, false, errors.Wrapf(ErrNoSuchPin, "%s.%s", ch.spec.Name, r.Name)
	}
	if !r.Ranged {
		return p, input, nil
	}
	lo, hi := r.Start, r.End
	if lo > hi {
		lo, hi = hi, lo
	}
	sub, err := p.Slice(lo, hi+1)
	if err != nil {
		return Pin{}, false, err
	}
	return sub, input, nil
}

// Pin returns the named input or output pin. The name may select a single bit
// or a range of bits: "out", "out[3]" or "out[0..7]".
//
func (ch *Chip) Pin(name string) (Pin, error) {
	p, _, err := ch.lookup(name)
	return p, err
}

// SetInput sets the value of the named input pin, or range of bits of an input
// pin. The new value is only propagated by the next call to Eval, Tick, Tock or
// Pulse.
//
func (ch *Chip) SetInput(name string, v int64) error {
	p, input, err := ch.lookup(name)
	if err != nil {
		return err
	}
	if !input {
		return errors.Wrapf(ErrNotInput, "%s.%s", ch.spec.Name, name)
	}
	return p.Write(v)
}

// Output returns the current value of the named pin. Input pins can be read as
// well.
//
func (ch *Chip) Output(name string) (int64, error) {
	p, _, err := ch.lookup(name)
	if err != nil {
		return 0, err
	}
	return p.Read(), nil
}

// Eval propagates the input values through the chip.
//
func (ch *Chip) Eval() { ch.c.Eval() }

// Clock returns the chip's clock.
//
func (ch *Chip) Clock() *Clock { return ch.c.Clock() }

// Tick is a shorthand for ch.Clock().Tick().
//
func (ch *Chip) Tick() { ch.c.clk.Tick() }

// Tock is a shorthand for ch.Clock().Tock().
//
func (ch *Chip) Tock() { ch.c.clk.Tock() }

// Pulse is a shorthand for ch.Clock().Pulse().
//
func (ch *Chip) Pulse() { ch.c.clk.Pulse() }

// Cycle returns the number of clock cycles since the last reset.
//
func (ch *Chip) Cycle() uint64 { return ch.c.clk.cycle }

// Reset zeroes the state of clocked components, the clock's cycle counter,
// and every output and internal wire. Input pins keep their value. Call Eval
// to propagate the inputs again.
//
func (ch *Chip) Reset() {
	ch.c.clk.cycle = 0
	ch.c.clk.high = false
	for _, cp := range ch.c.clocked {
		cp.Clocked.Reset()
	}
	keep := make([]Bus, len(ch.ins))
	for i, p := range ch.ins {
		keep[i] = p.bus
	}
	ch.c.clear(keep)
}

// Screen returns the display of the chip. All Screen parts of a chip share
// the same display.
//
func (ch *Chip) Screen() *Screen { return ch.c.Screen() }

// Keyboard returns the keyboard of the chip.
//
func (ch *Chip) Keyboard() *Keyboard { return ch.c.Keyboard() }

// ROM returns the instruction memory of the chip.
//
func (ch *Chip) ROM() *ROM { return ch.c.ROM() }
