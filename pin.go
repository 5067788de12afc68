// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"strconv"

	"github.com/pkg/errors"
)

// MaxWidth is the widest pin or bus supported.
//
const MaxWidth = 16

// A Bus is a group of wires in a circuit, least significant bit first.
//
type Bus []int

// Width returns the bus width in bits.
//
func (b Bus) Width() int { return len(b) }

// GetInt64 returns the bus value. Bit 0 is the lsb.
//
func (b Bus) GetInt64(c *Circuit) int64 {
	var out int64
	for bit, n := range b {
		if c.wires[n] {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// SetInt64 sets the bus wires to the low order bits of v. Higher order bits of
// v are ignored; this is meant for components whose results are computed
// modulo the bus width. Use Pin.Write for a checked assignment.
//
func (b Bus) SetInt64(c *Circuit, v int64) {
	for bit, n := range b {
		c.wires[n] = v&(1<<uint(bit)) != 0
	}
}

// Pin is a named view of 1 to 16 wires in a circuit.
//
// Pins are handles: copies of a Pin, and SubBus views returned by Slice, share
// the underlying wires. Writing through any of them is visible through all.
//
type Pin struct {
	name string
	bus  Bus
	c    *Circuit
}

// NewPin allocates width fresh wires in c and returns a pin for them.
//
func (c *Circuit) NewPin(name string, width int) (Pin, error) {
	if width < 1 || width > MaxWidth {
		return Pin{}, errors.Wrapf(ErrWidth, "pin %s[%d]", name, width)
	}
	b := make(Bus, width)
	for i := range b {
		b[i] = c.allocPin()
	}
	return Pin{name, b, c}, nil
}

// Name returns the pin name.
//
func (p Pin) Name() string { return p.name }

// Width returns the pin width in bits.
//
func (p Pin) Width() int { return len(p.bus) }

// Bus returns the wires of the pin.
//
func (p Pin) Bus() Bus { return p.bus }

// Read returns the current pin value.
//
func (p Pin) Read() int64 {
	return p.bus.GetInt64(p.c)
}

// Write sets the pin value. It fails with ErrValueRange if v is negative or
// does not fit in the pin width, in which case the pin is left untouched.
//
func (p Pin) Write(v int64) error {
	if v < 0 || v >= 1<<uint(len(p.bus)) {
		return errors.Wrapf(ErrValueRange, "write %d to %d bits pin %s", v, len(p.bus), p.name)
	}
	p.bus.SetInt64(p.c, v)
	return nil
}

// ReadBit returns the state of bit i.
//
func (p Pin) ReadBit(i int) (bool, error) {
	if i < 0 || i >= len(p.bus) {
		return false, errors.Wrapf(ErrBitRange, "bit %d of %d bits pin %s", i, len(p.bus), p.name)
	}
	return p.c.Get(p.bus[i]), nil
}

// WriteBit sets the state of bit i.
//
func (p Pin) WriteBit(i int, v bool) error {
	if i < 0 || i >= len(p.bus) {
		return errors.Wrapf(ErrBitRange, "bit %d of %d bits pin %s", i, len(p.bus), p.name)
	}
	p.c.Set(p.bus[i], v)
	return nil
}

// Slice returns a SubBus view of bits [lo, hi) of p. Writes through the view
// only affect those bits.
//
func (p Pin) Slice(lo, hi int) (Pin, error) {
	if lo < 0 || hi > len(p.bus) || lo >= hi {
		return Pin{}, errors.Wrapf(ErrBitRange, "range [%d, %d) of %d bits pin %s", lo, hi, len(p.bus), p.name)
	}
	return Pin{subName(p.name, lo, hi-1), p.bus[lo:hi:hi], p.c}, nil
}

func (p Pin) String() string {
	return p.name + "=" + strconv.FormatInt(p.Read(), 10)
}

func subName(name string, start, end int) string {
	if start == end {
		return name + "[" + strconv.Itoa(start) + "]"
	}
	return name + "[" + strconv.Itoa(start) + ".." + strconv.Itoa(end) + "]"
}
