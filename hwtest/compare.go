// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hacksim"
	"github.com/kr/pretty"
)

// Values maps pin names to values.
//
type Values map[string]int64

// Set sets the inputs of c. It fails the test if any of the pins cannot be set.
//
func Set(t testing.TB, c *hacksim.Chip, in Values) {
	t.Helper()
	for k, v := range in {
		if err := c.SetInput(k, v); err != nil {
			t.Fatalf("%s: %v", c.Name(), err)
		}
	}
}

// Expect checks the current values of the given pins of c.
//
func Expect(t testing.TB, c *hacksim.Chip, want Values) {
	t.Helper()
	got := make(Values, len(want))
	for k := range want {
		v, err := c.Output(k)
		if err != nil {
			t.Fatalf("%s: %v", c.Name(), err)
		}
		got[k] = v
	}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("%s: %s", c.Name(), strings.Join(diff, ", "))
	}
}

// ComparePart builds the chips named part1 and part2 in r and compares their
// outputs given the same inputs. See CompareChips.
//
func ComparePart(t *testing.T, r *hacksim.Registry, part1, part2 string) {
	t.Helper()
	b, err := hacksim.NewBuilder(r)
	if err != nil {
		t.Fatal(err)
	}
	c1, err := b.BuildPart(part1)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := b.BuildPart(part2)
	if err != nil {
		t.Fatal(err)
	}
	CompareChips(t, c1, c2)
}

// CompareSpec builds cs with the chips in r and compares it against the chip
// named ref. See CompareChips.
//
func CompareSpec(t *testing.T, r *hacksim.Registry, cs *hacksim.ChipSpec, ref string) {
	t.Helper()
	b, err := hacksim.NewBuilder(r)
	if err != nil {
		t.Fatal(err)
	}
	c1, err := b.Build(cs)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := b.BuildPart(ref)
	if err != nil {
		t.Fatal(err)
	}
	CompareChips(t, c1, c2)
}

func sameIO(p1, p2 []hacksim.Pin) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if p1[i].Name() != p2[i].Name() || p1[i].Width() != p2[i].Width() {
			return false
		}
	}
	return true
}

func pinValues(ps []hacksim.Pin) Values {
	v := make(Values, len(ps))
	for _, p := range ps {
		v[p.Name()] = p.Read()
	}
	return v
}

// CompareChips compares the outputs of c1 and c2 given the same inputs. Both
// chips must have the same inputs and outputs, in the same order.
//
// If the chips have 12 input bits or less, all input combinations are tested.
// Otherwise, the chips are tested with all inputs at 0, all at 1, then with
// random inputs. Clocked chips are reset first then pulsed once per input
// combination, combinational chips are evaluated.
//
func CompareChips(t *testing.T, c1, c2 *hacksim.Chip) {
	t.Helper()

	if !sameIO(c1.Inputs(), c2.Inputs()) || !sameIO(c1.Outputs(), c2.Outputs()) {
		t.Fatalf("%s and %s have different interfaces: %v -> %v vs. %v -> %v",
			c1.Name(), c2.Name(), c1.Inputs(), c1.Outputs(), c2.Inputs(), c2.Outputs())
	}

	clocked := c1.IsClocked() || c2.IsClocked()
	if clocked {
		c1.Reset()
		c2.Reset()
		c1.Clock().Reset()
		c2.Clock().Reset()
	}

	ins := c1.Inputs()
	bits := 0
	for _, p := range ins {
		bits += p.Width()
	}

	step := func(in Values) {
		t.Helper()
		Set(t, c1, in)
		Set(t, c2, in)
		if clocked {
			c1.Pulse()
			c2.Pulse()
		} else {
			c1.Eval()
			c2.Eval()
		}
		o1, o2 := pinValues(c1.Outputs()), pinValues(c2.Outputs())
		if diff := pretty.Diff(o1, o2); len(diff) > 0 {
			t.Fatalf("%v: %s vs. %s: %s", in, c1.Name(), c2.Name(), strings.Join(diff, ", "))
		}
	}

	// split v into input values, lsb first.
	split := func(v uint64) Values {
		in := make(Values, len(ins))
		for _, p := range ins {
			w := uint(p.Width())
			in[p.Name()] = int64(v & (1<<w - 1))
			v >>= w
		}
		return in
	}

	if bits <= 12 {
		for v := uint64(0); v < 1<<uint(bits); v++ {
			step(split(v))
		}
		return
	}

	each := func(f func(w uint) int64) Values {
		in := make(Values, len(ins))
		for _, p := range ins {
			in[p.Name()] = f(uint(p.Width()))
		}
		return in
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	step(each(func(uint) int64 { return 0 }))
	step(each(func(w uint) int64 { return 1<<w - 1 }))
	for i := 0; i < 1<<12; i++ {
		step(each(func(w uint) int64 { return rnd.Int63n(1 << w) }))
	}
}
