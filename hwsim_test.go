package hacksim_test

import (
	"testing"

	hw "github.com/db47h/hacksim"
	hl "github.com/db47h/hacksim/hwlib"
	"github.com/db47h/hacksim/hwtest"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

// testGate checks the outputs of a chip with single bit inputs against a truth
// table. The first input is the most significant bit of the row number.
//
func testGate(t *testing.T, c *hw.Chip, result [][]int64) {
	t.Helper()
	ins := c.Inputs()
	tot := 1 << uint(len(ins))
	for i := 0; i < tot; i++ {
		for bit, p := range ins {
			if err := p.Write(int64(i>>uint(len(ins)-bit-1)) & 1); err != nil {
				t.Fatal(err)
			}
		}
		c.Eval()
		for o, p := range c.Outputs() {
			if got := p.Read(); got != result[o][i] {
				t.Errorf("%s %v: %s = %d, got %d", c.Name(), ins, p.Name(), result[o][i], got)
			}
		}
	}
}

// nandGates returns a registry with gates built from Nand gates only.
//
func nandGates(t *testing.T) *hw.Registry {
	r := hl.Registry()
	err := r.Define(
		&hw.ChipSpec{Name: "MyNot", In: hw.In("in"), Out: hw.Out("out"), Parts: hw.Parts{
			hl.Nand("a=in, b=in, out=out"),
		}},
		&hw.ChipSpec{Name: "MyAnd", In: hw.In("a, b"), Out: hw.Out("out"), Parts: hw.Parts{
			hl.Nand("a=a, b=b, out=nand"),
			hw.NewPart("MyNot", "in=nand, out=out"),
		}},
		&hw.ChipSpec{Name: "MyOr", In: hw.In("a, b"), Out: hw.Out("out"), Parts: hw.Parts{
			hw.NewPart("MyNot", "in=a, out=notA"),
			hw.NewPart("MyNot", "in=b, out=notB"),
			hl.Nand("a=notA, b=notB, out=out"),
		}},
		&hw.ChipSpec{Name: "MyNor", In: hw.In("a, b"), Out: hw.Out("out"), Parts: hw.Parts{
			hw.NewPart("MyOr", "a=a, b=b, out=orAB"),
			hl.Nand("a=orAB, b=orAB, out=out"),
		}},
		&hw.ChipSpec{Name: "MyXor", In: hw.In("a, b"), Out: hw.Out("out"), Parts: hw.Parts{
			hl.Nand("a=a, b=b, out=nandAB"),
			hl.Nand("a=a, b=nandAB, out=w0"),
			hl.Nand("a=b, b=nandAB, out=w1"),
			hl.Nand("a=w0, b=w1, out=out"),
		}},
		&hw.ChipSpec{Name: "MyXnor", In: hw.In("a, b"), Out: hw.Out("out"), Parts: hw.Parts{
			hw.NewPart("MyOr", "a=a, b=b, out=or"),
			hl.Nand("a=a, b=b, out=nand"),
			hl.Nand("a=or, b=nand, out=w"),
			hw.NewPart("MyNot", "in=w, out=out"),
		}},
		&hw.ChipSpec{Name: "MyMux", In: hw.In("a, b, sel"), Out: hw.Out("out"), Parts: hw.Parts{
			hw.NewPart("MyNot", "in=sel, out=notSel"),
			hw.NewPart("MyAnd", "a=a, b=notSel, out=w0"),
			hw.NewPart("MyAnd", "a=b, b=sel, out=w1"),
			hw.NewPart("MyOr", "a=w0, b=w1, out=out"),
		}},
		&hw.ChipSpec{Name: "MyDMux", In: hw.In("in, sel"), Out: hw.Out("a, b"), Parts: hw.Parts{
			hw.NewPart("MyNot", "in=sel, out=notSel"),
			hw.NewPart("MyAnd", "a=in, b=notSel, out=a"),
			hw.NewPart("MyAnd", "a=in, b=sel, out=b"),
		}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func Test_gate_custom(t *testing.T) {
	r := nandGates(t)
	b, err := hw.NewBuilder(r)
	if err != nil {
		t.Fatal(err)
	}

	td := []struct {
		name   string
		result [][]int64
	}{
		{"Nand", [][]int64{{1, 1, 1, 0}}},
		{"MyNot", [][]int64{{1, 0}}},
		{"MyAnd", [][]int64{{0, 0, 0, 1}}},
		{"MyOr", [][]int64{{0, 1, 1, 1}}},
		{"MyNor", [][]int64{{1, 0, 0, 0}}},
		{"MyXor", [][]int64{{0, 1, 1, 0}}},
		{"MyXnor", [][]int64{{1, 0, 0, 1}}},
		{"MyMux", [][]int64{{0, 0, 0, 1, 1, 0, 1, 1}}},
		{"MyDMux", [][]int64{{0, 0, 1, 0}, {0, 0, 0, 1}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c, err := b.BuildPart(d.name)
			if err != nil {
				trace(t, err)
				t.Fatal(err)
			}
			testGate(t, c, d.result)
		})
	}
}

func Test_gate_vs_builtin(t *testing.T) {
	r := nandGates(t)
	td := []struct{ custom, builtin string }{
		{"MyNot", "Not"},
		{"MyAnd", "And"},
		{"MyOr", "Or"},
		{"MyNor", "Nor"},
		{"MyXor", "Xor"},
		{"MyXnor", "Xnor"},
		{"MyMux", "Mux"},
		{"MyDMux", "DMux"},
	}
	for _, d := range td {
		t.Run(d.custom, func(t *testing.T) {
			hwtest.ComparePart(t, r, d.custom, d.builtin)
		})
	}
}

func Test_constants(t *testing.T) {
	r := hl.Registry()
	c, err := hw.Build(&hw.ChipSpec{
		Name: "Constants",
		In:   hw.In("a"),
		Out:  hw.Out("t, f, x[16], y[4], z[16]"),
		Parts: hw.Parts{
			hl.And("a=true, b=true, out=t"),
			hl.Or("a=false, b=false, out=f"),
			hl.Or16("a=true, b=false, out=x"),
			hl.Or16("a[0..3]=5, b=false, out[0..3]=y"),
			hl.Add16("a=1234, b[0]=a, out=z"),
		},
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.Expect(t, c, hwtest.Values{"t": 1, "f": 0, "x": 0xffff, "y": 5, "z": 1234})
	hwtest.Set(t, c, hwtest.Values{"a": 1})
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"z": 1235})
}
