package hwtest_test

import (
	"fmt"
	"testing"

	hw "github.com/db47h/hacksim"
	hl "github.com/db47h/hacksim/hwlib"
	"github.com/db47h/hacksim/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePart(t *testing.T) {
	hwtest.CompareSpec(t, hl.Registry(), &hw.ChipSpec{
		Name: "custom_or",
		In:   hw.In("a, b"),
		Out:  hw.Out("out"),
		Parts: hw.Parts{
			hl.Nand("a=a, b=a, out=notA"),
			hl.Nand("a=b, b=b, out=notB"),
			hl.Nand("a=notA, b=notB, out=out"),
		},
	}, "Or")
}

func TestCompareChips_clocked(t *testing.T) {
	// a register made of 16 Bits, over more than 12 input bits.
	cs := &hw.ChipSpec{
		Name: "myRegister",
		In:   hw.In("in[16], load"),
		Out:  hw.Out("out[16]"),
	}
	for i := 0; i < 16; i++ {
		cs.Parts = append(cs.Parts, hl.Bit(fmt.Sprintf("in=in[%d], load=load, out=out[%d]", i, i)))
	}
	hwtest.CompareSpec(t, hl.Registry(), cs, "Register")
}

// recorder records test failures instead of reporting them.
//
type recorder struct {
	testing.TB
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestExpect(t *testing.T) {
	b, err := hw.NewBuilder(hl.Registry())
	require.NoError(t, err)
	c, err := b.BuildPart("Add16")
	require.NoError(t, err)

	hwtest.Set(t, c, hwtest.Values{"a": 40, "b": 2})
	c.Eval()

	r := &recorder{TB: t}
	hwtest.Expect(r, c, hwtest.Values{"out": 42, "a": 40})
	assert.Empty(t, r.errors)

	hwtest.Expect(r, c, hwtest.Values{"out": 43})
	require.Len(t, r.errors, 1)
	assert.Contains(t, r.errors[0], "Add16")
	assert.Contains(t, r.errors[0], "43")
	assert.Contains(t, r.errors[0], "42")
}
