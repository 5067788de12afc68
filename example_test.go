package hacksim_test

import (
	"fmt"

	hw "github.com/db47h/hacksim"
	hl "github.com/db47h/hacksim/hwlib"
)

func ExampleBuild() {
	c, err := hw.Build(&hw.ChipSpec{
		Name: "Xor",
		In:   hw.In("a, b"),
		Out:  hw.Out("out"),
		Parts: hw.Parts{
			hl.Nand("a=a, b=b, out=nandAB"),
			hl.Nand("a=a, b=nandAB, out=w0"),
			hl.Nand("a=b, b=nandAB, out=w1"),
			hl.Nand("a=w0, b=w1, out=out"),
		},
	}, hl.Registry())
	if err != nil {
		panic(err)
	}
	for i := int64(0); i < 4; i++ {
		c.SetInput("a", i>>1)
		c.SetInput("b", i&1)
		c.Eval()
		out, _ := c.Output("out")
		fmt.Printf("%d xor %d = %d\n", i>>1, i&1, out)
	}

	// Output:
	// 0 xor 0 = 0
	// 0 xor 1 = 1
	// 1 xor 0 = 1
	// 1 xor 1 = 0
}

func ExampleBuilder_BuildPart() {
	b, err := hw.NewBuilder(hl.Registry())
	if err != nil {
		panic(err)
	}

	add, err := b.BuildPart("Add16")
	if err != nil {
		panic(err)
	}
	add.SetInput("a", 5)
	add.SetInput("b", 3)
	add.Eval()
	sum, _ := add.Output("out")
	fmt.Println("5 + 3 =", sum)

	bit, err := b.BuildPart("Bit")
	if err != nil {
		panic(err)
	}
	bit.SetInput("in", 1)
	bit.SetInput("load", 1)
	bit.Eval()
	out, _ := bit.Output("out")
	fmt.Println("before pulse:", out)
	bit.Pulse()
	out, _ = bit.Output("out")
	fmt.Println("after pulse:", out)
	bit.Reset()
	bit.Eval()
	out, _ = bit.Output("out")
	fmt.Println("after reset:", out)

	// Output:
	// 5 + 3 = 8
	// before pulse: 0
	// after pulse: 1
	// after reset: 0
}

func ExampleBuilder_RunBatch() {
	b, err := hw.NewBuilder(hl.Registry(), hw.Workers(4))
	if err != nil {
		panic(err)
	}
	var sums [8]int64
	jobs := make([]hw.Job, len(sums))
	for i := range jobs {
		i := i
		jobs[i] = func(c *hw.Chip) error {
			if err := c.SetInput("a", int64(i)); err != nil {
				return err
			}
			if err := c.SetInput("b", int64(i*i)); err != nil {
				return err
			}
			c.Eval()
			v, err := c.Output("out")
			sums[i] = v
			return err
		}
	}
	err = b.RunBatch(&hw.ChipSpec{
		Name:  "Sum",
		In:    hw.In("a[16], b[16]"),
		Out:   hw.Out("out[16]"),
		Parts: hw.Parts{hl.Add16("a=a, b=b, out=out")},
	}, jobs...)
	if err != nil {
		panic(err)
	}
	fmt.Println(sums)

	// Output:
	// [0 2 6 12 20 30 42 56]
}
