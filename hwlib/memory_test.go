package hwlib_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hacksim"
	hl "github.com/db47h/hacksim/hwlib"
	"github.com/db47h/hacksim/hwtest"
)

func randBool(rnd *rand.Rand) int64 {
	return rnd.Int63() & 1
}

func TestDFF(t *testing.T) {
	b := newBuilder(t, nil)
	dff4, err := b.Build(&hw.ChipSpec{
		Name: "DFF4",
		In:   hw.In("in[4]"),
		Out:  hw.Out("out[4]"),
		Parts: hw.Parts{
			hl.DFF("in=in[0], out=out[0]"),
			hl.DFF("in=in[1], out=out[1]"),
			hl.DFF("in=in[2], out=out[2]"),
			hl.DFF("in=in[3], out=out[3]"),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	var prev int64
	for i := int64(15); i >= 0; i-- {
		hwtest.Set(t, dff4, hwtest.Values{"in": i})
		dff4.Tick()
		hwtest.Expect(t, dff4, hwtest.Values{"out": prev})
		// changing the input after the tick has no effect.
		hwtest.Set(t, dff4, hwtest.Values{"in": 0})
		dff4.Tock()
		hwtest.Expect(t, dff4, hwtest.Values{"out": i})
		prev = i
	}
}

func Test_bit_register(t *testing.T) {
	r := hl.Registry()
	if err := r.Define(&hw.ChipSpec{
		Name: "BitReg",
		In:   hw.In("in, load"),
		Out:  hw.Out("out"),
		Parts: hw.Parts{
			hl.Mux("a=out, b=in, sel=load, out=muxOut"),
			hl.DFF("in=muxOut, out=out"),
		},
	}); err != nil {
		t.Fatal(err)
	}
	c, err := newBuilder(t, r).BuildPart("BitReg")
	if err != nil {
		t.Fatal(err)
	}

	rnd := rand.New(rand.NewSource(1))
	var p int64
	for i := 0; i < 1000; i++ {
		in, load := randBool(rnd), randBool(rnd)
		hwtest.Set(t, c, hwtest.Values{"in": in, "load": load})
		c.Tick()
		hwtest.Expect(t, c, hwtest.Values{"out": p})
		c.Tock()
		if load != 0 {
			p = in
		}
		hwtest.Expect(t, c, hwtest.Values{"out": p})
	}

	hwtest.ComparePart(t, r, "BitReg", "Bit")
}

func TestRegister(t *testing.T) {
	r := hl.Registry()
	for _, name := range []string{"Register", "ARegister", "DRegister"} {
		t.Run(name, func(t *testing.T) {
			c, err := newBuilder(t, r).BuildPart(name)
			if err != nil {
				t.Fatal(err)
			}
			rnd := rand.New(rand.NewSource(2))
			var p int64
			for i := 0; i < 200; i++ {
				in, load := rnd.Int63n(1<<16), randBool(rnd)
				hwtest.Set(t, c, hwtest.Values{"in": in, "load": load})
				c.Pulse()
				if load != 0 {
					p = in
				}
				hwtest.Expect(t, c, hwtest.Values{"out": p})
			}
		})
	}
}

func TestPC(t *testing.T) {
	c := buildPart(t, "PC")
	steps := []struct {
		in, load, inc, reset, out int64
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 1},
		{0x8285, 0, 1, 0, 2},
		{0x8285, 1, 1, 0, 0x8285},
		{0x8285, 0, 1, 0, 0x8286},
		{0x8285, 0, 1, 0, 0x8287},
		{12345, 1, 0, 0, 12345},
		{12345, 1, 0, 1, 0},
		{12345, 0, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0xffff, 1, 0, 0, 0xffff},
		{0, 0, 1, 0, 0},
		{22222, 1, 1, 0, 22222},
		{0, 0, 0, 0, 22222},
	}
	for i, s := range steps {
		hwtest.Set(t, c, hwtest.Values{"in": s.in, "load": s.load, "inc": s.inc, "reset": s.reset})
		c.Pulse()
		hwtest.Expect(t, c, hwtest.Values{"out": s.out})
		if t.Failed() {
			t.Fatalf("step %d: %+v", i, s)
		}
	}
}

// testRAM writes n random words at random addresses of the named RAM chip,
// then reads them back.
//
func testRAM(t *testing.T, name string, addrBits uint, n int) {
	t.Helper()
	c := buildPart(t, name)
	size := int64(1) << addrBits
	rnd := rand.New(rand.NewSource(int64(addrBits)))
	want := make(map[int64]int64)
	for i := 0; i < n; i++ {
		addr, v := rnd.Int63n(size), rnd.Int63n(1<<16)
		hwtest.Set(t, c, hwtest.Values{"address": addr, "in": v, "load": 1})
		c.Eval()
		// the write is not visible before the clock cycle completes.
		hwtest.Expect(t, c, hwtest.Values{"out": want[addr]})
		c.Pulse()
		hwtest.Expect(t, c, hwtest.Values{"out": v})
		want[addr] = v
	}
	hwtest.Set(t, c, hwtest.Values{"load": 0, "in": 0xffff})
	for addr := int64(0); addr < size; addr++ {
		hwtest.Set(t, c, hwtest.Values{"address": addr})
		c.Eval()
		hwtest.Expect(t, c, hwtest.Values{"out": want[addr]})
	}
}

func TestRAM8(t *testing.T) {
	c := buildPart(t, "RAM8")
	for addr := int64(0); addr < 8; addr++ {
		hwtest.Set(t, c, hwtest.Values{"address": addr, "in": 1111 * (addr + 1), "load": 1})
		c.Pulse()
	}
	hwtest.Set(t, c, hwtest.Values{"load": 0})
	for addr := int64(0); addr < 8; addr++ {
		hwtest.Set(t, c, hwtest.Values{"address": addr})
		c.Eval()
		hwtest.Expect(t, c, hwtest.Values{"out": 1111 * (addr + 1)})
	}
	// load=0 leaves the memory untouched
	hwtest.Set(t, c, hwtest.Values{"address": 3, "in": 0})
	c.Pulse()
	hwtest.Expect(t, c, hwtest.Values{"out": 4444})

	testRAM(t, "RAM8", 3, 50)
}

func TestRAM64(t *testing.T) {
	testRAM(t, "RAM64", 6, 100)
}

func TestRAM512(t *testing.T) {
	testRAM(t, "RAM512", 9, 200)
}

func TestRAM4K(t *testing.T) {
	if testing.Short() {
		t.Skip("large chip")
	}
	testRAM(t, "RAM4K", 12, 100)
}

func TestRAM16K(t *testing.T) {
	if testing.Short() {
		t.Skip("large chip")
	}
	c := buildPart(t, "RAM16K")
	for _, addr := range []int64{0, 1, 4095, 4096, 8191, 8192, 12287, 12288, 16383} {
		hwtest.Set(t, c, hwtest.Values{"address": addr, "in": addr ^ 0x5a5a, "load": 1})
		c.Pulse()
	}
	hwtest.Set(t, c, hwtest.Values{"load": 0})
	for _, addr := range []int64{0, 1, 4095, 4096, 8191, 8192, 12287, 12288, 16383} {
		hwtest.Set(t, c, hwtest.Values{"address": addr})
		c.Eval()
		hwtest.Expect(t, c, hwtest.Values{"out": addr ^ 0x5a5a})
	}
	hwtest.Set(t, c, hwtest.Values{"address": 2})
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": 0})
}

func TestMemory(t *testing.T) {
	if testing.Short() {
		t.Skip("large chip")
	}
	c := buildPart(t, "Memory")
	write := func(addr, v int64) {
		t.Helper()
		hwtest.Set(t, c, hwtest.Values{"address": addr, "in": v, "load": 1})
		c.Pulse()
		hwtest.Set(t, c, hwtest.Values{"load": 0})
	}
	read := func(addr, v int64) {
		t.Helper()
		hwtest.Set(t, c, hwtest.Values{"address": addr})
		c.Eval()
		hwtest.Expect(t, c, hwtest.Values{"out": v})
	}

	write(0, 1)
	write(hl.RAMSize-1, 2)
	write(hl.ScreenBase, 3)
	write(hl.ScreenBase+hl.ScreenWords-1, 4)
	read(0, 1)
	read(hl.RAMSize-1, 2)
	read(hl.ScreenBase, 3)
	read(hl.ScreenBase+hl.ScreenWords-1, 4)

	scr := c.Screen()
	if v, _ := scr.Word(0); v != 3 {
		t.Errorf("screen[0] = %d, expected 3", v)
	}
	if v, _ := scr.Word(hl.ScreenWords - 1); v != 4 {
		t.Errorf("screen[%d] = %d, expected 4", hl.ScreenWords-1, v)
	}

	// the screen can be changed from outside the circuit.
	if err := scr.SetWord(5, 0x1234); err != nil {
		t.Fatal(err)
	}
	read(hl.ScreenBase+5, 0x1234)

	read(hl.KeyboardAddr, 0)
	if err := c.Keyboard().Press('K'); err != nil {
		t.Fatal(err)
	}
	read(hl.KeyboardAddr, 'K')
	// the keyboard is read only.
	write(hl.KeyboardAddr, 42)
	read(hl.KeyboardAddr, 'K')
	c.Keyboard().Release()
	read(hl.KeyboardAddr, 0)

	read(0, 1)
	read(hl.RAMSize-1, 2)
}
