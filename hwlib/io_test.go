package hwlib_test

import (
	"testing"

	hw "github.com/db47h/hacksim"
	hl "github.com/db47h/hacksim/hwlib"
	"github.com/db47h/hacksim/hwtest"
)

func TestScreen(t *testing.T) {
	c := buildPart(t, "Screen")
	if !c.IsClocked() {
		t.Fatal("Screen is not clocked")
	}
	scr := c.Screen()

	hwtest.Set(t, c, hwtest.Values{"address": 100, "in": 0xbeef, "load": 1})
	c.Tick()
	if v, _ := scr.Word(100); v != 0 {
		t.Fatalf("screen written on tick: %x", v)
	}
	c.Tock()
	if v, _ := scr.Word(100); v != 0xbeef {
		t.Fatalf("screen[100] = %x, expected beef", v)
	}
	hwtest.Expect(t, c, hwtest.Values{"out": 0xbeef})
	// bit 0 of word 100 is the leftmost pixel of word 4 in row 3.
	if !scr.Pixel(4*16, 3) || scr.Pixel(4*16+4, 3) {
		t.Fatal("bad pixel mapping")
	}

	hwtest.Set(t, c, hwtest.Values{"address": 101, "in": 1, "load": 0})
	c.Pulse()
	hwtest.Expect(t, c, hwtest.Values{"out": 0})
	if v, _ := scr.Word(101); v != 0 {
		t.Fatalf("screen written with load=0: %x", v)
	}

	// changes made from outside show up on the next evaluation.
	scr.SetPixel(16*101%hw.ScreenWidth+15, 101*16/hw.ScreenWidth, true)
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": 0x8000})

	c.Reset()
	if v, _ := scr.Word(100); v != 0 {
		t.Fatalf("screen not cleared on reset: %x", v)
	}

	// largest address and value the pins accept.
	hwtest.Set(t, c, hwtest.Values{"address": hw.ScreenWords - 1, "in": 0xffff, "load": 1})
	c.Pulse()
	hwtest.Expect(t, c, hwtest.Values{"out": 0xffff})
	if !scr.Pixel(hw.ScreenWidth-1, hw.ScreenHeight-1) {
		t.Fatal("last pixel not set")
	}
}

func TestScreen_shared(t *testing.T) {
	// all Screen parts of a chip show the same display.
	c, err := hw.Build(&hw.ChipSpec{
		Name: "TwoScreens",
		In:   hw.In("in[16], load, address[13]"),
		Out:  hw.Out("out1[16], out2[16]"),
		Parts: hw.Parts{
			hl.Screen("in=in, load=load, address=address, out=out1"),
			hl.Screen("in=false, load=false, address=address, out=out2"),
		},
	}, hl.Registry())
	if err != nil {
		t.Fatal(err)
	}
	hwtest.Set(t, c, hwtest.Values{"in": 77, "load": 1, "address": 8191})
	c.Pulse()
	hwtest.Expect(t, c, hwtest.Values{"out1": 77, "out2": 77})
}

func TestKeyboard(t *testing.T) {
	c := buildPart(t, "Keyboard")
	hwtest.Expect(t, c, hwtest.Values{"out": 0})
	kbd := c.Keyboard()
	if err := kbd.Type('\n'); err != nil {
		t.Fatal(err)
	}
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": hw.KeyNewline})
	if err := kbd.Press(hw.KeyF1 + 11); err != nil {
		t.Fatal(err)
	}
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": 152})
	kbd.Release()
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": 0})
}

func TestROM32K(t *testing.T) {
	c := buildPart(t, "ROM32K")
	prog := []uint16{0x0002, 0xec10, 0x0003, 0xe090, 0x0000, 0xe308}
	if err := c.ROM().Load(prog); err != nil {
		t.Fatal(err)
	}
	for i, w := range prog {
		hwtest.Set(t, c, hwtest.Values{"address": int64(i)})
		c.Eval()
		hwtest.Expect(t, c, hwtest.Values{"out": int64(w)})
	}
	hwtest.Set(t, c, hwtest.Values{"address": 32767})
	c.Eval()
	hwtest.Expect(t, c, hwtest.Values{"out": 0})
}
