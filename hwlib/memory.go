// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"

	"github.com/db47h/hacksim"
)

// Hack memory map.
//
const (
	RAMSize      = 16384
	ScreenBase   = 16384
	ScreenWords  = hacksim.ScreenWords
	KeyboardAddr = 24576
)

// BitSpec is a 1 bit register.
//
//	Inputs: in, load
//	Outputs: out
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
var BitSpec = &hacksim.ChipSpec{
	Name: "Bit",
	In:   hacksim.In("in, load"),
	Out:  hacksim.Out("out"),
	Parts: hacksim.Parts{
		Mux("a=dffOut, b=in, sel=load, out=muxOut"),
		DFF("in=muxOut, out=dffOut, out=out"),
	},
}

func register(name string) *hacksim.ChipSpec {
	cs := &hacksim.ChipSpec{
		Name: name,
		In:   hacksim.In("in[16], load"),
		Out:  hacksim.Out("out[16]"),
	}
	for i := 0; i < 16; i++ {
		cs.Parts = append(cs.Parts, Bit(fmt.Sprintf("in=in[%d], load=load, out=out[%d]", i, i)))
	}
	return cs
}

// RegisterSpec is a 16 bits register. ARegisterSpec and DRegisterSpec are the
// same chip under the names used by the Hack CPU.
//
//	Inputs: in[16], load
//	Outputs: out[16]
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
var (
	RegisterSpec  = register("Register")
	ARegisterSpec = register("ARegister")
	DRegisterSpec = register("DRegister")
)

// PCSpec is the Hack program counter.
//
//	Inputs: in[16], load, inc, reset
//	Outputs: out[16]
//	Function: if reset(t-1) { out(t) = 0 }
//	          else if load(t-1) { out(t) = in(t-1) }
//	          else if inc(t-1) { out(t) = out(t-1) + 1 }
//	          else { out(t) = out(t-1) }
//
var PCSpec = &hacksim.ChipSpec{
	Name: "PC",
	In:   hacksim.In("in[16], load, inc, reset"),
	Out:  hacksim.Out("out[16]"),
	Parts: hacksim.Parts{
		Inc16("in=fb, out=incd"),
		Mux16("a=fb, b=incd, sel=inc, out=w0"),
		Mux16("a=w0, b=in, sel=load, out=w1"),
		Mux16("a=w1, b=false, sel=reset, out=w2"),
		Or("a=load, b=inc, out=li"),
		Or("a=li, b=reset, out=ld"),
		Register("in=w2, load=ld, out=out, out=fb"),
	},
}

// ram returns a RAM definition made of 8 RAM chips of the level below.
//
func ram(name, sub string, addrBits int) *hacksim.ChipSpec {
	lo := addrBits - 3
	cs := &hacksim.ChipSpec{
		Name: name,
		In:   hacksim.In(fmt.Sprintf("in[16], load, address[%d]", addrBits)),
		Out:  hacksim.Out("out[16]"),
	}
	sel := fmt.Sprintf("address[%d..%d]", lo, addrBits-1)
	cs.Parts = append(cs.Parts, DMux8Way("in=load, sel="+sel+", a=l0, b=l1, c=l2, d=l3, e=l4, f=l5, g=l6, h=l7"))
	for i := 0; i < 8; i++ {
		if lo == 0 {
			cs.Parts = append(cs.Parts, hacksim.NewPart(sub, fmt.Sprintf("in=in, load=l%d, out=r%d", i, i)))
		} else {
			cs.Parts = append(cs.Parts, hacksim.NewPart(sub, fmt.Sprintf("in=in, load=l%d, address=address[0..%d], out=r%d", i, lo-1, i)))
		}
	}
	cs.Parts = append(cs.Parts, Mux8Way16("a=r0, b=r1, c=r2, d=r3, e=r4, f=r5, g=r6, h=r7, sel="+sel+", out=out"))
	return cs
}

// RAM chips. Each level is made of 8 chips of the level below, except RAM16K
// which is made of 4 RAM4K.
//
//	Inputs: in[16], load, address[n]
//	Outputs: out[16]
//	Function: out(t) = ram[address(t)](t)
//	          if load(t-1) { ram[address(t-1)](t) = in(t-1) }
//
var (
	RAM8Spec   = ram("RAM8", "Register", 3)
	RAM64Spec  = ram("RAM64", "RAM8", 6)
	RAM512Spec = ram("RAM512", "RAM64", 9)
	RAM4KSpec  = ram("RAM4K", "RAM512", 12)
	RAM16KSpec = &hacksim.ChipSpec{
		Name: "RAM16K",
		In:   hacksim.In("in[16], load, address[14]"),
		Out:  hacksim.Out("out[16]"),
		Parts: hacksim.Parts{
			DMux4Way("in=load, sel=address[12..13], a=l0, b=l1, c=l2, d=l3"),
			RAM4K("in=in, load=l0, address=address[0..11], out=r0"),
			RAM4K("in=in, load=l1, address=address[0..11], out=r1"),
			RAM4K("in=in, load=l2, address=address[0..11], out=r2"),
			RAM4K("in=in, load=l3, address=address[0..11], out=r3"),
			Mux4Way16("a=r0, b=r1, c=r2, d=r3, sel=address[12..13], out=out"),
		},
	}
)

// MemorySpec is the complete address space of the Hack computer: RAM from 0 to
// 16383, the screen from 16384 to 24575 and the keyboard at 24576.
//
//	Inputs: in[16], load, address[15]
//	Outputs: out[16]
//
var MemorySpec = &hacksim.ChipSpec{
	Name: "Memory",
	In:   hacksim.In("in[16], load, address[15]"),
	Out:  hacksim.Out("out[16]"),
	Parts: hacksim.Parts{
		DMux4Way("in=load, sel=address[13..14], a=la, b=lb, c=loadScreen, d=loadKbd"),
		Or("a=la, b=lb, out=loadRAM"),
		RAM16K("in=in, load=loadRAM, address=address[0..13], out=ramOut"),
		Screen("in=in, load=loadScreen, address=address[0..12], out=scrOut"),
		Keyboard("out=kbdOut"),
		Mux4Way16("a=ramOut, b=ramOut, c=scrOut, d=kbdOut, sel=address[13..14], out=out"),
	},
}

// Bit returns a Bit part.
//
func Bit(w string) hacksim.Part { return hacksim.NewPart("Bit", w) }

// Register returns a Register part.
//
func Register(w string) hacksim.Part { return hacksim.NewPart("Register", w) }

// ARegister returns an ARegister part.
//
func ARegister(w string) hacksim.Part { return hacksim.NewPart("ARegister", w) }

// DRegister returns a DRegister part.
//
func DRegister(w string) hacksim.Part { return hacksim.NewPart("DRegister", w) }

// PC returns a PC part.
//
func PC(w string) hacksim.Part { return hacksim.NewPart("PC", w) }

// RAM8 returns a RAM8 part.
//
func RAM8(w string) hacksim.Part { return hacksim.NewPart("RAM8", w) }

// RAM64 returns a RAM64 part.
//
func RAM64(w string) hacksim.Part { return hacksim.NewPart("RAM64", w) }

// RAM512 returns a RAM512 part.
//
func RAM512(w string) hacksim.Part { return hacksim.NewPart("RAM512", w) }

// RAM4K returns a RAM4K part.
//
func RAM4K(w string) hacksim.Part { return hacksim.NewPart("RAM4K", w) }

// RAM16K returns a RAM16K part.
//
func RAM16K(w string) hacksim.Part { return hacksim.NewPart("RAM16K", w) }

// Memory returns a Memory part.
//
func Memory(w string) hacksim.Part { return hacksim.NewPart("Memory", w) }
