// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hacksim"
)

// screenImpl is the memory of the circuit's display seen as a 8K RAM.
//
type screenImpl struct {
	in, address hacksim.Bus
	load        int
	out         hacksim.Bus
	dev         *hacksim.Screen

	pending bool
	addr    int
	val     int64
}

func (s *screenImpl) Tick(c *hacksim.Circuit) {
	s.pending = c.Get(s.load)
	if s.pending {
		s.addr = int(s.address.GetInt64(c))
		s.val = s.in.GetInt64(c)
	}
}

func (s *screenImpl) Tock() {
	if s.pending {
		if err := s.dev.SetWord(s.addr, s.val); err != nil {
			panic(err)
		}
		s.pending = false
	}
}

func (s *screenImpl) Reset() {
	s.pending = false
	s.dev.Clear()
}

func (s *screenImpl) update(c *hacksim.Circuit) {
	v, err := s.dev.Word(int(s.address.GetInt64(c)))
	if err != nil {
		panic(err)
	}
	s.out.SetInt64(c, v)
}

var screen = &hacksim.PartSpec{
	Name: "Screen",
	Inputs: []hacksim.PinDecl{
		{Name: pIn, Width: 16},
		{Name: "load", Width: 1},
		{Name: "address", Width: 13},
	},
	Outputs: decls(16, pOut),
	Clocked: []string{pIn, "load"},
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		scr := &screenImpl{
			in:      s.Bus(pIn),
			address: s.Bus("address"),
			load:    s.Pin("load"),
			out:     s.Bus(pOut),
			dev:     s.Circuit().Screen(),
		}
		return []*hacksim.Component{s.ClockedComponent(scr, scr.update)}
	}}

// Screen returns the memory mapped display of the Hack computer. It behaves
// like a RAM of 8192 words whose content is the circuit's Screen.
//
//	Inputs: in[16], load, address[13]
//	Outputs: out[16]
//	Function: out(t) = screen[address(t)](t)
//	          if load(t-1) { screen[address(t-1)](t) = in(t-1) }
//
func Screen(w string) hacksim.Part { return screen.NewPart(w) }

type keyboardImpl struct {
	Out [16]int `hw:"out"`
}

func (k *keyboardImpl) Update(c *hacksim.Circuit) {
	hacksim.Bus(k.Out[:]).SetInt64(c, c.Keyboard().Key())
}

var keyboard = func() *hacksim.PartSpec {
	p := hacksim.MakePart((*keyboardImpl)(nil))
	p.Name = "Keyboard"
	return p
}()

// Keyboard returns the memory mapped keyboard of the Hack computer.
//
//	Outputs: out[16]
//	Function: out = code of the key currently pressed on the circuit's Keyboard
//
func Keyboard(w string) hacksim.Part { return keyboard.NewPart(w) }

var rom32K = &hacksim.PartSpec{
	Name:    "ROM32K",
	Inputs:  decls(15, "address"),
	Outputs: decls(16, pOut),
	Mount: func(s *hacksim.Socket) []*hacksim.Component {
		address, out := s.Bus("address"), s.Bus(pOut)
		rom := s.Circuit().ROM()
		return []*hacksim.Component{
			s.Component(func(c *hacksim.Circuit) {
				v, _ := rom.Word(int(address.GetInt64(c)))
				out.SetInt64(c, v)
			}),
		}
	}}

// ROM32K returns the instruction memory of the Hack computer, loaded with
// Chip.ROM().Load.
//
//	Inputs: address[15]
//	Outputs: out[16]
//	Function: out = rom[address]
//
func ROM32K(w string) hacksim.Part { return rom32K.NewPart(w) }
