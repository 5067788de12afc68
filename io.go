// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"github.com/pkg/errors"
)

// Hack display and instruction memory geometry.
//
const (
	ScreenWidth  = 512
	ScreenHeight = 256
	ScreenWords  = ScreenWidth * ScreenHeight / 16
	ROMWords     = 32768
)

// Hack key codes for non printable keys. Printable keys use their ASCII code.
//
const (
	KeyNewline = 128 + iota
	KeyBackspace
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyEscape
	KeyF1
)

// Screen is the memory of a 512x256 black and white display. Each 16 bits word
// holds 16 horizontal pixels, least significant bit leftmost. Row y starts at
// word 32*y.
//
type Screen struct {
	mem [ScreenWords]uint16
}

func checkAddr(addr, size int) error {
	if addr < 0 || addr >= size {
		return errors.Wrapf(ErrValueRange, "address %d out of [0, %d)", addr, size)
	}
	return nil
}

// Word returns the word at addr.
//
func (s *Screen) Word(addr int) (int64, error) {
	if err := checkAddr(addr, ScreenWords); err != nil {
		return 0, err
	}
	return int64(s.mem[addr]), nil
}

// SetWord sets the word at addr.
//
func (s *Screen) SetWord(addr int, v int64) error {
	if err := checkAddr(addr, ScreenWords); err != nil {
		return err
	}
	if v < 0 || v > 0xffff {
		return errors.Wrapf(ErrValueRange, "screen word %d", v)
	}
	s.mem[addr] = uint16(v)
	return nil
}

// Pixel returns the state of the pixel at (x, y). Out of screen pixels are
// off.
//
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return s.mem[y*ScreenWidth/16+x/16]&(1<<uint(x%16)) != 0
}

// SetPixel sets the pixel at (x, y). Out of screen pixels are ignored.
//
func (s *Screen) SetPixel(x, y int, on bool) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	w := &s.mem[y*ScreenWidth/16+x/16]
	if on {
		*w |= 1 << uint(x%16)
	} else {
		*w &^= 1 << uint(x%16)
	}
}

// Clear turns off all pixels.
//
func (s *Screen) Clear() {
	s.mem = [ScreenWords]uint16{}
}

// Fill turns on all pixels.
//
func (s *Screen) Fill() {
	for i := range s.mem {
		s.mem[i] = 0xffff
	}
}

// Keyboard holds the code of the key currently pressed, 0 if none.
//
type Keyboard struct {
	key uint16
}

// Press presses the key with the given code.
//
func (k *Keyboard) Press(code int64) error {
	if code < 0 || code > 0xffff {
		return errors.Wrapf(ErrValueRange, "key code %d", code)
	}
	k.key = uint16(code)
	return nil
}

// Type presses the key for rune r. '\n' is mapped to KeyNewline and '\b' to
// KeyBackspace.
//
func (k *Keyboard) Type(r rune) error {
	switch r {
	case '\n':
		r = KeyNewline
	case '\b':
		r = KeyBackspace
	case 0x1b:
		r = KeyEscape
	}
	return k.Press(int64(r))
}

// Release releases the current key.
//
func (k *Keyboard) Release() { k.key = 0 }

// Key returns the code of the key currently pressed.
//
func (k *Keyboard) Key() int64 { return int64(k.key) }

// Pressed reports whether a key is pressed.
//
func (k *Keyboard) Pressed() bool { return k.key != 0 }

// ROM is the read only instruction memory of a Hack computer.
//
type ROM struct {
	mem [ROMWords]uint16
}

// Load copies prog at the beginning of the ROM and clears the remaining
// words.
//
func (r *ROM) Load(prog []uint16) error {
	if len(prog) > ROMWords {
		return errors.Wrapf(ErrValueRange, "program size %d", len(prog))
	}
	n := copy(r.mem[:], prog)
	for i := n; i < ROMWords; i++ {
		r.mem[i] = 0
	}
	return nil
}

// Word returns the word at addr.
//
func (r *ROM) Word(addr int) (int64, error) {
	if err := checkAddr(addr, ROMWords); err != nil {
		return 0, err
	}
	return int64(r.mem[addr]), nil
}

// Screen returns the display of the circuit, allocating it on first use.
//
func (c *Circuit) Screen() *Screen {
	if c.screen == nil {
		c.screen = new(Screen)
	}
	return c.screen
}

// Keyboard returns the keyboard of the circuit, allocating it on first use.
//
func (c *Circuit) Keyboard() *Keyboard {
	if c.kbd == nil {
		c.kbd = new(Keyboard)
	}
	return c.kbd
}

// ROM returns the instruction memory of the circuit, allocating it on first
// use.
//
func (c *Circuit) ROM() *ROM {
	if c.rom == nil {
		c.rom = new(ROM)
	}
	return c.rom
}
