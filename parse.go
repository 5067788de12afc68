// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"github.com/db47h/hacksim/internal/hdl"
	"github.com/pkg/errors"
)

// ParseIO parses a pin declaration list. For example:
//
//	ParseIO("in[16], load, address[3]")
//
// returns the declarations of a 16 bits pin "in", a single bit pin "load" and a
// 3 bits pin "address".
//
func ParseIO(decls string) ([]PinDecl, error) {
	ds, err := hdl.ParseIO(decls)
	if err != nil {
		return nil, err
	}
	out := make([]PinDecl, len(ds))
	for i, d := range ds {
		if d.Width < 1 || d.Width > MaxWidth {
			return nil, errors.Wrapf(ErrWidth, "in %q: pin %s[%d]", decls, d.Name, d.Width)
		}
		out[i] = PinDecl{d.Name, d.Width}
	}
	return out, nil
}

// In parses a list of input pin declarations. It panics if decls cannot be
// parsed.
//
func In(decls string) []PinDecl {
	return mustIO(decls)
}

// Out parses a list of output pin declarations. It panics if decls cannot be
// parsed.
//
func Out(decls string) []PinDecl {
	return mustIO(decls)
}

func mustIO(decls string) []PinDecl {
	ds, err := ParseIO(decls)
	if err != nil {
		panic(err)
	}
	return ds
}

// ParseWires parses a connection list like:
//
//	"a=x, out[0..7]=lo, out[8..15]=hi, sel=true, b=5"
//
// The left hand side of each connection is a pin of the part, the right hand
// side a signal in the enclosing chip or a constant: true, false or a
// non-negative integer.
//
func ParseWires(conns string) ([]Wire, error) {
	as, err := hdl.ParseConnections(conns)
	if err != nil {
		return nil, err
	}
	ws := make([]Wire, len(as))
	for i, a := range as {
		w := &ws[i]
		if w.Part, err = pinRef(a.LHS); err != nil {
			return nil, errors.Wrapf(err, "in %q", conns)
		}
		if lit, ok := a.RHS.(hdl.Literal); ok {
			w.Const = true
			w.Value = int64(lit.Value)
			continue
		}
		if w.Chip, err = pinRef(a.RHS); err != nil {
			return nil, errors.Wrapf(err, "in %q", conns)
		}
		if !w.Chip.Ranged {
			switch w.Chip.Name {
			case True:
				w.Const, w.Value, w.Chip = true, AllOnes, PinRef{}
			case False:
				w.Const, w.Value, w.Chip = true, 0, PinRef{}
			}
		}
	}
	return ws, nil
}

// ParsePinRef parses a pin reference: name, name[i] or name[i..j].
//
func ParsePinRef(s string) (PinRef, error) {
	v, err := hdl.ParsePin(s)
	if err != nil {
		return PinRef{}, err
	}
	return pinRef(v)
}

func pinRef(v interface{}) (PinRef, error) {
	switch p := v.(type) {
	case hdl.Pin:
		return PinRef{Name: p.Name}, nil
	case hdl.PinIndex:
		return PinRef{p.Name, p.Index, p.Index, true}, nil
	case hdl.PinRange:
		return PinRef{p.Name, p.Start, p.End, true}, nil
	}
	return PinRef{}, errors.Errorf("unexpected %v", v)
}

// NewPart returns a Part named name with the given connections. It panics if
// conns cannot be parsed.
//
//	p := NewPart("Nand", "a=x, b=y, out=nxy")
//
func NewPart(name, conns string) Part {
	ws, err := ParseWires(conns)
	if err != nil {
		panic(errors.Wrap(err, name))
	}
	return Part{name, ws}
}
