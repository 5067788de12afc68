// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must implement.
// See MakePart.
//
type Updater interface {
	Update(c *Circuit)
}

type field struct {
	index   int
	pin     string
	input   bool
	clocked bool
	width   int // 0 for a single wire
}

// MakePart wraps an Updater into a custom part.
// Input/output pins are identified by field tags.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify input and output
// pins. By default, the pin name is the field name in lowercase. A specific
// pin name can be forced by adding it in the tag: `hw:"in,pin_name"`. Inputs
// that only matter on clock edges are tagged `hw:"in,,clocked"`.
//
// Single bit pins must be of type int, buses arrays of int. When mounted, each
// field is set to the number of the wire connected to that pin.
//
// If the Updater also implements Clocked, the part is a clocked part.
//
// The returned PartSpec is named after the type of t. Its name can be changed
// before it is registered.
//
func MakePart(t Updater) *PartSpec {
	typ := reflect.TypeOf(t)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Name: typ.Name(),
	}
	fields := parseFields(typ)
	for _, f := range fields {
		d := PinDecl{f.pin, f.width}
		if f.input {
			sp.Inputs = append(sp.Inputs, d)
			if f.clocked {
				sp.Clocked = append(sp.Clocked, f.pin)
			}
		} else {
			sp.Outputs = append(sp.Outputs, d)
		}
	}
	sp.Mount = mountPart(typ, fields)
	return sp
}

func parseFields(typ reflect.Type) []field {
	var fields []field
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		fd := field{index: i, pin: strings.ToLower(f.Name)}
		tv := strings.Split(tag, ",")
		if len(tv) > 3 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) > 1 && tv[1] != "" {
			fd.pin = tv[1]
		}
		switch tv[0] {
		case "in":
			fd.input = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 3 {
			if tv[2] != "clocked" || !fd.input {
				panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
			}
			fd.clocked = true
		}

		ft := f.Type
		switch k := ft.Kind(); {
		case k == reflect.Array && ft.Elem().Kind() == reflect.Int:
			if ft.Len() < 1 || ft.Len() > MaxWidth {
				panic(errors.Wrapf(ErrWidth, "field %q in %q", f.Name, typ.Name()))
			}
			fd.width = ft.Len()
		case k == reflect.Int:
		default:
			panic(errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name()))
		}
		fields = append(fields, fd)
	}
	return fields
}

func mountPart(typ reflect.Type, fields []field) MountFn {
	return func(s *Socket) []*Component {
		v := reflect.New(typ)
		e := v.Elem()
		for _, f := range fields {
			fv := e.Field(f.index)
			b := s.Bus(f.pin)
			if f.width == 0 {
				fv.SetInt(int64(b[0]))
				continue
			}
			for i := 0; i < f.width; i++ {
				fv.Index(i).SetInt(int64(b[i]))
			}
		}

		u := v.Interface().(Updater)
		if cl, ok := u.(Clocked); ok {
			return []*Component{s.ClockedComponent(cl, u.Update)}
		}
		return []*Component{s.Component(u.Update)}
	}
}
