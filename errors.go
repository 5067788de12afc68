// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import "github.com/pkg/errors"

// Specification errors. They are returned by the Builder, wrapped with the
// name of the chip, part and pin at fault. Use errors.Cause to test for them.
//
var (
	ErrUnknownChip       = errors.New("unknown chip")
	ErrDuplicateChip     = errors.New("chip already registered")
	ErrRecursiveChip     = errors.New("chip definition includes itself")
	ErrUnknownPin        = errors.New("unknown pin")
	ErrDuplicatePin      = errors.New("duplicate pin declaration")
	ErrWidth             = errors.New("pin width must be between 1 and 16")
	ErrWidthMismatch     = errors.New("width mismatch")
	ErrBadRange          = errors.New("bit range out of bounds")
	ErrMultipleDrivers   = errors.New("pin driven by more than one source")
	ErrNotConnected      = errors.New("pin not connected to any output")
	ErrInvalidWire       = errors.New("invalid connection")
	ErrCombinationalLoop = errors.New("combinational loop")
)

// Runtime usage errors. A call that fails with one of these leaves the chip
// untouched.
//
var (
	ErrValueRange = errors.New("value out of range for pin width")
	ErrBitRange   = errors.New("bit index out of range")
	ErrNoSuchPin  = errors.New("no such pin")
	ErrNotInput   = errors.New("not an input pin")
)
