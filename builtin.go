// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

// buffer returns a component that copies wire in to wire out. Composite chips
// use it when one internal signal drives several of their outputs.
//
func buffer(name string, in, out int) *Component {
	return &Component{
		Name:   name,
		Deps:   []int{in},
		Drives: []int{out},
		Update: func(c *Circuit) { c.wires[out] = c.wires[in] },
	}
}
