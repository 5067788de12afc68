// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry maps chip names to builtins and chip definitions.
//
// When a name is registered both as a builtin and as a definition, the
// definition wins. A Registry is safe for concurrent use.
//
type Registry struct {
	mu       sync.RWMutex
	builtins map[string]*PartSpec
	defs     map[string]*ChipSpec
	gen      uint64
}

// NewRegistry returns an empty registry.
//
func NewRegistry() *Registry {
	return &Registry{
		builtins: make(map[string]*PartSpec),
		defs:     make(map[string]*ChipSpec),
	}
}

// Register adds builtins to the registry. It fails with ErrDuplicateChip if a
// builtin with the same name is already registered, in which case none of the
// given builtins are added.
//
func (r *Registry) Register(ps ...*PartSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range ps {
		if _, ok := r.builtins[p.Name]; ok {
			return errors.Wrapf(ErrDuplicateChip, "builtin %s", p.Name)
		}
		for _, q := range ps[:i] {
			if q.Name == p.Name {
				return errors.Wrapf(ErrDuplicateChip, "builtin %s", p.Name)
			}
		}
	}
	for _, p := range ps {
		r.builtins[p.Name] = p
	}
	r.gen++
	return nil
}

// Define adds chip definitions to the registry. It fails with
// ErrDuplicateChip if a definition with the same name already exists, in which
// case none of the given definitions are added.
//
func (r *Registry) Define(cs ...*ChipSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range cs {
		if _, ok := r.defs[c.Name]; ok {
			return errors.Wrapf(ErrDuplicateChip, "chip %s", c.Name)
		}
		for _, q := range cs[:i] {
			if q.Name == c.Name {
				return errors.Wrapf(ErrDuplicateChip, "chip %s", c.Name)
			}
		}
	}
	for _, c := range cs {
		r.defs[c.Name] = c
	}
	r.gen++
	return nil
}

// Builtin returns the named builtin.
//
func (r *Registry) Builtin(name string) (*PartSpec, bool) {
	r.mu.RLock()
	p, ok := r.builtins[name]
	r.mu.RUnlock()
	return p, ok
}

// Definition returns the named chip definition.
//
func (r *Registry) Definition(name string) (*ChipSpec, bool) {
	r.mu.RLock()
	c, ok := r.defs[name]
	r.mu.RUnlock()
	return c, ok
}

// generation returns a counter incremented every time chips are added to r.
//
func (r *Registry) generation() uint64 {
	r.mu.RLock()
	g := r.gen
	r.mu.RUnlock()
	return g
}

// Names returns the sorted names of all registered chips.
//
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for n := range r.builtins {
		names = append(names, n)
	}
	for n := range r.defs {
		if _, ok := r.builtins[n]; !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of r. Changes made to the copy do not affect r.
//
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := NewRegistry()
	for k, v := range r.builtins {
		n.builtins[k] = v
	}
	for k, v := range r.defs {
		n.defs[k] = v
	}
	return n
}
