// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hacksim

import (
	"log"
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Builder compiles chip definitions and builds chip instances.
//
// Chip definitions from the registry are compiled once and cached. The cache
// is dropped whenever chips are added to the registry. A Builder is safe for
// concurrent use.
//
type Builder struct {
	reg     *Registry
	logger  *log.Logger
	workers int

	mu    sync.Mutex
	cache map[string]*PartSpec
	gen   uint64
}

// Option configures a Builder.
//
type Option func(*Builder) error

// Logger sets the logger used to report compiled chips and built instances.
// The default is to log nothing.
//
func Logger(l *log.Logger) Option {
	return func(b *Builder) error {
		b.logger = l
		return nil
	}
}

// Workers sets the number of chips simulated concurrently by RunBatch. The
// default is runtime.GOMAXPROCS(0).
//
func Workers(n int) Option {
	return func(b *Builder) error {
		if n < 1 {
			return errors.Errorf("invalid worker count %d", n)
		}
		b.workers = n
		return nil
	}
}

// NewBuilder returns a new Builder resolving chip names in r.
//
func NewBuilder(r *Registry, opts ...Option) (*Builder, error) {
	b := &Builder{
		reg:     r,
		workers: runtime.GOMAXPROCS(0),
		cache:   make(map[string]*PartSpec),
	}
	for _, o := range opts {
		if err := o(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Builder) logf(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}

// Registry returns the registry b resolves chip names in.
//
func (b *Builder) Registry() *Registry { return b.reg }

// Lookup returns the PartSpec for the named chip: the compiled chip definition
// if the registry has one, or the builtin.
//
func (b *Builder) Lookup(name string) (*PartSpec, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resolve(name, nil)
}

// Compile compiles a chip definition into a PartSpec. Parts are resolved in
// the registry. The result is not cached, nor added to the registry.
//
// Combinational loops are only detected when the chip is built.
//
func (b *Builder) Compile(cs *ChipSpec) (*PartSpec, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.compile(cs, nil)
}

func (b *Builder) resolve(name string, stack []string) (*PartSpec, error) {
	if g := b.reg.generation(); g != b.gen {
		b.cache = make(map[string]*PartSpec)
		b.gen = g
	}
	if cs, ok := b.reg.Definition(name); ok {
		for _, n := range stack {
			if n == name {
				return nil, errors.Wrap(ErrRecursiveChip, strings.Join(append(stack, name), " -> "))
			}
		}
		if ps := b.cache[name]; ps != nil {
			return ps, nil
		}
		ps, err := b.compile(cs, stack)
		if err != nil {
			return nil, err
		}
		b.cache[name] = ps
		return ps, nil
	}
	if ps, ok := b.reg.Builtin(name); ok {
		return ps, nil
	}
	return nil, errors.Wrapf(ErrUnknownChip, "%q", name)
}

func (b *Builder) compile(cs *ChipSpec, stack []string) (*PartSpec, error) {
	if cs.Name == "" {
		return nil, errors.Wrap(ErrUnknownChip, "empty chip name")
	}
	stack = append(stack[:len(stack):len(stack)], cs.Name)
	specs := make([]*PartSpec, len(cs.Parts))
	for i, pt := range cs.Parts {
		ps, err := b.resolve(pt.Name, stack)
		if err != nil {
			return nil, errors.Wrapf(err, "chip %s: part %s#%d", cs.Name, pt.Name, i)
		}
		specs[i] = ps
	}
	p, err := newPlan(cs, specs)
	if err != nil {
		return nil, errors.Wrapf(err, "chip %s", cs.Name)
	}
	b.logf("compiled %s: %d parts, %d nets", cs.Name, len(p.parts), p.nets)
	return p.spec, nil
}

// Build compiles cs and returns a new instance of it.
//
func (b *Builder) Build(cs *ChipSpec) (*Chip, error) {
	ps, err := b.Compile(cs)
	if err != nil {
		return nil, err
	}
	return b.instantiate(ps)
}

// BuildPart returns a new instance of the named chip.
//
func (b *Builder) BuildPart(name string) (*Chip, error) {
	ps, err := b.Lookup(name)
	if err != nil {
		return nil, err
	}
	return b.instantiate(ps)
}

// Build compiles cs, resolving parts in r, and returns a new instance of it.
//
func Build(cs *ChipSpec, r *Registry) (*Chip, error) {
	b, err := NewBuilder(r)
	if err != nil {
		return nil, err
	}
	return b.Build(cs)
}

// instantiate mounts ps in a new circuit, sorts its components and evaluates
// it once.
//
func (b *Builder) instantiate(ps *PartSpec) (*Chip, error) {
	c := NewCircuit()
	ch := &Chip{c: c, spec: ps}
	pins := make([]Bus, 0, len(ps.Inputs)+len(ps.Outputs))
	for _, d := range ps.Inputs {
		p, err := c.NewPin(d.Name, d.width())
		if err != nil {
			return nil, errors.Wrapf(err, "chip %s", ps.Name)
		}
		ch.ins = append(ch.ins, p)
		pins = append(pins, p.bus)
	}
	for _, d := range ps.Outputs {
		p, err := c.NewPin(d.Name, d.width())
		if err != nil {
			return nil, errors.Wrapf(err, "chip %s", ps.Name)
		}
		ch.outs = append(ch.outs, p)
		pins = append(pins, p.bus)
	}

	comps := ps.Mount(newSocket(c, ps, ps.Name, pins))
	ordered, err := evalOrder(len(c.wires), comps)
	if err != nil {
		return nil, errors.Wrapf(err, "chip %s", ps.Name)
	}
	c.comps = ordered
	for _, cp := range comps {
		if cp.Clocked != nil {
			c.clocked = append(c.clocked, cp)
		}
	}
	c.Eval()
	b.logf("built %s: %d components, %d clocked, %d wires", ps.Name, len(c.comps), len(c.clocked), len(c.wires))
	return ch, nil
}
