// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chiplib provides ready made chips for pcb designs.
//
// Chips described in a YAML Catalog only carry pin values. The chips returned
// by the constructors in this package also have a behavior: calling Tick
// updates their outputs from their inputs.
package chiplib

import "github.com/db47h/pcb"

// A Chip is a pcb.Chip that updates its outputs when Tick is called.
type Chip interface {
	pcb.Chip
	Tick()
}

type ticker interface {
	Tick()
}

type chip struct {
	pcb.Chip
	t ticker
}

func (c chip) Tick() { c.t.Tick() }

func wrap(t ticker) Chip {
	return chip{pcb.MustMakeChip(t), t}
}

type source struct {
	Out bool `pcb:"out"`
	f   func() bool
}

func (s *source) Tick() { s.Out = s.f() }

// Source returns a function based input.
//
//	Outputs: out
//	Function: out = f()
func Source(f func() bool) Chip {
	return wrap(&source{f: f})
}

type probe struct {
	In bool `pcb:"in"`
	f  func(bool)
}

func (p *probe) Tick() { p.f(p.In) }

// Probe returns an output probe. The f function is called with the value of
// the in pin on every Tick.
//
//	Inputs: in
//	Function: f(in)
func Probe(f func(bool)) Chip {
	return wrap(&probe{f: f})
}

type busProbe struct {
	In *bool `pcb:"in"`
	f  func(v, ok bool)
}

func (p *busProbe) Tick() {
	if p.In == nil {
		p.f(false, false)
		return
	}
	p.f(*p.In, true)
}

// BusProbe returns a tristatable probe, suitable for use on a shared bus. ok
// is false when the bus is not driven.
//
//	Inputs: in (tristatable)
//	Function: f(in, in != nil)
func BusProbe(f func(v, ok bool)) Chip {
	return wrap(&busProbe{f: f})
}

type clock struct {
	Out bool `pcb:"out"`
}

func (c *clock) Tick() { c.Out = !c.Out }

// Clock returns a clock generator. Its output toggles on every Tick.
//
//	Outputs: out
func Clock() Chip {
	return wrap(new(clock))
}

type buffer struct {
	In  bool `pcb:"in"`
	Out bool `pcb:"out"`
}

func (b *buffer) Tick() { b.Out = b.In }

// Buffer returns a buffer.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in
func Buffer() Chip {
	return wrap(new(buffer))
}

type triBuffer struct {
	In     bool  `pcb:"in"`
	Enable bool  `pcb:"in,en"`
	Out    *bool `pcb:"out"`
}

func (b *triBuffer) Tick() {
	if !b.Enable {
		b.Out = nil
		return
	}
	v := b.In
	b.Out = &v
}

// TriBuffer returns a tristate buffer.
//
//	Inputs: in, en
//	Outputs: out (tristatable)
//	Function: if en { out = in } else { out = Z }
func TriBuffer() Chip {
	return wrap(new(triBuffer))
}

type transceiver struct {
	A      *uint8 `pcb:"io"`
	B      *uint8 `pcb:"io"`
	Dir    bool   `pcb:"in"`
	Enable bool   `pcb:"in,en"`
}

// Tick drives the output side from the input side and releases the input side.
// Both sides are released when the chip is disabled.
func (t *transceiver) Tick() {
	switch {
	case !t.Enable:
		t.A, t.B = nil, nil
	case t.Dir:
		t.A, t.B = nil, copyByte(t.A)
	default:
		t.A, t.B = copyByte(t.B), nil
	}
}

func copyByte(p *uint8) *uint8 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Transceiver returns an 8 bits bus transceiver, like a 74245.
//
//	Inputs: dir, en
//	IO: a, b (tristatable)
//	Function: if en { if dir { b = a } else { a = b } } else { a, b = Z, Z }
func Transceiver() Chip {
	return wrap(new(transceiver))
}
