// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"sort"
)

// pinSet is a set of pins.
type pinSet map[ChipPin]struct{}

// A Design is the description of a board: the chips it is made of, how their
// pins are wired together, and which pins are exposed.
//
// A Design only deals with names. Chip instances are supplied later to a
// Builder which validates the design against them.
type Design struct {
	name string
	// chips maps declared chip names to the names of pins used in connections.
	chips map[string][]string
	order []string
	// conns records each undirected connection once, under one of its ends.
	conns   map[ChipPin]pinSet
	exposed []ChipPin
}

// NewDesign returns a new empty design with the given name.
func NewDesign(name string) *Design {
	return &Design{
		name:  name,
		chips: make(map[string][]string),
		conns: make(map[ChipPin]pinSet),
	}
}

// Name returns the design name.
func (d *Design) Name() string { return d.name }

// Declare declares a chip. Declaring the same chip more than once has no
// effect.
func (d *Design) Declare(chip string) {
	if _, ok := d.chips[chip]; ok {
		return
	}
	d.chips[chip] = nil
	d.order = append(d.order, chip)
}

// Declared reports whether chip has been declared.
func (d *Design) Declared(chip string) bool {
	_, ok := d.chips[chip]
	return ok
}

// Connect wires pin a to pin b. Both chips must have been declared.
func (d *Design) Connect(a, b ChipPin) error {
	if a == b {
		return newError(SelfConnection, []ChipPin{a},
			"attempted to connect a pin to itself: chip %q pin %q appears to have a self-connection, which is redundant", a.Chip, a.Pin)
	}
	for _, p := range [...]ChipPin{a, b} {
		if !d.Declared(p.Chip) {
			return newError(UndeclaredChip, []ChipPin{p}, "use of undeclared chip %q in connection %s - %s", p.Chip, a, b)
		}
	}

	d.chips[a.Chip] = append(d.chips[a.Chip], a.Pin)
	d.chips[b.Chip] = append(d.chips[b.Chip], b.Pin)

	switch {
	case d.connected(a, b):
	case d.conns[a] != nil:
		d.conns[a][b] = struct{}{}
	case d.conns[b] != nil:
		d.conns[b][a] = struct{}{}
	default:
		d.conns[a] = pinSet{b: {}}
	}
	return nil
}

func (d *Design) connected(a, b ChipPin) bool {
	_, ab := d.conns[a][b]
	_, ba := d.conns[b][a]
	return ab || ba
}

// Expose adds p to the design's external interface.
func (d *Design) Expose(p ChipPin) error {
	if !d.Declared(p.Chip) {
		return newError(UndeclaredChip, []ChipPin{p}, "use of undeclared chip %q in expose %s", p.Chip, p)
	}
	d.exposed = append(d.exposed, p)
	return nil
}

// Chips returns the declared chip names in declaration order.
func (d *Design) Chips() []string {
	return append([]string(nil), d.order...)
}

// PinRefs returns the names of the pins of chip used in connections, in the
// order they appear. A pin connected several times appears several times.
func (d *Design) PinRefs(chip string) []string {
	return append([]string(nil), d.chips[chip]...)
}

// Exposed returns the exposed pins in the order they were added.
func (d *Design) Exposed() []ChipPin {
	return append([]ChipPin(nil), d.exposed...)
}

// Edges returns all connections, each one once. Edges are sorted by their
// first then second pin.
func (d *Design) Edges() [][2]ChipPin {
	var edges [][2]ChipPin
	for p, set := range d.conns {
		for q := range set {
			edges = append(edges, [2]ChipPin{p, q})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0].less(edges[j][0])
		}
		return edges[i][1].less(edges[j][1])
	})
	return edges
}
