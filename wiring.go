// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"sort"
)

// wiring is a disjoint-set forest of pins. Pins connected by a path of wires
// end up with the same root.
type wiring struct {
	parent map[ChipPin]ChipPin
	rank   map[ChipPin]int
}

func newWiring() *wiring {
	return &wiring{
		parent: make(map[ChipPin]ChipPin),
		rank:   make(map[ChipPin]int),
	}
}

func (w *wiring) add(p ChipPin) {
	if _, ok := w.parent[p]; !ok {
		w.parent[p] = p
	}
}

// find returns the root of p's set, compressing the path on the way.
func (w *wiring) find(p ChipPin) ChipPin {
	root := p
	for w.parent[root] != root {
		root = w.parent[root]
	}
	for p != root {
		next := w.parent[p]
		w.parent[p] = root
		p = next
	}
	return root
}

// connect merges the sets of a and b.
func (w *wiring) connect(a, b ChipPin) {
	w.add(a)
	w.add(b)
	ra, rb := w.find(a), w.find(b)
	if ra == rb {
		return
	}
	switch {
	case w.rank[ra] < w.rank[rb]:
		w.parent[ra] = rb
	case w.rank[ra] > w.rank[rb]:
		w.parent[rb] = ra
	default:
		w.parent[rb] = ra
		w.rank[ra]++
	}
}

// groups returns the sets as sorted pin slices, ordered by their first pin.
func (w *wiring) groups() [][]ChipPin {
	m := make(map[ChipPin][]ChipPin)
	for p := range w.parent {
		r := w.find(p)
		m[r] = append(m[r], p)
	}
	gs := make([][]ChipPin, 0, len(m))
	for _, g := range m {
		sortPins(g)
		gs = append(gs, g)
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i][0].less(gs[j][0]) })
	return gs
}

// shortedGroups partitions the pins of a connection list into groups of pins
// that are electrically connected.
func shortedGroups(conns map[ChipPin]pinSet) [][]ChipPin {
	w := newWiring()
	for p, set := range conns {
		w.add(p)
		for q := range set {
			w.connect(p, q)
		}
	}
	return w.groups()
}

func sortPins(ps []ChipPin) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].less(ps[j]) })
}
