// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"strings"
)

// pinCache holds the metadata of every connected pin, fetched once from the
// chips.
type pinCache map[ChipPin]PinMetadata

// checkConnectable checks whether two pins can be wired directly.
func checkConnectable(p1 ChipPin, md1 PinMetadata, p2 ChipPin, md2 PinMetadata) error {
	if p1 == p2 {
		return newError(SelfConnection, []ChipPin{p1},
			"chip %q pin %q is connected to itself, which is redundant", p1.Chip, p1.Pin)
	}
	if md1.Type == Output && md2.Type == Output && !md1.Tristatable && !md2.Tristatable {
		return newError(IncompatiblePins, []ChipPin{p1, p2},
			"cannot connect chip %q pin %q (%s) to chip %q pin %q (%s): both are non-tristatable outputs",
			p1.Chip, p1.Pin, md1, p2.Chip, p2.Pin, md2)
	}
	return nil
}

// classify turns a group of shorted pins into a connection. Pins in group must
// be sorted and present in cache.
func classify(group []ChipPin, cache pinCache) (ConnectedPins, error) {
	var (
		allTri = true
		anyTri = false
		srcs   []ChipPin
		dsts   []ChipPin
	)
	for _, p := range group {
		md := cache[p]
		allTri = allTri && md.Tristatable
		anyTri = anyTri || md.Tristatable
		if md.Type == Output {
			srcs = append(srcs, p)
		} else {
			dsts = append(dsts, p)
		}
	}

	switch {
	case len(srcs) > 1 && !allTri:
		return nil, newError(MultipleDriversWithoutTristate, group,
			"multiple output pins found in a non-tristated pin group: %s; only groups where all pins are tristatable can have multiple outputs",
			describeGroup(group, cache))
	case anyTri && !allTri:
		return nil, newError(MixedTristateGroup, group,
			"these pins are shorted, but not all are tristatable: %s; if any pin in a group is tristatable, all must be",
			describeGroup(group, cache))
	case len(srcs) == 0:
		return nil, newError(NoDriver, group,
			"no output pin drives group %s", describeGroup(group, cache))
	case len(srcs) > 1:
		return Tristated{Sources: srcs, Destinations: dsts}, nil
	case len(group) == 2:
		return Pair{Source: srcs[0], Destination: dsts[0]}, nil
	default:
		return Broadcast{Source: srcs[0], Destinations: dsts}, nil
	}
}

func describeGroup(group []ChipPin, cache pinCache) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range group {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
		b.WriteString(" (")
		b.WriteString(cache[p].String())
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}
