// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"strings"
)

// ConnectedPins is a group of electrically connected pins. It is one of Pair,
// Broadcast or Tristated.
type ConnectedPins interface {
	// Pins returns all pins in the group.
	Pins() []ChipPin
	String() string
	// clone returns a copy that shares no memory with the receiver.
	clone() ConnectedPins
}

// Pair is a direct connection from an output pin to a single receiver.
type Pair struct {
	Source      ChipPin
	Destination ChipPin
}

// Broadcast is a single output driving several receivers.
type Broadcast struct {
	Source       ChipPin
	Destinations []ChipPin
}

// Tristated is a bus shared by several tristatable drivers.
type Tristated struct {
	Sources      []ChipPin
	Destinations []ChipPin
}

func (p Pair) clone() ConnectedPins { return p }

func (b Broadcast) clone() ConnectedPins {
	b.Destinations = clonePins(b.Destinations)
	return b
}

func (t Tristated) clone() ConnectedPins {
	t.Sources = clonePins(t.Sources)
	t.Destinations = clonePins(t.Destinations)
	return t
}

// clonePins copies ps. The result is never nil.
func clonePins(ps []ChipPin) []ChipPin {
	return append(make([]ChipPin, 0, len(ps)), ps...)
}

// Pins implements ConnectedPins.
func (p Pair) Pins() []ChipPin { return []ChipPin{p.Source, p.Destination} }

// Pins implements ConnectedPins.
func (b Broadcast) Pins() []ChipPin {
	return append([]ChipPin{b.Source}, b.Destinations...)
}

// Pins implements ConnectedPins.
func (t Tristated) Pins() []ChipPin {
	ps := make([]ChipPin, 0, len(t.Sources)+len(t.Destinations))
	ps = append(ps, t.Sources...)
	return append(ps, t.Destinations...)
}

func (p Pair) String() string {
	return "pair " + p.Source.String() + " -> " + p.Destination.String()
}

func (b Broadcast) String() string {
	return "broadcast " + b.Source.String() + " -> " + joinPins(b.Destinations)
}

func (t Tristated) String() string {
	return "tristated " + joinPins(t.Sources) + " -> " + joinPins(t.Destinations)
}

func joinPins(ps []ChipPin) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range ps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
