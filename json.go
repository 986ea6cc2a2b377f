// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"encoding/json"
)

type jsonGroup struct {
	Kind         string    `json:"kind"`
	Sources      []ChipPin `json:"sources"`
	Destinations []ChipPin `json:"destinations"`
}

type jsonBoard struct {
	Name        string       `json:"name"`
	Chips       []string     `json:"chips"`
	Connections []jsonGroup  `json:"connections"`
	Exposed     []ExposedPin `json:"exposed"`
}

func toJSONGroup(c ConnectedPins) jsonGroup {
	// clonePins never returns nil, so empty lists encode as [].
	switch c := c.(type) {
	case Pair:
		return jsonGroup{"pair", []ChipPin{c.Source}, []ChipPin{c.Destination}}
	case Broadcast:
		return jsonGroup{"broadcast", []ChipPin{c.Source}, clonePins(c.Destinations)}
	case Tristated:
		return jsonGroup{"tristated", clonePins(c.Sources), clonePins(c.Destinations)}
	}
	panic("unknown connection type")
}

// MarshalJSON implements json.Marshaler. Connection groups are encoded as
// objects with a kind ("pair", "broadcast" or "tristated") and lists of
// source and destination pins.
func (b *Board) MarshalJSON() ([]byte, error) {
	jb := jsonBoard{
		Name:        b.name,
		Chips:       b.ChipNames(),
		Connections: make([]jsonGroup, 0, len(b.conns)),
		Exposed:     b.Exposed(),
	}
	for _, c := range b.conns {
		jb.Connections = append(jb.Connections, toJSONGroup(c))
	}
	if jb.Exposed == nil {
		jb.Exposed = []ExposedPin{}
	}
	return json.Marshal(jb)
}
