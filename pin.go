// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A ChipPin identifies a pin by the name of the chip instance it belongs to
// and its name in that chip's interface.
type ChipPin struct {
	Chip string `json:"chip"`
	Pin  string `json:"pin"`
}

// String returns the pin in the chip::pin form used by design files.
func (p ChipPin) String() string {
	return p.Chip + "::" + p.Pin
}

func (p ChipPin) less(q ChipPin) bool {
	if p.Chip != q.Chip {
		return p.Chip < q.Chip
	}
	return p.Pin < q.Pin
}

// PinType is the direction of a pin, as seen from the chip that owns it.
type PinType int

// Pin types.
const (
	Input PinType = iota
	Output
	IO
)

var pinTypeNames = [...]string{
	Input:  "input",
	Output: "output",
	IO:     "io",
}

func (t PinType) String() string {
	if t < 0 || int(t) >= len(pinTypeNames) {
		return "PinType(" + strconv.Itoa(int(t)) + ")"
	}
	return pinTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t PinType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(pinTypeNames) {
		return nil, errors.Errorf("invalid pin type %d", int(t))
	}
	return []byte(pinTypeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts input, in,
// output, out, io and inout, regardless of case.
func (t *PinType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "input", "in":
		*t = Input
	case "output", "out":
		*t = Output
	case "io", "inout":
		*t = IO
	default:
		return errors.Errorf("unknown pin type %q", text)
	}
	return nil
}

// PinMetadata describes a pin. Chips hand out copies; the core never holds on
// to chip internals.
type PinMetadata struct {
	Type PinType `json:"type"`
	// DataType tags the type of values carried by the pin. It is only used in
	// diagnostics.
	DataType string `json:"data_type"`
	// Tristatable is set for pins that can stop driving (high impedance).
	Tristatable bool `json:"tristatable"`
}

func (md PinMetadata) String() string {
	s := md.Type.String()
	if md.DataType != "" {
		s += " " + md.DataType
	}
	if md.Tristatable {
		s += " (tristatable)"
	}
	return s
}
