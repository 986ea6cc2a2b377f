// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

// A Chip is a component instance placed on a board.
//
// Values exchanged through PinValue and SetPinValue are opaque to this package.
// A chip receiving a value of the wrong type must fail loudly with a message
// naming the chip and pin, as this is always a programming error.
type Chip interface {
	// Pins returns the chip's pins by name.
	Pins() map[string]PinMetadata
	// PinValue returns the current value of the named pin. ok is false if the
	// pin does not exist.
	PinValue(name string) (v interface{}, ok bool)
	// SetPinValue sets the value of the named pin. Unknown pin names are
	// ignored.
	SetPinValue(name string, v interface{})
	// IsPinTristated reports whether the named pin is currently in high
	// impedance state.
	IsPinTristated(name string) bool
}
