// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrorKind identifies the rule violated by a design.
type ErrorKind int

// Error kinds.
const (
	_ ErrorKind = iota
	// UndeclaredChip: a connection or expose statement names a chip that was
	// not declared.
	UndeclaredChip
	// SelfConnection: a pin is wired to itself.
	SelfConnection
	// EmptyDesign: the design declares no chips.
	EmptyDesign
	// NoConnections: the design has no connection statements.
	NoConnections
	// DuplicateChip: the same chip name was added twice to a Builder.
	DuplicateChip
	// MissingChip: a declared chip was never added to the Builder.
	MissingChip
	// UnknownPin: a referenced pin is not part of the chip's pin list.
	UnknownPin
	// IncompatiblePins: two directly wired pins are both permanent drivers.
	IncompatiblePins
	// MultipleDriversWithoutTristate: a group has several outputs but not all
	// of its pins are tristatable.
	MultipleDriversWithoutTristate
	// MixedTristateGroup: some, but not all pins of a group are tristatable.
	MixedTristateGroup
	// NoDriver: a group has no output pin.
	NoDriver
)

var kindNames = map[ErrorKind]string{
	UndeclaredChip:                 "undeclared chip",
	SelfConnection:                 "self connection",
	EmptyDesign:                    "empty design",
	NoConnections:                  "no connections",
	DuplicateChip:                  "duplicate chip",
	MissingChip:                    "missing chip",
	UnknownPin:                     "unknown pin",
	IncompatiblePins:               "incompatible pins",
	MultipleDriversWithoutTristate: "multiple drivers without tristate",
	MixedTristateGroup:             "mixed tristate group",
	NoDriver:                       "no driver",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the diagnostic returned when a design is invalid. Chip and Pin are
// set when the error concerns a single chip or pin, Pins lists the pins
// involved in connection errors.
type Error struct {
	Kind ErrorKind
	Chip string
	Pin  string
	Pins []ChipPin
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func newError(k ErrorKind, pins []ChipPin, format string, args ...interface{}) error {
	e := &Error{Kind: k, Pins: pins, Msg: fmt.Sprintf(format, args...)}
	if len(pins) == 1 {
		e.Chip, e.Pin = pins[0].Chip, pins[0].Pin
	}
	return errors.WithStack(e)
}

func chipError(k ErrorKind, chip string, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: k, Chip: chip, Msg: fmt.Sprintf(format, args...)})
}

// KindOf returns the kind of a diagnostic returned by this package, or 0 if
// err is not a *Error.
func KindOf(err error) ErrorKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

// NewError returns a diagnostic of the given kind for the given pins. It is
// meant for design front-ends that enforce rules before the core runs.
func NewError(k ErrorKind, pins []ChipPin, msg string) error {
	return newError(k, pins, "%s", msg)
}
