// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pcbtest provides utility functions for testing designs.
package pcbtest

import (
	"strings"
	"testing"

	"github.com/db47h/pcb"
	"github.com/db47h/pcb/chiplib"
	"github.com/db47h/pcb/pcbdl"
	"github.com/pkg/errors"
)

// ParsePins parses a pin list description. Pins are separated by commas; each
// pin is a name followed by its type (in, out or io) and an optional "tri"
// flag for tristatable pins:
//
//	ParsePins("a in, b in, out out, bus io tri")
func ParsePins(desc string) (map[string]pcb.PinMetadata, error) {
	pins := make(map[string]pcb.PinMetadata)
	for _, p := range strings.Split(desc, ",") {
		f := strings.Fields(p)
		if len(f) == 0 {
			continue
		}
		if len(f) < 2 || len(f) > 3 || len(f) == 3 && f[2] != "tri" {
			return nil, errors.Errorf("in %q: invalid pin description %q", desc, strings.TrimSpace(p))
		}
		var md pcb.PinMetadata
		if err := md.Type.UnmarshalText([]byte(f[1])); err != nil {
			return nil, errors.Wrapf(err, "in %q", desc)
		}
		md.Tristatable = len(f) == 3
		if _, ok := pins[f[0]]; ok {
			return nil, errors.Errorf("in %q: duplicate pin %q", desc, f[0])
		}
		pins[f[0]] = md
	}
	return pins, nil
}

// Chip returns a chip with the pins described by desc (see ParsePins). It
// panics if desc is invalid.
func Chip(desc string) *chiplib.SpecChip {
	pins, err := ParsePins(desc)
	if err != nil {
		panic(err)
	}
	return chiplib.NewSpecChip("test", pins)
}

// Design parses a design and fails the test on error.
func Design(t testing.TB, src string) *pcb.Design {
	t.Helper()
	d, err := pcbdl.ParseString("test", src)
	if err != nil {
		Trace(t, err)
		t.Fatal(err)
	}
	return d
}

// Strings returns the String() value of each connection group.
func Strings(conns []pcb.ConnectedPins) []string {
	s := make([]string, len(conns))
	for i, c := range conns {
		s[i] = c.String()
	}
	return s
}

// Trace logs the stack trace attached to err, if any.
func Trace(t testing.TB, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}
