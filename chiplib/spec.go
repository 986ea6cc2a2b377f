// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import (
	"fmt"

	"github.com/db47h/pcb"
	"github.com/pkg/errors"
)

// SpecChip is a pcb.Chip described by its pin list only. Pin values are kept
// in a map.
//
// SetPinValue checks that the dynamic type of a value, as printed by the %T
// verb, matches the DataType of the pin, unless the DataType is empty. It
// panics on mismatch. Setting a tristatable pin to nil tristates it.
type SpecChip struct {
	name   string
	pins   map[string]pcb.PinMetadata
	values map[string]interface{}
}

// NewSpecChip returns a new chip with the given pins. Tristatable pins start
// tristated, other pins have no value.
func NewSpecChip(name string, pins map[string]pcb.PinMetadata) *SpecChip {
	c := &SpecChip{
		name:   name,
		pins:   make(map[string]pcb.PinMetadata, len(pins)),
		values: make(map[string]interface{}, len(pins)),
	}
	for k, md := range pins {
		c.pins[k] = md
	}
	return c
}

// Name returns the chip type name.
func (c *SpecChip) Name() string { return c.name }

// Pins implements pcb.Chip.
func (c *SpecChip) Pins() map[string]pcb.PinMetadata {
	m := make(map[string]pcb.PinMetadata, len(c.pins))
	for k, md := range c.pins {
		m[k] = md
	}
	return m
}

// PinValue implements pcb.Chip.
func (c *SpecChip) PinValue(name string) (interface{}, bool) {
	if _, ok := c.pins[name]; !ok {
		return nil, false
	}
	return c.values[name], true
}

// SetPinValue implements pcb.Chip.
func (c *SpecChip) SetPinValue(name string, v interface{}) {
	md, ok := c.pins[name]
	if !ok {
		return
	}
	if v == nil {
		if !md.Tristatable {
			panic(errors.Errorf("chip %s: nil value sent to non-tristatable pin %q", c.name, name))
		}
		delete(c.values, name)
		return
	}
	if t := fmt.Sprintf("%T", v); md.DataType != "" && t != md.DataType {
		panic(errors.Errorf("chip %s: value sent to pin %q is of incorrect type %s, expected %s", c.name, name, t, md.DataType))
	}
	c.values[name] = v
}

// IsPinTristated implements pcb.Chip.
func (c *SpecChip) IsPinTristated(name string) bool {
	md, ok := c.pins[name]
	if !ok || !md.Tristatable {
		return false
	}
	_, set := c.values[name]
	return !set
}
