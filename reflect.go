// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// reflectChip is a Chip backed by a struct whose pin fields are identified by
// tags.
type reflectChip struct {
	v    reflect.Value // the struct, addressable
	name string        // type name, for error messages
	pins map[string]PinMetadata
	idx  map[string]int // pin name to field index
}

// MakeChip wraps a pointer to a struct into a Chip.
// Pins are identified by field tags.
//
// The field tag must be `pcb:"in"`, `pcb:"out"` or `pcb:"io"` to identify
// input, output and bidirectional pins. By default, the pin name is the field
// name in lowercase. A specific pin name can be forced by adding it in the tag:
// `pcb:"out,data_out"`.
//
// Fields of pointer type are tristatable: a nil pointer means that the pin is
// tristated. The DataType of a pin is the Go type of its field.
//
// The returned Chip reads and writes the fields of the struct pointed to by v,
// so that the struct's own methods see pin values set by others.
func MakeChip(v interface{}) (Chip, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, errors.Errorf("MakeChip: expected non-nil pointer to struct, got %T", v)
	}
	rv = rv.Elem()
	typ := rv.Type()
	if k := typ.Kind(); k != reflect.Struct {
		return nil, errors.Errorf("MakeChip: unsupported type %q for %q", k, typ.Name())
	}

	c := &reflectChip{
		v:    rv,
		name: typ.Name(),
		pins: make(map[string]PinMetadata),
		idx:  make(map[string]int),
	}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("pcb")
		if !ok || tag == "" || tag == "-" {
			continue
		}
		if f.PkgPath != "" {
			return nil, errors.Errorf("MakeChip: pin field %q in %q is not exported", f.Name, typ.Name())
		}
		pin := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			return nil, errors.Errorf("MakeChip: unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		if len(tv) == 2 && tv[1] != "" {
			pin = tv[1]
		}
		var md PinMetadata
		if err := md.Type.UnmarshalText([]byte(tv[0])); err != nil {
			return nil, errors.Wrapf(err, "MakeChip: field %q in %q", f.Name, typ.Name())
		}
		if _, dup := c.pins[pin]; dup {
			return nil, errors.Errorf("MakeChip: duplicate pin name %q in %q", pin, typ.Name())
		}
		md.DataType = f.Type.String()
		md.Tristatable = f.Type.Kind() == reflect.Ptr
		c.pins[pin] = md
		c.idx[pin] = i
	}
	return c, nil
}

// MustMakeChip is like MakeChip but panics on error.
func MustMakeChip(v interface{}) Chip {
	c, err := MakeChip(v)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *reflectChip) Pins() map[string]PinMetadata {
	m := make(map[string]PinMetadata, len(c.pins))
	for k, v := range c.pins {
		m[k] = v
	}
	return m
}

func (c *reflectChip) PinValue(name string) (interface{}, bool) {
	i, ok := c.idx[name]
	if !ok {
		return nil, false
	}
	return c.v.Field(i).Interface(), true
}

func (c *reflectChip) SetPinValue(name string, v interface{}) {
	i, ok := c.idx[name]
	if !ok {
		return
	}
	f := c.v.Field(i)
	if v == nil {
		if f.Kind() != reflect.Ptr {
			panic(errors.Errorf("chip %s: nil value sent to non-tristatable pin %q", c.name, name))
		}
		f.Set(reflect.Zero(f.Type()))
		return
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(f.Type()) {
		panic(errors.Errorf("chip %s: value sent to pin %q is of incorrect type %T, expected %s", c.name, name, v, f.Type()))
	}
	f.Set(rv)
}

func (c *reflectChip) IsPinTristated(name string) bool {
	i, ok := c.idx[name]
	if !ok {
		return false
	}
	f := c.v.Field(i)
	return f.Kind() == reflect.Ptr && f.IsNil()
}
