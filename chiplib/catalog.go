// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/db47h/pcb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PinSpec describes one pin of a chip type.
type PinSpec struct {
	Type        pcb.PinType `yaml:"type"`
	Data        string      `yaml:"data,omitempty"`
	Tristatable bool        `yaml:"tristatable,omitempty"`
}

// TypeSpec describes a chip type.
type TypeSpec struct {
	Pins map[string]PinSpec `yaml:"pins"`
}

// A Catalog describes chip types and the chip instances to create from them.
//
//	types:
//	  sram:
//	    pins:
//	      addr: {type: input, data: uint16}
//	      data: {type: io, data: uint8, tristatable: true}
//	instances:
//	  ram: sram
type Catalog struct {
	Types     map[string]TypeSpec `yaml:"types"`
	Instances map[string]string   `yaml:"instances"`
}

// LoadCatalog loads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// ParseCatalog parses a YAML catalog and checks that every instance refers to
// a known type.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}
	for _, name := range c.instanceNames() {
		if _, ok := c.Types[c.Instances[name]]; !ok {
			return nil, errors.Errorf("instance %q: unknown chip type %q", name, c.Instances[name])
		}
	}
	return &c, nil
}

// New returns a new chip of the named type.
func (c *Catalog) New(typeName string) (*SpecChip, error) {
	ts, ok := c.Types[typeName]
	if !ok {
		return nil, errors.Errorf("unknown chip type %q", typeName)
	}
	pins := make(map[string]pcb.PinMetadata, len(ts.Pins))
	for name, ps := range ts.Pins {
		pins[name] = pcb.PinMetadata{Type: ps.Type, DataType: ps.Data, Tristatable: ps.Tristatable}
	}
	return NewSpecChip(typeName, pins), nil
}

// AddTo creates one chip per catalog instance and adds it to b.
func (c *Catalog) AddTo(b *pcb.Builder) error {
	for _, name := range c.instanceNames() {
		chip, err := c.New(c.Instances[name])
		if err != nil {
			return errors.Wrapf(err, "instance %q", name)
		}
		b.AddChip(name, chip)
	}
	return nil
}

func (c *Catalog) instanceNames() []string {
	names := make([]string, 0, len(c.Instances))
	for n := range c.Instances {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
