// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pcbdl parses design files into pcb.Design values.
//
// A design file names the design, declares its chips, then lists connections
// and finally exposed pins:
//
//	counter {
//		chip clk;
//		chip cnt;
//		chip led;
//		clk::out - cnt::clk;
//		cnt::q0 - led::in;
//		expose cnt::reset;
//	}
//
// Comments start with // and run to the end of the line.
package pcbdl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/pcb"
	"github.com/pkg/errors"
)

// Parse parses a design from r. filename is only used in error messages.
func Parse(filename string, r io.Reader) (*pcb.Design, error) {
	f, err := parser.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}
	return newDesign(f)
}

// ParseString parses a design from a string.
func ParseString(filename, s string) (*pcb.Design, error) {
	return Parse(filename, strings.NewReader(s))
}

// ParseFile parses the named design file.
func ParseFile(path string) (*pcb.Design, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open design")
	}
	defer f.Close()
	return Parse(path, f)
}

func newDesign(f *File) (*pcb.Design, error) {
	d := pcb.NewDesign(f.Name)
	if len(f.Chips) == 0 {
		return nil, posError(f.Pos, pcb.NewError(pcb.EmptyDesign, nil, "cannot make pcb "+f.Name+" with no chips"))
	}
	for _, c := range f.Chips {
		d.Declare(c.Name)
	}
	if len(f.Connections) == 0 {
		return nil, posError(f.Pos, pcb.NewError(pcb.NoConnections, nil, "there are no pin connections in pcb "+f.Name))
	}
	for _, c := range f.Connections {
		if err := d.Connect(c.From.chipPin(), c.To.chipPin()); err != nil {
			return nil, posError(c.Pos, err)
		}
	}
	for _, e := range f.Exposes {
		if err := d.Expose(e.Pin.chipPin()); err != nil {
			return nil, posError(e.Pos, err)
		}
	}
	return d, nil
}

func (p *PinRef) chipPin() pcb.ChipPin {
	return pcb.ChipPin{Chip: p.Chip, Pin: p.Pin}
}

func posError(pos lexer.Position, err error) error {
	return errors.Wrap(err, pos.String())
}

// Format returns the canonical text form of a design. Parsing the result
// yields an equivalent design.
func Format(d *pcb.Design) string {
	var b strings.Builder
	b.WriteString(d.Name())
	b.WriteString(" {\n")
	for _, c := range d.Chips() {
		b.WriteString("\tchip " + c + ";\n")
	}
	for _, e := range d.Edges() {
		b.WriteString("\t" + e[0].String() + " - " + e[1].String() + ";\n")
	}
	for _, p := range d.Exposed() {
		b.WriteString("\texpose " + p.String() + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
