// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcbdl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the syntax tree of a design file.
type File struct {
	Pos         lexer.Position
	Name        string        `@Ident "{"`
	Chips       []*ChipDecl   `@@*`
	Connections []*Connection `@@*`
	Exposes     []*Expose     `@@* "}"`
}

// ChipDecl declares a chip instance: chip name;
type ChipDecl struct {
	Pos  lexer.Position
	Name string `"chip" @Ident ";"`
}

// Connection wires two pins: a::x - b::y;
type Connection struct {
	Pos  lexer.Position
	From *PinRef `@@ "-"`
	To   *PinRef `@@ ";"`
}

// Expose exposes a pin: expose a::x;
type Expose struct {
	Pos lexer.Position
	Pin *PinRef `"expose" @@ ";"`
}

// PinRef references a pin of a chip: chip::pin
type PinRef struct {
	Pos  lexer.Position
	Chip string `@Ident "::"`
	Pin  string `@Ident`
}

// chip and expose are plain identifiers. They only act as keywords at the
// start of a statement, so they remain valid chip and pin names.
var designLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Scope", Pattern: `::`},
	{Name: "Punct", Pattern: `[{};\-]`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(designLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)
