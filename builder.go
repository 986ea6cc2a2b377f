// Copyright 2026 The pcb Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package pcb

import (
	"sort"

	"go.uber.org/zap"
)

// A Builder validates a Design against actual chip instances and produces a
// Board.
//
// A Builder is not safe for concurrent use. Independent designs can be built
// concurrently using one Builder each.
type Builder struct {
	design *Design
	chips  map[string]Chip
	err    error
	log    *zap.Logger
}

// An Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used by the builder. The default logger discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder returns a new Builder for the given design.
func NewBuilder(d *Design, opts ...Option) *Builder {
	b := &Builder{
		design: d,
		chips:  make(map[string]Chip),
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(b)
	}
	b.log = b.log.With(zap.String("design", d.Name()))
	return b
}

// AddChip adds a chip instance under the given name.
//
// Adding the same name twice is an error reported by Build. Chips that are not
// part of the design are ignored.
func (b *Builder) AddChip(name string, c Chip) *Builder {
	if _, ok := b.chips[name]; ok {
		if b.err == nil {
			b.err = chipError(DuplicateChip, name, "chip %q added more than once", name)
		}
		return b
	}
	if !b.design.Declared(name) {
		b.log.Warn("ignoring chip not declared in design", zap.String("chip", name))
		return b
	}
	b.chips[name] = c
	return b
}

// Build checks that all chips have been added, that they have the pins used
// in the design, and that all connections are electrically valid. It then
// returns the finished Board.
//
// The first violation found is returned as a *Error (possibly wrapped, use
// KindOf to get its kind) and no Board is built.
func (b *Builder) Build() (*Board, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.checkAddedAllChips(); err != nil {
		return nil, err
	}
	if err := b.checkValidChips(); err != nil {
		return nil, err
	}
	cache, err := b.checkPinConnections()
	if err != nil {
		return nil, err
	}
	conns, err := b.pinConnections(cache)
	if err != nil {
		return nil, err
	}

	board := &Board{
		name:  b.design.Name(),
		chips: make(map[string]Chip, len(b.chips)),
		conns: conns,
	}
	for name, c := range b.chips {
		board.chips[name] = c
	}
	for _, p := range b.design.Exposed() {
		board.exposed = append(board.exposed, ExposedPin{ChipPin: p, PinMetadata: b.chips[p.Chip].Pins()[p.Pin]})
	}
	b.log.Info("board built",
		zap.Int("chips", len(board.chips)),
		zap.Int("connections", len(board.conns)),
		zap.Int("exposed", len(board.exposed)))
	return board, nil
}

func (b *Builder) checkAddedAllChips() error {
	for _, name := range b.design.Chips() {
		if _, ok := b.chips[name]; !ok {
			return chipError(MissingChip, name, "chip %q defined in design, but not added", name)
		}
	}
	b.log.Debug("all chips added", zap.Int("count", len(b.chips)))
	return nil
}

func (b *Builder) checkValidChips() error {
	check := func(p ChipPin, pins map[string]PinMetadata) error {
		if _, ok := pins[p.Pin]; !ok {
			return newError(UnknownPin, []ChipPin{p}, "invalid chip added: chip %q expected to have pin named %q, not found", p.Chip, p.Pin)
		}
		return nil
	}
	for _, name := range b.design.Chips() {
		pins := b.chips[name].Pins()
		for _, pin := range b.design.PinRefs(name) {
			if err := check(ChipPin{name, pin}, pins); err != nil {
				return err
			}
		}
	}
	for _, p := range b.design.Exposed() {
		if err := check(p, b.chips[p.Chip].Pins()); err != nil {
			return err
		}
	}
	b.log.Debug("all pins found")
	return nil
}

// checkPinConnections validates each direct connection and returns the
// metadata of all connected pins.
func (b *Builder) checkPinConnections() (pinCache, error) {
	pins := make(map[string]map[string]PinMetadata, len(b.chips))
	for name, c := range b.chips {
		pins[name] = c.Pins()
	}
	cache := make(pinCache)
	for _, e := range b.design.Edges() {
		p1, p2 := e[0], e[1]
		md1, md2 := pins[p1.Chip][p1.Pin], pins[p2.Chip][p2.Pin]
		if err := checkConnectable(p1, md1, p2, md2); err != nil {
			return nil, err
		}
		cache[p1] = md1
		cache[p2] = md2
	}
	b.log.Debug("pin connections valid", zap.Int("pins", len(cache)))
	return cache, nil
}

func (b *Builder) pinConnections(cache pinCache) ([]ConnectedPins, error) {
	groups := shortedGroups(b.design.conns)
	conns := make([]ConnectedPins, 0, len(groups))
	for _, g := range groups {
		c, err := classify(g, cache)
		if err != nil {
			return nil, err
		}
		b.log.Debug("group classified", zap.Stringer("group", c))
		conns = append(conns, c)
	}
	return conns, nil
}

// ExposedPin is a pin exposed by a board together with its metadata.
type ExposedPin struct {
	ChipPin
	PinMetadata
}

// Board is a validated design.
type Board struct {
	name    string
	chips   map[string]Chip
	conns   []ConnectedPins
	exposed []ExposedPin
}

// Name returns the name of the design the board was built from.
func (b *Board) Name() string { return b.name }

// Connections returns a copy of the connection groups of the board, ordered by
// their lowest pin.
func (b *Board) Connections() []ConnectedPins {
	cs := make([]ConnectedPins, len(b.conns))
	for i, c := range b.conns {
		cs[i] = c.clone()
	}
	return cs
}

// Exposed returns the exposed pins in declaration order.
func (b *Board) Exposed() []ExposedPin {
	return append([]ExposedPin(nil), b.exposed...)
}

// Chip returns the named chip, or nil if there is no such chip on the board.
func (b *Board) Chip(name string) Chip {
	return b.chips[name]
}

// ChipNames returns the sorted names of all chips on the board.
func (b *Board) ChipNames() []string {
	names := make([]string, 0, len(b.chips))
	for n := range b.chips {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
