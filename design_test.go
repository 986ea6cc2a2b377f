package pcb_test

import (
	"testing"

	"github.com/db47h/pcb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesign_Connect(t *testing.T) {
	d := pcb.NewDesign("test")
	d.Declare("a")
	d.Declare("b")
	d.Declare("a")
	assert.Equal(t, []string{"a", "b"}, d.Chips())

	a1, a2 := pcb.ChipPin{Chip: "a", Pin: "p1"}, pcb.ChipPin{Chip: "a", Pin: "p2"}
	b1 := pcb.ChipPin{Chip: "b", Pin: "p1"}

	require.NoError(t, d.Connect(a1, b1))
	require.NoError(t, d.Connect(b1, a2))
	// same edge, reversed: recorded once
	require.NoError(t, d.Connect(b1, a1))

	assert.Equal(t, []string{"p1", "p2", "p1"}, d.PinRefs("a"))
	assert.Equal(t, []string{"p1", "p1", "p1"}, d.PinRefs("b"))
	assert.Equal(t, [][2]pcb.ChipPin{{a1, b1}, {b1, a2}}, d.Edges())
}

func TestDesign_errors(t *testing.T) {
	pin := func(c, p string) pcb.ChipPin { return pcb.ChipPin{Chip: c, Pin: p} }
	data := []struct {
		name string
		a, b pcb.ChipPin
		kind pcb.ErrorKind
		err  string
	}{
		{"self", pin("a", "p1"), pin("a", "p1"), pcb.SelfConnection,
			`self connection: attempted to connect a pin to itself: chip "a" pin "p1" appears to have a self-connection, which is redundant`},
		{"self_undeclared", pin("x", "p1"), pin("x", "p1"), pcb.SelfConnection, ""},
		{"undeclared_from", pin("x", "p1"), pin("a", "p1"), pcb.UndeclaredChip,
			`undeclared chip: use of undeclared chip "x" in connection x::p1 - a::p1`},
		{"undeclared_to", pin("a", "p1"), pin("y", "p1"), pcb.UndeclaredChip, ""},
		{"same_chip", pin("a", "p1"), pin("a", "p2"), 0, ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			des := pcb.NewDesign("test")
			des.Declare("a")
			err := des.Connect(d.a, d.b)
			assert.Equal(t, d.kind, pcb.KindOf(err))
			if d.err != "" {
				require.Error(t, err)
				assert.Equal(t, d.err, err.Error())
			}
		})
	}
}

func TestDesign_Expose(t *testing.T) {
	d := pcb.NewDesign("test")
	d.Declare("a")
	require.NoError(t, d.Expose(pcb.ChipPin{Chip: "a", Pin: "x"}))
	err := d.Expose(pcb.ChipPin{Chip: "b", Pin: "x"})
	require.Equal(t, pcb.UndeclaredChip, pcb.KindOf(err))
	e := errors.Cause(err).(*pcb.Error)
	assert.Equal(t, "b", e.Chip)
	assert.Equal(t, "x", e.Pin)
	assert.Equal(t, []pcb.ChipPin{{Chip: "a", Pin: "x"}}, d.Exposed())
}
