package chiplib_test

import (
	"testing"

	"github.com/db47h/pcb"
	"github.com/db47h/pcb/chiplib"
	"github.com/db47h/pcb/pcbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecChip(t *testing.T) {
	c := chiplib.NewSpecChip("latch", map[string]pcb.PinMetadata{
		"d":   {Type: pcb.Input, DataType: "bool"},
		"q":   {Type: pcb.Output, DataType: "bool", Tristatable: true},
		"any": {Type: pcb.IO},
	})

	assert.True(t, c.IsPinTristated("q"))
	assert.False(t, c.IsPinTristated("d"))
	assert.False(t, c.IsPinTristated("x"))

	v, ok := c.PinValue("d")
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = c.PinValue("x")
	assert.False(t, ok)

	c.SetPinValue("q", true)
	assert.False(t, c.IsPinTristated("q"))
	v, _ = c.PinValue("q")
	assert.Equal(t, true, v)
	c.SetPinValue("q", nil)
	assert.True(t, c.IsPinTristated("q"))

	c.SetPinValue("any", "text")
	c.SetPinValue("any", 42)
	v, _ = c.PinValue("any")
	assert.Equal(t, 42, v)

	assert.PanicsWithError(t, `chip latch: value sent to pin "d" is of incorrect type int, expected bool`, func() {
		c.SetPinValue("d", 1)
	})
	assert.PanicsWithError(t, `chip latch: nil value sent to non-tristatable pin "d"`, func() {
		c.SetPinValue("d", nil)
	})
}

func TestChips_pins(t *testing.T) {
	data := []struct {
		name string
		c    chiplib.Chip
		pins string
	}{
		{"source", chiplib.Source(func() bool { return true }), "out out"},
		{"probe", chiplib.Probe(func(bool) {}), "in in"},
		{"bus_probe", chiplib.BusProbe(func(v, ok bool) {}), "in in tri"},
		{"clock", chiplib.Clock(), "out out"},
		{"buffer", chiplib.Buffer(), "in in, out out"},
		{"tri_buffer", chiplib.TriBuffer(), "in in, en in, out out tri"},
		{"transceiver", chiplib.Transceiver(), "a io tri, b io tri, dir in, en in"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			want, err := pcbtest.ParsePins(d.pins)
			require.NoError(t, err)
			got := d.c.Pins()
			for name, md := range got {
				md.DataType = ""
				got[name] = md
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestTriBuffer(t *testing.T) {
	c := chiplib.TriBuffer()
	c.SetPinValue("in", true)
	c.Tick()
	assert.True(t, c.IsPinTristated("out"))

	c.SetPinValue("en", true)
	c.Tick()
	require.False(t, c.IsPinTristated("out"))
	v, _ := c.PinValue("out")
	assert.True(t, *v.(*bool))
}

func TestTransceiver(t *testing.T) {
	c := chiplib.Transceiver()
	a := uint8(0x5a)
	c.SetPinValue("a", &a)
	c.SetPinValue("dir", true)
	c.Tick()
	assert.True(t, c.IsPinTristated("b"), "disabled transceiver must not drive b")

	c.SetPinValue("a", &a)
	c.SetPinValue("en", true)
	c.Tick()
	v, _ := c.PinValue("b")
	require.NotNil(t, v)
	assert.Equal(t, uint8(0x5a), *v.(*uint8))

	b := uint8(0xa5)
	c.SetPinValue("b", &b)
	c.SetPinValue("dir", false)
	c.Tick()
	v, _ = c.PinValue("a")
	assert.Equal(t, uint8(0xa5), *v.(*uint8))
	assert.True(t, c.IsPinTristated("b"), "b is the input side")
}

func TestTransceiver_release(t *testing.T) {
	data := []struct {
		name  string
		dir   bool
		drive string
		recv  string
	}{
		{"a_to_b", true, "a", "b"},
		{"b_to_a", false, "b", "a"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			c := chiplib.Transceiver()
			v := uint8(1)
			c.SetPinValue(d.drive, &v)
			c.SetPinValue("dir", d.dir)
			c.SetPinValue("en", true)
			c.Tick()
			require.False(t, c.IsPinTristated(d.recv))
			assert.True(t, c.IsPinTristated(d.drive))

			c.SetPinValue("en", false)
			c.Tick()
			assert.True(t, c.IsPinTristated("a"), "disabled transceiver drives a")
			assert.True(t, c.IsPinTristated("b"), "disabled transceiver drives b")

			// flipping dir while disabled must not leave a stale value behind
			c.SetPinValue("dir", !d.dir)
			c.Tick()
			assert.True(t, c.IsPinTristated("a"))
			assert.True(t, c.IsPinTristated("b"))
		})
	}
}

// Chips built from this package can be checked against a design like any
// other chip, then run.
func TestChips_board(t *testing.T) {
	var got []bool
	d := pcbtest.Design(t, `blink {
		chip clk;
		chip buf;
		chip led;
		clk::out - buf::in;
		buf::out - led::in;
	}`)
	clk, buf := chiplib.Clock(), chiplib.Buffer()
	led := chiplib.Probe(func(v bool) { got = append(got, v) })
	board, err := pcb.NewBuilder(d).
		AddChip("clk", clk).
		AddChip("buf", buf).
		AddChip("led", led).
		Build()
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for _, name := range []string{"clk", "buf", "led"} {
			board.Chip(name).(chiplib.Chip).Tick()
			for _, c := range board.Connections() {
				p := c.(pcb.Pair)
				v, _ := board.Chip(p.Source.Chip).PinValue(p.Source.Pin)
				board.Chip(p.Destination.Chip).SetPinValue(p.Destination.Pin, v)
			}
		}
	}
	assert.Equal(t, []bool{true, false, true, false}, got)
}
