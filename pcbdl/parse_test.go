package pcbdl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/pcb"
	"github.com/db47h/pcb/pcbdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counter = `// a blinking led
counter {
	chip clk;
	chip cnt;
	chip led;

	clk::out - cnt::clk;
	cnt::q0 - led::in; // low bit
	led::in - cnt::q0;
	expose cnt::reset;
}
`

func TestParse(t *testing.T) {
	d, err := pcbdl.ParseString("counter.pcb", counter)
	require.NoError(t, err)

	assert.Equal(t, "counter", d.Name())
	assert.Equal(t, []string{"clk", "cnt", "led"}, d.Chips())
	assert.Equal(t, []string{"clk", "q0", "q0"}, d.PinRefs("cnt"))
	assert.Equal(t, []pcb.ChipPin{{Chip: "cnt", Pin: "reset"}}, d.Exposed())
	assert.Equal(t, [][2]pcb.ChipPin{
		{{Chip: "clk", Pin: "out"}, {Chip: "cnt", Pin: "clk"}},
		{{Chip: "cnt", Pin: "q0"}, {Chip: "led", Pin: "in"}},
	}, d.Edges())
}

func TestParse_keywordNames(t *testing.T) {
	d, err := pcbdl.ParseString("test.pcb", `t {
		chip a;
		chip b;
		a::expose - b::chip;
		expose a::chip;
	}`)
	require.NoError(t, err)
	assert.Equal(t, [][2]pcb.ChipPin{
		{{Chip: "a", Pin: "expose"}, {Chip: "b", Pin: "chip"}},
	}, d.Edges())
	assert.Equal(t, []pcb.ChipPin{{Chip: "a", Pin: "chip"}}, d.Exposed())
}

func TestFormat(t *testing.T) {
	d, err := pcbdl.ParseString("counter.pcb", counter)
	require.NoError(t, err)
	out := pcbdl.Format(d)
	assert.Equal(t, `counter {
	chip clk;
	chip cnt;
	chip led;
	clk::out - cnt::clk;
	cnt::q0 - led::in;
	expose cnt::reset;
}
`, out)

	d2, err := pcbdl.ParseString("formatted.pcb", out)
	require.NoError(t, err)
	assert.Equal(t, out, pcbdl.Format(d2))
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "counter.pcb")
	require.NoError(t, os.WriteFile(name, []byte(counter), 0o600))
	d, err := pcbdl.ParseFile(name)
	require.NoError(t, err)
	assert.Equal(t, "counter", d.Name())

	_, err = pcbdl.ParseFile(filepath.Join(t.TempDir(), "missing.pcb"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open design")
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		kind pcb.ErrorKind
		err  string
	}{
		{"empty", `t { a::x - b::y; }`, pcb.EmptyDesign,
			"test.pcb:1:1: empty design: cannot make pcb t with no chips"},
		{"no_connections", "t {\n\tchip a;\n\texpose a::x;\n}", pcb.NoConnections,
			"test.pcb:1:1: no connections: there are no pin connections in pcb t"},
		{"self", "t {\n\tchip a;\n\ta::x - a::x;\n}", pcb.SelfConnection,
			`test.pcb:3:2: self connection: attempted to connect a pin to itself: chip "a" pin "x" appears to have a self-connection, which is redundant`},
		{"undeclared", "t {\n\tchip a;\n\ta::x - b::y;\n}", pcb.UndeclaredChip,
			`test.pcb:3:2: undeclared chip: use of undeclared chip "b" in connection a::x - b::y`},
		{"undeclared_expose", "t {\n\tchip a;\n\ta::x - a::y;\n\texpose c::z;\n}", pcb.UndeclaredChip,
			`test.pcb:4:2: undeclared chip: use of undeclared chip "c" in expose c::z`},
		{"syntax", `t { chip a; a::x = a::y; }`, 0, ""},
		{"order", `t { chip a; a::x - a::y; chip b; }`, 0, ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := pcbdl.ParseString("test.pcb", d.src)
			require.Error(t, err)
			assert.Equal(t, d.kind, pcb.KindOf(err))
			if d.err != "" {
				assert.Equal(t, d.err, err.Error())
			} else {
				assert.Contains(t, err.Error(), "parse error")
			}
		})
	}
}
