package pcbtest_test

import (
	"testing"

	"github.com/db47h/pcb"
	"github.com/db47h/pcb/pcbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePins(t *testing.T) {
	pins, err := pcbtest.ParsePins("a in, b out,bus io tri, ")
	require.NoError(t, err)
	assert.Equal(t, map[string]pcb.PinMetadata{
		"a":   {Type: pcb.Input},
		"b":   {Type: pcb.Output},
		"bus": {Type: pcb.IO, Tristatable: true},
	}, pins)

	for _, desc := range []string{"a", "a in out", "a in tri x", "a sideways", "a in, a out"} {
		_, err := pcbtest.ParsePins(desc)
		assert.Error(t, err, desc)
	}
	assert.Panics(t, func() { pcbtest.Chip("a") })
}
