package gasteiger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbols(t *testing.T) {
	for sym, z := range map[string]int{"H": 1, "c": 6, "CL": 17, "Br": 35, " I ": 53, "Pd": 46, "Og": 118, "D": 1} {
		got, ok := SymbolToZ(sym)
		assert.True(t, ok, sym)
		assert.Equal(t, z, got, sym)
	}
	_, ok := SymbolToZ("Xx")
	assert.False(t, ok)
	assert.Equal(t, "Cl", ZToSymbol(17))
	assert.Equal(t, "", ZToSymbol(0))
	assert.Equal(t, "", ZToSymbol(119))
}

func TestNewTopology(t *testing.T) {
	ats := []*Atom{{Symbol: "C", Z: 6}, {Symbol: "O", Z: 8, Charge: -1}}
	_, err := NewTopology("bad", ats, []*Bond{{At1: 0, At2: 2, Order: 1}})
	assert.Error(t, err)
	_, err = NewTopology("bad", nil, nil)
	assert.Error(t, err)

	top, err := NewTopology("co", ats, []*Bond{{At1: 0, At2: 1, Order: 1}, {At1: 1, At2: 1, Order: 1}})
	require.NoError(t, err)
	assert.Equal(t, -1.0, top.FormalCharge())
	assert.Error(t, top.SetPartialCharges([]float64{1}))
	require.NoError(t, top.SetPartialCharges([]float64{0.25, -1.25}))
	assert.Equal(t, []float64{0.25, -1.25}, top.PartialCharges())
	assert.Panics(t, func() { top.Atom(5) })
}
