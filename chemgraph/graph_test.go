package chemgraph

import (
	"testing"

	"github.com/rmera/gasteiger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func methaneWater() *gasteiger.Topology {
	ats := []*gasteiger.Atom{
		{Symbol: "C", Z: 6}, {Symbol: "H", Z: 1}, {Symbol: "H", Z: 1}, {Symbol: "H", Z: 1}, {Symbol: "H", Z: 1},
		{Symbol: "O", Z: 8}, {Symbol: "H", Z: 1}, {Symbol: "H", Z: 1},
	}
	bonds := []*gasteiger.Bond{
		{At1: 0, At2: 1, Order: 1}, {At1: 0, At2: 2, Order: 1}, {At1: 0, At2: 3, Order: 1}, {At1: 0, At2: 4, Order: 1},
		{At1: 5, At2: 6, Order: 1}, {At1: 7, At2: 5, Order: 1},
	}
	top, err := gasteiger.NewTopology("methane+water", ats, bonds)
	if err != nil {
		panic(err)
	}
	return top
}

func TestComponents(t *testing.T) {
	top := methaneWater()
	//an isolated ion
	top.Atoms = append(top.Atoms, &gasteiger.Atom{Symbol: "Na", Z: 11, Charge: 1})
	g := New(top, top.BondList())
	comps := g.Components()
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4}, {5, 6, 7}, {8}}, comps)
	assert.Equal(t, 4, g.Degree(0))
	assert.Equal(t, 2, g.Degree(5))
	assert.Equal(t, 0, g.Degree(8))

	charges := gasteiger.DefaultSolver().Charges(top, top.BondList())
	sub := ComponentCharges(charges, comps)
	require.Len(t, sub, 3)
	assert.InDelta(t, 0.0, sub[0], 1e-6)
	assert.InDelta(t, 0.0, sub[1], 1e-6)
	assert.Equal(t, 1.0, sub[2])
}

func TestBadBondsSkipped(t *testing.T) {
	ats := []gasteiger.Atomer{&gasteiger.Atom{Z: 6}, &gasteiger.Atom{Z: 1}, &gasteiger.Atom{Z: 1}}
	bonds := []gasteiger.Bonder{
		&gasteiger.Bond{At1: 0, At2: 1, Order: 2},
		&gasteiger.Bond{At1: 1, At2: 1, Order: 1},
		&gasteiger.Bond{At1: 2, At2: 9, Order: 1},
		&gasteiger.Bond{At1: -1, At2: 2, Order: 1},
	}
	g := New(gasteiger.Atoms(ats), gasteiger.Bonds(bonds))
	assert.Equal(t, [][]int{{0, 1}, {2}}, g.Components())
	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, []float64{0.5, 3}, ComponentCharges([]float64{0.25, 0.25, 3}, [][]int{{0, 1, 7}, {2}}))
}
