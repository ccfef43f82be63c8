package chemgraph

import (
	"sort"

	"github.com/rmera/gasteiger"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a graph node wrapping an atom and its position in the molecule.
type Atom struct {
	gasteiger.Atomer
	Index int
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

// Bond is a weighted, undirected graph edge. The weight is the bond order.
type Bond struct {
	gasteiger.Bonder
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// bonds are not directional, so we just switch the ends.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bonder: B.Bonder, At1: B.At2, At2: B.At1}
}

func (B *Bond) Weight() float64 {
	return B.BondOrder()
}

// Topology implements the Gonum graph.Graph and graph.Weighted interfaces
// for a molecule.
type Topology struct {
	*simple.WeightedUndirectedGraph
	Atoms []*Atom
}

// New builds the bond graph for atoms and bonds. Bonds with an end
// outside atoms, and bonds from an atom to itself, are left out.
// If two bonds join the same atoms, the last one is kept.
func New(atoms gasteiger.AtomLister, bonds gasteiger.BondLister) *Topology {
	n := atoms.Len()
	T := &Topology{WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0)}
	T.Atoms = make([]*Atom, n)
	for i := 0; i < n; i++ {
		T.Atoms[i] = &Atom{Atomer: atoms.Atom(i), Index: i}
		T.AddNode(T.Atoms[i])
	}
	for k := 0; k < bonds.Len(); k++ {
		b := bonds.Bond(k)
		i, j := b.AtomIndices()
		if i < 0 || j < 0 || i >= n || j >= n || i == j {
			continue
		}
		T.SetWeightedEdge(&Bond{Bonder: b, At1: T.Atoms[i], At2: T.Atoms[j]})
	}
	return T
}

// Degree returns the number of distinct atoms bonded to atom i.
func (T *Topology) Degree(i int) int {
	return T.From(int64(i)).Len()
}

// Components returns the indexes of the atoms in each connected component
// (i.e. each separate molecule) of the topology. Indexes are sorted within
// each component, and components are sorted by their first index.
func (T *Topology) Components() [][]int {
	cc := topo.ConnectedComponents(T)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		idx := make([]int, 0, len(c))
		for _, node := range c {
			idx = append(idx, int(node.ID()))
		}
		sort.Ints(idx)
		ret = append(ret, idx)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// ComponentCharges returns the sum of charges over each component in comps.
// Indexes out of the range of charges are ignored.
func ComponentCharges(charges []float64, comps [][]int) []float64 {
	ret := make([]float64, len(comps))
	for k, c := range comps {
		vals := make([]float64, 0, len(c))
		for _, i := range c {
			if i >= 0 && i < len(charges) {
				vals = append(vals, charges[i])
			}
		}
		ret[k] = floats.Sum(vals)
	}
	return ret
}
