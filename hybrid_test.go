package gasteiger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// star returns an atom of element z bonded to degree hydrogens.
func star(z, degree int) ([]mockAtom, []mockBond) {
	atoms := []mockAtom{at("X", z)}
	bonds := make([]mockBond, 0, degree)
	for i := 1; i <= degree; i++ {
		atoms = append(atoms, at("H", 1))
		bonds = append(bonds, single(0, i))
	}
	return atoms, bonds
}

func TestDegreeBands(t *testing.T) {
	cases := []struct {
		z    int
		want []Hybridization //index is the degree, 0 to 5
	}{
		{6, []Hybridization{Sp, Sp, Sp, Sp2, Sp3, Sp3}},
		{7, []Hybridization{Sp, Sp, Sp2, Sp3, Sp3, Sp3}},
		{8, []Hybridization{Sp2, Sp2, Sp3, Sp3, Sp3, Sp3}},
		{15, []Hybridization{Sp3, Sp3, Sp3, Sp3, Sp3, Sp3}},
		{16, []Hybridization{Sp2, Sp2, Sp3, Sp3, Sp3, Sp3}},
		{1, []Hybridization{Default, Default, Default, Default, Default, Default}},
		{17, []Hybridization{Default, Default, Default, Default, Default, Default}},
		{46, []Hybridization{Default, Default, Default, Default, Default, Default}},
	}
	for _, c := range cases {
		for degree, want := range c.want {
			atoms, bonds := star(c.z, degree)
			got := Hybridize(0, Atoms(atoms), Bonds(bonds))
			assert.Equal(t, want, got, "Z=%d degree=%d", c.z, degree)
		}
	}
}

func TestDegree(t *testing.T) {
	bonds := Bonds([]mockBond{single(0, 1), single(1, 2), single(2, 0), single(3, 3), single(0, 7)})
	assert.Equal(t, 3, Degree(0, bonds))
	assert.Equal(t, 2, Degree(1, bonds))
	assert.Equal(t, 0, Degree(5, bonds))
	//a bond from an atom to itself counts twice
	assert.Equal(t, 2, Degree(3, bonds))
}

func TestDegrees(t *testing.T) {
	bonds := Bonds([]mockBond{single(0, 1), single(1, 2), single(2, 0), single(3, 3), single(0, 7), single(-1, 2)})
	got := Degrees(5, bonds)
	require.Len(t, got, 5)
	for i := range got {
		assert.Equal(t, Degree(i, bonds), got[i], "atom %d", i)
	}
	assert.Equal(t, []int{3, 2, 3, 2, 0}, got)
	assert.Empty(t, Degrees(0, bonds))
}

func TestSelfBondChangesHybridization(t *testing.T) {
	//a carbon with one real bond is sp, but a self-bond adds two to the degree.
	atoms := []mockAtom{at("C", 6), at("H", 1)}
	assert.Equal(t, Sp, Hybridize(0, Atoms(atoms), Bonds([]mockBond{single(0, 1)})))
	assert.Equal(t, Sp2, Hybridize(0, Atoms(atoms), Bonds([]mockBond{single(0, 1), single(0, 0)})))
	res := ResolveAll(Atoms(atoms), Bonds([]mockBond{single(0, 1), single(0, 0)}))
	assert.Equal(t, Sp2, res[0].Estimated)
	assert.Equal(t, Sp2, res[0].Used)
}
