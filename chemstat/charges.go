package chemstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/gasteiger"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains some descriptive statistics for a set of charges.
type Summary struct {
	N      int     `json:"n" yaml:"n"`
	Total  float64 `json:"total" yaml:"total"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	MaxAbs float64 `json:"maxabs" yaml:"maxabs"` //largest absolute charge
}

func (S Summary) String() string {
	return fmt.Sprintf("n: %d total: %.6f mean: %.6f sd: %.6f min: %.6f max: %.6f max|q|: %.6f", S.N, S.Total, S.Mean, S.StdDev, S.Min, S.Max, S.MaxAbs)
}

// Summarize returns the statistics for charges. The standard deviation
// is the sample one, and it is 0 for fewer than 2 charges.
// An empty slice gives a zero Summary.
func Summarize(charges []float64) Summary {
	var S Summary
	S.N = len(charges)
	if S.N == 0 {
		return S
	}
	S.Total = floats.Sum(charges)
	if S.N > 1 {
		S.Mean, S.StdDev = stat.MeanStdDev(charges, nil)
	} else {
		S.Mean = charges[0]
	}
	S.Min = floats.Min(charges)
	S.Max = floats.Max(charges)
	S.MaxAbs = floats.Norm(charges, math.Inf(1))
	return S
}

// ElementMean is the mean charge for the atoms of one element.
type ElementMean struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
}

// ByElement returns the mean charge per element, sorted by atomic number.
// The element is taken from the atomic number of each atom, and atoms
// with an unknown element are grouped under "?". charges must have one
// element per atom, or ByElement panics.
func ByElement(atoms gasteiger.AtomLister, charges []float64) []ElementMean {
	if len(charges) != atoms.Len() {
		panic(fmt.Sprintf("chemstat: %d charges for %d atoms", len(charges), atoms.Len()))
	}
	groups := make(map[int][]float64)
	for i, c := range charges {
		z := atoms.Atom(i).AtomicNumber()
		if gasteiger.ZToSymbol(z) == "" {
			z = 0
		}
		groups[z] = append(groups[z], c)
	}
	zs := make([]int, 0, len(groups))
	for z := range groups {
		zs = append(zs, z)
	}
	sort.Ints(zs)
	ret := make([]ElementMean, 0, len(zs))
	for _, z := range zs {
		sym := gasteiger.ZToSymbol(z)
		if sym == "" {
			sym = "?"
		}
		ret = append(ret, ElementMean{Symbol: sym, Count: len(groups[z]), Mean: stat.Mean(groups[z], nil)})
	}
	return ret
}

// Histogram counts the charges falling in each bin defined by dividers,
// which must be sorted and have at least 2 elements. Bin i covers
// [dividers[i], dividers[i+1]); charges outside the range are not counted.
func Histogram(charges, dividers []float64) []float64 {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("chemstat: Histogram needs at least 2 sorted dividers")
	}
	in := make([]float64, 0, len(charges))
	lo, hi := dividers[0], dividers[len(dividers)-1]
	for _, c := range charges {
		if c >= lo && c < hi {
			in = append(in, c)
		}
	}
	sort.Float64s(in)
	return stat.Histogram(nil, dividers, in, nil)
}
