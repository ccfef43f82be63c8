/*
 * solver.go, part of gasteiger.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package gasteiger

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultIterations = 6
	DefaultDamping    = 0.5
)

// Solver computes Gasteiger-Marsili partial charges. A Solver holds no
// state besides its settings, so one value can be shared by concurrent
// calls on different molecules.
type Solver struct {
	Iterations int     //number of equalization passes. Negative values mean no passes.
	Damping    float64 //the transfer in pass k is scaled by Damping^(k-1)
}

// DefaultSolver returns a solver with 6 iterations and a damping of 0.5.
func DefaultSolver() *Solver {
	return &Solver{Iterations: DefaultIterations, Damping: DefaultDamping}
}

// Result contains the charges obtained by Solver.Run, plus some information
// on how they were obtained.
type Result struct {
	Charges     []float64
	Resolutions []Resolution //parameters used for each atom
	Residuals   []float64    //largest absolute charge change in each pass
	//Trace has one row per pass plus the initial one, and one column per atom.
	//Row 0 contains the formal charges. It is nil for an empty molecule.
	Trace *mat.Dense
}

// Total returns the sum of the charges in the result.
func (R *Result) Total() float64 {
	return floats.Sum(R.Charges)
}

// ComputeCharges obtains the partial charges for atoms and bonds using
// the default settings.
func ComputeCharges[A Atomer, B Bonder](atoms []A, bonds []B) []float64 {
	return DefaultSolver().Charges(Atoms(atoms), Bonds(bonds))
}

// Charges returns one partial charge per atom, in the same order as atoms.
// Every input is accepted: atoms without parameters keep their formal
// charge, and bonds pointing outside the atom collection are ignored.
func (S *Solver) Charges(atoms AtomLister, bonds BondLister) []float64 {
	return S.run(atoms, bonds, false).Charges
}

// Run works as Charges, but also returns the per-atom parameter
// resolution, the residual of each pass and the charge trace.
func (S *Solver) Run(atoms AtomLister, bonds BondLister) *Result {
	return S.run(atoms, bonds, true)
}

// ResolveAll returns the parameters each atom would use in a calculation.
func ResolveAll(atoms AtomLister, bonds BondLister) []Resolution {
	ret := make([]Resolution, atoms.Len())
	deg := Degrees(len(ret), bonds)
	for i := range ret {
		z := atoms.Atom(i).AtomicNumber()
		ret[i] = Resolve(z, hybridFromDegree(z, deg[i]))
	}
	return ret
}

func (S *Solver) run(atoms AtomLister, bonds BondLister, diagnostics bool) *Result {
	n := atoms.Len()
	charges := make([]float64, n)
	for i := range charges {
		charges[i] = atoms.Atom(i).FormalCharge()
	}
	resolved := ResolveAll(atoms, bonds)
	passes := S.Iterations
	if passes < 0 {
		passes = 0
	}
	ret := &Result{Charges: charges}
	if diagnostics {
		ret.Resolutions = resolved
		ret.Residuals = make([]float64, passes)
		if n > 0 {
			ret.Trace = mat.NewDense(passes+1, n, nil)
			ret.Trace.SetRow(0, charges)
		}
	}
	delta := make([]float64, n)
	factor := 1.0
	for k := 0; k < passes; k++ {
		for i := range delta {
			delta[i] = 0
		}
		for b := 0; b < bonds.Len(); b++ {
			i, j := bonds.Bond(b).AtomIndices()
			if i < 0 || j < 0 || i >= n || j >= n {
				continue
			}
			ri, rj := resolved[i], resolved[j]
			if !ri.Found || !rj.Found {
				continue
			}
			//all bonds in a pass see the charges from the end of the previous one.
			chii := ri.Params.Chi(charges[i])
			chij := rj.Params.Chi(charges[j])
			if chij > chii {
				dq := factor * (chij - chii) / ri.Params.Chi(1.0)
				delta[i] += dq
				delta[j] -= dq
			} else if chii > chij {
				dq := factor * (chii - chij) / rj.Params.Chi(1.0)
				delta[j] += dq
				delta[i] -= dq
			}
		}
		floats.Add(charges, delta)
		factor *= S.Damping
		if !diagnostics || n == 0 {
			continue
		}
		ret.Residuals[k] = floats.Norm(delta, math.Inf(1))
		ret.Trace.SetRow(k+1, charges)
	}
	return ret
}
