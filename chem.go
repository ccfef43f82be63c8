/*
 * chem.go, part of gasteiger.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package gasteiger

import "fmt"

// Atom contains the information read for one atom. It implements Atomer.
type Atom struct {
	Name    string
	Symbol  string
	Z       int     //atomic number, 0 if unknown
	Charge  float64 //formal charge
	Partial float64 //partial charge, set by SetPartialCharges
}

// AtomicNumber returns the atomic number of the atom.
func (A *Atom) AtomicNumber() int { return A.Z }

// FormalCharge returns the formal charge of the atom.
func (A *Atom) FormalCharge() float64 { return A.Charge }

/*****Topology type***/

// Topology contains the atoms and bonds of one molecule, or of several
// molecules treated as a single system. It implements AtomLister, and
// its bonds can be obtained as a BondLister with BondList.
type Topology struct {
	Name  string
	Atoms []*Atom
	Bonds []*Bond
	Props map[string]string //data items, as found in SD files
}

// NewTopology returns a topology with the given atoms and bonds. It returns error if
// a bond references an atom outside ats. Bonds to the same atom are allowed.
func NewTopology(name string, ats []*Atom, bonds []*Bond) (*Topology, error) {
	if ats == nil {
		return nil, newError("Supplied a nil atom slice", "NewTopology")
	}
	for k, b := range bonds {
		if b == nil {
			return nil, newError(fmt.Sprintf("Bond %d is nil", k), "NewTopology")
		}
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= len(ats) || b.At2 >= len(ats) {
			return nil, newError(fmt.Sprintf("Bond %d (%d-%d) out of range for %d atoms", k, b.At1, b.At2, len(ats)), "NewTopology")
		}
	}
	return &Topology{Name: name, Atoms: ats, Bonds: bonds}, nil
}

// Atom returns the atom i as an Atomer. Panics if out of range.
func (T *Topology) Atom(i int) Atomer {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// BondList returns the bonds of the topology as a BondLister.
func (T *Topology) BondList() BondLister {
	return Bonds(T.Bonds)
}

// FormalCharge returns the sum of the formal charges of all atoms.
func (T *Topology) FormalCharge() float64 {
	var c float64
	for _, a := range T.Atoms {
		c += a.Charge
	}
	return c
}

// SetPartialCharges stores charges in the Partial field of each atom.
// It returns an error if there is not exactly one charge per atom.
func (T *Topology) SetPartialCharges(charges []float64) error {
	if len(charges) != T.Len() {
		return newError(fmt.Sprintf("%d charges given for %d atoms", len(charges), T.Len()), "SetPartialCharges")
	}
	for i, c := range charges {
		T.Atoms[i].Partial = c
	}
	return nil
}

// PartialCharges returns the Partial field of every atom.
func (T *Topology) PartialCharges() []float64 {
	ret := make([]float64, T.Len())
	for i, a := range T.Atoms {
		ret[i] = a.Partial
	}
	return ret
}
