/*
 * interfaces.go, part of gasteiger.
 *
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
 *
 */

package gasteiger

// Atomer is the capability an atom needs to take part in a charge calculation.
type Atomer interface {

	//AtomicNumber returns Z for the atom (H=1, C=6...)
	AtomicNumber() int

	//FormalCharge returns the starting charge of the atom. Implementations
	//without charge information should return 0.
	FormalCharge() float64
}

// Bonder is the capability a bond needs to take part in a charge calculation.
type Bonder interface {

	//AtomIndices returns the positions, in the atom collection, of the
	//two bonded atoms.
	AtomIndices() (int, int)

	//BondOrder returns 1 for single, 2 for double, 3 for triple and 1.5 for aromatic bonds.
	BondOrder() float64
}

// AtomLister is an ordered, read-only collection of atoms. Atoms are
// identified only by their position.
type AtomLister interface {

	//Atom returns the Atomer in position i.
	//Should panic if out of range.
	Atom(i int) Atomer

	Len() int
}

// BondLister is an ordered, read-only collection of bonds.
type BondLister interface {
	Bond(i int) Bonder
	Len() int
}

type atomSlice[A Atomer] []A

func (S atomSlice[A]) Atom(i int) Atomer { return S[i] }
func (S atomSlice[A]) Len() int          { return len(S) }

type bondSlice[B Bonder] []B

func (S bondSlice[B]) Bond(i int) Bonder { return S[i] }
func (S bondSlice[B]) Len() int          { return len(S) }

// Atoms wraps a slice of any Atomer type so it can be given to a Solver.
// The slice is not copied.
func Atoms[A Atomer](ats []A) AtomLister {
	return atomSlice[A](ats)
}

// Bonds wraps a slice of any Bonder type so it can be given to a Solver.
// The slice is not copied.
func Bonds[B Bonder](bonds []B) BondLister {
	return bondSlice[B](bonds)
}
