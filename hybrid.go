/*
 * hybrid.go, part of gasteiger.
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

// Degree returns the number of bonds in bonds that include the atom idx.
// Each end of a bond is checked separately, so a bond from an atom to
// itself is counted twice.
func Degree(idx int, bonds BondLister) int {
	var n int
	for i := 0; i < bonds.Len(); i++ {
		a, b := bonds.Bond(i).AtomIndices()
		if a == idx {
			n++
		}
		if b == idx {
			n++
		}
	}
	return n
}

// Degrees returns the number of bonds of each of the n atoms, counted in
// one pass over bonds, with the same rules as Degree. Bonds to indexes
// outside [0,n) only count for the end that is in range.
func Degrees(n int, bonds BondLister) []int {
	ret := make([]int, n)
	for i := 0; i < bonds.Len(); i++ {
		a, b := bonds.Bond(i).AtomIndices()
		if a >= 0 && a < n {
			ret[a]++
		}
		if b >= 0 && b < n {
			ret[b]++
		}
	}
	return ret
}

// hybridFromDegree applies the degree bands for each element.
func hybridFromDegree(z, degree int) Hybridization {
	switch z {
	case 6: //C
		switch {
		case degree >= 4:
			return Sp3
		case degree == 3:
			return Sp2
		default:
			return Sp
		}
	case 7: //N
		switch {
		case degree >= 3:
			return Sp3
		case degree == 2:
			return Sp2
		default:
			return Sp
		}
	case 8, 16: //O, S
		if degree >= 2 {
			return Sp3
		}
		return Sp2
	case 15: //P
		return Sp3
	}
	return Default
}

// Hybridize guesses the hybridization of the atom idx from its element
// and its number of bonds. It never fails: elements without degree rules
// get Default.
func Hybridize(idx int, atoms AtomLister, bonds BondLister) Hybridization {
	return hybridFromDegree(atoms.Atom(idx).AtomicNumber(), Degree(idx, bonds))
}
