/*
 * atomicdata.go, part of gasteiger.
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

import "strings"

// Element symbols, indexed by atomic number. Index 0 is unused.
var zSymbol = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// keys are upper case, so PDB-style symbols ("CL", "BR") also work.
var symbolZ = func() map[string]int {
	m := make(map[string]int, len(zSymbol))
	for z, s := range zSymbol[1:] {
		m[strings.ToUpper(s)] = z + 1
	}
	//deuterium and tritium, as they appear in some mol files.
	m["D"] = 1
	m["T"] = 1
	return m
}()

// SymbolToZ returns the atomic number for an element symbol. The
// comparison is case-insensitive. The second value is false
// if the symbol is not an element.
func SymbolToZ(symbol string) (int, bool) {
	z, ok := symbolZ[strings.ToUpper(strings.TrimSpace(symbol))]
	return z, ok
}

// ZToSymbol returns the element symbol for the atomic number z, or
// an empty string if z is not a known element.
func ZToSymbol(z int) string {
	if z <= 0 || z >= len(zSymbol) {
		return ""
	}
	return zSymbol[z]
}
