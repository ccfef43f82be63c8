/*
 * params.go, part of gasteiger.
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

import "sort"

// Hybridization is the coarse bonding geometry of an atom. It is only
// used to pick electronegativity parameters.
type Hybridization int

const (
	Sp3 Hybridization = iota
	Sp2
	Sp
	Default
)

func (H Hybridization) String() string {
	switch H {
	case Sp3:
		return "sp3"
	case Sp2:
		return "sp2"
	case Sp:
		return "sp"
	case Default:
		return "default"
	}
	return "unknown"
}

// Params holds the coefficients of the Gasteiger-Marsili electronegativity,
// chi(q) = A + B*q + C*q^2.
type Params struct {
	A, B, C float64
}

// Chi returns the electronegativity for the charge q.
func (P Params) Chi(q float64) float64 {
	return P.A + P.B*q + P.C*q*q
}

type paramKey struct {
	z int
	h Hybridization
}

// Elements tabulated for a single (any) hybridization are stored under
// Default and matched for every hybridization.
var anyHybrid = map[int]Params{
	1:  {7.17, 6.24, -0.56},  //H
	9:  {14.66, 13.85, 2.31}, //F
	15: {8.90, 8.12, 0.31},   //P
	17: {10.18, 9.38, 1.13},  //Cl
	35: {9.90, 8.29, 1.01},   //Br
	53: {8.85, 7.17, 0.99},   //I
}

var byHybrid = map[paramKey]Params{
	{6, Sp3}:  {7.98, 9.18, 1.88},
	{6, Sp2}:  {8.79, 9.32, 1.51},
	{6, Sp}:   {10.39, 9.45, 0.73},
	{7, Sp3}:  {11.54, 10.82, 1.36},
	{7, Sp2}:  {12.87, 11.15, 0.85},
	{7, Sp}:   {15.68, 11.7, -0.27},
	{8, Sp3}:  {14.12, 12.92, 1.39},
	{8, Sp2}:  {17.07, 13.79, 0.47},
	{16, Sp3}: {10.14, 9.13, 1.38},
	{16, Sp2}: {10.88, 9.47, 1.33},
}

// Lookup returns the parameters tabulated for the element z in the
// hybridization h. The second value is false if that exact pair has no entry.
func Lookup(z int, h Hybridization) (Params, bool) {
	if p, ok := anyHybrid[z]; ok {
		return p, true
	}
	p, ok := byHybrid[paramKey{z, h}]
	return p, ok
}

// Resolution records how the parameters for one atom were obtained.
type Resolution struct {
	Estimated Hybridization //the hybridization guessed from the bond degree
	Used      Hybridization //the one that matched a table entry, if any
	Found     bool
	Params    Params
}

// fallbackChain returns the hybridizations to try, in order, for an atom
// estimated as h.
func fallbackChain(h Hybridization) []Hybridization {
	return []Hybridization{h, Sp3, Default}
}

// Resolve looks up the parameters for element z trying first h, then Sp3 and
// finally Default. If no level matches, Found is false and the atom does
// not take part in charge transfer.
func Resolve(z int, h Hybridization) Resolution {
	r := Resolution{Estimated: h, Used: h}
	for _, try := range fallbackChain(h) {
		if p, ok := Lookup(z, try); ok {
			r.Used = try
			r.Found = true
			r.Params = p
			return r
		}
	}
	return r
}

// TableEntry is one row of the parameter table.
type TableEntry struct {
	Z             int
	Hybridization Hybridization
	Any           bool //the entry applies to every hybridization
	Params
}

// Table returns every tabulated entry, sorted by atomic number and then
// by hybridization.
func Table() []TableEntry {
	ret := make([]TableEntry, 0, len(anyHybrid)+len(byHybrid))
	for z, p := range anyHybrid {
		ret = append(ret, TableEntry{Z: z, Hybridization: Default, Any: true, Params: p})
	}
	for k, p := range byHybrid {
		ret = append(ret, TableEntry{Z: k.z, Hybridization: k.h, Params: p})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Z != ret[j].Z {
			return ret[i].Z < ret[j].Z
		}
		return ret[i].Hybridization < ret[j].Hybridization
	})
	return ret
}
