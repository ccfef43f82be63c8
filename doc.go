/*
 * doc.go, part of gasteiger.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package gasteiger computes partial atomic charges with the Gasteiger-Marsili
method (iterative partial equalization of orbital electronegativity).

	**Capabilities**

	Computes one partial charge per atom from the atomic numbers, formal
	charges and bonds of a molecule. Total charge is conserved: charge only
	moves along bonds, from the less to the more electronegative atom.

	Works with any atom and bond types, as long as they implement the
	Atomer and Bonder interfaces. The Atom, Bond and Topology types in this
	package are one such implementation.

	Guesses a coarse hybridization (sp3, sp2, sp) for C, N, O, P and S from
	the number of bonds of each atom, and uses it to select the
	electronegativity parameters. Parameters exist for H, C, N, O, F, P, S,
	Cl, Br and I. Atoms of other elements keep their formal charge.

	Reads V2000 MOL and SD files, optionally compressed with gzip or zstd.

The charge calculation never fails: unsupported elements and bonds to
atoms that don't exist are simply left out of the charge transfer. A Solver
keeps no state between calls, so several molecules can be processed
concurrently with the same Solver.

The subpackages chemgraph, chemstat, chemplot and chemjson provide
connectivity analysis, charge statistics, convergence plots and JSON
input/output, respectively.
*/
package gasteiger
