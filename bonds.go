/*
 * bonds.go, part of gasteiger.
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

// Bond joins the atoms in positions At1 and At2 of a topology.
// It implements Bonder.
type Bond struct {
	At1, At2 int
	Order    float64 //Order 0 means undetermined
}

// AtomIndices returns the positions of the bonded atoms.
func (B *Bond) AtomIndices() (int, int) { return B.At1, B.At2 }

// BondOrder returns the bond order.
func (B *Bond) BondOrder() float64 { return B.Order }
