/*
 * json.go, part of gasteiger.
 *
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rmera/gasteiger"
	"github.com/rmera/gasteiger/chemstat"
)

// A ready-to-serialize container for an atom.
type Atom struct {
	Name   string  `json:"name,omitempty"`
	Symbol string  `json:"symbol,omitempty"`
	Z      int     `json:"z,omitempty"`
	Charge float64 `json:"charge,omitempty"`
}

// A ready-to-serialize container for a bond. From and To are 0-based atom indexes.
type Bond struct {
	From  int     `json:"from"`
	To    int     `json:"to"`
	Order float64 `json:"order"`
}

// UnmarshalJSON decodes a bond. Both ends are required.
func (B *Bond) UnmarshalJSON(b []byte) error {
	var aux struct {
		From  *int    `json:"from"`
		To    *int    `json:"to"`
		Order float64 `json:"order"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.From == nil || aux.To == nil {
		return fmt.Errorf("bond %s lacks a \"from\" or \"to\" atom", bytes.TrimSpace(b))
	}
	B.From, B.To, B.Order = *aux.From, *aux.To, aux.Order
	return nil
}

// Molecule is the JSON form of a gasteiger.Topology.
type Molecule struct {
	Name  string            `json:"name,omitempty"`
	Atoms []Atom            `json:"atoms"`
	Bonds []Bond            `json:"bonds"`
	Props map[string]string `json:"props,omitempty"`
}

// An easily JSON-serializable error type.
type Error struct {
	deco     []string
	Molecule int    `json:"molecule"` //index of the molecule in the stream
	Function string `json:"function"` //which go function gave the error
	Message  string `json:"message"`  //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return fmt.Sprintf("molecule %d: %s", J.Molecule, J.Message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

func newError(mol int, function string, err error) *Error {
	return &Error{Molecule: mol, Function: function, Message: err.Error(), deco: []string{function}}
}

// Topology converts M into a gasteiger.Topology. Atoms with Z=0 get Z from their
// symbol; atoms with neither a known symbol nor Z get Z=0, so they don't take part
// in the charge calculation. Bonds must join existing atoms.
func (M *Molecule) Topology() (*gasteiger.Topology, error) {
	ats := make([]*gasteiger.Atom, len(M.Atoms))
	for i, a := range M.Atoms {
		at := &gasteiger.Atom{Name: a.Name, Symbol: a.Symbol, Z: a.Z, Charge: a.Charge}
		if at.Z == 0 && at.Symbol != "" {
			at.Z, _ = gasteiger.SymbolToZ(at.Symbol)
		}
		if at.Symbol == "" {
			at.Symbol = gasteiger.ZToSymbol(at.Z)
		}
		ats[i] = at
	}
	bonds := make([]*gasteiger.Bond, len(M.Bonds))
	for i, b := range M.Bonds {
		bonds[i] = &gasteiger.Bond{At1: b.From, At2: b.To, Order: b.Order}
	}
	top, err := gasteiger.NewTopology(M.Name, ats, bonds)
	if err != nil {
		return nil, err
	}
	top.Props = M.Props
	return top, nil
}

// FromTopology returns the JSON form of T.
func FromTopology(T *gasteiger.Topology) *Molecule {
	M := &Molecule{Name: T.Name, Props: T.Props}
	M.Atoms = make([]Atom, len(T.Atoms))
	for i, a := range T.Atoms {
		M.Atoms[i] = Atom{Name: a.Name, Symbol: a.Symbol, Z: a.Z, Charge: a.Charge}
	}
	M.Bonds = make([]Bond, len(T.Bonds))
	for i, b := range T.Bonds {
		M.Bonds[i] = Bond{From: b.At1, To: b.At2, Order: b.Order}
	}
	return M
}

// DecodeMolecules reads a stream of JSON molecules. Each value in the stream
// can be a single molecule object or an array of them.
func DecodeMolecules(r io.Reader) ([]*gasteiger.Topology, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	var ret []*gasteiger.Topology
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(len(ret), "DecodeMolecules", err)
		}
		var mols []*Molecule
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(raw, &mols)
		} else {
			m := new(Molecule)
			err = json.Unmarshal(raw, m)
			mols = []*Molecule{m}
		}
		if err != nil {
			return nil, newError(len(ret), "DecodeMolecules", err)
		}
		for _, m := range mols {
			if m == nil {
				return nil, newError(len(ret), "DecodeMolecules", fmt.Errorf("null molecule"))
			}
			top, err := m.Topology()
			if err != nil {
				return nil, newError(len(ret), "DecodeMolecules", err)
			}
			ret = append(ret, top)
		}
	}
	if len(ret) == 0 {
		return nil, newError(0, "DecodeMolecules", fmt.Errorf("no molecules in input"))
	}
	return ret, nil
}

// EncodeMolecules writes each topology in tops as one JSON object per line.
func EncodeMolecules(out io.Writer, tops ...*gasteiger.Topology) error {
	enc := json.NewEncoder(out)
	for i, t := range tops {
		if err := enc.Encode(FromTopology(t)); err != nil {
			return newError(i, "EncodeMolecules", err)
		}
	}
	return nil
}

// AtomCharge is the result for one atom.
type AtomCharge struct {
	Index         int     `json:"index" yaml:"index"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty"`
	Symbol        string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Hybridization string  `json:"hybridization,omitempty" yaml:"hybridization,omitempty"`
	Parameterized bool    `json:"parameterized" yaml:"parameterized"`
	Formal        float64 `json:"formal" yaml:"formal"`
	Partial       float64 `json:"partial" yaml:"partial"`
}

// Result is the serializable outcome of a charge calculation on one molecule.
type Result struct {
	Name       string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Atoms      []AtomCharge           `json:"atoms" yaml:"atoms"`
	Total      float64                `json:"total" yaml:"total"`
	Components []float64              `json:"components,omitempty" yaml:"components,omitempty"` //total charge of each separate molecule
	Residuals  []float64              `json:"residuals,omitempty" yaml:"residuals,omitempty"`
	Summary    *chemstat.Summary      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Elements   []chemstat.ElementMean `json:"elements,omitempty" yaml:"elements,omitempty"` //mean charge per element
}

// NewResult builds a Result from a topology and the solver output for it.
// The hybridization of each atom is included if r contains resolutions.
func NewResult(T *gasteiger.Topology, r *gasteiger.Result) (*Result, error) {
	if len(r.Charges) != T.Len() {
		return nil, fmt.Errorf("chemjson.NewResult: %d charges for %d atoms", len(r.Charges), T.Len())
	}
	R := &Result{Name: T.Name, Total: r.Total(), Residuals: r.Residuals}
	R.Atoms = make([]AtomCharge, T.Len())
	for i, a := range T.Atoms {
		ac := AtomCharge{Index: i, Name: a.Name, Symbol: a.Symbol, Formal: a.Charge, Partial: r.Charges[i]}
		if i < len(r.Resolutions) {
			ac.Hybridization = r.Resolutions[i].Used.String()
			ac.Parameterized = r.Resolutions[i].Found
		}
		R.Atoms[i] = ac
	}
	return R, nil
}

// Charges returns the partial charges in the result.
func (R *Result) Charges() []float64 {
	ret := make([]float64, len(R.Atoms))
	for i, a := range R.Atoms {
		ret[i] = a.Partial
	}
	return ret
}

// Send marshals the results and writes them to out as a JSON array.
func Send(out io.Writer, results []*Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return newError(0, "Send", err)
	}
	return nil
}
