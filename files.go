/*
 * files.go, part of gasteiger.
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

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// SDFOptions changes the behaviour of the SD file readers.
type SDFOptions struct {
	//Logger gets a warning for each recoverable problem found
	//(for instance, an unknown element symbol). Nil means no logging.
	Logger *slog.Logger
}

func (O SDFOptions) warn(msg string, args ...any) {
	if O.Logger != nil {
		O.Logger.Warn(msg, args...)
	}
}

// mol file charge codes in the atom block.
var sdfChargeCodes = map[int]float64{
	1: 3,
	2: 2,
	3: 1,
	5: -1,
	6: -2,
	7: -3,
}

const sdfRecordEnd = "$$$$"

// SDFFileRead reads all the molecules in the SD (or MOL) file name.
// Files ending in .gz or .zst are decompressed on the fly.
func SDFFileRead(name string, opts ...SDFOptions) ([]*Topology, error) {
	f, err := OpenFile(name)
	if err != nil {
		return nil, errDecorate(err, "SDFFileRead")
	}
	defer f.Close()
	mols, err := SDFRead(f, opts...)
	if err != nil {
		if e, ok := err.(*CError); ok {
			e.filename = name
		}
		return nil, errDecorate(err, "SDFFileRead")
	}
	return mols, nil
}

// SDFRead reads all the records in a V2000 SD stream. A stream with a
// single record and no "$$$$" terminator (a MOL file) is also accepted.
func SDFRead(r io.Reader, opts ...SDFOptions) ([]*Topology, error) {
	var o SDFOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	mols := make([]*Topology, 0, 1)
	record := make([]string, 0, 64)
	var lineno, start int
	start = 1
	for sc.Scan() {
		lineno++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == sdfRecordEnd {
			mol, err := parseMolBlock(record, start, o)
			if err != nil {
				return nil, errDecorate(err, "SDFRead")
			}
			mols = append(mols, mol)
			record = record[:0]
			start = lineno + 1
			continue
		}
		record = append(record, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errDecorate(err, "SDFRead")
	}
	if !blank(record) {
		mol, err := parseMolBlock(record, start, o)
		if err != nil {
			return nil, errDecorate(err, "SDFRead")
		}
		mols = append(mols, mol)
	}
	if len(mols) == 0 {
		return nil, newError("No molecules found", "SDFRead")
	}
	return mols, nil
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// column returns the trimmed text between a and b in line, or
// an empty string if the line is too short.
func column(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}

func lineError(msg string, line int) *CError {
	return &CError{msg: msg, line: line, deco: []string{"parseMolBlock"}}
}

// parseMolBlock builds a topology from the lines of one mol record. first is
// the line number of lines[0] in the stream, for error messages.
func parseMolBlock(lines []string, first int, o SDFOptions) (*Topology, error) {
	if len(lines) < 4 {
		return nil, lineError("Incomplete mol header", first)
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, lineError("V3000 mol records are not supported", first+3)
	}
	natoms, err1 := strconv.Atoi(column(counts, 0, 3))
	nbonds, err2 := strconv.Atoi(column(counts, 3, 6))
	if err1 != nil || err2 != nil || natoms < 0 || nbonds < 0 {
		return nil, lineError(fmt.Sprintf("Ill-formed counts line %q", counts), first+3)
	}
	if len(lines) < 4+natoms+nbonds {
		return nil, lineError(fmt.Sprintf("Expected %d atoms and %d bonds, but the record has only %d lines", natoms, nbonds, len(lines)), first)
	}
	name := strings.TrimSpace(lines[0])
	ats := make([]*Atom, natoms)
	for i := 0; i < natoms; i++ {
		at, err := parseAtomLine(lines[4+i], first+4+i, o)
		if err != nil {
			return nil, err
		}
		at.Name = fmt.Sprintf("%s%d", at.Symbol, i+1)
		ats[i] = at
	}
	bonds := make([]*Bond, nbonds)
	off := 4 + natoms
	for i := 0; i < nbonds; i++ {
		b, err := parseBondLine(lines[off+i], first+off+i, natoms)
		if err != nil {
			return nil, err
		}
		bonds[i] = b
	}
	top, err := NewTopology(name, ats, bonds)
	if err != nil {
		return nil, errDecorate(err, "parseMolBlock")
	}
	top.Props = make(map[string]string)
	rest := lines[off+nbonds:]
	var chgSeen bool
	var i int
	//properties block
	for ; i < len(rest); i++ {
		l := rest[i]
		if strings.HasPrefix(l, "M  END") {
			i++
			break
		}
		if !strings.HasPrefix(l, "M  CHG") {
			continue
		}
		if !chgSeen {
			//the first CHG line overrides every charge in the atom block.
			for _, a := range ats {
				a.Charge = 0
			}
			chgSeen = true
		}
		if err := parseChgLine(l, first+off+nbonds+i, ats); err != nil {
			return nil, err
		}
	}
	//data items
	for ; i < len(rest); i++ {
		l := rest[i]
		if !strings.HasPrefix(l, ">") {
			continue
		}
		key := dataKey(l)
		vals := make([]string, 0, 1)
		for i+1 < len(rest) && strings.TrimSpace(rest[i+1]) != "" {
			i++
			vals = append(vals, rest[i])
		}
		if key == "" {
			o.warn("data item without a name", "molecule", name, "line", first+off+nbonds+i)
			continue
		}
		top.Props[key] = strings.Join(vals, "\n")
	}
	return top, nil
}

func parseAtomLine(line string, lineno int, o SDFOptions) (*Atom, error) {
	at := new(Atom)
	var code int
	var c string
	if fixedAtomLine(line) {
		at.Symbol = column(line, 31, 34)
		c = column(line, 36, 39)
	} else {
		//some programs don't respect the column widths.
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, lineError(fmt.Sprintf("Ill-formed atom line %q", line), lineno)
		}
		at.Symbol = fields[3]
		if len(fields) > 5 {
			c = fields[5]
		}
	}
	if c != "" {
		var err error
		code, err = strconv.Atoi(c)
		if err != nil {
			return nil, lineError(fmt.Sprintf("Ill-formed charge field %q", c), lineno)
		}
	}
	if at.Symbol == "" {
		return nil, lineError("Atom without element symbol", lineno)
	}
	z, ok := SymbolToZ(at.Symbol)
	if !ok {
		o.warn("unknown element symbol, the atom will keep its formal charge", "symbol", at.Symbol, "line", lineno)
	}
	at.Z = z
	if code == 4 {
		o.warn("doublet radical ignored", "line", lineno)
	}
	at.Charge = sdfChargeCodes[code]
	return at, nil
}

// fixedAtomLine reports whether line follows the V2000 column layout, with
// a known element symbol in columns 32-34.
func fixedAtomLine(line string) bool {
	if len(line) < 34 || line[30] != ' ' {
		return false
	}
	_, ok := SymbolToZ(column(line, 31, 34))
	return ok
}

func parseBondLine(line string, lineno, natoms int) (*Bond, error) {
	a1, e1 := strconv.Atoi(column(line, 0, 3))
	a2, e2 := strconv.Atoi(column(line, 3, 6))
	t, e3 := strconv.Atoi(column(line, 6, 9))
	if e1 != nil || e2 != nil || e3 != nil {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, lineError(fmt.Sprintf("Ill-formed bond line %q", line), lineno)
		}
		a1, e1 = strconv.Atoi(fields[0])
		a2, e2 = strconv.Atoi(fields[1])
		t, e3 = strconv.Atoi(fields[2])
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, lineError(fmt.Sprintf("Ill-formed bond line %q", line), lineno)
		}
	}
	if a1 < 1 || a2 < 1 || a1 > natoms || a2 > natoms {
		return nil, lineError(fmt.Sprintf("Bond %d-%d out of range for %d atoms", a1, a2, natoms), lineno)
	}
	return &Bond{At1: a1 - 1, At2: a2 - 1, Order: bondOrder(t)}, nil
}

// bondOrder translates a mol file bond type into a bond order.
// Query types (5-8) are taken as single bonds.
func bondOrder(t int) float64 {
	switch t {
	case 1, 2, 3:
		return float64(t)
	case 4:
		return 1.5
	}
	return 1
}

// parseChgLine reads a "M  CHGnn8 aaa vvv ..." line.
func parseChgLine(line string, lineno int, ats []*Atom) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return lineError(fmt.Sprintf("Ill-formed charge line %q", line), lineno)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || len(fields) < 3+2*n {
		return lineError(fmt.Sprintf("Ill-formed charge line %q", line), lineno)
	}
	for k := 0; k < n; k++ {
		idx, err1 := strconv.Atoi(fields[3+2*k])
		chg, err2 := strconv.Atoi(fields[4+2*k])
		if err1 != nil || err2 != nil {
			return lineError(fmt.Sprintf("Ill-formed charge line %q", line), lineno)
		}
		if idx < 1 || idx > len(ats) {
			return lineError(fmt.Sprintf("Charge given for atom %d, but there are %d atoms", idx, len(ats)), lineno)
		}
		ats[idx-1].Charge = float64(chg)
	}
	return nil
}

// dataKey extracts KEY from a "> <KEY>" data header line.
func dataKey(line string) string {
	a := strings.Index(line, "<")
	b := strings.LastIndex(line, ">")
	if a < 0 || b <= a {
		return ""
	}
	return strings.TrimSpace(line[a+1 : b])
}

type compressedFile struct {
	io.Reader
	closers []func() error
}

func (C *compressedFile) Close() error {
	var err error
	for _, c := range C.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenFile opens name for reading. If the name ends in .gz or .zst
// the returned reader gives the decompressed data.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &CError{msg: "Unable to open file", filename: name, deco: []string{"OpenFile"}, err: err}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &CError{msg: "Can't read gzip data", filename: name, deco: []string{"OpenFile"}, err: err}
		}
		return &compressedFile{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &CError{msg: "Can't read zstd data", filename: name, deco: []string{"OpenFile"}, err: err}
		}
		closeDec := func() error {
			dec.Close()
			return nil
		}
		return &compressedFile{Reader: dec, closers: []func() error{closeDec, f.Close}}, nil
	}
	return f, nil
}

// StripCompression returns name without a trailing .gz or .zst extension,
// so the format can be guessed from the remaining extension.
func StripCompression(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz", ".zst", ".zstd":
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
