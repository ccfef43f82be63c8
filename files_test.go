package gasteiger

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atomLine(sym string, code int) string {
	return fmt.Sprintf("%10.4f%10.4f%10.4f %-3s 0%3d  0  0  0  0  0  0  0  0  0  0", 0.0, 0.0, 0.0, sym, code)
}

func bondLine(a, b, t int) string {
	return fmt.Sprintf("%3d%3d%3d  0  0  0  0", a, b, t)
}

func molBlock(name string, atoms []string, codes []int, bonds [][3]int, extra ...string) string {
	lines := []string{name, "  gasteiger test", ""}
	lines = append(lines, fmt.Sprintf("%3d%3d  0  0  0  0  0  0  0  0999 V2000", len(atoms), len(bonds)))
	for i, a := range atoms {
		lines = append(lines, atomLine(a, codes[i]))
	}
	for _, b := range bonds {
		lines = append(lines, bondLine(b[0], b[1], b[2]))
	}
	lines = append(lines, extra...)
	lines = append(lines, "M  END")
	return strings.Join(lines, "\n") + "\n"
}

var methaneMol = molBlock("methane", []string{"C", "H", "H", "H", "H"}, []int{0, 0, 0, 0, 0},
	[][3]int{{1, 2, 1}, {1, 3, 1}, {1, 4, 1}, {1, 5, 1}})

var ammoniumMol = molBlock("ammonium", []string{"N", "H", "H", "H", "H"}, []int{3, 0, 0, 0, 0},
	[][3]int{{1, 2, 1}, {1, 3, 1}, {1, 4, 1}, {1, 5, 1}})

func TestMolRead(t *testing.T) {
	mols, err := SDFRead(strings.NewReader(methaneMol))
	require.NoError(t, err)
	require.Len(t, mols, 1)
	m := mols[0]
	assert.Equal(t, "methane", m.Name)
	require.Equal(t, 5, m.Len())
	assert.Equal(t, 6, m.Atoms[0].Z)
	assert.Equal(t, "C1", m.Atoms[0].Name)
	assert.Equal(t, 1, m.Atoms[4].Z)
	require.Len(t, m.Bonds, 4)
	assert.Equal(t, Bond{At1: 0, At2: 4, Order: 1}, *m.Bonds[3])
}

func TestSDFReadMany(t *testing.T) {
	data := methaneMol + "> <ID>\nCH4-001\n\n> <NOTE>\nfirst line\nsecond line\n\n$$$$\n" + ammoniumMol + "$$$$\n"
	mols, err := SDFRead(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, mols, 2)
	assert.Equal(t, "CH4-001", mols[0].Props["ID"])
	assert.Equal(t, "first line\nsecond line", mols[0].Props["NOTE"])
	assert.Equal(t, "ammonium", mols[1].Name)
	assert.Equal(t, 1.0, mols[1].Atoms[0].Charge)
	assert.Equal(t, 1.0, mols[1].FormalCharge())

	charges := DefaultSolver().Charges(mols[1], mols[1].BondList())
	assert.InDelta(t, 1.0, sum(charges), 1e-6)
}

func sum(s []float64) float64 {
	var r float64
	for _, v := range s {
		r += v
	}
	return r
}

func TestSDFChargeLines(t *testing.T) {
	//the CHG line replaces the +1 from the atom block, which would be wrong otherwise.
	acetate := molBlock("acetate", []string{"C", "C", "O", "O"}, []int{0, 0, 3, 0},
		[][3]int{{1, 2, 1}, {2, 3, 2}, {2, 4, 1}}, "M  CHG  1   4  -1")
	mols, err := SDFRead(strings.NewReader(acetate))
	require.NoError(t, err)
	m := mols[0]
	assert.Equal(t, 0.0, m.Atoms[2].Charge)
	assert.Equal(t, -1.0, m.Atoms[3].Charge)
	assert.Equal(t, 2.0, m.Bonds[1].Order)

	zwitter := molBlock("zw", []string{"N", "C", "O"}, []int{0, 0, 0},
		[][3]int{{1, 2, 1}, {2, 3, 1}}, "M  CHG  2   1   1   3  -1")
	mols, err = SDFRead(strings.NewReader(zwitter))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -1}, []float64{mols[0].Atoms[0].Charge, mols[0].Atoms[1].Charge, mols[0].Atoms[2].Charge})
}

func TestSDFBondTypes(t *testing.T) {
	mol := molBlock("types", []string{"C", "C", "C", "C", "C"}, []int{0, 0, 0, 0, 0},
		[][3]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 8}, {4, 5, 2}})
	mols, err := SDFRead(strings.NewReader(mol))
	require.NoError(t, err)
	var orders []float64
	for _, b := range mols[0].Bonds {
		orders = append(orders, b.Order)
	}
	assert.Equal(t, []float64{3, 1.5, 1, 2}, orders)
}

func TestSDFUnknownElement(t *testing.T) {
	mol := molBlock("pd", []string{"C", "Pd", "R#"}, []int{0, 0, 0}, [][3]int{{1, 2, 1}, {1, 3, 1}})
	mols, err := SDFRead(strings.NewReader(mol))
	require.NoError(t, err)
	assert.Equal(t, 46, mols[0].Atoms[1].Z)
	assert.Equal(t, 0, mols[0].Atoms[2].Z)
	charges := DefaultSolver().Charges(mols[0], mols[0].BondList())
	assert.Equal(t, 0.0, charges[1])
	assert.Equal(t, 0.0, charges[2])
}

func TestSDFErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"short":     "name\n\n",
		"counts":    "name\nprog\n\nxx yy\nM  END\n",
		"truncated": strings.Join(strings.Split(methaneMol, "\n")[:6], "\n"),
		"v3000":     "name\nprog\n\n  0  0  0     0  0            999 V3000\nM  END\n",
		"bondrange": molBlock("x", []string{"C", "H"}, []int{0, 0}, [][3]int{{1, 7, 1}}),
		"chgrange":  molBlock("x", []string{"C"}, []int{0}, nil, "M  CHG  1   9   1"),
	}
	for name, data := range cases {
		_, err := SDFRead(strings.NewReader(data))
		assert.Error(t, err, name)
	}
	_, err := SDFRead(strings.NewReader(molBlock("x", []string{"C", "H"}, []int{0, 0}, [][3]int{{1, 7, 1}})))
	var cerr *CError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 7, cerr.Line())
	assert.Contains(t, cerr.Decorate(""), "SDFRead")
}

func TestSDFLooseColumns(t *testing.T) {
	//whitespace-separated atom lines, as written by some scripts.
	data := "loose\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n 0.0 0.0 0.0 H\n 0.74 0.0 0.0 F 0 0\n  1  2  1\nM  END\n"
	mols, err := SDFRead(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, mols[0].Atoms[0].Z)
	assert.Equal(t, 9, mols[0].Atoms[1].Z)

	//long coordinates push the symbol past the fixed columns.
	data = "water\n\n\n  3  2  0  0  0  0  0  0  0  0999 V2000\n" +
		"   -1.234567   2.345678   3.456789 O 0 0\n" +
		"   -0.277000   2.345678   3.456789 H 0 0\n" +
		"   -1.474567   3.272278   3.456789 H 0 0\n" +
		"  1  2  1\n  1  3  1\nM  END\n"
	mols, err = SDFRead(strings.NewReader(data))
	require.NoError(t, err)
	w := mols[0]
	assert.Equal(t, []string{"O", "H", "H"}, []string{w.Atoms[0].Symbol, w.Atoms[1].Symbol, w.Atoms[2].Symbol})
	assert.Equal(t, []int{8, 1, 1}, []int{w.Atoms[0].Z, w.Atoms[1].Z, w.Atoms[2].Z})
	q := DefaultSolver().Charges(w, w.BondList())
	assert.Less(t, q[0], 0.0)
	assert.Greater(t, q[1], 0.0)

	data = "ion\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n   12.345678   0.000000   0.000000 Na 0 3\nM  END\n"
	mols, err = SDFRead(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 11, mols[0].Atoms[0].Z)
	assert.Equal(t, 1.0, mols[0].Atoms[0].Charge)

	//a bad charge field is an error in both layouts.
	for _, line := range []string{" 0.0 0.0 0.0 H 0 x", "    0.0000    0.0000    0.0000 H   0  x  0  0"} {
		data = "bad\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" + line + "\nM  END\n"
		_, err = SDFRead(strings.NewReader(data))
		assert.Error(t, err, line)
	}
}

func TestSDFFileReadCompressed(t *testing.T) {
	dir := t.TempDir()
	data := []byte(methaneMol + "$$$$\n" + ammoniumMol + "$$$$\n")

	plain := filepath.Join(dir, "mols.sdf")
	require.NoError(t, os.WriteFile(plain, data, 0o644))

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	gzname := filepath.Join(dir, "mols.sdf.gz")
	require.NoError(t, os.WriteFile(gzname, gz.Bytes(), 0o644))

	zname := filepath.Join(dir, "mols.sdf.zst")
	f, err := os.Create(zname)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	for _, name := range []string{plain, gzname, zname} {
		mols, err := SDFFileRead(name)
		require.NoError(t, err, name)
		require.Len(t, mols, 2, name)
		assert.Equal(t, "ammonium", mols[1].Name)
	}
	assert.Equal(t, filepath.Join(dir, "mols.sdf"), StripCompression(zname))
	assert.Equal(t, plain, StripCompression(plain))

	_, err = SDFFileRead(filepath.Join(dir, "missing.sdf"))
	var cerr *CError
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Error(), "missing.sdf")
}
