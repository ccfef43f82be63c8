package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rmera/gasteiger"
	"github.com/rmera/gasteiger/chemgraph"
	"github.com/rmera/gasteiger/chemjson"
	"github.com/rmera/gasteiger/chemplot"
	"github.com/rmera/gasteiger/chemstat"
	"gopkg.in/yaml.v3"
)

// inputFormat returns the format to read name with. An explicit format wins;
// otherwise it is guessed from the extension, ignoring compression suffixes.
func inputFormat(name, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if name == "-" {
		return "sdf", nil
	}
	switch strings.ToLower(filepath.Ext(gasteiger.StripCompression(name))) {
	case ".sdf", ".sd", ".mol":
		return "sdf", nil
	case ".json":
		return "json", nil
	}
	return "", fmt.Errorf("can't guess the format of %s, use --input", name)
}

func (a *app) decode(r io.Reader, format string) ([]*gasteiger.Topology, error) {
	if format == "json" {
		return chemjson.DecodeMolecules(r)
	}
	return gasteiger.SDFRead(r, gasteiger.SDFOptions{Logger: a.log})
}

func (a *app) read(name string) ([]*gasteiger.Topology, error) {
	format, err := inputFormat(name, a.cfg.Input)
	if err != nil {
		return nil, err
	}
	if name == "-" {
		return a.decode(a.in, format)
	}
	f, err := gasteiger.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mols, err := a.decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return mols, nil
}

func (a *app) charges(files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	solver := a.cfg.Solver()
	var results []*chemjson.Result
	for _, name := range files {
		mols, err := a.read(name)
		if err != nil {
			return err
		}
		a.log.Debug("read molecules", "file", name, "count", len(mols))
		for _, mol := range mols {
			res, err := a.solve(solver, mol, len(results))
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}
	return a.write(results)
}

func (a *app) solve(solver *gasteiger.Solver, mol *gasteiger.Topology, n int) (*chemjson.Result, error) {
	r := solver.Run(mol, mol.BondList())
	if err := mol.SetPartialCharges(r.Charges); err != nil {
		return nil, err
	}
	for i, res := range r.Resolutions {
		if !res.Found && mol.Atoms[i].Z > 0 {
			a.log.Debug("no parameters, atom keeps its formal charge", "molecule", mol.Name, "atom", i+1, "symbol", mol.Atoms[i].Symbol)
		}
	}
	ret, err := chemjson.NewResult(mol, r)
	if err != nil {
		return nil, err
	}
	g := chemgraph.New(mol, mol.BondList())
	ret.Components = chemgraph.ComponentCharges(r.Charges, g.Components())
	if a.cfg.Verbose {
		s := chemstat.Summarize(r.Charges)
		ret.Summary = &s
		ret.Elements = chemstat.ByElement(mol, r.Charges)
	} else {
		ret.Residuals = nil
	}
	if a.cfg.Plot != "" && r.Trace != nil {
		labels := make([]string, mol.Len())
		for i, at := range mol.Atoms {
			labels[i] = fmt.Sprintf("%s%d", at.Symbol, i+1)
		}
		plotname := fmt.Sprintf("%s_%d.png", a.cfg.Plot, n+1)
		if err := chemplot.Convergence(r.Trace, labels, mol.Name, plotname); err != nil {
			return nil, err
		}
		a.log.Info("convergence plot written", "file", plotname)
		if len(r.Residuals) > 0 {
			resname := fmt.Sprintf("%s_%d_residuals.png", a.cfg.Plot, n+1)
			if err := chemplot.Residuals(r.Residuals, mol.Name, resname); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func (a *app) write(results []*chemjson.Result) error {
	switch a.cfg.Format {
	case "json":
		return chemjson.Send(a.out, results)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range results {
		writeText(a.out, r, a.cfg.Verbose)
	}
	return nil
}

func writeText(out io.Writer, r *chemjson.Result, verbose bool) {
	fmt.Fprintf(out, "# %s: %d atoms, total charge %.4f\n", r.Name, len(r.Atoms), r.Total)
	for _, at := range r.Atoms {
		fmt.Fprintf(out, "%5d %-4s %-8s %8.4f\n", at.Index+1, at.Symbol, at.Hybridization, at.Partial)
	}
	if !verbose {
		return
	}
	if len(r.Components) > 1 {
		for i, c := range r.Components {
			fmt.Fprintf(out, "# component %d: %.4f\n", i+1, c)
		}
	}
	for i, v := range r.Residuals {
		fmt.Fprintf(out, "# pass %d: max |dq| %.6f\n", i+1, v)
	}
	if r.Summary != nil {
		fmt.Fprintf(out, "# %s\n", r.Summary)
	}
	for _, e := range r.Elements {
		fmt.Fprintf(out, "# %-2s %3d atoms, mean %.4f\n", e.Symbol, e.Count, e.Mean)
	}
}

type paramRow struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Z             int     `json:"z" yaml:"z"`
	Hybridization string  `json:"hybridization" yaml:"hybridization"`
	A             float64 `json:"a" yaml:"a"`
	B             float64 `json:"b" yaml:"b"`
	C             float64 `json:"c" yaml:"c"`
}

func (a *app) params() error {
	table := gasteiger.Table()
	rows := make([]paramRow, len(table))
	for i, e := range table {
		h := e.Hybridization.String()
		if e.Any {
			h = "any"
		}
		rows[i] = paramRow{Symbol: gasteiger.ZToSymbol(e.Z), Z: e.Z, Hybridization: h, A: e.A, B: e.B, C: e.C}
	}
	switch a.cfg.Format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(a.out, "%-3s %-8s %8s %8s %8s\n", "El", "Hybrid", "a", "b", "c")
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-3s %-8s %8.3f %8.3f %8.3f\n", r.Symbol, r.Hybridization, r.A, r.B, r.C)
	}
	return nil
}
