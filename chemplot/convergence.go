/*
 * convergence.go, part of gasteiger
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package chemplot draws plots of the charge equalization process.
package chemplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Size of the plots, in inches.
var (
	Width  = 5.0
	Height = 4.0
)

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = ylabel
	p.X.Min = 0
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// Convergence plots the charge of each atom (one column of trace) against
// the iteration (one row of trace) and saves the plot to filename. The format
// is taken from the file extension (png, svg, pdf, etc.).
// labels, if not nil, must have one element per column of trace.
func Convergence(trace mat.Matrix, labels []string, title, filename string) error {
	if trace == nil {
		return fmt.Errorf("chemplot.Convergence: nil trace")
	}
	r, c := trace.Dims()
	if labels != nil && len(labels) != c {
		return fmt.Errorf("chemplot.Convergence: %d labels for %d atoms", len(labels), c)
	}
	p := basicPlot(title, "Charge")
	p.X.Max = float64(r - 1)
	for j := 0; j < c; j++ {
		pts := make(plotter.XYs, r)
		for i := range pts {
			pts[i].X = float64(i)
			pts[i].Y = trace.At(i, j)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chemplot.Convergence: atom %d: %w", j, err)
		}
		l.Color = plotutil.Color(j)
		l.Dashes = plotutil.Dashes(j / len(plotutil.DefaultColors))
		p.Add(l)
		if labels != nil {
			p.Legend.Add(labels[j], l)
		}
	}
	if err := p.Save(vg.Length(Width)*vg.Inch, vg.Length(Height)*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot.Convergence: %w", err)
	}
	return nil
}

// Residuals plots the largest charge change of each iteration.
func Residuals(res []float64, title, filename string) error {
	if len(res) == 0 {
		return fmt.Errorf("chemplot.Residuals: no residuals to plot")
	}
	p := basicPlot(title, "Max |dq|")
	pts := make(plotter.XYs, len(res))
	for i, v := range res {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("chemplot.Residuals: %w", err)
	}
	p.Add(l, s)
	if err := p.Save(vg.Length(Width)*vg.Inch, vg.Length(Height)*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot.Residuals: %w", err)
	}
	return nil
}
