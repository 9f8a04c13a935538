/*
 * featplot.go, part of gomlpot
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 * gomlpot is developed at the Universidad de Santiago de Chile (USACH)
 *
*/

//Package featplot produces diagnostic plots for fingerprint data:
//histograms of the feature values seen for an element, and the shape of
//a switching function. Both help picking cutoffs and judging whether a
//feature range is well used.
package featplot

import (
	"fmt"
	"image/color"

	mlpot "github.com/rmera/gomlpot"
	"github.com/rmera/gomlpot/fingerprint"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeters(3)
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// FeatureHisto produces a png histogram of every fingerprint component
// of every atom of the given element in the feature space. The
// extension is appended to plotname. Returns an error or nil.
func FeatureHisto(fs *fingerprint.FeatureSpace, element string, nbins int, title, plotname string) error {
	if fs == nil {
		panic("Given nil feature space")
	}
	vals := make(plotter.Values, 0, fs.TotalAtoms())
	for _, id := range fs.IDs() {
		for _, at := range fs.Atoms(id) {
			if at.Symbol != element {
				continue
			}
			vals = append(vals, at.Vec...)
		}
	}
	if len(vals) == 0 {
		return fmt.Errorf("no %s atoms in the feature space", element)
	}
	p := basicPlot(title, "feature value", "count")
	h, err := plotter.NewHist(vals, nbins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	p.Add(h)
	// Save the plot to a PNG file.
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}

// CutoffPlot produces a png plot of the switching function from 0 to a
// bit past its cutoff radius, sampled at the given number of points.
// The extension is appended to plotname. Returns an error or nil.
func CutoffPlot(cf mlpot.Cutoff, points int, title, plotname string) error {
	if cf == nil {
		panic("Given nil switching function")
	}
	if points < 2 {
		points = 100
	}
	rmax := 1.1 * cf.Rc()
	pts := make(plotter.XYs, points)
	for i := range pts {
		r := rmax * float64(i) / float64(points-1)
		pts[i].X = r
		pts[i].Y = cf.Eval(r)
	}
	p := basicPlot(title, "r", cf.Name())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{B: 255, A: 255}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(4*vg.Inch, 4*vg.Inch, filename)
}
