//----------------------------------------------------------------------
// This file is part of antpat.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// antpat is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// antpat is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//----------------------------------------------------------------------
// pattern plots (gonum/plot)
//----------------------------------------------------------------------

// cut axes
const (
	CutAzim = "az"
	CutElev = "el"
)

// CutPlot renders a gain cut: gain over azimuth (at the query's
// elevation) or over elevation (at the query's azimuth).
func CutPlot(p Pattern, q *GainQuery, axis string) (plt *plot.Plot, err error) {
	num := Cfg.Render.Samples
	if num < 2 {
		num = 361
	}
	lo, hi := -math.Pi, math.Pi
	if axis == CutElev {
		lo, hi = -RectAng, RectAng
	}
	pts := make(plotter.XYs, num)
	for i := range pts {
		ang := lo + (hi-lo)*float64(i)/float64(num-1)
		qq := *q
		switch axis {
		case CutElev:
			qq.Elev = ang
		default:
			qq.Azim = ang
		}
		pts[i].X = Rad2Deg(ang)
		pts[i].Y = p.Gain(&qq)
	}
	plt = plot.New()
	plt.Title.Text = fmt.Sprintf("%s cut: %s", axis, p.Filename())
	plt.X.Label.Text = "angle (deg)"
	plt.Y.Label.Text = "gain (dB)"
	plt.Add(plotter.NewGrid())

	var line *plotter.Line
	if line, err = plotter.NewLine(pts); err != nil {
		return nil, err
	}
	plt.Add(line)
	return plt, nil
}

//----------------------------------------------------------------------

// patternGrid adapts a pattern to the heat-map interface
type patternGrid struct {
	p        Pattern
	q        GainQuery
	nAz, nEl int
}

// Dims of the raster
func (g *patternGrid) Dims() (c, r int) {
	return g.nAz, g.nEl
}

// X is the azimuth raster (degrees)
func (g *patternGrid) X(c int) float64 {
	return -180 + 360*float64(c)/float64(g.nAz-1)
}

// Y is the elevation raster (degrees)
func (g *patternGrid) Y(r int) float64 {
	return -90 + 180*float64(r)/float64(g.nEl-1)
}

// Z is the gain at a raster point (dB)
func (g *patternGrid) Z(c, r int) float64 {
	q := g.q
	q.Azim = Deg2Rad(g.X(c))
	q.Elev = Deg2Rad(g.Y(r))
	return g.p.Gain(&q)
}

// HeatmapPlot renders the full (az, el) gain map of a pattern
func HeatmapPlot(p Pattern, q *GainQuery, nAz, nEl int) (plt *plot.Plot, err error) {
	if nAz < 2 || nEl < 2 {
		nAz, nEl = 181, 91
	}
	grid := &patternGrid{p: p, q: *q, nAz: nAz, nEl: nEl}
	hm := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))

	plt = plot.New()
	plt.Title.Text = "gain map: " + p.Filename()
	plt.X.Label.Text = "azimuth (deg)"
	plt.Y.Label.Text = "elevation (deg)"
	plt.Add(hm)
	return plt, nil
}

// SavePlot writes a plot to file; the format follows the filename
// suffix (.svg, .png, .pdf)
func SavePlot(plt *plot.Plot, fname string) error {
	w := vg.Points(float64(Cfg.Render.Width))
	h := vg.Points(float64(Cfg.Render.Height))
	return plt.Save(w, h, fname)
}
