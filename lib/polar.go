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
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

//----------------------------------------------------------------------
// polar gain diagram (SVG)
//----------------------------------------------------------------------

// PolarDiagram writes the classic polar diagram of an azimuth cut
// as SVG. The radial scale spans the configured dynamic range below
// the pattern maximum; gains below the span collapse to the center.
func PolarDiagram(wrt io.Writer, p Pattern, q *GainQuery) {
	size := Cfg.Render.Height
	span := Cfg.Render.Span
	if span <= 0 {
		span = 40
	}
	num := Cfg.Render.Samples
	if num < 8 {
		num = 361
	}
	cx, cy := size/2, size/2
	rMax := float64(size)/2 - 30

	_, gmax := p.MinMaxGain(q)

	// radius for a gain value
	radius := func(g float64) float64 {
		down := gmax - g
		if down > span {
			down = span
		}
		return rMax * (1 - down/span)
	}

	canvas := svg.New(wrt)
	canvas.Start(size, size)

	// rings every 10 dB down
	for down := 0.; down <= span; down += 10 {
		r := int(rMax * (1 - down/span))
		canvas.Circle(cx, cy, r, "fill:none;stroke:#7f7f7f;stroke-width:1")
		canvas.Text(cx+3, cy-r+12, fmt.Sprintf("%.0f", gmax-down),
			"font-size:10px;fill:#7f7f7f")
	}
	// spokes every 30°
	for ang := 0.; ang < 180; ang += 30 {
		dx := rMax * math.Cos(Deg2Rad(ang))
		dy := rMax * math.Sin(Deg2Rad(ang))
		canvas.Line(cx-int(dx), cy+int(dy), cx+int(dx), cy-int(dy),
			"stroke:#7f7f7f;stroke-width:1")
	}

	// pattern outline (azimuth cut at the query's elevation)
	xs := make([]int, num)
	ys := make([]int, num)
	for i := 0; i < num; i++ {
		az := -math.Pi + CircAng*float64(i)/float64(num)
		qq := *q
		qq.Azim = az
		r := radius(p.Gain(&qq))
		xs[i] = cx + int(r*math.Cos(az))
		ys[i] = cy - int(r*math.Sin(az))
	}
	canvas.Polygon(xs, ys, "fill:none;stroke:#0000ff;stroke-width:2")

	canvas.Text(10, size-10,
		fmt.Sprintf("%s (max %.1f dB)", p.Filename(), gmax),
		"font-size:12px;fill:#000000")
	canvas.End()
}
