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
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

//----------------------------------------------------------------------
// uniform axes and 2-D tables
//----------------------------------------------------------------------

// Axis is a uniform sample raster (min, step, count)
type Axis struct {
	Min  float64
	Step float64
	N    int
}

// Max returns the last raster position
func (a Axis) Max() float64 {
	return a.Min + float64(a.N-1)*a.Step
}

// At returns the i-th raster position
func (a Axis) At(i int) float64 {
	return a.Min + float64(i)*a.Step
}

// locate a value on the axis: cell index and fraction within the
// cell. Out-of-range values clamp to the first/last cell edge.
func (a Axis) locate(x float64) (i int, f float64) {
	if a.N < 2 || a.Step <= 0 {
		return 0, 0
	}
	pos := (x - a.Min) / a.Step
	if pos <= 0 {
		return 0, 0
	}
	if pos >= float64(a.N-1) {
		return a.N - 2, 1
	}
	i = int(pos)
	f = pos - float64(i)
	return
}

//----------------------------------------------------------------------

// Grid is a real-valued 2-D table over an (azimuth, elevation)
// raster; lookups are bilinear with endpoint clamping.
type Grid struct {
	Az, El Axis
	Vals   [][]float64 // Vals[azIdx][elIdx]
}

// NewGrid allocates a grid for the given axes
func NewGrid(az, el Axis) *Grid {
	g := &Grid{Az: az, El: el}
	g.Vals = make([][]float64, az.N)
	for i := range g.Vals {
		g.Vals[i] = make([]float64, el.N)
	}
	return g
}

// Bilinear interpolation at (az, el), clamped to the raster
func (g *Grid) Bilinear(az, el float64) float64 {
	if g.Az.N == 0 || g.El.N == 0 {
		return SmallDB
	}
	i, fa := g.Az.locate(az)
	j, fe := g.El.locate(el)
	i1, j1 := i, j
	if g.Az.N > 1 {
		i1 = i + 1
	}
	if g.El.N > 1 {
		j1 = j + 1
	}
	g0 := lerp(g.Vals[i][j], g.Vals[i][j1], fe)
	g1 := lerp(g.Vals[i1][j], g.Vals[i1][j1], fe)
	return lerp(g0, g1, fa)
}

// Extremes returns the smallest and largest stored value
func (g *Grid) Extremes() (min, max float64) {
	min, max = SmallDB, SmallDB
	first := true
	for _, row := range g.Vals {
		if len(row) == 0 {
			continue
		}
		lo, hi := floats.Min(row), floats.Max(row)
		if first || lo < min {
			min = lo
		}
		if first || hi > max {
			max = hi
		}
		first = false
	}
	return
}

//----------------------------------------------------------------------

// ComplexGrid is the complex-valued sibling of Grid (monopulse
// sum/difference channels); interpolation is component-wise.
type ComplexGrid struct {
	Az, El Axis
	Vals   [][]complex128
}

// NewComplexGrid allocates a grid for the given axes
func NewComplexGrid(az, el Axis) *ComplexGrid {
	g := &ComplexGrid{Az: az, El: el}
	g.Vals = make([][]complex128, az.N)
	for i := range g.Vals {
		g.Vals[i] = make([]complex128, el.N)
	}
	return g
}

// Bilinear interpolation at (az, el), clamped to the raster
func (g *ComplexGrid) Bilinear(az, el float64) complex128 {
	if g.Az.N == 0 || g.El.N == 0 {
		return 0
	}
	i, fa := g.Az.locate(az)
	j, fe := g.El.locate(el)
	i1, j1 := i, j
	if g.Az.N > 1 {
		i1 = i + 1
	}
	if g.El.N > 1 {
		j1 = j + 1
	}
	g0 := clerp(g.Vals[i][j], g.Vals[i][j1], fe)
	g1 := clerp(g.Vals[i1][j], g.Vals[i1][j1], fe)
	return clerp(g0, g1, fa)
}

// Extremes returns the smallest and largest magnitude (in dB)
func (g *ComplexGrid) Extremes() (min, max float64) {
	first := true
	min, max = SmallDB, SmallDB
	for _, row := range g.Vals {
		for _, v := range row {
			db := Lin2Db(Sqr(cmplx.Abs(v)))
			if first || db < min {
				min = db
			}
			if first || db > max {
				max = db
			}
			first = false
		}
	}
	return
}
