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
	"sort"
	"strconv"
	"strings"
)

//----------------------------------------------------------------------
// XFDTD: UAN far-zone exports over a (phi, theta) raster with
// separate theta- and phi-polarized gains
//----------------------------------------------------------------------

// XFDTDPattern holds the two polarization grids in local (az, el)
// coordinates (az = phi, el = π/2 − theta). Gains are absolute dBi.
type XFDTDPattern struct {
	basePattern
	freq   float64 // Hz
	gTheta *Grid
	gPhi   *Grid
}

// Freq of the simulation run (Hz)
func (p *XFDTDPattern) Freq() float64 {
	return p.freq
}

// FreqRange of the export (single frequency)
func (p *XFDTDPattern) FreqRange() (lo, hi float64) {
	return p.freq, p.freq
}

// Gain per polarity: vertical uses the theta-polarized grid,
// horizontal the phi-polarized one; any other polarity combines
// both as power sum.
func (p *XFDTDPattern) Gain(q *GainQuery) float64 {
	if !p.valid {
		return SmallDB
	}
	az, el := q.normalized()
	switch q.Pol {
	case PolVertical:
		return clampGain(p.gTheta.Bilinear(az, el))
	case PolHorizontal:
		return clampGain(p.gPhi.Bilinear(az, el))
	}
	gt := p.gTheta.Bilinear(az, el)
	gp := p.gPhi.Bilinear(az, el)
	return clampGain(Lin2Db(Db2Lin(gt) + Db2Lin(gp)))
}

// MinMaxGain scans the grid(s) relevant for the query's polarity
func (p *XFDTDPattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	switch q.Pol {
	case PolVertical:
		min, max = p.gTheta.Extremes()
	case PolHorizontal:
		min, max = p.gPhi.Extremes()
	default:
		first := true
		for i, row := range p.gTheta.Vals {
			for j, gt := range row {
				db := Lin2Db(Db2Lin(gt) + Db2Lin(p.gPhi.Vals[i][j]))
				if first || db < min {
					min = db
				}
				if first || db > max {
					max = db
				}
				first = false
			}
		}
	}
	min, max = clampGain(min), clampGain(max)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// parser
//----------------------------------------------------------------------

// one data row of a UAN export
type uanRow struct {
	az, el float64
	gt, gp float64
}

// parseXFDTD reads a UAN far-zone export (.xfd, .uan). If the header
// lacks a frequency, the loader's frequency hint (MHz) is used.
func parseXFDTD(rdr io.Reader, freqHintMHz float64) (p *XFDTDPattern, err error) {
	sc := newPatScanner(rdr)
	p = &XFDTDPattern{basePattern: basePattern{kind: PatternXFDTD}}

	var rows []uanRow
	inHeader := false
	for {
		var line string
		if line, err = sc.Line(); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch {
		case strings.HasPrefix(line, "begin_"):
			inHeader = true
		case strings.HasPrefix(line, "end_"):
			inHeader = false
		case inHeader:
			flds := strings.Fields(line)
			if len(flds) < 2 {
				continue
			}
			if flds[0] == "frequency" {
				if p.freq, err = strconv.ParseFloat(flds[1], 64); err != nil {
					return nil, fmt.Errorf("%w: bad frequency '%s'", ErrParse, flds[1])
				}
			}
		default:
			flds := strings.Fields(line)
			if len(flds) < 6 {
				return nil, fmt.Errorf("%w: short data row '%s'", ErrParse, line)
			}
			vals := make([]float64, 6)
			for i := range vals {
				if vals[i], err = strconv.ParseFloat(flds[i], 64); err != nil {
					return nil, fmt.Errorf("%w: bad number '%s'", ErrParse, flds[i])
				}
			}
			rows = append(rows, uanRow{
				az: WrapPi(Deg2Rad(vals[0])),
				el: RectAng - Deg2Rad(vals[1]),
				gt: vals[2],
				gp: vals[3],
			})
		}
	}
	if p.freq == 0 {
		p.freq = freqHintMHz * MHz
	}
	if err = p.buildGrids(rows); err != nil {
		return nil, err
	}
	p.valid = true
	return p, nil
}

// buildGrids assembles the uniform (az, el) rasters from the
// scattered data rows
func (p *XFDTDPattern) buildGrids(rows []uanRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no data rows", ErrParse)
	}
	azAxis, err := uniformAxis(uniqueVals(rows, func(r uanRow) float64 { return r.az }))
	if err != nil {
		return err
	}
	elAxis, err := uniformAxis(uniqueVals(rows, func(r uanRow) float64 { return r.el }))
	if err != nil {
		return err
	}
	p.gTheta = NewGrid(azAxis, elAxis)
	p.gPhi = NewGrid(azAxis, elAxis)
	seen := make([][]bool, azAxis.N)
	for i := range seen {
		seen[i] = make([]bool, elAxis.N)
	}
	for _, r := range rows {
		i := axisIndex(azAxis, r.az)
		j := axisIndex(elAxis, r.el)
		p.gTheta.Vals[i][j] = r.gt
		p.gPhi.Vals[i][j] = r.gp
		seen[i][j] = true
	}
	for i := range seen {
		for j := range seen[i] {
			if !seen[i][j] {
				return fmt.Errorf("%w: raster cell (%d,%d) missing", ErrParse, i, j)
			}
		}
	}
	return nil
}

// uniqueVals collects the distinct axis positions of the rows
func uniqueVals(rows []uanRow, get func(uanRow) float64) []float64 {
	var vals []float64
	for _, r := range rows {
		v := get(r)
		found := false
		for _, u := range vals {
			if math.Abs(u-v) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	return vals
}

// uniformAxis validates that positions form a uniform raster
func uniformAxis(vals []float64) (Axis, error) {
	n := len(vals)
	if n == 0 {
		return Axis{}, fmt.Errorf("%w: empty axis", ErrParse)
	}
	if n == 1 {
		return Axis{Min: vals[0], Step: 1, N: 1}, nil
	}
	step := (vals[n-1] - vals[0]) / float64(n-1)
	for i, v := range vals {
		if math.Abs(v-(vals[0]+float64(i)*step)) > 1e-6 {
			return Axis{}, fmt.Errorf("%w: axis raster not uniform", ErrParse)
		}
	}
	return Axis{Min: vals[0], Step: step, N: n}, nil
}

// axisIndex locates a raster position
func axisIndex(a Axis, v float64) int {
	i := int(math.Round((v - a.Min) / a.Step))
	if i < 0 {
		i = 0
	} else if i >= a.N {
		i = a.N - 1
	}
	return i
}
