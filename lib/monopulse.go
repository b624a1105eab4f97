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
	"math/cmplx"
)

//----------------------------------------------------------------------
// Monopulse: complex sum/difference channels on a 2-D angle grid,
// stacked over a frequency axis
//----------------------------------------------------------------------

// monoBlock is one channel: a complex (az, el) grid per frequency
type monoBlock struct {
	fAxis Axis // frequency raster (Hz)
	grids []*ComplexGrid
}

// lookup a complex channel value; the frequency must lie on the
// stored axis (monopulse channels cannot be clamped meaningfully).
func (b *monoBlock) lookup(freq, az, el float64) (complex128, error) {
	if b.fAxis.N == 0 || len(b.grids) == 0 {
		return 0, fmt.Errorf("%w: channel empty", ErrUnsupportedFreq)
	}
	if freq < b.fAxis.Min-eps || freq > b.fAxis.Max()+eps {
		return 0, fmt.Errorf("%w: %f Hz outside [%f, %f]",
			ErrUnsupportedFreq, freq, b.fAxis.Min, b.fAxis.Max())
	}
	i, f := b.fAxis.locate(freq)
	v := b.grids[i].Bilinear(az, el)
	if f > 0 && i+1 < len(b.grids) {
		v = clerp(v, b.grids[i+1].Bilinear(az, el), f)
	}
	return v, nil
}

// extremes (dB) over the grids bracketing a frequency
func (b *monoBlock) extremes(freq float64) (min, max float64) {
	if len(b.grids) == 0 {
		return SmallDB, SmallDB
	}
	i, f := b.fAxis.locate(freq)
	min, max = b.grids[i].Extremes()
	if f > 0 && i+1 < len(b.grids) {
		lo, hi := b.grids[i+1].Extremes()
		min = math.Min(min, lo)
		max = math.Max(max, hi)
	}
	return
}

//----------------------------------------------------------------------

// MonopulsePattern holds the sum and difference channels of a
// monopulse antenna. Queries select the channel via GainQuery.Delta.
type MonopulsePattern struct {
	basePattern
	sum  monoBlock
	diff monoBlock
}

// FreqRange of the stored frequency axes (Hz)
func (p *MonopulsePattern) FreqRange() (lo, hi float64) {
	lo = math.Min(p.sum.fAxis.Min, p.diff.fAxis.Min)
	hi = math.Max(p.sum.fAxis.Max(), p.diff.fAxis.Max())
	return
}

// Gain of the selected channel: bilinear in angle per bracketing
// frequency grid, component-wise linear in frequency, then the
// magnitude in dB offset by refGain. A query frequency outside the
// channel axis reports UnsupportedFrequency and yields SmallDB.
func (p *MonopulsePattern) Gain(q *GainQuery) float64 {
	if !p.valid {
		return SmallDB
	}
	blk := &p.sum
	if q.Delta {
		blk = &p.diff
	}
	az, el := q.normalized()
	v, err := blk.lookup(q.Freq, az, el)
	if err != nil {
		p.report(err)
		return SmallDB
	}
	mag := math.Hypot(real(v), imag(v))
	if mag < linFloor {
		return SmallDB
	}
	return clampGain(20*math.Log10(mag) + q.RefGain)
}

// MinMaxGain scans the channel grids bracketing the query frequency
func (p *MonopulsePattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	blk := &p.sum
	if q.Delta {
		blk = &p.diff
	}
	min, max = blk.extremes(q.Freq)
	min = clampGain(min + q.RefGain)
	max = clampGain(max + q.RefGain)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// parser
//----------------------------------------------------------------------

// rasterAxis builds an axis from 'min max step' header values
func rasterAxis(lo, hi, step, scale float64) (Axis, error) {
	if step <= 0 || hi < lo {
		return Axis{}, fmt.Errorf("%w: raster (%f, %f, %f)", ErrRangeInvariant, lo, hi, step)
	}
	n := int(math.Round((hi-lo)/step)) + 1
	return Axis{Min: lo * scale, Step: step * scale, N: n}, nil
}

// read three header values and build an axis
func scanAxis(sc *patScanner, scale float64) (Axis, error) {
	var lo, hi, step float64
	var err error
	if lo, err = sc.Float(); err != nil {
		return Axis{}, err
	}
	if hi, err = sc.Float(); err != nil {
		return Axis{}, err
	}
	if step, err = sc.Float(); err != nil {
		return Axis{}, err
	}
	return rasterAxis(lo, hi, step, scale)
}

// read one channel block: frequency, azimuth and elevation rasters,
// then per frequency a complex (magnitude dB, phase deg) sample for
// every (az, el) grid point.
func parseMonoBlock(sc *patScanner, b *monoBlock) (err error) {
	if b.fAxis, err = scanAxis(sc, MHz); err != nil {
		return
	}
	var azAxis, elAxis Axis
	if azAxis, err = scanAxis(sc, math.Pi/180); err != nil {
		return
	}
	if elAxis, err = scanAxis(sc, math.Pi/180); err != nil {
		return
	}
	b.grids = make([]*ComplexGrid, b.fAxis.N)
	for fi := range b.grids {
		grid := NewComplexGrid(azAxis, elAxis)
		for ai := 0; ai < azAxis.N; ai++ {
			for ei := 0; ei < elAxis.N; ei++ {
				var mag, phase float64
				if mag, err = sc.Float(); err != nil {
					return
				}
				if phase, err = sc.Float(); err != nil {
					return
				}
				amp := math.Pow(10, mag/20)
				grid.Vals[ai][ei] = complex(amp, 0) * cmplx.Exp(complex(0, Deg2Rad(phase)))
			}
		}
		b.grids[fi] = grid
	}
	return
}

// parseMonopulse reads a monopulse pattern (.mon): two blocks
// tagged 'sum' and 'diff'.
func parseMonopulse(rdr io.Reader) (p *MonopulsePattern, err error) {
	sc := newPatScanner(rdr)
	p = &MonopulsePattern{basePattern: basePattern{kind: PatternMonopulse}}

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		var tag string
		if tag, err = sc.Next(); err != nil {
			return nil, fmt.Errorf("%w: missing channel block", ErrParse)
		}
		if seen[tag] {
			return nil, fmt.Errorf("%w: duplicate channel '%s'", ErrParse, tag)
		}
		seen[tag] = true
		switch tag {
		case "sum":
			err = parseMonoBlock(sc, &p.sum)
		case "diff":
			err = parseMonoBlock(sc, &p.diff)
		default:
			err = fmt.Errorf("%w: unknown channel '%s'", ErrParse, tag)
		}
		if err != nil {
			return nil, err
		}
	}
	p.valid = true
	return p, nil
}
