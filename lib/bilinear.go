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
)

//----------------------------------------------------------------------
// BiLinear: real-valued 2-D angle tables stacked over frequency
//----------------------------------------------------------------------

// BiLinearPattern interpolates bilinearly in angle and linearly in
// frequency. Unlike monopulse, out-of-axis frequencies clamp to the
// nearest stored grid.
type BiLinearPattern struct {
	basePattern
	freqs []float64 // Hz, ascending
	grids []*Grid
}

// FreqRange of the stored frequency axis (Hz)
func (p *BiLinearPattern) FreqRange() (lo, hi float64) {
	if len(p.freqs) == 0 {
		return 0, 0
	}
	return p.freqs[0], p.freqs[len(p.freqs)-1]
}

// bracket the query frequency (clamping at the axis ends)
func (p *BiLinearPattern) bracket(f float64) (lo, hi int, frac float64) {
	n := len(p.freqs)
	switch {
	case n == 0:
		return 0, 0, 0
	case f <= p.freqs[0]:
		return 0, 0, 0
	case f >= p.freqs[n-1]:
		return n - 1, n - 1, 0
	}
	hi = sort.SearchFloat64s(p.freqs, f)
	lo = hi - 1
	frac = (f - p.freqs[lo]) / (p.freqs[hi] - p.freqs[lo])
	return
}

// Gain: bilinear in (az, el), linear in frequency
func (p *BiLinearPattern) Gain(q *GainQuery) float64 {
	if !p.valid || len(p.grids) == 0 {
		return SmallDB
	}
	az, el := q.normalized()
	lo, hi, frac := p.bracket(q.Freq)
	g := p.grids[lo].Bilinear(az, el)
	if hi != lo {
		g = lerp(g, p.grids[hi].Bilinear(az, el), frac)
	}
	return clampGain(g + q.RefGain)
}

// MinMaxGain scans the grids bracketing the query frequency
func (p *BiLinearPattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	if len(p.grids) == 0 {
		return SmallDB, SmallDB
	}
	lo, hi, _ := p.bracket(q.Freq)
	min, max = p.grids[lo].Extremes()
	if hi != lo {
		l, h := p.grids[hi].Extremes()
		min = math.Min(min, l)
		max = math.Max(max, h)
	}
	min = clampGain(min + q.RefGain)
	max = clampGain(max + q.RefGain)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// parser
//----------------------------------------------------------------------

// parseBiLinear reads a bilinear pattern (.bil): frequency list,
// azimuth and elevation rasters, then per frequency a nAz×nEl block
// of dB gains.
func parseBiLinear(rdr io.Reader) (p *BiLinearPattern, err error) {
	sc := newPatScanner(rdr)
	p = &BiLinearPattern{basePattern: basePattern{kind: PatternBiLinear}}

	var nFreq int
	if nFreq, err = sc.Count(); err != nil {
		return nil, err
	}
	p.freqs = make([]float64, nFreq)
	for i := range p.freqs {
		var f float64
		if f, err = sc.Float(); err != nil {
			return nil, err
		}
		p.freqs[i] = f * MHz
		if i > 0 && p.freqs[i] <= p.freqs[i-1] {
			return nil, fmt.Errorf("%w: frequency axis not ascending", ErrRangeInvariant)
		}
	}
	var azAxis, elAxis Axis
	if azAxis, err = scanAxis(sc, math.Pi/180); err != nil {
		return nil, err
	}
	if elAxis, err = scanAxis(sc, math.Pi/180); err != nil {
		return nil, err
	}
	p.grids = make([]*Grid, nFreq)
	for fi := range p.grids {
		grid := NewGrid(azAxis, elAxis)
		for ai := 0; ai < azAxis.N; ai++ {
			for ei := 0; ei < elAxis.N; ei++ {
				if grid.Vals[ai][ei], err = sc.Float(); err != nil {
					return nil, err
				}
			}
		}
		p.grids[fi] = grid
	}
	p.valid = true
	return p, nil
}
