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

	"gonum.org/v1/gonum/floats"
)

//----------------------------------------------------------------------
// CRUISE: per-frequency azimuth and elevation cuts (voltage gains)
//----------------------------------------------------------------------

// cruiseTable is one angle cut sampled per frequency row
type cruiseTable struct {
	ang   Axis        // angle raster (rad)
	freqs []float64   // frequency axis (Hz), ascending
	rows  [][]float64 // rows[freqIdx][angIdx], power gain (dB)
}

// bracket returns the frequency rows around f and the blend
// fraction; frequencies outside the axis clamp to the nearest row.
func (t *cruiseTable) bracket(f float64) (lo, hi int, frac float64) {
	n := len(t.freqs)
	switch {
	case n == 0:
		return 0, 0, 0
	case f <= t.freqs[0]:
		return 0, 0, 0
	case f >= t.freqs[n-1]:
		return n - 1, n - 1, 0
	}
	hi = sort.SearchFloat64s(t.freqs, f)
	lo = hi - 1
	frac = (f - t.freqs[lo]) / (t.freqs[hi] - t.freqs[lo])
	return
}

// interpolate one row at an angle
func (t *cruiseTable) rowGain(row []float64, ang float64) float64 {
	if len(row) == 0 {
		return SmallDB
	}
	i, f := t.ang.locate(ang)
	if t.ang.N < 2 {
		return row[0]
	}
	return lerp(row[i], row[i+1], f)
}

// lookup blends the bracketing frequency rows at an angle
func (t *cruiseTable) lookup(freq, ang float64) float64 {
	if len(t.rows) == 0 {
		return SmallDB
	}
	lo, hi, frac := t.bracket(freq)
	g := t.rowGain(t.rows[lo], ang)
	if hi != lo {
		g = lerp(g, t.rowGain(t.rows[hi], ang), frac)
	}
	return g
}

// extremes over the rows bracketing a frequency
func (t *cruiseTable) extremes(freq float64) (min, max float64) {
	if len(t.rows) == 0 {
		return SmallDB, SmallDB
	}
	lo, hi, _ := t.bracket(freq)
	min, max = floats.Min(t.rows[lo]), floats.Max(t.rows[lo])
	if hi != lo {
		min = math.Min(min, floats.Min(t.rows[hi]))
		max = math.Max(max, floats.Max(t.rows[hi]))
	}
	return
}

//----------------------------------------------------------------------

// CruisePattern answers gain queries from per-frequency azimuth and
// elevation cuts. Query frequencies outside the stored axis clamp to
// the nearest row; in between, the bracketing rows blend linearly.
type CruisePattern struct {
	basePattern
	azim     cruiseTable
	elev     cruiseTable
	relative bool
}

// FreqRange of the stored frequency axes (Hz)
func (p *CruisePattern) FreqRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, t := range []*cruiseTable{&p.azim, &p.elev} {
		if n := len(t.freqs); n > 0 {
			lo = math.Min(lo, t.freqs[0])
			hi = math.Max(hi, t.freqs[n-1])
		}
	}
	return
}

// Gain from the frequency-blended cuts
func (p *CruisePattern) Gain(q *GainQuery) float64 {
	if !p.valid {
		return SmallDB
	}
	az, el := q.normalized()
	gA := p.azim.lookup(q.Freq, az)
	gE := p.elev.lookup(q.Freq, el)
	g := combineGain(az, el, gA, gE, q.Weighting)
	if p.relative {
		g += q.RefGain
	}
	return clampGain(g)
}

// MinMaxGain scans the frequency rows relevant for the query
func (p *CruisePattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	minA, maxA := p.azim.extremes(q.Freq)
	minE, maxE := p.elev.extremes(q.Freq)
	if q.Weighting {
		min = math.Min(minA, minE)
		max = math.Max(maxA, maxE)
	} else {
		min = minA + minE
		max = maxA + maxE
	}
	if p.relative {
		min += q.RefGain
		max += q.RefGain
	}
	min, max = clampGain(min), clampGain(max)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// parser
//----------------------------------------------------------------------

// read one CRUISE block: 'nAng nFreq angMin angStep', the frequency
// axis (MHz) and nFreq rows of nAng voltage gains.
func parseCruiseBlock(sc *patScanner, t *cruiseTable) (err error) {
	var nAng, nFreq int
	if nAng, err = sc.Count(); err != nil {
		return
	}
	if nFreq, err = sc.Count(); err != nil {
		return
	}
	var angMin, angStep float64
	if angMin, err = sc.Float(); err != nil {
		return
	}
	if angStep, err = sc.Float(); err != nil {
		return
	}
	if angStep <= 0 {
		return fmt.Errorf("%w: angle step %f not positive", ErrRangeInvariant, angStep)
	}
	t.ang = Axis{Min: Deg2Rad(angMin), Step: Deg2Rad(angStep), N: nAng}

	t.freqs = make([]float64, nFreq)
	for i := range t.freqs {
		var f float64
		if f, err = sc.Float(); err != nil {
			return
		}
		t.freqs[i] = f * MHz
		if i > 0 && t.freqs[i] <= t.freqs[i-1] {
			return fmt.Errorf("%w: frequency axis not ascending", ErrRangeInvariant)
		}
	}
	// voltage gains: convert to power (dB) while reading
	t.rows = make([][]float64, nFreq)
	for i := range t.rows {
		row := make([]float64, nAng)
		for j := range row {
			var v float64
			if v, err = sc.Float(); err != nil {
				return
			}
			row[j] = Lin2Db(Sqr(v))
		}
		t.rows[i] = row
	}
	return
}

// parseCRUISE reads a CRUISE pattern (.cru): an azimuth block
// followed by an elevation block.
func parseCRUISE(rdr io.Reader) (p *CruisePattern, err error) {
	sc := newPatScanner(rdr)
	p = &CruisePattern{basePattern: basePattern{kind: PatternCruise}}
	if err = parseCruiseBlock(sc, &p.azim); err != nil {
		return nil, err
	}
	if err = parseCruiseBlock(sc, &p.elev); err != nil {
		return nil, err
	}
	// normalized files (unit voltage peak) are relative
	_, maxA := p.azim.extremes(p.azim.freqs[0])
	_, maxE := p.elev.extremes(p.elev.freqs[0])
	p.relative = math.Abs(maxA) < 1e-6 && math.Abs(maxE) < 1e-6
	p.valid = true
	return p, nil
}
