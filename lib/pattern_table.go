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
)

//----------------------------------------------------------------------
// PAT / REL: plain azimuth+elevation cut tables
//----------------------------------------------------------------------

// AngleUnits of the stored table keys
type AngleUnits int

// known angle units
const (
	UnitsRadians    AngleUnits = iota // keys are angles (degrees on disk)
	UnitsBeamwidths                   // keys are beamwidth multiples
)

// TablePattern holds two 1-D gain cuts (azimuth, elevation). It
// backs both the PAT and the REL format and can be built
// programmatically through the mutator surface.
type TablePattern struct {
	basePattern
	units    AngleUnits
	azim     *SymTable
	elev     *SymTable
	relative bool // tables peak at 0 dB; refGain is added on query
}

// NewTablePattern creates an empty table pattern for programmatic
// construction; call SetValid(true) once the tables are filled.
func NewTablePattern() *TablePattern {
	return &TablePattern{
		basePattern: basePattern{kind: PatternTable},
		units:       UnitsRadians,
		azim:        NewSymTable(SymNone, 0),
		elev:        NewSymTable(SymNone, 0),
	}
}

// SetAzimSample adds an azimuth sample (rad or beamwidths, dB)
func (p *TablePattern) SetAzimSample(angle, gain float64) {
	p.azim.Insert(angle, gain)
}

// SetElevSample adds an elevation sample (rad or beamwidths, dB)
func (p *TablePattern) SetElevSample(angle, gain float64) {
	p.elev.Insert(angle, gain)
}

// SetAngleUnits switches between angle and beamwidth keys
func (p *TablePattern) SetAngleUnits(units AngleUnits) {
	p.units = units
}

// SetSymmetry changes the symmetry code of both tables
func (p *TablePattern) SetSymmetry(sym Symmetry) error {
	if !ValidSymmetry(sym) {
		return fmt.Errorf("%w: symmetry code %d", ErrRangeInvariant, sym)
	}
	p.azim.SetSymmetry(sym)
	p.elev.SetSymmetry(sym)
	return nil
}

// SetRelative marks the tables as relative (max = 0 dB)
func (p *TablePattern) SetRelative(rel bool) {
	p.relative = rel
}

// Gain from the azimuth and elevation cuts
func (p *TablePattern) Gain(q *GainQuery) float64 {
	if !p.valid {
		return SmallDB
	}
	az, el := q.normalized()
	ka, ke := az, el
	if p.units == UnitsBeamwidths {
		hbw, vbw, err := p.beamwidths(q)
		if err != nil {
			return SmallDB
		}
		ka, ke = az/hbw, el/vbw
	}
	gA := p.azim.Lookup(ka)
	gE := p.elev.Lookup(ke)
	g := combineGain(az, el, gA, gE, q.Weighting)
	if p.relative {
		g += q.RefGain
	}
	return clampGain(g)
}

// MinMaxGain from the table extremes
func (p *TablePattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	minA, maxA := p.azim.Extremes()
	minE, maxE := p.elev.Extremes()
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
// parsers
//----------------------------------------------------------------------

// read one cut table: count followed by (angle, gain) sample lines
func parseCut(sc *patScanner, tbl *SymTable, units AngleUnits) error {
	num, err := sc.Count()
	if err != nil {
		return err
	}
	last := math.Inf(-1)
	for i := 0; i < num; i++ {
		ang, err := sc.Float()
		if err != nil {
			return err
		}
		gain, err := sc.Float()
		if err != nil {
			return err
		}
		if ang <= last {
			return fmt.Errorf("%w: angle %f not ascending", ErrRangeInvariant, ang)
		}
		last = ang
		key := ang
		if units == UnitsRadians {
			key = Deg2Rad(ang)
		}
		tbl.Insert(key, gain)
	}
	return nil
}

// tables whose largest sample is 0 dB are relative
func tablesRelative(azim, elev *SymTable) bool {
	_, maxA := azim.Extremes()
	_, maxE := elev.Extremes()
	return math.Abs(maxA) < 1e-6 && math.Abs(maxE) < 1e-6
}

// parsePAT reads an antenna pattern table (.pat):
// header 'units sym', then the azimuth and elevation cuts.
func parsePAT(rdr io.Reader) (p *TablePattern, err error) {
	sc := newPatScanner(rdr)
	p = NewTablePattern()

	var units, sym int
	if units, err = sc.Int(); err != nil {
		return nil, err
	}
	if units != 0 && units != 1 {
		return nil, fmt.Errorf("%w: angle units %d", ErrParse, units)
	}
	p.SetAngleUnits(AngleUnits(units))
	if sym, err = sc.Int(); err != nil {
		return nil, err
	}
	if sym != int(SymNone) && sym != int(SymMirror) {
		return nil, fmt.Errorf("%w: symmetry code %d", ErrRangeInvariant, sym)
	}
	if err = p.SetSymmetry(Symmetry(sym)); err != nil {
		return nil, err
	}
	if err = parseCut(sc, p.azim, p.units); err != nil {
		return nil, err
	}
	if err = parseCut(sc, p.elev, p.units); err != nil {
		return nil, err
	}
	p.relative = tablesRelative(p.azim, p.elev)
	p.valid = true
	return p, nil
}

// parseREL reads a relative pattern table (.rel):
// header 'nAz nEl', then nAz+nEl (angle, gain) lines. Tables are
// relative by definition (maximum at 0 dB).
func parseREL(rdr io.Reader) (p *TablePattern, err error) {
	sc := newPatScanner(rdr)
	p = NewTablePattern()
	p.kind = PatternRelTable
	p.relative = true

	var nAz, nEl int
	if nAz, err = sc.Count(); err != nil {
		return nil, err
	}
	if nEl, err = sc.Count(); err != nil {
		return nil, err
	}
	if err = readSamples(sc, p.azim, nAz); err != nil {
		return nil, err
	}
	if err = readSamples(sc, p.elev, nEl); err != nil {
		return nil, err
	}
	p.valid = true
	return p, nil
}

// readSamples reads a fixed number of (angle, gain) lines
func readSamples(sc *patScanner, tbl *SymTable, num int) error {
	last := math.Inf(-1)
	for i := 0; i < num; i++ {
		ang, err := sc.Float()
		if err != nil {
			return err
		}
		gain, err := sc.Float()
		if err != nil {
			return err
		}
		if ang <= last {
			return fmt.Errorf("%w: angle %f not ascending", ErrRangeInvariant, ang)
		}
		last = ang
		tbl.Insert(Deg2Rad(ang), gain)
	}
	return nil
}
