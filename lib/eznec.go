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
	"sort"
	"strconv"
	"strings"
)

//----------------------------------------------------------------------
// EZNEC: azimuth sweep blocks, one per elevation slice, with
// V / H / Total dB columns
//----------------------------------------------------------------------

// eznecSlice is one azimuth sweep at a fixed elevation
type eznecSlice struct {
	elev float64 // rad
	vdb  *InterpTable
	hdb  *InterpTable
	tdb  *InterpTable
}

// table returns the column matching a polarity (total for circular
// and unknown polarities)
func (s *eznecSlice) table(pol Polarity) *InterpTable {
	switch pol {
	case PolVertical:
		return s.vdb
	case PolHorizontal:
		return s.hdb
	}
	return s.tdb
}

// EZNECPattern holds per-elevation azimuth sweeps. Gains are
// absolute dBi, so refGain is not applied.
type EZNECPattern struct {
	basePattern
	compass bool // azimuth convention of the source file
	slices  []*eznecSlice
}

// Compass returns true if the source used compass bearings
// (canonicalized to math convention on load)
func (p *EZNECPattern) Compass() bool {
	return p.compass
}

// Gain: interpolate the bracketing elevation slices in azimuth,
// then blend linearly between the slices.
func (p *EZNECPattern) Gain(q *GainQuery) float64 {
	if !p.valid || len(p.slices) == 0 {
		return SmallDB
	}
	az, el := q.normalized()
	hi := sort.Search(len(p.slices), func(i int) bool {
		return p.slices[i].elev >= el
	})
	switch {
	case hi == 0:
		return clampGain(p.slices[0].table(q.Pol).Lookup(az))
	case hi == len(p.slices):
		return clampGain(p.slices[hi-1].table(q.Pol).Lookup(az))
	}
	lo := hi - 1
	gLo := p.slices[lo].table(q.Pol).Lookup(az)
	gHi := p.slices[hi].table(q.Pol).Lookup(az)
	f := (el - p.slices[lo].elev) / (p.slices[hi].elev - p.slices[lo].elev)
	return clampGain(lerp(gLo, gHi, f))
}

// MinMaxGain over all elevation slices for the query's polarity
func (p *EZNECPattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	min, max = SmallDB, SmallDB
	for i, s := range p.slices {
		lo, hi := s.table(q.Pol).Extremes()
		if i == 0 || lo < min {
			min = lo
		}
		if i == 0 || hi > max {
			max = hi
		}
	}
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// parser
//----------------------------------------------------------------------

// parseEZNEC reads an EZNEC pattern export (.ezn). The azimuth
// convention (compass bearings vs. math angles) is detected from the
// header and canonicalized to math convention (0 = east, CCW).
func parseEZNEC(rdr io.Reader) (p *EZNECPattern, err error) {
	sc := newPatScanner(rdr)
	p = &EZNECPattern{basePattern: basePattern{kind: PatternEZNEC}}

	var cur *eznecSlice
	for {
		var line string
		if line, err = sc.Line(); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch {
		case strings.Contains(line, "Compass"):
			p.compass = true
		case strings.Contains(line, "Math"):
			p.compass = false
		case strings.Contains(line, "Elevation angle"):
			var elev float64
			if elev, err = eznecBlockAngle(line); err != nil {
				return nil, err
			}
			cur = &eznecSlice{
				elev: Deg2Rad(elev),
				vdb:  NewInterpTable(0),
				hdb:  NewInterpTable(0),
				tdb:  NewInterpTable(0),
			}
			p.slices = append(p.slices, cur)
		default:
			if cur == nil {
				continue // still in the header
			}
			flds := strings.Fields(line)
			if len(flds) < 4 {
				continue
			}
			vals := make([]float64, 4)
			ok := true
			for i := range vals {
				if vals[i], err = strconv.ParseFloat(flds[i], 64); err != nil {
					ok = false
					err = nil
					break
				}
			}
			if !ok {
				continue // column header line
			}
			deg := vals[0]
			if p.compass {
				deg = 90 - deg
			}
			az := WrapPi(Deg2Rad(deg))
			cur.vdb.Insert(az, vals[1])
			cur.hdb.Insert(az, vals[2])
			cur.tdb.Insert(az, vals[3])
		}
	}
	if len(p.slices) == 0 {
		return nil, fmt.Errorf("%w: no elevation blocks", ErrParse)
	}
	for _, s := range p.slices {
		if s.tdb.Size() == 0 {
			return nil, fmt.Errorf("%w: empty azimuth sweep at %f rad", ErrParse, s.elev)
		}
	}
	sort.Slice(p.slices, func(i, j int) bool {
		return p.slices[i].elev < p.slices[j].elev
	})
	p.valid = true
	return p, nil
}

// eznecBlockAngle extracts the elevation from a block header like
// "Elevation angle: 10 deg"
func eznecBlockAngle(line string) (float64, error) {
	idx := strings.IndexRune(line, ':')
	if idx == -1 {
		return 0, fmt.Errorf("%w: bad block header '%s'", ErrParse, line)
	}
	flds := strings.Fields(line[idx+1:])
	if len(flds) == 0 {
		return 0, fmt.Errorf("%w: bad block header '%s'", ErrParse, line)
	}
	v, err := strconv.ParseFloat(flds[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad elevation in '%s'", ErrParse, line)
	}
	return v, nil
}
