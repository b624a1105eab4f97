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
	"math"
	"strings"
	"testing"
)

const bilFixture = `// two frequency planes
2
9000 10000
-10 10 10
-10 10 10
1 1 1
1 1 1
1 1 1
3 3 3
3 3 3
3 3 3
`

func TestBiLinear(t *testing.T) {
	p, err := parseBiLinear(strings.NewReader(bilFixture))
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != PatternBiLinear {
		t.Fatalf("type = %s", p.Type())
	}
	EPS := 1e-9
	// linear in frequency between the planes
	for _, tc := range []struct{ freq, gain float64 }{
		{9e9, 1},
		{9.5e9, 2},
		{10e9, 3},
		{8e9, 1},  // clamps low
		{11e9, 3}, // clamps high
	} {
		q := &GainQuery{Freq: tc.freq}
		if got := p.Gain(q); math.Abs(got-tc.gain) > EPS {
			t.Errorf("gain at %e Hz = %f, want %f", tc.freq, got, tc.gain)
		}
	}
	// refGain offsets the stored values
	q := &GainQuery{Freq: 9e9, RefGain: 10}
	if got := p.Gain(q); math.Abs(got-11) > EPS {
		t.Errorf("offset gain = %f, want 11", got)
	}
	min, max := p.MinMaxGain(&GainQuery{Freq: 9.5e9})
	if math.Abs(min-1) > EPS || math.Abs(max-3) > EPS {
		t.Errorf("min/max = (%f, %f)", min, max)
	}
}

const bilSlope = `1
9000
-10 10 10
-10 10 10
0 0 0
-6 -6 -6
-12 -12 -12
`

func TestBiLinearAngles(t *testing.T) {
	p, err := parseBiLinear(strings.NewReader(bilSlope))
	if err != nil {
		t.Fatal(err)
	}
	EPS := 1e-9
	// gain falls linearly with azimuth (rows are per azimuth)
	for _, tc := range []struct{ azDeg, gain float64 }{
		{-10, 0},
		{-5, -3},
		{0, -6},
		{10, -12},
		{-60, 0},  // clamped to the grid
		{60, -12}, // clamped to the grid
	} {
		q := &GainQuery{Azim: Deg2Rad(tc.azDeg), Freq: 9e9}
		if got := p.Gain(q); math.Abs(got-tc.gain) > EPS {
			t.Errorf("gain at %f° = %f, want %f", tc.azDeg, got, tc.gain)
		}
	}
}
