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
	"errors"
	"math"
	"strings"
	"testing"
)

const eznecMath = `EZNEC ver. 6.0
Dipole test, Math angles

Elevation angle: 0 deg
Deg     V dB    H dB    Tot dB
-180    -20     -8      -7
-90     -25     -14     -13
0       -20     -2      -1
90      -25     -14     -13
180     -20     -8      -7

Elevation angle: 10 deg
Deg     V dB    H dB    Tot dB
-180    -22     -10     -9
-90     -27     -16     -15
0       -22     -4      -3
90      -27     -16     -15
180     -22     -10     -9
`

func TestEZNECMath(t *testing.T) {
	p, err := parseEZNEC(strings.NewReader(eznecMath))
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != PatternEZNEC || p.Compass() {
		t.Fatalf("type = %s, compass = %v", p.Type(), p.Compass())
	}
	EPS := 1e-9
	// total column at the lower slice
	q := &GainQuery{}
	if got := p.Gain(q); math.Abs(got+1) > EPS {
		t.Errorf("total gain = %f, want -1", got)
	}
	// polarity selects the V / H column
	qv := &GainQuery{Pol: PolVertical}
	if got := p.Gain(qv); math.Abs(got+20) > EPS {
		t.Errorf("V gain = %f, want -20", got)
	}
	qh := &GainQuery{Pol: PolHorizontal}
	if got := p.Gain(qh); math.Abs(got+2) > EPS {
		t.Errorf("H gain = %f, want -2", got)
	}
	// halfway between the elevation slices
	q5 := &GainQuery{Elev: Deg2Rad(5)}
	if got := p.Gain(q5); math.Abs(got+2) > EPS {
		t.Errorf("blended gain = %f, want -2", got)
	}
	// elevations outside the slices clamp
	q20 := &GainQuery{Elev: Deg2Rad(20)}
	if got := p.Gain(q20); math.Abs(got+3) > EPS {
		t.Errorf("clamped gain = %f, want -3", got)
	}
}

const eznecCompass = `EZNEC ver. 6.0
Dipole test, Compass bearings

Elevation angle: 0 deg
Deg     V dB    H dB    Tot dB
0       -20     -2      -1
90      -25     -14     -13
180     -24     -12     -11
270     -25     -14     -13
`

func TestEZNECCompass(t *testing.T) {
	p, err := parseEZNEC(strings.NewReader(eznecCompass))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Compass() {
		t.Fatal("compass convention not detected")
	}
	EPS := 1e-9
	// compass 0 (north) maps to math az = 90°
	q := &GainQuery{Azim: Deg2Rad(90)}
	if got := p.Gain(q); math.Abs(got+1) > EPS {
		t.Errorf("north gain = %f, want -1", got)
	}
	// compass 90 (east) maps to math az = 0
	q2 := &GainQuery{}
	if got := p.Gain(q2); math.Abs(got+13) > EPS {
		t.Errorf("east gain = %f, want -13", got)
	}
	// compass 180 (south) maps to math az = -90°
	q3 := &GainQuery{Azim: Deg2Rad(-90)}
	if got := p.Gain(q3); math.Abs(got+11) > EPS {
		t.Errorf("south gain = %f, want -11", got)
	}
}

func TestEZNECErrors(t *testing.T) {
	// no elevation blocks
	hdr := "EZNEC ver. 6.0\nMath angles\n"
	if _, err := parseEZNEC(strings.NewReader(hdr)); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want parse", err)
	}
	// block without sweep rows
	empty := hdr + "Elevation angle: 0 deg\nDeg V dB H dB Tot dB\n"
	if _, err := parseEZNEC(strings.NewReader(empty)); !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want parse", err)
	}
}
