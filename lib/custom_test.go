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
	"testing"
)

func TestCustomShape(t *testing.T) {
	CustomShapes["cone"] = func(az, el, hbw, vbw float64) float64 {
		return -6 * (math.Abs(az)/hbw + math.Abs(el)/vbw)
	}
	defer delete(CustomShapes, "cone")

	p, err := NewCustom("cone")
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != PatternCustom {
		t.Fatalf("type = %s", p.Type())
	}
	q := &GainQuery{Hbw: 0.1, Vbw: 0.1, RefGain: 14, BackLobe: -40}
	if got := p.Gain(q); got != 14.0 {
		t.Errorf("boresight gain = %f, want 14", got)
	}
	q2 := *q
	q2.Azim = 0.1
	if got := p.Gain(&q2); math.Abs(got-8) > 1e-9 {
		t.Errorf("gain at one beamwidth = %f, want 8", got)
	}
	// min/max from the raster scan brackets the queries
	min, max := p.MinMaxGain(q)
	if max != 14 {
		t.Errorf("max = %f, want 14", max)
	}
	if min > 14-40+1e-9 {
		t.Errorf("min = %f", min)
	}
}

func TestUnknownShape(t *testing.T) {
	if _, err := NewCustom("no-such-shape"); err == nil {
		t.Error("no error for unknown shape")
	}
}

const luaShape = `function shape(az, el, hbw, vbw)
  return -3 * ((az/hbw)^2 + (el/vbw)^2)
end
`

func TestLuaShape(t *testing.T) {
	path := writeTemp(t, "shape.lua", luaShape)
	p, err := NewCustom("lua:" + path)
	if err != nil {
		t.Fatal(err)
	}
	q := &GainQuery{Hbw: 0.1, Vbw: 0.1, RefGain: 20, BackLobe: -40}
	if got := p.Gain(q); got != 20.0 {
		t.Errorf("boresight gain = %f, want 20", got)
	}
	q2 := *q
	q2.Azim = 0.1
	if got := p.Gain(&q2); math.Abs(got-17) > 1e-9 {
		t.Errorf("gain at one beamwidth = %f, want 17", got)
	}
}

func TestLuaShapeMissing(t *testing.T) {
	path := writeTemp(t, "empty.lua", "x = 1\n")
	if _, err := NewCustom("lua:" + path); err == nil {
		t.Error("no error for script without shape function")
	}
}
