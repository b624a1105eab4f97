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

func TestWrapPi(t *testing.T) {
	EPS := 1e-12
	for _, tc := range []struct{ in, out float64 }{
		{0, 0},
		{1, 1},
		{-1, -1},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2.5 * math.Pi, 0.5 * math.Pi},
		{-2.5 * math.Pi, -0.5 * math.Pi},
	} {
		if got := WrapPi(tc.in); math.Abs(got-tc.out) > EPS {
			t.Errorf("WrapPi(%f) = %f, want %f", tc.in, got, tc.out)
		}
	}
	// full-turn invariance
	for _, x := range []float64{0.5, -1.3, 2.9, -3.0} {
		if d := math.Abs(WrapPi(x+CircAng) - WrapPi(x)); d > EPS {
			t.Errorf("WrapPi not 2π-periodic at %f (delta %e)", x, d)
		}
	}
}

func TestWrap2Pi(t *testing.T) {
	EPS := 1e-12
	for _, tc := range []struct{ in, out float64 }{
		{0, 0},
		{-1, CircAng - 1},
		{CircAng + 1, 1},
	} {
		if got := Wrap2Pi(tc.in); math.Abs(got-tc.out) > EPS {
			t.Errorf("Wrap2Pi(%f) = %f, want %f", tc.in, got, tc.out)
		}
	}
}

func TestWrapElev(t *testing.T) {
	EPS := 1e-12
	for _, tc := range []struct{ in, out float64 }{
		{0, 0},
		{RectAng, RectAng},
		{-RectAng, -RectAng},
		{RectAng + 0.1, RectAng - 0.1}, // reflected past the pole
		{-RectAng - 0.1, -RectAng + 0.1},
	} {
		if got := WrapElev(tc.in); math.Abs(got-tc.out) > EPS {
			t.Errorf("WrapElev(%f) = %f, want %f", tc.in, got, tc.out)
		}
	}
}

func TestDbLin(t *testing.T) {
	if got := Lin2Db(0); got != SmallDB {
		t.Errorf("Lin2Db(0) = %f, want %f", got, SmallDB)
	}
	for _, g := range []float64{-30, -3, 0, 3, 10, 40} {
		if d := math.Abs(Lin2Db(Db2Lin(g)) - g); d > 1e-9 {
			t.Errorf("dB round trip failed for %f (delta %e)", g, d)
		}
	}
}

func TestSinc(t *testing.T) {
	if got := Sinc(0); got != 1 {
		t.Errorf("Sinc(0) = %f", got)
	}
	if got := math.Abs(Sinc(math.Pi)); got > 1e-12 {
		t.Errorf("Sinc(π) = %e, want 0", got)
	}
}
