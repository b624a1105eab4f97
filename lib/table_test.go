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

func TestInterpTable(t *testing.T) {
	EPS := 1e-12
	tbl := NewInterpTable(4)
	// insert out of order
	tbl.Insert(2, 20)
	tbl.Insert(0, 0)
	tbl.Insert(1, 10)
	tbl.Insert(3, 30)
	if tbl.Size() != 4 {
		t.Fatalf("size = %d", tbl.Size())
	}
	lo, hi := tbl.Bounds()
	if lo != 0 || hi != 3 {
		t.Errorf("bounds = (%f, %f)", lo, hi)
	}
	for _, tc := range []struct{ key, val float64 }{
		{0, 0}, {1, 10}, {0.5, 5}, {2.25, 22.5},
		{-1, 0},  // clamp low
		{10, 30}, // clamp high
	} {
		if got := tbl.Lookup(tc.key); math.Abs(got-tc.val) > EPS {
			t.Errorf("Lookup(%f) = %f, want %f", tc.key, got, tc.val)
		}
	}
	// duplicate key overwrites
	tbl.Insert(1, 99)
	if got := tbl.Lookup(1); got != 99 {
		t.Errorf("overwrite failed: %f", got)
	}
	min, max := tbl.Extremes()
	if min != 0 || max != 99 {
		t.Errorf("extremes = (%f, %f)", min, max)
	}
}

func TestInterpTableDegenerate(t *testing.T) {
	tbl := NewInterpTable(0)
	if got := tbl.Lookup(1); got != SmallDB {
		t.Errorf("empty table lookup = %f", got)
	}
	tbl.Insert(5, 7)
	if got := tbl.Lookup(-100); got != 7 {
		t.Errorf("single sample lookup = %f", got)
	}
}

func TestComplexTable(t *testing.T) {
	EPS := 1e-12
	tbl := NewComplexTable(2)
	tbl.Insert(0, complex(1, 0))
	tbl.Insert(1, complex(0, 1))
	got := tbl.Lookup(0.5)
	if math.Abs(real(got)-0.5) > EPS || math.Abs(imag(got)-0.5) > EPS {
		t.Errorf("component-wise lerp failed: %v", got)
	}
	if got := tbl.Lookup(2); got != complex(0, 1) {
		t.Errorf("clamp failed: %v", got)
	}
}

func TestSymmetryFold(t *testing.T) {
	EPS := 1e-12
	check := func(sym Symmetry, in, out float64) {
		if got := sym.Fold(in); math.Abs(got-out) > EPS {
			t.Errorf("sym %d: Fold(%f) = %f, want %f", sym, in, got, out)
		}
	}
	check(SymNone, -1.2, -1.2)
	check(SymMirror, -1.2, 1.2)
	check(SymMirror, 1.2, 1.2)
	check(SymQuadrant, 0.3, 0.3)
	check(SymQuadrant, -0.3, 0.3)
	check(SymQuadrant, math.Pi-0.3, 0.3)
	check(SymQuadrant, -math.Pi+0.3, 0.3)
}

func TestSymTable(t *testing.T) {
	EPS := 1e-12
	tbl := NewSymTable(SymMirror, 3)
	tbl.Insert(0, 0)
	tbl.Insert(1, -10)
	tbl.Insert(2, -20)
	for _, az := range []float64{0.25, 0.5, 1.5, 2} {
		if d := math.Abs(tbl.Lookup(az) - tbl.Lookup(-az)); d > EPS {
			t.Errorf("mirror lookup asymmetric at %f (delta %e)", az, d)
		}
	}
	if got := tbl.Lookup(-1); got != -10 {
		t.Errorf("Lookup(-1) = %f", got)
	}
}

func TestGridBilinear(t *testing.T) {
	EPS := 1e-12
	g := NewGrid(
		Axis{Min: 0, Step: 1, N: 3},
		Axis{Min: 0, Step: 1, N: 2},
	)
	// plane z = x + 2y
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			g.Vals[i][j] = float64(i) + 2*float64(j)
		}
	}
	for _, tc := range []struct{ x, y, z float64 }{
		{0, 0, 0},
		{0.5, 0, 0.5},
		{1.5, 0.5, 2.5},
		{2, 1, 4},
		{-5, -5, 0}, // clamp
		{9, 9, 4},   // clamp
	} {
		if got := g.Bilinear(tc.x, tc.y); math.Abs(got-tc.z) > EPS {
			t.Errorf("Bilinear(%f, %f) = %f, want %f", tc.x, tc.y, got, tc.z)
		}
	}
	min, max := g.Extremes()
	if min != 0 || max != 4 {
		t.Errorf("extremes = (%f, %f)", min, max)
	}
}
