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
	"math/rand"
	"testing"
)

func TestNumbers(t *testing.T) {
	EPS := 1e-5
	for i := 0; i < 100; i++ {
		v := math.Round((rand.Float64() * 100000))
		e := rand.Intn(19) - 9
		k := math.Pow10(e)
		s := float64(2*(rand.Int()%2) - 1)
		f := s * v * k

		sf := FormatNumber(f, 5)
		ft, err := ParseNumber(sf)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("%e -- %s -- %e", f, sf, ft)
		if d := math.Abs(ft-f) / f; d > EPS {
			t.Errorf("failed: %f", d)
		}
	}
}

func TestFrequency(t *testing.T) {
	EPS := 1e-6
	for _, tc := range []struct {
		spec string
		freq float64
	}{
		{"435M", 435e6},
		{"430M-440M", 435e6},
		{"9.5G", 9.5e9},
		{"8G-12G", 10e9},
	} {
		freq, err := GetFrequency(tc.spec)
		if err != nil {
			t.Fatal(err)
		}
		if d := math.Abs(freq-tc.freq) / tc.freq; d > EPS {
			t.Errorf("GetFrequency(%s) = %e, want %e", tc.spec, freq, tc.freq)
		}
	}
}
