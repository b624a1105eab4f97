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
	"bytes"
	"strings"
	"testing"
)

func testQuery() *GainQuery {
	return &GainQuery{
		Hbw:           Deg2Rad(4),
		Vbw:           Deg2Rad(6),
		RefGain:       20,
		FirstSideLobe: -20,
		BackLobe:      -40,
	}
}

func TestCutPlot(t *testing.T) {
	p := NewGauss()
	for _, axis := range []string{CutAzim, CutElev} {
		plt, err := CutPlot(p, testQuery(), axis)
		if err != nil {
			t.Fatal(err)
		}
		if plt == nil {
			t.Fatalf("no plot for axis %s", axis)
		}
	}
}

func TestHeatmapPlot(t *testing.T) {
	plt, err := HeatmapPlot(NewGauss(), testQuery(), 19, 10)
	if err != nil {
		t.Fatal(err)
	}
	if plt == nil {
		t.Fatal("no plot")
	}
}

func TestPolarDiagram(t *testing.T) {
	buf := new(bytes.Buffer)
	PolarDiagram(buf, NewGauss(), testQuery())
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("no SVG document written")
	}
	if !strings.Contains(out, "polygon") {
		t.Error("no pattern outline written")
	}
}
