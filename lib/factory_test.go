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
	"os"
	"path/filepath"
	"testing"
)

// write a fixture file into a scratch directory
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDispatch(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		kind PatternType
	}{
		{"flat.pat", flatPAT(), PatternTable},
		{"flat.rel", relFixture, PatternRelTable},
		{"flat.cru", cruiseFlat, PatternCruise},
		{"flat.mon", monoFixture(0, 0, -3, 90), PatternMonopulse},
		{"flat.bil", bilFixture, PatternBiLinear},
		{"flat.nsm", nsmaFixture, PatternNSMA},
		{"flat.ezn", eznecMath, PatternEZNEC},
		{"flat.xfd", uanFixture(true, -10, -20), PatternXFDTD},
		{"flat.uan", uanFixture(true, -10, -20), PatternXFDTD},
		{"FLAT.PAT", flatPAT(), PatternTable}, // case-insensitive suffix
	} {
		path := writeTemp(t, tc.name, tc.data)
		p, err := LoadPatternFile(path, 9500)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if p.Type() != tc.kind {
			t.Errorf("%s: type = %s, want %s", tc.name, p.Type(), tc.kind)
		}
		if !p.Valid() {
			t.Errorf("%s: not valid", tc.name)
		}
		if p.Filename() != path {
			t.Errorf("%s: filename = %s", tc.name, p.Filename())
		}
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	path := writeTemp(t, "pattern.txt", "not a pattern\n")
	if _, err := LoadPatternFile(path, 0); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want unknown format", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadPatternFile("/nonexistent/file.pat", 0); !errors.Is(err, ErrFileIO) {
		t.Errorf("error = %v, want file i/o", err)
	}
}

func TestLoadParseFailure(t *testing.T) {
	path := writeTemp(t, "broken.pat", "0 3\n1\n0 0\n1\n0 0\n")
	p, err := LoadPatternFile(path, 0)
	if err == nil {
		t.Fatal("no error for broken file")
	}
	// no partial pattern is returned
	if p != nil {
		t.Errorf("partial pattern returned: %v", p)
	}
}

func TestTypeNames(t *testing.T) {
	for _, kind := range []PatternType{
		PatternOmni, PatternGauss, PatternCscSq, PatternSinXX,
		PatternPedestal, PatternCustom, PatternTable, PatternRelTable,
		PatternCruise, PatternMonopulse, PatternBiLinear,
		PatternNSMA, PatternEZNEC, PatternXFDTD,
	} {
		back, err := PatternTypeFromName(kind.String())
		if err != nil {
			t.Fatal(err)
		}
		if back != kind {
			t.Errorf("round trip failed for %s", kind)
		}
	}
	if _, err := PatternTypeFromName("bogus"); err == nil {
		t.Error("no error for bogus type name")
	}
}

func TestPolarityNames(t *testing.T) {
	for _, pol := range []Polarity{
		PolUnknown, PolHorizontal, PolVertical, PolRightCircular,
		PolLeftCircular, PolHorzVert, PolVertHorz,
	} {
		back, err := ParsePolarity(pol.String())
		if err != nil {
			t.Fatal(err)
		}
		if back != pol {
			t.Errorf("round trip failed for %s", pol)
		}
	}
}
