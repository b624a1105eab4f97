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
	"strings"
)

// handle specified range
func GetRange(s string) (from, to float64, err error) {
	fRange := strings.SplitN(s, "-", 2)
	switch len(fRange) {
	case 1:
		var f float64
		if f, err = ParseNumber(fRange[0]); err != nil {
			return
		}
		from, to = f, f
	case 2:
		if from, err = ParseNumber(fRange[0]); err != nil {
			return
		}
		if to, err = ParseNumber(fRange[1]); err != nil {
			return
		}
	default:
		err = fmt.Errorf("can't handle range '%s'", s)
	}
	return
}

// GetFrequency parses a band spec ("435M" or "430M-440M") and
// returns the center frequency (Hz)
func GetFrequency(s string) (freq float64, err error) {
	var from, to float64
	if from, to, err = GetRange(s); err == nil {
		freq = (from + to) / 2
	}
	return
}
