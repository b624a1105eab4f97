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
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	mags = "fpnum kMGTP" // magnitudes from -15 to 15
)

// ParseNumber with magnitude (command-line frequencies like "9.5G")
func ParseNumber(s string) (float64, error) {
	rs := []rune(strings.TrimSpace(s))
	lr := len(rs)
	if lr == 0 {
		return 0, errors.New("empty number string")
	}
	f := 1.
	if i := strings.IndexRune(mags, rs[lr-1]); i != -1 {
		f = math.Pow10(-15 + 3*i)
		rs = rs[:lr-1]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(rs)), 64)
	if err != nil {
		return 0, err
	}
	return f * v, nil
}

// FormatNumber with magnitude
func FormatNumber(v float64, n int) string {
	sign := ' '
	if v < 0 {
		sign = '-'
	}
	v = math.Abs(v)
	for i, mag := range mags {
		f := v / math.Pow10(-15+3*i)
		if f < 1000 || i == len(mags)-1 {
			k := (n - 1) - int(math.Log10(f))
			return strings.TrimSpace(fmt.Sprintf("%c%*.*f %c", sign, n, k, f, mag))
		}
	}
	return ""
}
