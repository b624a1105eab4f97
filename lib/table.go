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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

//----------------------------------------------------------------------
// 1-D interpolation tables
//----------------------------------------------------------------------

// InterpTable is an ordered mapping from a real key to a real value.
// Keys are kept strictly ascending; lookups clamp to the endpoints
// (no extrapolation) and interpolate linearly in between. Tables are
// mutated during construction only; lookups allocate nothing.
type InterpTable struct {
	keys []float64
	vals []float64
	pl   interp.PiecewiseLinear
}

// NewInterpTable creates an empty table with pre-sized storage
func NewInterpTable(capacity int) *InterpTable {
	return &InterpTable{
		keys: make([]float64, 0, capacity),
		vals: make([]float64, 0, capacity),
	}
}

// Insert a sample keeping keys sorted; duplicate keys overwrite.
func (t *InterpTable) Insert(key, val float64) {
	pos := sort.SearchFloat64s(t.keys, key)
	if pos < len(t.keys) && t.keys[pos] == key {
		t.vals[pos] = val
	} else {
		t.keys = append(t.keys, 0)
		t.vals = append(t.vals, 0)
		copy(t.keys[pos+1:], t.keys[pos:])
		copy(t.vals[pos+1:], t.vals[pos:])
		t.keys[pos] = key
		t.vals[pos] = val
	}
	if len(t.keys) > 1 {
		_ = t.pl.Fit(t.keys, t.vals)
	}
}

// Size returns the number of stored samples
func (t *InterpTable) Size() int {
	return len(t.keys)
}

// Bounds returns the smallest and largest key
func (t *InterpTable) Bounds() (lo, hi float64) {
	if len(t.keys) == 0 {
		return 0, 0
	}
	return t.keys[0], t.keys[len(t.keys)-1]
}

// Extremes returns the smallest and largest stored value
func (t *InterpTable) Extremes() (min, max float64) {
	if len(t.vals) == 0 {
		return SmallDB, SmallDB
	}
	return floats.Min(t.vals), floats.Max(t.vals)
}

// Lookup a key: clamped at the endpoints, linear in between.
// An empty table yields the SmallDB sentinel.
func (t *InterpTable) Lookup(key float64) float64 {
	switch n := len(t.keys); n {
	case 0:
		return SmallDB
	case 1:
		return t.vals[0]
	default:
		if key <= t.keys[0] {
			return t.vals[0]
		}
		if key >= t.keys[n-1] {
			return t.vals[n-1]
		}
		return t.pl.Predict(key)
	}
}

//----------------------------------------------------------------------

// ComplexTable is the complex-valued sibling of InterpTable.
// Interpolation is component-wise linear on real and imaginary parts.
type ComplexTable struct {
	keys []float64
	vals []complex128
}

// NewComplexTable creates an empty table with pre-sized storage
func NewComplexTable(capacity int) *ComplexTable {
	return &ComplexTable{
		keys: make([]float64, 0, capacity),
		vals: make([]complex128, 0, capacity),
	}
}

// Insert a sample keeping keys sorted; duplicate keys overwrite.
func (t *ComplexTable) Insert(key float64, val complex128) {
	pos := sort.SearchFloat64s(t.keys, key)
	if pos < len(t.keys) && t.keys[pos] == key {
		t.vals[pos] = val
		return
	}
	t.keys = append(t.keys, 0)
	t.vals = append(t.vals, 0)
	copy(t.keys[pos+1:], t.keys[pos:])
	copy(t.vals[pos+1:], t.vals[pos:])
	t.keys[pos] = key
	t.vals[pos] = val
}

// Size returns the number of stored samples
func (t *ComplexTable) Size() int {
	return len(t.keys)
}

// Bounds returns the smallest and largest key
func (t *ComplexTable) Bounds() (lo, hi float64) {
	if len(t.keys) == 0 {
		return 0, 0
	}
	return t.keys[0], t.keys[len(t.keys)-1]
}

// Lookup a key: clamped at the endpoints, component-wise linear
// in between. An empty table yields zero.
func (t *ComplexTable) Lookup(key float64) complex128 {
	n := len(t.keys)
	switch {
	case n == 0:
		return 0
	case key <= t.keys[0]:
		return t.vals[0]
	case key >= t.keys[n-1]:
		return t.vals[n-1]
	}
	pos := sort.SearchFloat64s(t.keys, key)
	if t.keys[pos] == key {
		return t.vals[pos]
	}
	f := (key - t.keys[pos-1]) / (t.keys[pos] - t.keys[pos-1])
	return clerp(t.vals[pos-1], t.vals[pos], f)
}

//----------------------------------------------------------------------
// symmetric tables
//----------------------------------------------------------------------

// Symmetry describes how stored samples extend to the full domain
type Symmetry int

// valid symmetry codes
const (
	SymNone     Symmetry = 1 // samples cover the full domain
	SymMirror   Symmetry = 2 // pattern mirrored about 0
	SymQuadrant Symmetry = 4 // samples cover [0, π/2] only
)

// ValidSymmetry returns true for a known symmetry code
func ValidSymmetry(s Symmetry) bool {
	return s == SymNone || s == SymMirror || s == SymQuadrant
}

// Fold a key into the stored range
func (s Symmetry) Fold(key float64) float64 {
	switch s {
	case SymMirror:
		return math.Abs(key)
	case SymQuadrant:
		key = math.Abs(WrapPi(key))
		if key > RectAng {
			key = math.Pi - key
		}
		return key
	}
	return key
}

// SymTable is an InterpTable with a symmetry code: lookup keys are
// folded into the stored range before interpolation.
type SymTable struct {
	InterpTable
	sym Symmetry
}

// NewSymTable creates an empty symmetric table
func NewSymTable(sym Symmetry, capacity int) *SymTable {
	return &SymTable{
		InterpTable: InterpTable{
			keys: make([]float64, 0, capacity),
			vals: make([]float64, 0, capacity),
		},
		sym: sym,
	}
}

// Symmetry code of the table
func (t *SymTable) Symmetry() Symmetry {
	return t.sym
}

// SetSymmetry changes the symmetry code
func (t *SymTable) SetSymmetry(sym Symmetry) {
	t.sym = sym
}

// Lookup folds the key per the symmetry code, then interpolates
func (t *SymTable) Lookup(key float64) float64 {
	return t.InterpTable.Lookup(t.sym.Fold(key))
}
