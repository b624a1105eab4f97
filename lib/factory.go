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
	"os"
	"path/filepath"
	"strings"
)

//----------------------------------------------------------------------
// factory: suffix-dispatched pattern file loading
//----------------------------------------------------------------------

// Loader turns pattern files into pattern handles. The frequency
// hint (MHz) serves parsers whose files may lack a frequency; the
// sink (optional) receives query-time errors of loaded patterns.
type Loader struct {
	FreqHint float64 // MHz
	Sink     ErrorSink
}

// NewLoader with a frequency hint (MHz); hint 0 selects the
// configured default.
func NewLoader(freqHintMHz float64) *Loader {
	if freqHintMHz <= 0 {
		freqHintMHz = Cfg.Def.FreqHint
	}
	return &Loader{FreqHint: freqHintMHz}
}

// Load a pattern file; the parser is selected by the (lowercased)
// filename suffix. Parse failures return an error and no pattern.
func (l *Loader) Load(path string) (p Pattern, err error) {
	fIn, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer fIn.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pat":
		p, err = parsePAT(fIn)
	case ".rel":
		p, err = parseREL(fIn)
	case ".cru":
		p, err = parseCRUISE(fIn)
	case ".mon":
		p, err = parseMonopulse(fIn)
	case ".bil":
		p, err = parseBiLinear(fIn)
	case ".nsm":
		p, err = parseNSMA(fIn)
	case ".ezn":
		p, err = parseEZNEC(fIn)
	case ".xfd", ".uan":
		p, err = parseXFDTD(fIn, l.FreqHint)
	default:
		return nil, fmt.Errorf("%w: suffix '%s'", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if base := basePatternOf(p); base != nil {
		base.name = path
		base.sink = l.Sink
	}
	return p, nil
}

// LoadPatternFile is the package-level convenience entry
func LoadPatternFile(path string, freqHintMHz float64) (Pattern, error) {
	return NewLoader(freqHintMHz).Load(path)
}

// basePatternOf extracts the shared pattern state of a variant
func basePatternOf(p Pattern) *basePattern {
	switch t := p.(type) {
	case *Omni:
		return &t.basePattern
	case *Gauss:
		return &t.basePattern
	case *CscSq:
		return &t.basePattern
	case *SinXX:
		return &t.basePattern
	case *Pedestal:
		return &t.basePattern
	case *CustomPattern:
		return &t.basePattern
	case *TablePattern:
		return &t.basePattern
	case *CruisePattern:
		return &t.basePattern
	case *MonopulsePattern:
		return &t.basePattern
	case *BiLinearPattern:
		return &t.basePattern
	case *NSMAPattern:
		return &t.basePattern
	case *EZNECPattern:
		return &t.basePattern
	case *XFDTDPattern:
		return &t.basePattern
	}
	return nil
}

// SetErrorSink wires a pattern's query-error reporting to a sink
func SetErrorSink(p Pattern, sink ErrorSink) {
	if base := basePatternOf(p); base != nil {
		base.sink = sink
	}
}
