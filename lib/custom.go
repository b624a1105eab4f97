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
	"math"
	"strings"
)

//----------------------------------------------------------------------
// custom analytic shapes
//----------------------------------------------------------------------

// Shape computes a relative gain (dB, 0 at boresight) for a look
// direction and beamwidth pair. Custom shapes extend the built-in
// analytic models; a pattern wraps one shape.
type Shape func(az, el, hbw, vbw float64) float64

// CustomShapes is a list of registered shape implementations
var CustomShapes = make(map[string]Shape)

// NewShape resolves a shape specification. Known specifications:
// * a name registered in CustomShapes
// * "plugin:<path>": a Go plugin exporting 'Shape'
// * "lua:<path>": a LUA script defining a 'shape' function
func NewShape(spec string) (shape Shape, err error) {
	if shape, ok := CustomShapes[spec]; ok {
		return shape, nil
	}
	ref := strings.SplitN(spec, ":", 2)
	switch ref[0] {
	case "plugin":
		if len(ref) < 2 {
			return nil, fmt.Errorf("incomplete plugin specification '%s'", spec)
		}
		return loadShapePlugin(ref[1])
	case "lua":
		if len(ref) < 2 {
			return nil, fmt.Errorf("incomplete LUA script specification '%s'", spec)
		}
		return NewLuaShape(ref[1])
	}
	return nil, fmt.Errorf("unknown shape '%s'", spec)
}

//----------------------------------------------------------------------

// CustomPattern is an analytic pattern whose shape function is
// supplied by the host (registered, plugin or LUA).
type CustomPattern struct {
	basePattern
	shape Shape
}

// NewCustom creates a pattern from a shape specification
func NewCustom(spec string) (p *CustomPattern, err error) {
	p = &CustomPattern{basePattern: basePattern{kind: PatternCustom}}
	if p.shape, err = NewShape(spec); err != nil {
		return nil, err
	}
	p.name = spec
	p.valid = true
	return p, nil
}

// Gain from the custom shape (refGain-centered, floored at the
// back-lobe level behind like the built-in analytic models)
func (p *CustomPattern) Gain(q *GainQuery) float64 {
	if !p.valid || p.shape == nil {
		return SmallDB
	}
	p.pol = q.Pol
	hbw, vbw, err := p.beamwidths(q)
	if err != nil {
		return SmallDB
	}
	az, el := q.normalized()
	g := p.shape(az, el, hbw, vbw)
	if math.Abs(az) > RectAng {
		g = math.Max(g, q.backLobe())
	}
	return clampGain(q.RefGain + g)
}

// MinMaxGain scans the shape on a coarse raster (custom shapes
// carry no closed-form extremes)
func (p *CustomPattern) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	if !p.valid || p.shape == nil {
		return SmallDB, SmallDB
	}
	const nAz, nEl = 72, 36
	first := true
	for i := 0; i <= nAz; i++ {
		az := -math.Pi + CircAng*float64(i)/nAz
		for j := 0; j <= nEl; j++ {
			el := -RectAng + math.Pi*float64(j)/nEl
			g := p.Gain(&GainQuery{
				Azim: az, Elev: el, Pol: q.Pol,
				Hbw: q.Hbw, Vbw: q.Vbw,
				RefGain:       q.RefGain,
				FirstSideLobe: q.FirstSideLobe,
				BackLobe:      q.BackLobe,
				Freq:          q.Freq,
			})
			if first || g < min {
				min = g
			}
			if first || g > max {
				max = g
			}
			first = false
		}
	}
	p.storeMinMax(q, min, max)
	return
}
