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
)

//----------------------------------------------------------------------
// analytic pattern models
//
// All models return refGain + shape(azim, elev, hbw, vbw, lobes) in
// dB. The beamwidth convention: hbw/vbw is the one-sided angle of the
// 3-dB contour, so gain at (az=hbw, el=0) is refGain - 3 dB.
//----------------------------------------------------------------------

// clampGain applies the no-signal sentinel floor
func clampGain(g float64) float64 {
	if math.IsNaN(g) || g < SmallDB {
		return SmallDB
	}
	return g
}

// lobeClamp floors a relative shape value at the first side-lobe
// level in the forward hemisphere and at the back-lobe level behind.
func lobeClamp(az, g float64, q *GainQuery) float64 {
	if math.Abs(az) > RectAng {
		return math.Max(g, q.backLobe())
	}
	return math.Max(g, q.sideLobe())
}

// analyticMinMax: analytic models need no table scan
func analyticMinMax(q *GainQuery) (min, max float64) {
	max = q.RefGain
	min = q.RefGain + math.Max(q.backLobe(), q.sideLobe()-60)
	return
}

// beamwidths returns the query beamwidths after a sanity check
func (p *basePattern) beamwidths(q *GainQuery) (hbw, vbw float64, err error) {
	if q.Hbw <= 0 || q.Vbw <= 0 {
		err = fmt.Errorf("%w: beamwidth (%f, %f) not positive", ErrRangeInvariant, q.Hbw, q.Vbw)
		p.report(err)
	}
	return q.Hbw, q.Vbw, err
}

//----------------------------------------------------------------------
// Omni
//----------------------------------------------------------------------

// Omni is the isotropic radiator: constant gain in all directions.
type Omni struct {
	basePattern
}

// NewOmni creates an omnidirectional pattern
func NewOmni() *Omni {
	return &Omni{basePattern{kind: PatternOmni, valid: true}}
}

// Gain is constant refGain
func (p *Omni) Gain(q *GainQuery) float64 {
	p.pol = q.Pol
	return q.RefGain
}

// MinMaxGain of an omni is refGain everywhere
func (p *Omni) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	min, max = q.RefGain, q.RefGain
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// Gauss
//----------------------------------------------------------------------

// Gauss is a Gaussian main lobe tapered to the first side-lobe level.
type Gauss struct {
	basePattern
}

// NewGauss creates a Gaussian beam pattern
func NewGauss() *Gauss {
	return &Gauss{basePattern{kind: PatternGauss, valid: true}}
}

// Gain of the Gaussian beam
func (p *Gauss) Gain(q *GainQuery) float64 {
	p.pol = q.Pol
	hbw, vbw, err := p.beamwidths(q)
	if err != nil {
		return SmallDB
	}
	az, el := q.normalized()
	g := -halfPowerDB * (Sqr(az/hbw) + Sqr(el/vbw))
	return clampGain(q.RefGain + lobeClamp(az, g, q))
}

// MinMaxGain is computed analytically (no scan)
func (p *Gauss) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	min, max = analyticMinMax(q)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// CscSq
//----------------------------------------------------------------------

// CscSq is a cosecant-squared fan in elevation: constant return from
// level targets inside the fan, Gaussian roll-off outside.
type CscSq struct {
	basePattern
	fan float64 // upper fan limit (rad)
}

// NewCscSq creates a cosecant-squared pattern with the configured
// fan limit
func NewCscSq() *CscSq {
	return &CscSq{
		basePattern: basePattern{kind: PatternCscSq, valid: true},
		fan:         Deg2Rad(Cfg.Def.CscFan),
	}
}

// SetFan changes the upper fan limit (rad)
func (p *CscSq) SetFan(el1 float64) {
	p.fan = el1
}

// Gain of the cosecant-squared fan
func (p *CscSq) Gain(q *GainQuery) float64 {
	p.pol = q.Pol
	hbw, vbw, err := p.beamwidths(q)
	if err != nil {
		return SmallDB
	}
	az, el := q.normalized()
	gA := -halfPowerDB * Sqr(az/hbw)

	el0 := vbw
	el1 := math.Max(p.fan, el0)
	var gE float64
	switch {
	case el < 0:
		gE = -halfPowerDB * Sqr(el/vbw)
	case el <= el0:
		gE = 0
	case el <= el1:
		gE = -10 * math.Log10(Sqr(math.Sin(el)/math.Sin(el0)))
	default:
		edge := -10 * math.Log10(Sqr(math.Sin(el1)/math.Sin(el0)))
		gE = edge - halfPowerDB*Sqr((el-el1)/vbw)
	}
	return clampGain(q.RefGain + lobeClamp(az, gA+gE, q))
}

// MinMaxGain is computed analytically (no scan)
func (p *CscSq) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	min, max = analyticMinMax(q)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// SinXX
//----------------------------------------------------------------------

// SinXX is the sin(x)/x aperture pattern with the first side-lobe
// region floored at the query's firstSideLobe level; a natural lobe
// above that level is kept as is.
type SinXX struct {
	basePattern
}

// NewSinXX creates a sin(x)/x pattern
func NewSinXX() *SinXX {
	return &SinXX{basePattern{kind: PatternSinXX, valid: true}}
}

// per-axis sinc shape; the first side-lobe region (π ≤ |x| ≤ 2π)
// is floored at the requested lobe level
func sincShape(ang, bw, lobe float64) float64 {
	x := ang * math.Pi / bw
	ax := math.Abs(x)
	if ax < eps {
		return 0
	}
	s := 20 * math.Log10(math.Abs(Sinc(x)))
	if ax >= math.Pi && ax <= 2*math.Pi && s < lobe {
		s = lobe
	}
	return s
}

// Gain of the sin(x)/x pattern
func (p *SinXX) Gain(q *GainQuery) float64 {
	p.pol = q.Pol
	hbw, vbw, err := p.beamwidths(q)
	if err != nil {
		return SmallDB
	}
	az, el := q.normalized()
	sl := q.sideLobe()
	g := sincShape(az, hbw, sl) + sincShape(el, vbw, sl)
	if math.Abs(az) > RectAng {
		g = math.Max(g, q.backLobe())
	}
	// far side lobes never fall below the pattern floor
	g = math.Max(g, math.Max(q.backLobe(), sl-60))
	return clampGain(q.RefGain + g)
}

// MinMaxGain is computed analytically (no scan)
func (p *SinXX) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	min, max = analyticMinMax(q)
	p.storeMinMax(q, min, max)
	return
}

//----------------------------------------------------------------------
// Pedestal
//----------------------------------------------------------------------

// Pedestal is flat at refGain inside (±hbw/2, ±vbw/2) and falls
// linearly (in dB) to the back-lobe level at the domain edge.
type Pedestal struct {
	basePattern
}

// NewPedestal creates a pedestal pattern
func NewPedestal() *Pedestal {
	return &Pedestal{basePattern{kind: PatternPedestal, valid: true}}
}

// linear fall from 0 dB at 'edge' to 'lobe' dB at 'limit'
func pedestalFall(ang, edge, limit, lobe float64) float64 {
	a := math.Abs(ang)
	if a <= edge {
		return 0
	}
	if a >= limit {
		return lobe
	}
	return lobe * (a - edge) / (limit - edge)
}

// Gain of the pedestal pattern
func (p *Pedestal) Gain(q *GainQuery) float64 {
	p.pol = q.Pol
	hbw, vbw, err := p.beamwidths(q)
	if err != nil {
		return SmallDB
	}
	az, el := q.normalized()
	bl := q.backLobe()
	g := math.Min(
		pedestalFall(az, hbw/2, math.Pi, bl),
		pedestalFall(el, vbw/2, RectAng, bl),
	)
	return clampGain(q.RefGain + g)
}

// MinMaxGain is computed analytically (no scan)
func (p *Pedestal) MinMaxGain(q *GainQuery) (min, max float64) {
	if min, max, ok := p.cachedMinMax(q); ok {
		return min, max
	}
	max = q.RefGain
	min = q.RefGain + q.backLobe()
	p.storeMinMax(q, min, max)
	return
}
