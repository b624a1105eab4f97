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

	lua "github.com/Shopify/go-lua"
)

// NewLuaShape builds a Shape from a LUA script. The script is run
// once and must define a global function
//
//	function shape(az, el, hbw, vbw) ... return g end
//
// returning the relative gain in dB (angles in radians).
func NewLuaShape(script string) (Shape, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := lua.DoFile(state, script); err != nil {
		return nil, err
	}
	state.Global("shape")
	if !state.IsFunction(-1) {
		return nil, errors.New("script defines no 'shape' function")
	}
	state.Pop(1)

	return func(az, el, hbw, vbw float64) float64 {
		state.Global("shape")
		state.PushNumber(az)
		state.PushNumber(el)
		state.PushNumber(hbw)
		state.PushNumber(vbw)
		if err := state.ProtectedCall(4, 1, 0); err != nil {
			return SmallDB
		}
		g, ok := state.ToNumber(-1)
		state.Pop(1)
		if !ok {
			return SmallDB
		}
		return g
	}, nil
}
