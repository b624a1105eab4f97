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
	"encoding/json"
	"os"
)

// Default values (command-line options)
type Default struct {
	FreqHint float64 `json:"freqHint"` // default frequency hint (MHz)
	SideLobe float64 `json:"sideLobe"` // first side-lobe level (dB, rel.)
	BackLobe float64 `json:"backLobe"` // back-lobe level (dB, rel.)
	CscFan   float64 `json:"cscFan"`   // cosecant² fan limit (degree)
	Hbw      float64 `json:"hbw"`      // horizontal beamwidth (degree)
	Vbw      float64 `json:"vbw"`      // vertical beamwidth (degree)
}

// RenderConfig for plot/diagram settings
type RenderConfig struct {
	Width   int     `json:"width"`   // canvas width (pixels)
	Height  int     `json:"height"`  // canvas height (pixels)
	Span    float64 `json:"span"`    // dynamic range of polar diagrams (dB)
	Samples int     `json:"samples"` // samples per pattern cut
}

// CatalogConfig for the pattern database
type CatalogConfig struct {
	Database string `json:"database"` // path of SQLite database
}

// Config for antpat
type Config struct {
	Def     *Default          `json:"default"`
	Render  *RenderConfig     `json:"render"`
	Catalog *CatalogConfig    `json:"catalog"`
	Plugins map[string]string `json:"plugins"`
}

// Cfg is the globally-accessible configuration (pre-set)
var Cfg = &Config{
	// default values (command-line options)
	Def: &Default{
		FreqHint: 10000, // 10 GHz
		SideLobe: -20,
		BackLobe: -40,
		CscFan:   45,
		Hbw:      3,
		Vbw:      3,
	},
	// rendering parameters
	Render: &RenderConfig{
		Width:   1024,
		Height:  768,
		Span:    40,
		Samples: 361,
	},
	// catalog parameters
	Catalog: &CatalogConfig{
		Database: "./patterns.db",
	},
	// no pre-defined plugins
	Plugins: make(map[string]string),
}

// ReadConfig from file
func ReadConfig(fname string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fname); err == nil {
		err = json.Unmarshal(data, &Cfg)
	}
	return
}
