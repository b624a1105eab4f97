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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bfix/antpat/lib"
)

// Pattern queries:
//
// Load a pattern file ('-file') and either evaluate the gain for a
// single look direction ('-az'/'-el') or sweep a full cut ('-sweep')
// to stdout as CSV. The query frequency ('-freq') accepts a single
// value or a band ("9G-10G": the center is used). Beamwidths,
// reference gain and lobe levels parameterize analytic lookups and
// weighted table queries.

func main() {
	// handle command-line
	var (
		config string // configuration file
		file   string // pattern file

		freqS string  // query frequency (single value or band)
		azDeg float64 // look azimuth (degree)
		elDeg float64 // look elevation (degree)
		polS  string  // polarization channel

		hbwDeg float64 // horizontal beamwidth (degree)
		vbwDeg float64 // vertical beamwidth (degree)
		ref    float64 // reference gain (dB)
		slobe  float64 // first side-lobe level (dB)
		blobe  float64 // back-lobe level (dB)
		weight bool    // weighted az/el combination
		delta  bool    // monopulse difference channel

		sweep string // sweep a cut ("az" or "el") to stdout
		num   int    // number of sweep samples
	)
	flag.StringVar(&config, "config", "", "configuration file")
	flag.StringVar(&file, "file", "", "pattern file")
	flag.StringVar(&freqS, "freq", "", "query frequency (default: config)")
	flag.Float64Var(&azDeg, "az", 0, "look azimuth (degree)")
	flag.Float64Var(&elDeg, "el", 0, "look elevation (degree)")
	flag.StringVar(&polS, "pol", "unknown", "polarization channel")
	flag.Float64Var(&hbwDeg, "hbw", lib.Cfg.Def.Hbw, "horizontal beamwidth (degree)")
	flag.Float64Var(&vbwDeg, "vbw", lib.Cfg.Def.Vbw, "vertical beamwidth (degree)")
	flag.Float64Var(&ref, "ref", 0, "reference gain (dB)")
	flag.Float64Var(&slobe, "slobe", 0, "first side-lobe level (dB)")
	flag.Float64Var(&blobe, "blobe", 0, "back-lobe level (dB)")
	flag.BoolVar(&weight, "weight", false, "weighted az/el combination")
	flag.BoolVar(&delta, "delta", false, "monopulse difference channel")
	flag.StringVar(&sweep, "sweep", "", "sweep cut to stdout [az, el]")
	flag.IntVar(&num, "n", 361, "number of sweep samples")
	flag.Parse()

	if len(config) > 0 {
		if err := lib.ReadConfig(config); err != nil {
			log.Fatal(err)
		}
	}
	if len(file) == 0 {
		flag.Usage()
		log.Fatal("no pattern file specified")
	}
	// resolve query frequency
	freq := lib.Cfg.Def.FreqHint * lib.MHz
	if len(freqS) > 0 {
		var err error
		if freq, err = lib.GetFrequency(freqS); err != nil {
			log.Fatal(err)
		}
	}
	// load pattern (query errors go to the log)
	ldr := lib.NewLoader(freq / lib.MHz)
	ldr.Sink = func(err error) {
		log.Printf("WARN: %v", err)
	}
	p, err := ldr.Load(file)
	if err != nil {
		log.Fatal(err)
	}
	pol, err := lib.ParsePolarity(polS)
	if err != nil {
		log.Fatal(err)
	}
	q := &lib.GainQuery{
		Azim:          lib.Deg2Rad(azDeg),
		Elev:          lib.Deg2Rad(elDeg),
		Pol:           pol,
		Hbw:           lib.Deg2Rad(hbwDeg),
		Vbw:           lib.Deg2Rad(vbwDeg),
		RefGain:       ref,
		FirstSideLobe: slobe,
		BackLobe:      blobe,
		Freq:          freq,
		Weighting:     weight,
		Delta:         delta,
	}
	// pattern info
	min, max := p.MinMaxGain(q)
	log.Printf("Pattern: %s", p.Filename())
	log.Printf("   Type: %s", p.Type())
	log.Printf("  Valid: %v", p.Valid())
	log.Printf("   Gain: %.2f dB ... %.2f dB", min, max)

	// sweep or single query
	if len(sweep) > 0 {
		lo, hi := -180., 180.
		if sweep == lib.CutElev {
			lo, hi = -90., 90.
		}
		fmt.Println("angle,gain")
		for i := 0; i < num; i++ {
			deg := lo + (hi-lo)*float64(i)/float64(num-1)
			qq := *q
			if sweep == lib.CutElev {
				qq.Elev = lib.Deg2Rad(deg)
			} else {
				qq.Azim = lib.Deg2Rad(deg)
			}
			fmt.Fprintf(os.Stdout, "%.2f,%.3f\n", deg, p.Gain(&qq))
		}
		return
	}
	log.Printf("   G(%.1f°, %.1f°) = %.3f dB", azDeg, elDeg, p.Gain(q))
}
