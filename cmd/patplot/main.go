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
	"log"
	"os"

	"github.com/bfix/antpat/lib"
)

// Pattern plots:
//
// Load a pattern file and render it as an azimuth/elevation cut
// plot, a 2-D gain heatmap or a classic polar diagram. Cut and
// heatmap output follows the '-out' suffix (.svg, .png, .pdf);
// polar diagrams are always SVG.

func main() {
	// handle command-line
	var (
		config string // configuration file
		file   string // pattern file
		kind   string // plot kind
		fOut   string // output file

		freqS  string  // query frequency
		polS   string  // polarization channel
		hbwDeg float64 // horizontal beamwidth (degree)
		vbwDeg float64 // vertical beamwidth (degree)
		ref    float64 // reference gain (dB)
		weight bool    // weighted az/el combination
		delta  bool    // monopulse difference channel
	)
	flag.StringVar(&config, "config", "", "configuration file")
	flag.StringVar(&file, "file", "", "pattern file")
	flag.StringVar(&kind, "kind", "cut-az", "plot kind [cut-az, cut-el, heatmap, polar]")
	flag.StringVar(&fOut, "out", "out.svg", "output file")
	flag.StringVar(&freqS, "freq", "", "query frequency (default: config)")
	flag.StringVar(&polS, "pol", "unknown", "polarization channel")
	flag.Float64Var(&hbwDeg, "hbw", lib.Cfg.Def.Hbw, "horizontal beamwidth (degree)")
	flag.Float64Var(&vbwDeg, "vbw", lib.Cfg.Def.Vbw, "vertical beamwidth (degree)")
	flag.Float64Var(&ref, "ref", 0, "reference gain (dB)")
	flag.BoolVar(&weight, "weight", false, "weighted az/el combination")
	flag.BoolVar(&delta, "delta", false, "monopulse difference channel")
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
	freq := lib.Cfg.Def.FreqHint * lib.MHz
	if len(freqS) > 0 {
		var err error
		if freq, err = lib.GetFrequency(freqS); err != nil {
			log.Fatal(err)
		}
	}
	p, err := lib.LoadPatternFile(file, freq/lib.MHz)
	if err != nil {
		log.Fatal(err)
	}
	pol, err := lib.ParsePolarity(polS)
	if err != nil {
		log.Fatal(err)
	}
	q := &lib.GainQuery{
		Pol:       pol,
		Hbw:       lib.Deg2Rad(hbwDeg),
		Vbw:       lib.Deg2Rad(vbwDeg),
		RefGain:   ref,
		Freq:      freq,
		Weighting: weight,
		Delta:     delta,
	}
	switch kind {
	case "cut-az", "cut-el":
		axis := lib.CutAzim
		if kind == "cut-el" {
			axis = lib.CutElev
		}
		plt, err := lib.CutPlot(p, q, axis)
		if err != nil {
			log.Fatal(err)
		}
		if err = lib.SavePlot(plt, fOut); err != nil {
			log.Fatal(err)
		}
	case "heatmap":
		plt, err := lib.HeatmapPlot(p, q, 181, 91)
		if err != nil {
			log.Fatal(err)
		}
		if err = lib.SavePlot(plt, fOut); err != nil {
			log.Fatal(err)
		}
	case "polar":
		fp, err := os.Create(fOut)
		if err != nil {
			log.Fatal(err)
		}
		lib.PolarDiagram(fp, p, q)
		if err = fp.Close(); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown plot kind '%s'", kind)
	}
	log.Printf("plot written to %s", fOut)
}
