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

// shared variables with command handlers
var (
	db *lib.Database // reference to (opened) catalog
)

// Pattern catalog maintenance:
//
//	patdb [-db <file>] import -in <dir> [-freq <band>]
//	patdb [-db <file>] list [-where <clause>] [-order <cols>]
//	patdb [-db <file>] stats

// application entry point
func main() {
	// handle command-line arguments
	args := os.Args[1:]
	var dbName string
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&dbName, "db", lib.Cfg.Catalog.Database, "pattern catalog")
	fs.Parse(args)
	args = fs.Args()

	// open catalog
	if len(dbName) == 0 {
		flag.Usage()
		log.Fatal("no catalog specified")
	}
	var err error
	if db, err = lib.OpenDatabase(dbName); err != nil {
		log.Fatal("open db: " + err.Error())
	}
	defer db.Close()

	if len(args) == 0 {
		log.Fatal("no command specified [import, list, stats]")
	}
	// execute command
	switch args[0] {
	case "import":
		importFromDirectory(args[1:])
	case "list":
		list(args[1:])
	case "stats":
		stats := db.Stats()
		log.Println("Catalog statistics:")
		log.Printf("  Number of patterns: %6d", stats.NumPatterns)
		for kind, num := range stats.PerKind {
			log.Printf("  %18s: %6d", kind, num)
		}
	default:
		log.Fatalf("unknown command '%s'", args[0])
	}
}

// importFromDirectory walks a tree of pattern files into the catalog
func importFromDirectory(args []string) {
	var (
		in    string
		freqS string
	)
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.StringVar(&in, "in", ".", "pattern base directory")
	fs.StringVar(&freqS, "freq", "", "reference frequency (default: config)")
	fs.Parse(args)

	freq := lib.Cfg.Def.FreqHint * lib.MHz
	if len(freqS) > 0 {
		var err error
		if freq, err = lib.GetFrequency(freqS); err != nil {
			log.Fatal(err)
		}
	}
	ldr := lib.NewLoader(freq / lib.MHz)
	q := &lib.GainQuery{
		Hbw:  lib.Deg2Rad(lib.Cfg.Def.Hbw),
		Vbw:  lib.Deg2Rad(lib.Cfg.Def.Vbw),
		Freq: freq,
	}
	num, err := db.Import(in, ldr, q, func(path string, lerr error) {
		log.Printf("WARN: skipped %s: %v", path, lerr)
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d pattern(s) imported", num)
}

// list catalog records
func list(args []string) {
	var where, order string
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.StringVar(&where, "where", "", "selection clause")
	fs.StringVar(&order, "order", "path asc", "record ordering")
	fs.Parse(args)

	recs, err := db.GetRows(where, order)
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range recs {
		band := ""
		if rec.FreqHi > 0 {
			band = lib.FormatNumber(rec.FreqLo*lib.MHz, 4) + "Hz-" +
				lib.FormatNumber(rec.FreqHi*lib.MHz, 4) + "Hz"
		}
		log.Printf("%-40s %-10s %-12s %7.2f..%7.2f dB %s",
			rec.Path, rec.Kind, rec.Pol, rec.Gmin, rec.Gmax, band)
	}
}
