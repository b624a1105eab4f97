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
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//----------------------------------------------------------------------
// pattern catalog: index of pattern files in a directory tree
//----------------------------------------------------------------------

// CatalogRecord describes one indexed pattern file
type CatalogRecord struct {
	Path    string  // file path (relative to import root)
	Kind    string  // pattern type name
	Pol     string  // recorded polarity name
	FreqLo  float64 // lower band limit (MHz; 0 if none)
	FreqHi  float64 // upper band limit (MHz; 0 if none)
	Gmin    float64 // minimum gain over the pattern (dB)
	Gmax    float64 // maximum gain over the pattern (dB)
	Comment string  // free-text comment (NSMA header etc.)
}

// freqRanger is implemented by frequency-bound pattern variants
type freqRanger interface {
	FreqRange() (lo, hi float64)
}

// NewCatalogRecord summarizes a loaded pattern for the catalog.
// Min/max gain is taken for the given reference query.
func NewCatalogRecord(path string, p Pattern, q *GainQuery) *CatalogRecord {
	rec := &CatalogRecord{
		Path: path,
		Kind: p.Type().String(),
		Pol:  p.Polarity().String(),
	}
	rec.Gmin, rec.Gmax = p.MinMaxGain(q)
	if fr, ok := p.(freqRanger); ok {
		lo, hi := fr.FreqRange()
		rec.FreqLo, rec.FreqHi = lo/MHz, hi/MHz
	}
	if nsma, ok := p.(*NSMAPattern); ok {
		rec.Comment = nsma.Comment
	}
	return rec
}

//----------------------------------------------------------------------

// database initialization statements
var ini = `
create table patterns (
    id      integer primary key,    -- database record id
    path    varchar(255) not null,  -- pattern file path
    kind    varchar(15) not null,   -- pattern type name
    pol     varchar(15) not null,   -- pattern polarity
    flo     float default 0,        -- lower band limit (MHz)
    fhi     float default 0,        -- upper band limit (MHz)
    gmin    float not null,         -- minimum gain (dB)
    gmax    float not null,         -- maximum gain (dB)
    comment varchar(255) default '' -- free-text comment
);
create unique index idx_path on patterns(path);
`

// Database is the pattern catalog
type Database struct {
	inst *sql.DB
}

// OpenDatabase opens (or initializes) a SQLite3 catalog file
func OpenDatabase(fname string) (db *Database, err error) {
	db = new(Database)
	if db.inst, err = sql.Open("sqlite3", fname); err == nil {
		var num int64
		row := db.inst.QueryRow("select count(*) from patterns")
		if err = row.Scan(&num); err != nil {
			// initialize database
			_, err = db.inst.Exec(ini)
		}
	}
	return
}

// Close database
func (db *Database) Close() error {
	if db.inst == nil {
		return errors.New("database not opened")
	}
	return db.inst.Close()
}

// Insert a catalog record (replacing an existing entry for the path)
func (db *Database) Insert(rec *CatalogRecord) error {
	stmt := "replace into patterns(path,kind,pol,flo,fhi,gmin,gmax,comment)" +
		" values(?,?,?,?,?,?,?,?)"
	_, err := db.inst.Exec(stmt,
		rec.Path, rec.Kind, rec.Pol, rec.FreqLo, rec.FreqHi,
		rec.Gmin, rec.Gmax, rec.Comment,
	)
	return err
}

// GetRows from the catalog with given where clause and ordering
func (db *Database) GetRows(clause, order string) (list []*CatalogRecord, err error) {
	// assemble query statement
	stmt := "select path,kind,pol,flo,fhi,gmin,gmax,comment from patterns"
	if len(clause) > 0 {
		stmt += " where " + clause
	}
	if len(order) > 0 {
		stmt += " order by " + order
	}
	// perform query
	var rows *sql.Rows
	if rows, err = db.inst.Query(stmt); err != nil {
		return
	}
	defer rows.Close()

	// assemble result list
	for rows.Next() {
		rec := new(CatalogRecord)
		if err = rows.Scan(&rec.Path, &rec.Kind, &rec.Pol, &rec.FreqLo,
			&rec.FreqHi, &rec.Gmin, &rec.Gmax, &rec.Comment); err != nil {
			return
		}
		list = append(list, rec)
	}
	return
}

// DbStats holds catalog statistics
type DbStats struct {
	NumPatterns int64            // number of indexed patterns
	PerKind     map[string]int64 // patterns per type
}

// Stats returns catalog statistics
func (db *Database) Stats() (stats *DbStats) {
	stats = &DbStats{PerKind: make(map[string]int64)}
	row := db.inst.QueryRow("select count(*) from patterns")
	_ = row.Scan(&stats.NumPatterns)

	rows, err := db.inst.Query("select kind,count(*) from patterns group by kind")
	if err != nil {
		return
	}
	defer rows.Close()
	var kind string
	var num int64
	for rows.Next() {
		if rows.Scan(&kind, &num) == nil {
			stats.PerKind[kind] = num
		}
	}
	return
}

//----------------------------------------------------------------------

// pattern file suffixes the importer picks up
var patternSuffixes = map[string]bool{
	".pat": true, ".rel": true, ".cru": true, ".mon": true,
	".bil": true, ".nsm": true, ".ezn": true, ".xfd": true, ".uan": true,
}

// Import walks a directory tree, loads every pattern file and
// inserts a catalog record per file. Files that fail to load are
// skipped (reported through the callback).
func (db *Database) Import(root string, l *Loader, q *GainQuery, report func(path string, err error)) (num int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if d.IsDir() || !patternSuffixes[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		p, lerr := l.Load(path)
		if lerr != nil {
			if report != nil {
				report(path, lerr)
			}
			return nil
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}
		if ierr := db.Insert(NewCatalogRecord(rel, p, q)); ierr != nil {
			return ierr
		}
		num++
		return nil
	})
	return
}
