// ninecheck.go - a web-based Sudoku board checker and play space.
// Copyright (C) 2026 the ninecheck.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package dbprep

import (
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx"
	"github.com/ninecheck/ninecheck.go/board"
)

/*

sample boards

The samples are kept in the textual layout format the board
loader reads: one character per cell, spaces for empty cells.

*/

type sampleBoard struct {
	id     string
	name   string
	layout string
}

var sampleBoards = []sampleBoard{
	{"sample-1", "Warmup", "" +
		"4    35 2\n" +
		"  95 634 \n" +
		"        8\n" +
		"    3486 \n" +
		"  46 52  \n" +
		" 2879    \n" +
		"9        \n" +
		" 873 29  \n" +
		"5 29    6"},
	{"sample-2", "Afternoon coffee", "" +
		" 1 5 6 2 \n" +
		"     3 18\n" +
		"    7   6\n" +
		"  5    3 \n" +
		"  8 9 7  \n" +
		" 6    4  \n" +
		"5   4    \n" +
		"64 2     \n" +
		" 3 9 1 8 "},
	{"sample-3", "Night train", "" +
		"9  45   8\n" +
		" 2       \n" +
		"   1724  \n" +
		" 79   68 \n" +
		"2       5\n" +
		" 43   27 \n" +
		"  8325   \n" +
		"       6 \n" +
		"4   16  3"},
}

type dataFunction func(*pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp: load the sample boards into the database.  You should
// do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the sample boards from the database.  You
// should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/ninecheck?sslmode=disable"
	}

	// open the database, defer the close
	cfg, err := pgx.ParseURI(url)
	if err != nil {
		return err
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin()
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback()
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	}
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return err
		}
	}
	return nil
}

// sampleValues parses a sample's layout into its stored value
// list, insisting that the sample is a consistent board.
func sampleValues(sample sampleBoard) ([]int32, error) {
	g, err := board.ParseString(sample.layout)
	if err != nil {
		return nil, fmt.Errorf("Sample %q has a bad layout: %v", sample.id, err)
	}
	if !g.Valid() {
		return nil, fmt.Errorf("Sample %q is not a consistent board", sample.id)
	}
	summary := g.Summary()
	values := make([]int32, len(summary.Values))
	for i, v := range summary.Values {
		values[i] = int32(v)
	}
	return values, nil
}

// insertSamples: insert the sample boards.
func insertSamples(tx *pgx.Tx) error {
	for _, sample := range sampleBoards {
		values, err := sampleValues(sample)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO boards (boardId, name, valueList, created) "+
				"VALUES ($1, $2, $3, $4)",
			sample.id, sample.name, values, time.Now())
		if err != nil {
			return fmt.Errorf("Database error inserting sample %q: %v", sample.id, err)
		}
	}
	return nil
}

// deleteSamples: remove the sample boards.
func deleteSamples(tx *pgx.Tx) error {
	for _, sample := range sampleBoards {
		if _, err := tx.Exec("DELETE FROM boards WHERE boardId = $1", sample.id); err != nil {
			return fmt.Errorf("Database error deleting sample %q: %v", sample.id, err)
		}
	}
	return nil
}
