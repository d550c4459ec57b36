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

package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/jackc/pgx"
	"github.com/ninecheck/ninecheck.go/board"
)

/*

board catalog entries

*/

// DefaultBoardID names the board a fresh session starts with.
const DefaultBoardID = "sample-1"

// A boardEntry is the stored form of a catalog board.  It is
// JSON-serializable so it can go into the cache as well as the
// database.
type boardEntry struct {
	BoardId string
	Name    string
	Values  []int32
}

// lookupBoardEntry checks the cache, then the database, for the
// board's entry.  A database load is written back to the cache.
// Returns whether an entry exists.
func lookupBoardEntry(id string) (*boardEntry, bool) {
	be := &boardEntry{BoardId: id}
	if be.cacheLoad() {
		return be, true
	}
	if !be.databaseLoad() {
		return nil, false
	}
	be.cacheInsert()
	return be, true
}

// makeGrid: make the grid a board entry describes.
func (be *boardEntry) makeGrid() *board.Grid {
	values := make([]int, len(be.Values))
	for i, v := range be.Values {
		values[i] = int(v)
	}
	g, err := board.New(&board.Summary{Values: values})
	if err != nil {
		panic(fmt.Errorf("Failed to create grid for board %q: %v", be.BoardId, err))
	}
	return g
}

// summary: the wire form of the entry's values.
func (be *boardEntry) summary() *board.Summary {
	values := make([]int, len(be.Values))
	for i, v := range be.Values {
		values[i] = int(v)
	}
	return &board.Summary{Values: values}
}

// key: compute the cache key for a board entry.
func (be *boardEntry) key() string {
	return rdEnv + ":BID:" + be.BoardId
}

// cacheLoad: load an already cached board entry.  Returns
// whether the entry was found in the cache.
func (be *boardEntry) cacheLoad() bool {
	var bytes []byte
	rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", be.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading board %q: %v", be.BoardId, err)
		}
		return
	})
	if len(bytes) == 0 {
		return false
	}
	var sbe *boardEntry
	if err := json.Unmarshal(bytes, &sbe); err != nil {
		panic(fmt.Errorf("Failed to unmarshal board entry %q: %v", be.BoardId, err))
	}
	if sbe.BoardId != be.BoardId {
		panic(fmt.Errorf("Cached board entry (id: %q) found for board %q!",
			sbe.BoardId, be.BoardId))
	}
	*be = *sbe
	return true
}

// cacheInsert: insert a board entry into the cache.  Replaces
// any existing entry with the same id.
func (be *boardEntry) cacheInsert() {
	bytes, err := json.Marshal(be)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal board entry %q: %v", be.BoardId, err))
	}
	rdExecute(func(conn redis.Conn) (err error) {
		if _, err = conn.Do("SET", be.key(), bytes); err != nil {
			err = fmt.Errorf("Cache failure saving board entry %q: %v", be.BoardId, err)
		}
		return
	})
}

// databaseLoad: load a board entry from the database.  Returns
// whether the database has an entry with the given id.
func (be *boardEntry) databaseLoad() (found bool) {
	pgExecute(func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT name, valueList FROM boards WHERE boardId = $1", be.BoardId)
		if err := row.Scan(&be.Name, &be.Values); err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			return fmt.Errorf("Failure looking up board %q: %v", be.BoardId, err)
		}
		found = true
		return nil
	})
	return
}

// databaseInsert: insert a new board entry into the database.
func (be *boardEntry) databaseInsert() {
	pgExecute(func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO boards (boardId, name, valueList, created) "+
				"VALUES ($1, $2, $3, $4)",
			be.BoardId, be.Name, be.Values, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving board entry %q: %v", be.BoardId, err)
		}
		return
	})
}

/*

board info

*/

// An Info is the exported description of a catalog board: its
// id, user-facing name, and how many of its cells start empty.
type Info struct {
	BoardId string `json:"boardId"`
	Name    string `json:"name"`
	Empty   int    `json:"empty"`
}

// makeInfo - make an Info from a board entry
func (be *boardEntry) makeInfo() *Info {
	return &Info{
		BoardId: be.BoardId,
		Name:    be.Name,
		Empty:   countZeroes(be.Values),
	}
}

// compute the number of empty cells
func countZeroes(vals []int32) (count int) {
	for _, v := range vals {
		if v == 0 {
			count++
		}
	}
	return
}

// sorting of info sequences by board name
type ByName []*Info

func (bi ByName) Len() int           { return len(bi) }
func (bi ByName) Swap(i, j int)      { bi[i], bi[j] = bi[j], bi[i] }
func (bi ByName) Less(i, j int) bool { return bi[i].Name < bi[j].Name }

/*

catalog queries

*/

// ListBoards returns an Info for every board in the catalog,
// ordered by name.
func ListBoards() []*Info {
	var infos []*Info
	pgExecute(func(tx *pgx.Tx) error {
		rows, err := tx.Query("SELECT boardId, name, valueList FROM boards")
		if err != nil {
			return fmt.Errorf("Failure listing boards: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			be := &boardEntry{}
			if err := rows.Scan(&be.BoardId, &be.Name, &be.Values); err != nil {
				return fmt.Errorf("Failure scanning board row: %v", err)
			}
			infos = append(infos, be.makeInfo())
		}
		return rows.Err()
	})
	sort.Sort(ByName(infos))
	return infos
}

// FetchBoard returns the summary of one catalog board, or false
// if the catalog has no board with that id.
func FetchBoard(id string) (*board.Summary, bool) {
	be, ok := lookupBoardEntry(id)
	if !ok {
		return nil, false
	}
	return be.summary(), true
}

// SaveBoard adds a board to the catalog under the given id and
// name.  The summary must describe a consistent board, and the
// id must not be taken.
func SaveBoard(id, name string, s *board.Summary) error {
	g, err := board.New(s)
	if err != nil {
		return err
	}
	if !g.Valid() {
		return fmt.Errorf("board %q has conflicts and can't be cataloged", id)
	}
	if _, taken := lookupBoardEntry(id); taken {
		return fmt.Errorf("board id %q is already in the catalog", id)
	}
	values := make([]int32, len(s.Values))
	for i, v := range s.Values {
		values[i] = int32(v)
	}
	be := &boardEntry{BoardId: id, Name: name, Values: values}
	be.databaseInsert()
	be.cacheInsert()
	return nil
}
