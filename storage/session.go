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
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/ninecheck/ninecheck.go/board"
	"github.com/rs/zerolog/log"
)

// A Session tracks one user's working board.  Every mutation
// records a step: the grid's summary goes onto a redis list, so
// earlier states can be restored (undo) without recomputation.
type Session struct {
	// these elements are persisted as part of the session
	SID     string // session ID
	BID     string // ID of the board being worked
	Step    int    // current step
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved

	// these elements are persisted in the steps, serialized as JSON
	Summary *board.Summary `redis:"-"` // summary upon arriving at current step
	Grid    *board.Grid    `redis:"-"` // grid for current step
}

// CustomBoardID is the BID recorded when a session works a board
// loaded from a layout rather than the catalog.
const CustomBoardID = "custom"

/*

session manipulation

*/

// StartBoard points the session at a catalog board and clears
// any existing steps.  An empty id keeps the session's current
// board; "default" or an unknown id falls back to the default
// board.
func (session *Session) StartBoard(bid string) {
	// change to the given bid, making sure it's valid
	if bid == "" || bid == CustomBoardID {
		bid = session.BID
	}
	if bid == "" || bid == "default" || bid == CustomBoardID {
		bid = DefaultBoardID
	}
	be, ok := lookupBoardEntry(bid)
	if !ok {
		bid = DefaultBoardID
		if be, ok = lookupBoardEntry(bid); !ok {
			panic("Default board missing from catalog")
		}
	}
	session.BID = bid
	session.Summary = be.summary()
	session.Grid = be.makeGrid()
	session.saveFirstStep()
	log.Info().Str("sid", session.SID).Str("bid", session.BID).Msg("session reset")
}

// StartGrid points the session at a caller-supplied grid (for
// example, one parsed from a layout file) and clears any
// existing steps.
func (session *Session) StartGrid(g *board.Grid) {
	session.BID = CustomBoardID
	session.Grid = g.Copy()
	session.Summary = session.Grid.Summary()
	session.saveFirstStep()
	log.Info().Str("sid", session.SID).Msg("session reset to custom board")
}

// SetCell applies one cell write to the working grid and records
// a new step.  A value of 0 clears the cell.  Coordinate or
// value errors come back from the board package and record no
// step.
func (session *Session) SetCell(x, y, value int) error {
	cell := board.Empty
	if value != 0 {
		var err error
		if cell, err = board.Digit(value); err != nil {
			return err
		}
	}
	if err := session.Grid.SetCell(cell, x, y); err != nil {
		return err
	}
	session.AddStep()
	return nil
}

// AddStep records the current grid as a new step.
func (session *Session) AddStep() {
	session.Summary = session.Grid.Summary()
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	bytes := session.marshalStep()
	rdExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		if _, err = conn.Do("RPUSH", session.stepsKey(), bytes); err != nil {
			log.Err(err).Str("sid", session.SID).Int("step", session.Step).
				Msg("cache error saving step")
		}
		return
	})
}

// RemoveStep removes the last step and restores the prior step's
// grid.  Removing from step 1 is a no-op.
func (session *Session) RemoveStep() {
	if session.Step <= 1 {
		// nothing to do
		return
	}
	var bytes []byte
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step--
	session.Summary = nil // free the current step's summary
	rdExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		conn.Send("LTRIM", session.stepsKey(), 0, -2)
		bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Err(err).Str("sid", session.SID).Int("step", session.Step).
				Msg("cache error removing step")
		}
		return
	})
	session.unmarshalStep(bytes)
	log.Info().Str("sid", session.SID).Int("step", session.Step).Msg("session reverted")
}

// RemoveAllSteps restores the working board to its starting
// point.
func (session *Session) RemoveAllSteps() {
	if session.BID == CustomBoardID {
		// restore from the first recorded step
		var bytes []byte
		session.Saved = time.Now().Format(time.RFC3339)
		session.Step = 1
		rdExecute(func(conn redis.Conn) (err error) {
			conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
			conn.Send("LTRIM", session.stepsKey(), 0, 0)
			bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), 0))
			return
		})
		session.unmarshalStep(bytes)
		return
	}
	session.StartBoard(session.BID)
}

// Lookup loads a saved session for the session's SID.  Returns
// whether one was found.
func (session *Session) Lookup() (found bool) {
	rdExecute(func(conn redis.Conn) error {
		vals, err := redis.Values(conn.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.Err(err).Str("sid", session.SID).Msg("cache error parsing saved session")
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.Err(err).Str("sid", session.SID).Msg("cache error loading session")
			return err
		}
		return nil
	})
	return
}

// LoadStep loads the current step's grid from the saved steps.
func (session *Session) LoadStep() {
	var bytes []byte
	rdExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Err(err).Str("sid", session.SID).Int("step", session.Step).
				Msg("cache error loading step")
		}
		return
	})
	session.unmarshalStep(bytes)
}

// saveFirstStep: write the session hash and a fresh single-entry
// step list for the current grid.
func (session *Session) saveFirstStep() {
	session.Saved = time.Now().Format(time.RFC3339)
	if session.Created == "" {
		session.Created = session.Saved
	}
	session.Step = 1
	bytes := session.marshalStep()
	rdExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		conn.Send("DEL", session.stepsKey())
		if _, err = conn.Do("RPUSH", session.stepsKey(), bytes); err != nil {
			log.Err(err).Str("sid", session.SID).Msg("cache error saving session after reset")
		}
		return
	})
}

/*

serialization of board state into and out of the cache

*/

// marshalStep - get JSON for the current step
func (session *Session) marshalStep() []byte {
	bytes, err := json.Marshal(session.Summary)
	if err != nil {
		log.Err(err).Str("sid", session.SID).Int("step", session.Step).
			Msg("failed to marshal step summary")
		panic(err)
	}
	return bytes
}

// unmarshalStep - restore the grid for a saved step
func (session *Session) unmarshalStep(bytes []byte) {
	var summary *board.Summary
	if err := json.Unmarshal(bytes, &summary); err != nil {
		log.Err(err).Str("sid", session.SID).Int("step", session.Step).
			Msg("failed to unmarshal saved step")
		panic(err)
	}
	session.Summary = summary
	g, err := board.New(summary)
	if err != nil {
		log.Err(err).Str("sid", session.SID).Int("step", session.Step).
			Msg("failed to rebuild grid for saved step")
		panic(err)
	}
	session.Grid = g
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return rdEnv + ":SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":Steps"
}
