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

package main

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ninecheck/ninecheck.go/board"
	"github.com/ninecheck/ninecheck.go/storage"
	"github.com/rs/zerolog/log"
)

/*

session handling

*/

const (
	cookieName = "ninecheckID"
	cookiePath = "/"
)

var startTime = time.Now() // instance start-up time

// newSessionID makes a fresh session ID.  One server instance is
// all we support, so time since startup is unique enough.
func newSessionID() string {
	return strconv.FormatInt(int64(time.Since(startTime))+1, 36)
}

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
func getCookie(c *gin.Context) string {
	if sid, err := c.Cookie(cookieName); err == nil && len(sid) >= 3 {
		return sid
	}
	sid := newSessionID()
	c.SetCookie(cookieName, sid, 0, cookiePath, "", false, true)
	log.Info().Str("sid", sid).Msg("new session cookie")
	return sid
}

// sessionSelect finds or creates the session for the current
// request.
func sessionSelect(c *gin.Context) *storage.Session {
	session := &storage.Session{
		SID:     getCookie(c),
		Created: time.Now().Format(time.RFC3339),
	}
	if session.Lookup() {
		session.LoadStep()
	} else {
		session.StartBoard("default")
	}
	return session
}

/*

board catalog handlers

*/

func listHandler(c *gin.Context) {
	c.JSON(http.StatusOK, storage.ListBoards())
}

// a boardUpload is the posted form of a new catalog board.
type boardUpload struct {
	BoardId string `json:"boardId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Values  []int  `json:"values" binding:"required"`
}

func saveBoardHandler(c *gin.Context) {
	var up boardUpload
	if err := c.ShouldBindJSON(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body", "message": err.Error()})
		return
	}
	err := storage.SaveBoard(up.BoardId, up.Name, &board.Summary{Values: up.Values})
	if err != nil {
		if be, ok := err.(board.Error); ok {
			be.Message = be.Error()
			c.JSON(http.StatusBadRequest, be)
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "board not saved", "message": err.Error()})
		return
	}
	log.Info().Str("bid", up.BoardId).Msg("board added to catalog")
	c.JSON(http.StatusCreated, gin.H{"boardId": up.BoardId})
}

func fetchHandler(c *gin.Context) {
	id := c.Param("id")
	summary, ok := storage.FetchBoard(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such board", "boardId": id})
		return
	}
	c.JSON(http.StatusOK, summary)
}

/*

session handlers

*/

// a sessionState is the JSON form of the session's current step.
type sessionState struct {
	SID     string         `json:"sid"`
	BID     string         `json:"bid"`
	Step    int            `json:"step"`
	Summary *board.Summary `json:"summary"`
	Valid   bool           `json:"valid"`
	Solved  bool           `json:"solved"`
}

func stateOf(session *storage.Session) sessionState {
	return sessionState{
		SID:     session.SID,
		BID:     session.BID,
		Step:    session.Step,
		Summary: session.Grid.Summary(),
		Valid:   session.Grid.Valid(),
		Solved:  session.Grid.Solved(),
	}
}

func stateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, stateOf(sessionSelect(c)))
}

// a cellChoice is the posted form of one cell write; a value of
// 0 clears the cell.
type cellChoice struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

func setCellHandler(c *gin.Context) {
	var choice cellChoice
	if err := c.ShouldBindJSON(&choice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body", "message": err.Error()})
		return
	}
	session := sessionSelect(c)
	if err := session.SetCell(choice.X, choice.Y, choice.Value); err != nil {
		if be, ok := err.(board.Error); ok {
			be.Message = be.Error()
			c.JSON(http.StatusBadRequest, be)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cell write failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stateOf(session))
}

func undoHandler(c *gin.Context) {
	session := sessionSelect(c)
	session.RemoveStep()
	c.JSON(http.StatusOK, stateOf(session))
}

// the posted form of a reset; an empty board ID restarts the
// session's current board.
type resetRequest struct {
	BoardId string `json:"boardId"`
}

// bindOptionalJSON fills out from the request body.  An absent
// body is fine; a body that is present but malformed is not.
func bindOptionalJSON(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func resetHandler(c *gin.Context) {
	var req resetRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request body", "message": err.Error()})
		return
	}
	session := sessionSelect(c)
	if req.BoardId == "" {
		session.RemoveAllSteps()
	} else {
		session.StartBoard(req.BoardId)
	}
	c.JSON(http.StatusOK, stateOf(session))
}

/*

consistency report

*/

// a checkReport gives per-unit validity along with the overall
// verdicts.  Boxes are listed in reading order: index my*3+mx.
type checkReport struct {
	Valid   bool                 `json:"valid"`
	Solved  bool                 `json:"solved"`
	Rows    [board.GridSide]bool `json:"rows"`
	Columns [board.GridSide]bool `json:"columns"`
	Boxes   [board.GridSide]bool `json:"boxes"`
}

// reportFor builds the consistency report of a grid.
func reportFor(g *board.Grid) checkReport {
	report := checkReport{
		Valid:  g.Valid(),
		Solved: g.Solved(),
	}
	for i := 0; i < board.GridSide; i++ {
		report.Rows[i], _ = g.RowValid(i)
		report.Columns[i], _ = g.ColumnValid(i)
	}
	for my := 0; my < board.BoxSide; my++ {
		for mx := 0; mx < board.BoxSide; mx++ {
			report.Boxes[my*board.BoxSide+mx], _ = g.BoxValid(mx, my)
		}
	}
	return report
}

func checkHandler(c *gin.Context) {
	session := sessionSelect(c)
	c.JSON(http.StatusOK, reportFor(session.Grid))
}
