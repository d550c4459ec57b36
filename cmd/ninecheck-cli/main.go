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

// Command-line client for ninecheck board utilities
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ninecheck/ninecheck.go/board"
	"github.com/ninecheck/ninecheck.go/storage"
	"github.com/rs/zerolog/log"
)

func main() {
	// establish storage connections
	if _, _, err := storage.Connect(); err != nil {
		log.Err(err).Msg("storage connection failed")
		shutdown(startupFailureShutdown)
	}
	defer storage.Close()

	// catch signals
	shutdownOnSignal()

	// serve
	err := listener(os.Stdout, os.Stdin)
	if err != nil {
		log.Err(err).Msg("CLI failure")
		shutdown(listenerFailureShutdown)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	// (see http://stackoverflow.com/questions/22744443/ for source)
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "ninecheck> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, arg)
				}
			}
			dispatchCommand(out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*storage.Session, *os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"boards", "", "list the board catalog", boardsHandler},
		{"box", "cell", "show the 3x3 box holding a cell", boxHandler},
		{"check", "", "report row/column/box consistency", checkHandler},
		{"col", "number", "show one column and its validity", colHandler},
		{"erase", "cell", "clear a cell (e.g. erase a1)", eraseHandler},
		{"load", "file", "start playing a board read from a file", loadHandler},
		{"reset", "[boardID]", "restart this or another board", showHandler},
		{"row", "letter", "show one row and its validity", rowHandler},
		{"save", "boardID name", "add the current board to the catalog", saveHandler},
		{"session", "[sessionID]", "get/set session info", summaryHandler},
		{"set", "cell value", "fill a cell (e.g. set a1 5)", setHandler},
		{"show", "", "show the current board", showHandler},
		{"solved", "", "report whether the board is solved", solvedHandler},
		{"undo", "", "go back one play step", undoHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	session := sessionSelect(w, r)
	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(session, w, r)
	}
}

/*

request handlers

*/

// parseCellRef turns a reference like "a1" into grid coordinates.
// The letter names the row, the number the column.
func parseCellRef(ref string) (x, y int, err error) {
	if len(ref) < 2 {
		return 0, 0, fmt.Errorf("cell reference %q is too short", ref)
	}
	row := int(ref[0]|0x20) - 'a'
	if row < 0 || row >= board.GridSide {
		return 0, 0, fmt.Errorf("cell reference %q row is out of range", ref)
	}
	col, err := strconv.Atoi(ref[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("cell reference %q column is not a number", ref)
	}
	if col < 1 || col > board.GridSide {
		return 0, 0, fmt.Errorf("cell reference %q column is out of range", ref)
	}
	return col - 1, row, nil
}

func boardsHandler(session *storage.Session, w *os.File, r *request) {
	for _, info := range storage.ListBoards() {
		fmt.Fprintf(w, "%12s  %-24s (%d empty squares)\n", info.BoardId, info.Name, info.Empty)
	}
}

func showHandler(session *storage.Session, w *os.File, r *request) {
	fmt.Fprintf(w, "%v\n", session.Grid)
}

func setHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 2 {
		usageHandler(fmt.Sprintf("%s requires two arguments", r.command), w, r)
		return
	}
	x, y, err := parseCellRef(r.args[0])
	if err != nil {
		usageHandler(err.Error(), w, r)
		return
	}
	value, err := strconv.Atoi(r.args[1])
	if err != nil {
		usageHandler(fmt.Sprintf("%s value (%s) must be a number", r.command, r.args[1]), w, r)
		return
	}
	if err := session.SetCell(x, y, value); err != nil {
		fmt.Fprintf(w, "Set failed: %v\n", err)
		return
	}
	showHandler(session, w, r)
}

func eraseHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	x, y, err := parseCellRef(r.args[0])
	if err != nil {
		usageHandler(err.Error(), w, r)
		return
	}
	if err := session.SetCell(x, y, 0); err != nil {
		fmt.Fprintf(w, "Erase failed: %v\n", err)
		return
	}
	showHandler(session, w, r)
}

func undoHandler(session *storage.Session, w *os.File, r *request) {
	session.RemoveStep()
	showHandler(session, w, r)
}

func cellsLine(cells []board.Cell) string {
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func verdict(ok bool) string {
	if ok {
		return "no repeats"
	}
	return "repeats a number"
}

func rowHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 || len(r.args[0]) != 1 {
		usageHandler(fmt.Sprintf("%s requires a row letter (a-i)", r.command), w, r)
		return
	}
	y := int(r.args[0][0]|0x20) - 'a'
	cells, err := session.Grid.Row(y)
	if err != nil {
		fmt.Fprintf(w, "Row failed: %v\n", err)
		return
	}
	ok, _ := session.Grid.RowValid(y)
	fmt.Fprintf(w, "row %c: %s  (%s)\n", 'a'+y, cellsLine(cells), verdict(ok))
}

func colHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a column number (1-9)", r.command), w, r)
		return
	}
	n, err := strconv.Atoi(r.args[0])
	if err != nil {
		usageHandler(fmt.Sprintf("%s column (%s) must be a number", r.command, r.args[0]), w, r)
		return
	}
	x := n - 1
	cells, err := session.Grid.Column(x)
	if err != nil {
		fmt.Fprintf(w, "Column failed: %v\n", err)
		return
	}
	ok, _ := session.Grid.ColumnValid(x)
	fmt.Fprintf(w, "column %d: %s  (%s)\n", n, cellsLine(cells), verdict(ok))
}

func boxHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a cell reference", r.command), w, r)
		return
	}
	x, y, err := parseCellRef(r.args[0])
	if err != nil {
		usageHandler(err.Error(), w, r)
		return
	}
	mx, my := x/board.BoxSide, y/board.BoxSide
	sg, err := session.Grid.Box(mx, my)
	if err != nil {
		fmt.Fprintf(w, "Box failed: %v\n", err)
		return
	}
	ok, _ := session.Grid.BoxValid(mx, my)
	fmt.Fprintf(w, "%v\n(%s)\n", sg, verdict(ok))
}

func solvedHandler(session *storage.Session, w *os.File, r *request) {
	switch {
	case session.Grid.Solved():
		fmt.Fprintf(w, "The board is solved.\n")
	case session.Grid.Valid():
		fmt.Fprintf(w, "The board is not solved yet.\n")
	default:
		fmt.Fprintf(w, "The board is not solved: it has conflicts.\n")
	}
}

func checkHandler(session *storage.Session, w *os.File, r *request) {
	g := session.Grid
	if g.Solved() {
		fmt.Fprintf(w, "The board is solved.\n")
		return
	}
	if g.Valid() {
		fmt.Fprintf(w, "The board is consistent but not yet complete.\n")
		return
	}
	fmt.Fprintf(w, "The board has conflicts:\n")
	for y := 0; y < board.GridSide; y++ {
		if ok, _ := g.RowValid(y); !ok {
			fmt.Fprintf(w, "    row %c repeats a number\n", 'a'+y)
		}
	}
	for x := 0; x < board.GridSide; x++ {
		if ok, _ := g.ColumnValid(x); !ok {
			fmt.Fprintf(w, "    column %d repeats a number\n", x+1)
		}
	}
	for my := 0; my < board.BoxSide; my++ {
		for mx := 0; mx < board.BoxSide; mx++ {
			if ok, _ := g.BoxValid(mx, my); !ok {
				fmt.Fprintf(w, "    box at row %c column %d repeats a number\n",
					'a'+my*board.BoxSide, mx*board.BoxSide+1)
			}
		}
	}
}

func loadHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a file name", r.command), w, r)
		return
	}
	f, err := os.Open(r.args[0])
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	defer f.Close()
	g, err := board.Parse(f)
	if err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	session.StartGrid(g)
	showHandler(session, w, r)
}

func saveHandler(session *storage.Session, w *os.File, r *request) {
	if len(r.args) < 2 {
		usageHandler(fmt.Sprintf("%s requires a board id and a name", r.command), w, r)
		return
	}
	id, name := r.args[0], strings.Join(r.args[1:], " ")
	if err := storage.SaveBoard(id, name, session.Grid.Summary()); err != nil {
		fmt.Fprintf(w, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Board %q saved to the catalog as %q.\n", id, name)
}

func summaryHandler(session *storage.Session, w *os.File, r *request) {
	fmt.Fprintf(w, "Session %q playing board %q on step %d\n",
		session.SID, session.BID, session.Step)
	filled, empty := 0, 0
	for _, val := range session.Grid.Summary().Values {
		if val == 0 {
			empty++
		} else {
			filled++
		}
	}
	fmt.Fprintf(w, "Filled squares: %d; Empty squares: %d\n", filled, empty)
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-11s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Error().Str("input", r.inline).Msgf("panic in handler: %v", err)
}

/*

session handling

*/

// cookie for the command line
var defaultCookie string

var startTime = time.Now() // instance start-up time

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
func getCookie(w *os.File, r *request) string {
	// look to see if the user is specifying a cookie
	if r.command == "session" && len(r.args) > 0 {
		defaultCookie = r.args[0]
	}

	// look for an existing session cookie
	if len(defaultCookie) != 0 {
		return defaultCookie
	}

	// no session cookie: start a new session with a new ID
	// poor man's UUID for the session in local mode: time since startup.
	sid := strconv.FormatInt(int64(time.Since(startTime)), 36)
	log.Info().Str("sid", sid).Msg("created new session ID")
	defaultCookie = sid
	return sid
}

// sessionSelect finds or creates the session for the current
// command.
func sessionSelect(w *os.File, r *request) *storage.Session {
	id := getCookie(w, r)
	// check to see if this is a force reset of the session
	forceReset, resetID := r.command == "reset", ""
	if forceReset && len(r.args) > 0 {
		resetID = r.args[0]
	}
	// create an in-memory session with this cookie
	session := &storage.Session{SID: id, Created: time.Now().Format(time.RFC3339)}
	// load session from storage if possible, otherwise just initialize it
	if session.Lookup() {
		if forceReset {
			session.StartBoard(resetID)
		} else {
			session.LoadStep()
		}
	} else if forceReset {
		session.StartBoard(resetID)
	} else {
		session.StartBoard("default")
	}
	return session
}

/*

coordinate shutdown across goroutines and top-level listener

*/

type shutdownCause int

const (
	unknownShutdown = iota
	startupFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// shutdown: process exit with logging.
func shutdown(reason shutdownCause) {
	storage.Close()

	// log reason for shutdown and exit
	switch reason {
	case unknownShutdown:
		log.Fatal().Msg("exiting: normal shutdown")
	case startupFailureShutdown:
		log.Fatal().Msg("exiting: initialization failure")
	case caughtSignalShutdown:
		log.Fatal().Msg("exiting: caught signal")
	case listenerFailureShutdown:
		log.Fatal().Msg("exiting: listener failed")
	default:
		log.Fatal().Msg("exiting: unknown cause")
	}
}

// the signals that mean "stop".  The runtime uses SIGURG for
// goroutine preemption, so a catch-all Notify would shut the CLI
// down within moments of starting.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// shutdownOnSignal: catch termination signals and exit.
func shutdownOnSignal() {
	// based on example in os.signal godoc
	c := make(chan os.Signal, 1)
	signal.Notify(c, shutdownSignals...)

	go func() {
		s := <-c
		log.Info().Msgf("received OS-level signal: %v", s)
		shutdown(caughtSignalShutdown)
	}()
}
