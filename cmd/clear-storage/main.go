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

// Drop all stored data, then rebuild the schema and sample boards
// from scratch.  This flushes the cache too, so every session is
// forgotten.
package main

import (
	"os"

	"github.com/ninecheck/ninecheck.go/dbprep"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := dbprep.ReinitializeAll(); err != nil {
		log.Err(err).Msg("storage reinitialization failed")
		os.Exit(1)
	}
	log.Info().Msg("storage was cleared and rebuilt")
}
