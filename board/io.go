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

package board

import (
	"bufio"
	"io"
	"strings"
)

/*

Textual board layouts

A layout is up to nine lines of up to nine characters, one
character per cell: a space leaves the cell empty and a digit
'1'-'9' fills it.  Lines shorter than nine characters leave
their trailing cells empty, characters past the ninth column are
ignored, and lines past the ninth row are ignored.  This is the
only external data format the board defines.

*/

// Parse reads a textual layout into a fresh grid.  Any
// character other than a space or a digit 1-9 is a layout
// error.  Lines can be arbitrarily long; everything past the
// ninth column is ignored.
func Parse(r io.Reader) (*Grid, error) {
	g := NewGrid()
	br := bufio.NewReader(r)
	for y := 0; y < GridSide; y++ {
		line, err := br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		for x := 0; x < len(line) && x < GridSide; x++ {
			ch := line[x]
			switch {
			case ch == ' ':
				// cell is already empty
			case ch >= '1' && ch <= '9':
				g.setAt(Cell(ch-'0'), x, y)
			default:
				return nil, Error{
					Scope:     LayoutScope,
					Condition: BadCharacterCondition,
					Axis:      CharacterAxis,
					Value:     int(ch),
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ParseString reads a textual layout from a string.
func ParseString(layout string) (*Grid, error) {
	return Parse(strings.NewReader(layout))
}

// Layout returns the grid in the textual layout format that
// Parse reads: nine 9-character lines, spaces for empty cells.
func (g *Grid) Layout() string {
	var b strings.Builder
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			if d, ok := g.at(x, y).Digit(); ok {
				b.WriteByte(byte('0' + d))
			} else {
				b.WriteByte(' ')
			}
		}
		if y < GridSide-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

/*

Pretty-printed boards in strings

*/

// String gives a pretty-printed view of the grid: every column
// padded to the width of its widest value plus a 1-space gutter,
// a "| " divider after the third and sixth columns, and a dashed
// line after the third and sixth rows.
func (g *Grid) String() string {
	// size each column to its widest value
	var widths [GridSide]int
	total := 0
	for x := 0; x < GridSide; x++ {
		widths[x] = 1
		for y := 0; y < GridSide; y++ {
			if n := len(g.at(x, y).String()); n > widths[x] {
				widths[x] = n
			}
		}
		total += widths[x]
	}
	var b strings.Builder
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			s := g.at(x, y).String()
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", widths[x]-len(s)+1))
			if x == BoxSide-1 || x == 2*BoxSide-1 {
				b.WriteString("| ")
			}
		}
		b.WriteByte('\n')
		if y == BoxSide-1 || y == 2*BoxSide-1 {
			b.WriteString(strings.Repeat("-", total+12))
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// String gives the 3-line block form of a subgrid, each column
// padded to the width of its widest value plus a 1-space gutter.
func (sg *SubGrid) String() string {
	var widths [BoxSide]int
	for lx := 0; lx < BoxSide; lx++ {
		widths[lx] = 1
		for ly := 0; ly < BoxSide; ly++ {
			if n := len(sg.cells[ly*BoxSide+lx].String()); n > widths[lx] {
				widths[lx] = n
			}
		}
	}
	var b strings.Builder
	for ly := 0; ly < BoxSide; ly++ {
		for lx := 0; lx < BoxSide; lx++ {
			s := sg.cells[ly*BoxSide+lx].String()
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", widths[lx]-len(s)+1))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
