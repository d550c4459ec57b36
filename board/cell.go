// Package board models a classic 9x9 number-placement board: a
// 3x3 arrangement of 3x3 subgrids whose cells are either empty
// or hold a digit from 1 to 9.  The board answers two questions
// about itself: whether its current contents are consistent (no
// digit repeated in any row, column, or box) and whether it is
// completely and correctly filled.
//
// The board enforces nothing at write time.  Cells are set
// unconditionally and the uniqueness rules are checked on
// demand, so a board can freely pass through invalid states
// while being filled in.
//
// Boards are not safe for concurrent use.  A caller that shares
// a Grid across goroutines must serialize access itself; Copy is
// the supported way to obtain an independent board.
package board

import (
	"strconv"
)

/*

Cell values

*/

// A Cell is the content of one square of the board: either
// Empty or a single digit between 1 and MaxDigit.  The zero
// value is Empty, and there is no way to construct a Cell
// holding the digit 0, so emptiness and digits can never be
// confused.
type Cell uint8

// Empty is the Cell with no digit.
const Empty Cell = 0

// MaxDigit is the largest digit a Cell can hold.
const MaxDigit = 9

// Digit returns the Cell holding the given digit.  Digits run
// from 1 to MaxDigit; anything else is out of range.
func Digit(v int) (Cell, error) {
	if v < 1 || v > MaxDigit {
		return Empty, rangeError(CellScope, ValueAxis, v, 1, MaxDigit)
	}
	return Cell(v), nil
}

// IsDigit reports whether the cell holds a digit.  Empty cells
// never compare equal to digit cells, so Cell equality is
// equality of resolved digits.
func (c Cell) IsDigit() bool {
	return c != Empty
}

// Digit returns the cell's digit and whether it holds one.
func (c Cell) Digit() (int, bool) {
	if c == Empty {
		return 0, false
	}
	return int(c), true
}

// String returns the print form of the cell: its digit, or "_"
// for an empty cell.
func (c Cell) String() string {
	if c == Empty {
		return "_"
	}
	return strconv.Itoa(int(c))
}
