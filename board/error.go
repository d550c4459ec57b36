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
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a requested board operation.
// It can produce an error message in English, but it is also
// JSON-serializable so that web clients can do their own
// localized messaging.  It tells the caller "this value, on this
// axis, in this scope, fell outside these bounds".
//
// Coordinate errors are programmer errors: they never happen
// when callers respect the documented coordinate domains, and
// the board never clamps or wraps a bad coordinate on the
// caller's behalf.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Axis      ErrorAxis      `json:"axis,omitempty"`
	Value     int            `json:"value"`
	Min       int            `json:"min,omitempty"`
	Max       int            `json:"max,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope names the kind of thing whose access failed.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	CellScope
	SubGridScope
	GridScope
	RowScope
	ColumnScope
	BoxScope
	SummaryScope
	LayoutScope
	MaxScope
)

// An ErrorCondition is the predicate the value failed to
// satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	OutOfRangeCondition
	WrongLengthCondition
	BadCharacterCondition
	MaxCondition
)

// An ErrorAxis names which coordinate (or other dimension) of
// the scope had the problem.
type ErrorAxis int

// Constants for the various axes.
const (
	UnknownAxis ErrorAxis = iota
	XAxis
	YAxis
	ValueAxis
	LengthAxis
	CharacterAxis
	MaxAxis
)

// Axes implement Stringer
func (a ErrorAxis) String() string {
	switch a {
	case XAxis:
		return "x coordinate"
	case YAxis:
		return "y coordinate"
	case ValueAxis:
		return "value"
	case LengthAxis:
		return "length"
	case CharacterAxis:
		return "character"
	}
	return "<unknown axis>"
}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	var where string
	switch e.Scope {
	case CellScope:
		where = "cell"
	case SubGridScope:
		where = "subgrid"
	case GridScope:
		where = "grid"
	case RowScope:
		where = "row"
	case ColumnScope:
		where = "column"
	case BoxScope:
		where = "box"
	case SummaryScope:
		where = "summary"
	case LayoutScope:
		where = "layout"
	default:
		where = "<unknown scope>"
	}
	switch e.Condition {
	case OutOfRangeCondition:
		return fmt.Sprintf("Invalid %s access: %v %d must be between %d and %d",
			where, e.Axis, e.Value, e.Min, e.Max)
	case WrongLengthCondition:
		return fmt.Sprintf("Invalid %s: %v %d must be exactly %d",
			where, e.Axis, e.Value, e.Min)
	case BadCharacterCondition:
		return fmt.Sprintf("Invalid %s: %v %q is neither a space nor a digit 1-9",
			where, e.Axis, rune(e.Value))
	}
	return fmt.Sprintf("Unknown error in %s (condition %d)", where, e.Condition)
}

// rangeError builds the out-of-range Error that every
// coordinate-accepting operation returns.
func rangeError(scope ErrorScope, axis ErrorAxis, val, min, max int) Error {
	return Error{
		Scope:     scope,
		Condition: OutOfRangeCondition,
		Axis:      axis,
		Value:     val,
		Min:       min,
		Max:       max,
	}
}

// IsOutOfRange reports whether an error is a coordinate
// out-of-range Error from this package.
func IsOutOfRange(err error) bool {
	e, ok := err.(Error)
	return ok && e.Condition == OutOfRangeCondition
}
