package board

/*

Grid representation

*/

// A Grid is the full 9x9 board: a 3x3 meta-layout of SubGrids
// composing a virtual 9x9 space addressed by global coordinates
// (x, y), each in [0, GridSide-1].  Every global cell belongs to
// exactly one subgrid, the one at meta-coordinates (x/3, y/3),
// at local position (x%3, y%3); that mapping is a bijection and
// every access goes through it.
//
// A cell simultaneously belongs to one row, one column, and one
// box, and each of those three overlapping partitions must
// independently be free of repeated digits for the grid to be
// valid.
type Grid struct {
	boxes [BoxSide * BoxSide]SubGrid
}

// NewGrid returns a grid with all 81 cells empty.
func NewGrid() *Grid {
	return &Grid{}
}

// box returns the subgrid at meta-coordinates (mx, my).  The
// caller has already validated the coordinates.
func (g *Grid) box(mx, my int) *SubGrid {
	return &g.boxes[my*BoxSide+mx]
}

// at reads the cell at validated global coordinates.
func (g *Grid) at(x, y int) Cell {
	return g.box(x/BoxSide, y/BoxSide).cells[(y%BoxSide)*BoxSide+(x%BoxSide)]
}

// setAt writes the cell at validated global coordinates.
func (g *Grid) setAt(c Cell, x, y int) {
	g.box(x/BoxSide, y/BoxSide).cells[(y%BoxSide)*BoxSide+(x%BoxSide)] = c
}

// checkGlobal validates a global coordinate pair.
func checkGlobal(x, y int) error {
	if x < 0 || x >= GridSide {
		return rangeError(GridScope, XAxis, x, 0, GridSide-1)
	}
	if y < 0 || y >= GridSide {
		return rangeError(GridScope, YAxis, y, 0, GridSide-1)
	}
	return nil
}

/*

Cell access

*/

// Cell returns the cell at global coordinates (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	if err := checkGlobal(x, y); err != nil {
		return Empty, err
	}
	return g.at(x, y), nil
}

// SetCell overwrites the cell at global coordinates (x, y) by
// delegating to the owning subgrid.  The write is unconditional:
// no uniqueness check happens here, because the validity checks
// are pull-based queries over the whole grid.
func (g *Grid) SetCell(c Cell, x, y int) error {
	if err := checkGlobal(x, y); err != nil {
		return err
	}
	return g.box(x/BoxSide, y/BoxSide).Set(c, x%BoxSide, y%BoxSide)
}

// Occupied reports whether the cell at (x, y) holds a digit.
func (g *Grid) Occupied(x, y int) (bool, error) {
	if err := checkGlobal(x, y); err != nil {
		return false, err
	}
	return g.at(x, y).IsDigit(), nil
}

// Row returns a snapshot of row y, in ascending x order.  The
// returned slice shares no storage with the grid.
func (g *Grid) Row(y int) ([]Cell, error) {
	if y < 0 || y >= GridSide {
		return nil, rangeError(RowScope, YAxis, y, 0, GridSide-1)
	}
	row := make([]Cell, GridSide)
	for x := range row {
		row[x] = g.at(x, y)
	}
	return row, nil
}

// Column returns a snapshot of column x, in ascending y order.
// The returned slice shares no storage with the grid.
func (g *Grid) Column(x int) ([]Cell, error) {
	if x < 0 || x >= GridSide {
		return nil, rangeError(ColumnScope, XAxis, x, 0, GridSide-1)
	}
	col := make([]Cell, GridSide)
	for y := range col {
		col[y] = g.at(x, y)
	}
	return col, nil
}

// Box returns a snapshot of the subgrid at meta-coordinates
// (mx, my).  The returned subgrid shares no storage with the
// grid.
func (g *Grid) Box(mx, my int) (*SubGrid, error) {
	if mx < 0 || mx >= BoxSide {
		return nil, rangeError(BoxScope, XAxis, mx, 0, BoxSide-1)
	}
	if my < 0 || my >= BoxSide {
		return nil, rangeError(BoxScope, YAxis, my, 0, BoxSide-1)
	}
	sg := *g.box(mx, my)
	return &sg, nil
}

/*

Consistency checks.  Each unit check scans its nine cells in
ascending coordinate order, ignores empty cells, and fails on
the first digit seen twice.  An all-empty unit is vacuously
valid.

*/

// RowValid reports whether row y repeats no digit.
func (g *Grid) RowValid(y int) (bool, error) {
	if y < 0 || y >= GridSide {
		return false, rangeError(RowScope, YAxis, y, 0, GridSide-1)
	}
	var seen [MaxDigit]bool
	for x := 0; x < GridSide; x++ {
		d, ok := g.at(x, y).Digit()
		if !ok {
			continue
		}
		if seen[d-1] {
			return false, nil
		}
		seen[d-1] = true
	}
	return true, nil
}

// ColumnValid reports whether column x repeats no digit.
func (g *Grid) ColumnValid(x int) (bool, error) {
	if x < 0 || x >= GridSide {
		return false, rangeError(ColumnScope, XAxis, x, 0, GridSide-1)
	}
	var seen [MaxDigit]bool
	for y := 0; y < GridSide; y++ {
		d, ok := g.at(x, y).Digit()
		if !ok {
			continue
		}
		if seen[d-1] {
			return false, nil
		}
		seen[d-1] = true
	}
	return true, nil
}

// BoxValid reports whether the subgrid at meta-coordinates
// (mx, my) repeats no digit.
func (g *Grid) BoxValid(mx, my int) (bool, error) {
	if mx < 0 || mx >= BoxSide {
		return false, rangeError(BoxScope, XAxis, mx, 0, BoxSide-1)
	}
	if my < 0 || my >= BoxSide {
		return false, rangeError(BoxScope, YAxis, my, 0, BoxSide-1)
	}
	var seen [MaxDigit]bool
	for _, c := range g.box(mx, my).cells {
		d, ok := c.Digit()
		if !ok {
			continue
		}
		if seen[d-1] {
			return false, nil
		}
		seen[d-1] = true
	}
	return true, nil
}

// Valid reports whether all nine rows, all nine columns, and all
// nine boxes are individually free of repeated digits.  A single
// failing unit makes the whole grid invalid.  Valid is a pure
// query and never fails; the unit checks below it only error on
// coordinates, which are in range here by construction.
func (g *Grid) Valid() bool {
	for i := 0; i < GridSide; i++ {
		if ok, _ := g.RowValid(i); !ok {
			return false
		}
		if ok, _ := g.ColumnValid(i); !ok {
			return false
		}
	}
	for my := 0; my < BoxSide; my++ {
		for mx := 0; mx < BoxSide; mx++ {
			if ok, _ := g.BoxValid(mx, my); !ok {
				return false
			}
		}
	}
	return true
}

// Solved reports whether every one of the 81 cells holds a digit
// and the grid is valid.  A grid with even one empty cell is
// never solved.  Solving does not lock the grid: later SetCell
// calls can make a solved grid unsolved again.
func (g *Grid) Solved() bool {
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			if !g.at(x, y).IsDigit() {
				return false
			}
		}
	}
	return g.Valid()
}

// Copy returns a deep copy of the grid.  The copy and the
// original share no mutable state: mutating one never affects
// the other.
func (g *Grid) Copy() *Grid {
	c := *g
	return &c
}

/*

Wire form

*/

// A Summary is the wire form of a grid: the 81 cell values in
// reading order (left-to-right, top-to-bottom), with 0 standing
// for an empty cell.  Summaries are what get JSON-encoded into
// the cache, the database, and HTTP responses.  The 0-for-empty
// convention exists only at this boundary; inside the model an
// empty cell is never the digit 0.
type Summary struct {
	Values []int `json:"values"`
}

// Summary returns the wire form of the grid.
func (g *Grid) Summary() *Summary {
	vs := make([]int, GridCells)
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			if d, ok := g.at(x, y).Digit(); ok {
				vs[y*GridSide+x] = d
			}
		}
	}
	return &Summary{Values: vs}
}

// New builds a grid from a summary.  Summaries must carry
// exactly GridCells values, each 0 (empty) or a digit 1-9.
func New(s *Summary) (*Grid, error) {
	n := 0
	if s != nil {
		n = len(s.Values)
	}
	if n != GridCells {
		return nil, Error{
			Scope:     SummaryScope,
			Condition: WrongLengthCondition,
			Axis:      LengthAxis,
			Value:     n,
			Min:       GridCells,
			Max:       GridCells,
		}
	}
	g := NewGrid()
	for i, v := range s.Values {
		if v == 0 {
			continue
		}
		c, err := Digit(v)
		if err != nil {
			return nil, err
		}
		g.setAt(c, i%GridSide, i/GridSide)
	}
	return g, nil
}
