package board

/*

SubGrids

*/

// Side lengths of the board's two levels.  A Grid is a BoxSide x
// BoxSide arrangement of SubGrids, each SubGrid is a BoxSide x
// BoxSide arrangement of Cells, giving a GridSide x GridSide
// board of GridCells cells.
const (
	BoxSide   = 3
	GridSide  = BoxSide * BoxSide
	GridCells = GridSide * GridSide
)

// A SubGrid is one of the nine 3x3 boxes of a Grid: a fixed-size
// store of nine Cells addressed by local coordinates (lx, ly),
// each in [0, BoxSide-1].  A SubGrid stores values without
// judging them; the uniqueness rules are checked one level up by
// the Grid, over whole rows, columns, and boxes.
//
// The zero value is a SubGrid with all nine cells empty.
// SubGrids are owned and mutated by their Grid; Box hands out
// snapshot copies only.
type SubGrid struct {
	cells [BoxSide * BoxSide]Cell
}

// Cell returns the cell at local coordinates (lx, ly).
func (sg *SubGrid) Cell(lx, ly int) (Cell, error) {
	if err := checkLocal(lx, ly); err != nil {
		return Empty, err
	}
	return sg.cells[ly*BoxSide+lx], nil
}

// Set overwrites the cell at local coordinates (lx, ly).  The
// prior content doesn't matter and the new content is not
// checked against any neighbor.
func (sg *SubGrid) Set(c Cell, lx, ly int) error {
	if err := checkLocal(lx, ly); err != nil {
		return err
	}
	sg.cells[ly*BoxSide+lx] = c
	return nil
}

// checkLocal validates a local coordinate pair.
func checkLocal(lx, ly int) error {
	if lx < 0 || lx >= BoxSide {
		return rangeError(SubGridScope, XAxis, lx, 0, BoxSide-1)
	}
	if ly < 0 || ly >= BoxSide {
		return rangeError(SubGridScope, YAxis, ly, 0, BoxSide-1)
	}
	return nil
}
