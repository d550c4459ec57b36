package board

import (
	"reflect"
	"testing"
)

// solvedGrid builds a canonical completed board: each row,
// column, and box is a permutation of 1-9.
func solvedGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid()
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			c, err := Digit((y*BoxSide+y/BoxSide+x)%GridSide + 1)
			if err != nil {
				t.Fatalf("building solved grid: %v", err)
			}
			if err := g.SetCell(c, x, y); err != nil {
				t.Fatalf("building solved grid at (%d, %d): %v", x, y, err)
			}
		}
	}
	return g
}

func mustDigit(t *testing.T, v int) Cell {
	t.Helper()
	c, err := Digit(v)
	if err != nil {
		t.Fatalf("Digit(%d): %v", v, err)
	}
	return c
}

func TestGridSetGetRoundTrip(t *testing.T) {
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			g := NewGrid()
			want := mustDigit(t, (x+y)%MaxDigit+1)
			if err := g.SetCell(want, x, y); err != nil {
				t.Fatalf("SetCell at (%d, %d) failed: %v", x, y, err)
			}
			for oy := 0; oy < GridSide; oy++ {
				for ox := 0; ox < GridSide; ox++ {
					c, err := g.Cell(ox, oy)
					if err != nil {
						t.Fatalf("Cell(%d, %d) failed: %v", ox, oy, err)
					}
					if ox == x && oy == y {
						if c != want {
							t.Errorf("cell (%d, %d) = %v, expected %v", ox, oy, c, want)
						}
					} else if c != Empty {
						t.Errorf("SetCell at (%d, %d) disturbed cell (%d, %d)", x, y, ox, oy)
					}
				}
			}
		}
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := NewGrid()
	bad := [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}, {9, 9}, {-1, -1}, {100, 4}}
	for _, co := range bad {
		if _, err := g.Cell(co[0], co[1]); !IsOutOfRange(err) {
			t.Errorf("Cell(%d, %d) error = %v, expected out-of-range", co[0], co[1], err)
		}
		if err := g.SetCell(Empty, co[0], co[1]); !IsOutOfRange(err) {
			t.Errorf("SetCell at (%d, %d) error = %v, expected out-of-range", co[0], co[1], err)
		}
		if _, err := g.Occupied(co[0], co[1]); !IsOutOfRange(err) {
			t.Errorf("Occupied(%d, %d) error = %v, expected out-of-range", co[0], co[1], err)
		}
	}
	if _, err := g.Row(9); !IsOutOfRange(err) {
		t.Errorf("Row(9) error = %v, expected out-of-range", err)
	}
	if _, err := g.Column(-1); !IsOutOfRange(err) {
		t.Errorf("Column(-1) error = %v, expected out-of-range", err)
	}
	if _, err := g.RowValid(10); !IsOutOfRange(err) {
		t.Errorf("RowValid(10) error = %v, expected out-of-range", err)
	}
	if _, err := g.ColumnValid(9); !IsOutOfRange(err) {
		t.Errorf("ColumnValid(9) error = %v, expected out-of-range", err)
	}
	if _, err := g.BoxValid(3, 0); !IsOutOfRange(err) {
		t.Errorf("BoxValid(3, 0) error = %v, expected out-of-range", err)
	}
	if _, err := g.BoxValid(0, -1); !IsOutOfRange(err) {
		t.Errorf("BoxValid(0, -1) error = %v, expected out-of-range", err)
	}
}

func TestGridOccupied(t *testing.T) {
	g := NewGrid()
	if occ, _ := g.Occupied(4, 4); occ {
		t.Errorf("empty cell reported occupied")
	}
	g.SetCell(mustDigit(t, 7), 4, 4)
	if occ, _ := g.Occupied(4, 4); !occ {
		t.Errorf("digit cell reported unoccupied")
	}
	g.SetCell(Empty, 4, 4)
	if occ, _ := g.Occupied(4, 4); occ {
		t.Errorf("cleared cell reported occupied")
	}
}

func TestGridRowColumnSnapshots(t *testing.T) {
	g := NewGrid()
	g.SetCell(mustDigit(t, 3), 0, 2)
	g.SetCell(mustDigit(t, 8), 5, 2)
	g.SetCell(mustDigit(t, 4), 5, 7)

	row, err := g.Row(2)
	if err != nil {
		t.Fatalf("Row(2) failed: %v", err)
	}
	wantRow := make([]Cell, GridSide)
	wantRow[0] = mustDigit(t, 3)
	wantRow[5] = mustDigit(t, 8)
	if !reflect.DeepEqual(row, wantRow) {
		t.Errorf("Row(2) = %v, expected %v", row, wantRow)
	}

	col, err := g.Column(5)
	if err != nil {
		t.Fatalf("Column(5) failed: %v", err)
	}
	wantCol := make([]Cell, GridSide)
	wantCol[2] = mustDigit(t, 8)
	wantCol[7] = mustDigit(t, 4)
	if !reflect.DeepEqual(col, wantCol) {
		t.Errorf("Column(5) = %v, expected %v", col, wantCol)
	}

	// snapshots, not views
	row[1] = mustDigit(t, 9)
	if c, _ := g.Cell(1, 2); c != Empty {
		t.Errorf("mutating a Row snapshot changed the grid")
	}
}

func TestEmptyGridVacuouslyValid(t *testing.T) {
	g := NewGrid()
	if !g.Valid() {
		t.Errorf("empty grid is not Valid")
	}
	if g.Solved() {
		t.Errorf("empty grid claims to be Solved")
	}
	for i := 0; i < GridSide; i++ {
		if ok, _ := g.RowValid(i); !ok {
			t.Errorf("empty row %d is not valid", i)
		}
		if ok, _ := g.ColumnValid(i); !ok {
			t.Errorf("empty column %d is not valid", i)
		}
	}
}

func TestRowDuplicate(t *testing.T) {
	g := NewGrid()
	five := mustDigit(t, 5)
	g.SetCell(five, 0, 0)
	g.SetCell(five, 3, 0)
	if ok, _ := g.RowValid(0); ok {
		t.Errorf("row 0 with two 5s is valid")
	}
	if g.Valid() {
		t.Errorf("grid with a row duplicate is Valid")
	}
	// the duplicate sits in different boxes, so both boxes are fine
	if ok, _ := g.BoxValid(0, 0); !ok {
		t.Errorf("box (0, 0) invalid despite holding a single 5")
	}
	if ok, _ := g.BoxValid(1, 0); !ok {
		t.Errorf("box (1, 0) invalid despite holding a single 5")
	}
}

func TestColumnDuplicate(t *testing.T) {
	g := NewGrid()
	five := mustDigit(t, 5)
	g.SetCell(five, 0, 0)
	g.SetCell(five, 0, 3)
	if ok, _ := g.ColumnValid(0); ok {
		t.Errorf("column 0 with two 5s is valid")
	}
	if ok, _ := g.BoxValid(0, 0); !ok {
		t.Errorf("box (0, 0) invalid though its 5s are in different boxes")
	}
	if g.Valid() {
		t.Errorf("grid with a column duplicate is Valid")
	}
}

func TestBoxDuplicate(t *testing.T) {
	g := NewGrid()
	five := mustDigit(t, 5)
	// same box, different row and column
	g.SetCell(five, 0, 0)
	g.SetCell(five, 1, 1)
	if ok, _ := g.BoxValid(0, 0); ok {
		t.Errorf("box (0, 0) with two 5s is valid")
	}
	if ok, _ := g.RowValid(0); !ok {
		t.Errorf("row 0 invalid despite a single 5")
	}
	if ok, _ := g.ColumnValid(0); !ok {
		t.Errorf("column 0 invalid despite a single 5")
	}
	if g.Valid() {
		t.Errorf("grid with a box duplicate is Valid")
	}
}

func TestSolvedGrid(t *testing.T) {
	g := solvedGrid(t)
	if !g.Valid() {
		t.Fatalf("canonical solved grid is not Valid")
	}
	if !g.Solved() {
		t.Fatalf("canonical solved grid is not Solved")
	}
	// punching one hole unsolves it without invalidating it
	g.SetCell(Empty, 8, 8)
	if g.Solved() {
		t.Errorf("grid with an empty cell claims to be Solved")
	}
	if !g.Valid() {
		t.Errorf("grid with an empty cell is no longer Valid")
	}
	// solving doesn't lock: a later write can invalidate
	g2 := solvedGrid(t)
	dup, _ := g2.Cell(0, 0)
	g2.SetCell(dup, 1, 0)
	if g2.Valid() || g2.Solved() {
		t.Errorf("mutated solved grid still claims Valid/Solved")
	}
}

func TestGridCopy(t *testing.T) {
	g := NewGrid()
	g.SetCell(mustDigit(t, 6), 2, 5)
	c := g.Copy()
	if v, _ := c.Cell(2, 5); v != mustDigit(t, 6) {
		t.Fatalf("copy lost cell (2, 5)")
	}
	// the two grids share no mutable state
	c.SetCell(mustDigit(t, 1), 0, 0)
	if v, _ := g.Cell(0, 0); v != Empty {
		t.Errorf("mutating the copy changed the original")
	}
	g.SetCell(mustDigit(t, 2), 8, 8)
	if v, _ := c.Cell(8, 8); v != Empty {
		t.Errorf("mutating the original changed the copy")
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	g := solvedGrid(t)
	g.SetCell(Empty, 3, 4)
	s := g.Summary()
	if len(s.Values) != GridCells {
		t.Fatalf("summary has %d values, expected %d", len(s.Values), GridCells)
	}
	if s.Values[4*GridSide+3] != 0 {
		t.Errorf("summary value for empty cell is %d, expected 0", s.Values[4*GridSide+3])
	}
	g2, err := New(s)
	if err != nil {
		t.Fatalf("New from summary failed: %v", err)
	}
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			a, _ := g.Cell(x, y)
			b, _ := g2.Cell(x, y)
			if a != b {
				t.Errorf("round-tripped cell (%d, %d) = %v, expected %v", x, y, b, a)
			}
		}
	}
}

func TestNewRejectsBadSummaries(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Errorf("New(nil) did not fail")
	} else if err.(Error).Condition != WrongLengthCondition {
		t.Errorf("New(nil) error condition = %v", err.(Error).Condition)
	}
	if _, err := New(&Summary{Values: make([]int, 80)}); err == nil {
		t.Errorf("New with 80 values did not fail")
	}
	vs := make([]int, GridCells)
	vs[17] = 10
	if _, err := New(&Summary{Values: vs}); !IsOutOfRange(err) {
		t.Errorf("New with value 10 error = %v, expected out-of-range", err)
	}
	vs[17] = -2
	if _, err := New(&Summary{Values: vs}); !IsOutOfRange(err) {
		t.Errorf("New with value -2 error = %v, expected out-of-range", err)
	}
}

func TestBoxSnapshot(t *testing.T) {
	g := NewGrid()
	five, _ := Digit(5)
	if err := g.SetCell(five, 4, 4); err != nil {
		t.Fatalf("set of (4, 4) failed: %v", err)
	}

	sg, err := g.Box(1, 1)
	if err != nil {
		t.Fatalf("box (1, 1) failed: %v", err)
	}
	if c, _ := sg.Cell(1, 1); c != five {
		t.Errorf("box cell (1, 1) = %v, expected %v", c, five)
	}

	// the snapshot shares no storage with the grid
	nine, _ := Digit(9)
	if err := sg.Set(nine, 0, 0); err != nil {
		t.Fatalf("set on snapshot failed: %v", err)
	}
	if c, _ := g.Cell(3, 3); c != Empty {
		t.Errorf("grid cell (3, 3) changed to %v after snapshot write", c)
	}

	for _, m := range []int{-1, BoxSide} {
		if _, err := g.Box(m, 0); !IsOutOfRange(err) {
			t.Errorf("box (%d, 0) error = %v, expected out-of-range", m, err)
		}
		if _, err := g.Box(0, m); !IsOutOfRange(err) {
			t.Errorf("box (0, %d) error = %v, expected out-of-range", m, err)
		}
	}
}
