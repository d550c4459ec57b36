package board

import (
	"strings"
	"testing"
)

func TestParseBasicLayout(t *testing.T) {
	layout := "4    35 2\n" +
		"  95 634 \n" +
		"        8\n" +
		"    3486 \n" +
		"  46 52  \n" +
		" 2879    \n" +
		"9        \n" +
		" 873 29  \n" +
		"5 29    6"
	g, err := ParseString(layout)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	checks := []struct{ x, y, v int }{
		{0, 0, 4}, {5, 0, 3}, {6, 0, 5}, {8, 0, 2},
		{2, 1, 9}, {3, 1, 5}, {8, 2, 8},
		{0, 6, 9}, {0, 8, 5}, {8, 8, 6},
	}
	for _, ck := range checks {
		c, _ := g.Cell(ck.x, ck.y)
		if d, ok := c.Digit(); !ok || d != ck.v {
			t.Errorf("cell (%d, %d) = %v, expected digit %d", ck.x, ck.y, c, ck.v)
		}
	}
	if occ, _ := g.Occupied(1, 0); occ {
		t.Errorf("cell (1, 0) occupied, expected empty")
	}
	if !g.Valid() {
		t.Errorf("sample layout parsed to an invalid grid")
	}
	if g.Solved() {
		t.Errorf("partial layout parsed to a solved grid")
	}
}

func TestParseBlankRow(t *testing.T) {
	// row 1 is all spaces: every cell in it stays empty
	g, err := ParseString("123456789\n         \n987654321")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	for x := 0; x < GridSide; x++ {
		if occ, _ := g.Occupied(x, 1); occ {
			t.Errorf("cell (%d, 1) occupied in a blank row", x)
		}
	}
	if ok, _ := g.RowValid(1); !ok {
		t.Errorf("blank row 1 is not valid")
	}
}

func TestParseShortAndMissingRows(t *testing.T) {
	// short rows leave trailing cells empty; missing rows stay empty
	g, err := ParseString("12\n\n3")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if d, _ := g.Cell(1, 0); d != Cell(2) {
		t.Errorf("cell (1, 0) = %v, expected 2", d)
	}
	if occ, _ := g.Occupied(2, 0); occ {
		t.Errorf("cell (2, 0) occupied past a short row")
	}
	if d, _ := g.Cell(0, 2); d != Cell(3) {
		t.Errorf("cell (0, 2) = %v, expected 3", d)
	}
	for y := 3; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			if occ, _ := g.Occupied(x, y); occ {
				t.Errorf("cell (%d, %d) occupied with no layout row", x, y)
			}
		}
	}
}

func TestParseIgnoresOverflow(t *testing.T) {
	// characters past column 9 and lines past row 9 are ignored,
	// even when they are not legal layout characters
	long := strings.Repeat("123456789XYZ\n", 10) + "garbage beyond row nine"
	g, err := Parse(strings.NewReader(long))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for y := 0; y < GridSide; y++ {
		for x := 0; x < GridSide; x++ {
			if d, _ := g.Cell(x, y); d != Cell(x+1) {
				t.Errorf("cell (%d, %d) = %v, expected %d", x, y, d, x+1)
			}
		}
	}
}

func TestParseVeryLongRow(t *testing.T) {
	// rows longer than any fixed scanning buffer still parse,
	// with everything past column 9 ignored
	layout := "123456789" + strings.Repeat("x", 80000) + "\n987654321"
	g, err := ParseString(layout)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	for x := 0; x < GridSide; x++ {
		if d, _ := g.Cell(x, 0); d != Cell(x+1) {
			t.Errorf("cell (%d, 0) = %v, expected %d", x, d, x+1)
		}
		if d, _ := g.Cell(x, 1); d != Cell(GridSide-x) {
			t.Errorf("cell (%d, 1) = %v, expected %d", x, d, GridSide-x)
		}
	}
}

func TestParseBadCharacter(t *testing.T) {
	_, err := ParseString("12x")
	if err == nil {
		t.Fatalf("layout with 'x' did not fail")
	}
	e, ok := err.(Error)
	if !ok {
		t.Fatalf("parse error is not a board Error: %v", err)
	}
	if e.Condition != BadCharacterCondition || e.Scope != LayoutScope {
		t.Errorf("parse error = %+v, expected layout bad-character", e)
	}
	if e.Value != 'x' {
		t.Errorf("parse error value = %d, expected %d", e.Value, 'x')
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	layout := "4    35 2\n" +
		"  95 634 \n" +
		"        8\n" +
		"    3486 \n" +
		"  46 52  \n" +
		" 2879    \n" +
		"9        \n" +
		" 873 29  \n" +
		"5 29    6"
	g, err := ParseString(layout)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := g.Layout(); got != layout {
		t.Errorf("Layout round trip:\ngot:\n%s\nexpected:\n%s", got, layout)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid()
	one, _ := Digit(1)
	nine, _ := Digit(9)
	g.SetCell(one, 0, 0)
	g.SetCell(nine, 8, 8)
	lines := strings.Split(g.String(), "\n")
	// 9 cell rows plus 2 divider rows
	if len(lines) != 11 {
		t.Fatalf("String() has %d lines, expected 11", len(lines))
	}
	wantTop := "1 _ _ | _ _ _ | _ _ _ "
	if lines[0] != wantTop {
		t.Errorf("line 0 = %q, expected %q", lines[0], wantTop)
	}
	wantDivider := strings.Repeat("-", 21)
	if lines[3] != wantDivider || lines[7] != wantDivider {
		t.Errorf("divider lines = %q / %q, expected %q", lines[3], lines[7], wantDivider)
	}
	wantBottom := "_ _ _ | _ _ _ | _ _ 9 "
	if lines[10] != wantBottom {
		t.Errorf("line 10 = %q, expected %q", lines[10], wantBottom)
	}
}
