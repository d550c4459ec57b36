package board

import (
	"testing"
)

func TestDigitRange(t *testing.T) {
	for v := 1; v <= MaxDigit; v++ {
		c, err := Digit(v)
		if err != nil {
			t.Errorf("Digit(%d) failed: %v", v, err)
		}
		if d, ok := c.Digit(); !ok || d != v {
			t.Errorf("Digit(%d).Digit() = (%d, %v), expected (%d, true)", v, d, ok, v)
		}
		if !c.IsDigit() {
			t.Errorf("Digit(%d).IsDigit() = false", v)
		}
	}
	for _, v := range []int{-1, 0, 10, 100} {
		c, err := Digit(v)
		if err == nil {
			t.Errorf("Digit(%d) did not fail", v)
			continue
		}
		if !IsOutOfRange(err) {
			t.Errorf("Digit(%d) error is not out-of-range: %v", v, err)
		}
		if c != Empty {
			t.Errorf("Digit(%d) returned non-empty cell %v on failure", v, c)
		}
	}
}

func TestEmptyCell(t *testing.T) {
	var c Cell
	if c != Empty {
		t.Errorf("zero-value cell is not Empty")
	}
	if c.IsDigit() {
		t.Errorf("Empty.IsDigit() = true")
	}
	if d, ok := c.Digit(); ok || d != 0 {
		t.Errorf("Empty.Digit() = (%d, %v), expected (0, false)", d, ok)
	}
	// an empty cell never equals a digit cell
	five, _ := Digit(5)
	if c == five {
		t.Errorf("Empty compares equal to Digit(5)")
	}
}

func TestCellString(t *testing.T) {
	if s := Empty.String(); s != "_" {
		t.Errorf("Empty.String() = %q, expected %q", s, "_")
	}
	for v := 1; v <= MaxDigit; v++ {
		c, _ := Digit(v)
		if s, want := c.String(), string(rune('0'+v)); s != want {
			t.Errorf("Digit(%d).String() = %q, expected %q", v, s, want)
		}
	}
}
