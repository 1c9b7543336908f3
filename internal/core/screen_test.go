package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	cell := s.GetCell(3, 2)
	if cell.Color != ColorDefault {
		t.Errorf("Set should use the default color, got %v", cell.Color)
	}

	s.SetColored(4, 2, 'O', ColorRed)
	cell = s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected {O ColorRed}", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are dropped, reads return a blank cell.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	for _, pos := range []struct{ x, y int }{{-1, 0}, {10, 0}, {0, -1}, {0, 5}} {
		if got := s.Get(pos.x, pos.y); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", pos.x, pos.y, got)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 1, '#', ColorGreen)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) = %+v after Clear", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content inside new bounds lost: Get(2, 2) = %q", got)
	}

	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("content lost after growing: Get(2, 2) = %q", got)
	}
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("clipped content reappeared: Get(9, 4) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText misplaced: row = %q", s.Row(1))
	}

	// Text running off the right edge is clipped.
	s.DrawText(8, 0, "long")
	if got := s.Row(0); got != "        lo" {
		t.Errorf("clipped row = %q, expected %q", got, "        lo")
	}

	s.DrawTextColored(0, 2, "ok", ColorYellow)
	if cell := s.GetCell(1, 2); cell.Rune != 'k' || cell.Color != ColorYellow {
		t.Errorf("DrawTextColored cell = %+v", cell)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)
	if got := s.Row(1); got != "    abc    " {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nexpected\n%s", got, want)
	}
	if cell := s.GetCell(0, 0); cell.Color != ColorGray {
		t.Errorf("corner color = %v, expected ColorGray", cell.Color)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected four spaces", got)
	}
}
