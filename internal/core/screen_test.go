package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorBlue)
	s.Clear()

	if s.String() != strings.Repeat("    \n", 3)+"    " {
		t.Errorf("Clear left content behind: %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorGreen)

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Error("text should carry its color")
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredUnicode(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "▲▲", ColorDefault)

	// Two runes in ten columns start at column 4
	if s.Get(4, 0) != '▲' || s.Get(5, 0) != '▲' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorRed)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges not drawn")
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(30, 9)
	s.DrawMessage([]string{"GAME OVER", "Score: 12"}, ColorRed)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 12") {
		t.Errorf("message missing from screen:\n%s", out)
	}
	// 2 lines + border = 4 rows, centered in 9
	if s.Get(s.Width()/2, 2) != '─' {
		t.Errorf("expected top border on row 2:\n%s", out)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("negative sizes should clamp to zero")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}
