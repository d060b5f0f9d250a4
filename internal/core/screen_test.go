package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPenColors(t *testing.T) {
	s := NewScreen(10, 2)

	prev := s.Pen(ColorHazard)
	if prev != ColorDefault {
		t.Errorf("initial pen = %d, expected ColorDefault", prev)
	}
	s.Set(1, 0, '█')
	s.Pen(prev)
	s.Set(2, 0, '.')

	if c := s.GetCell(1, 0); c.Color != ColorHazard || c.Rune != '█' {
		t.Errorf("GetCell(1, 0) = %+v, expected hazard block", c)
	}
	if c := s.GetCell(2, 0); c.Color != ColorDefault {
		t.Errorf("GetCell(2, 0).Color = %d, expected ColorDefault", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Clipping at the right edge must not panic
	s.DrawText(18, 0, "Long text")
	if s.Get(19, 0) != 'o' {
		t.Errorf("Get(19, 0) = %q, expected 'o'", s.Get(19, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "ABCD")

	if s.Get(8, 1) != 'A' || s.Get(11, 1) != 'D' {
		t.Errorf("Centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	expected := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 3}: '└',
		{5, 3}: '┘',
		{3, 1}: '─',
		{1, 2}: '│',
	}
	for pos, r := range expected {
		if got := s.Get(pos[0], pos[1]); got != r {
			t.Errorf("Get(%d, %d) = %q, expected %q", pos[0], pos[1], got, r)
		}
	}
}

func TestScreenDrawRectAndLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawRect(NewRect(0, 0, 3, 2), '#')
	s.DrawHLine(0, 4, 10, '=')

	if s.Row(0)[:3] != "###" || s.Row(1)[:3] != "###" {
		t.Errorf("DrawRect rows = %q / %q", s.Row(0), s.Row(1))
	}
	if s.Row(4) != "==========" {
		t.Errorf("DrawHLine row = %q", s.Row(4))
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", s.String(), "abc\ndef")
	}

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("Resize() dims = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}
	if s.Row(-1) != "     " {
		t.Errorf("Row(-1) = %q, expected blanks", s.Row(-1))
	}
}
