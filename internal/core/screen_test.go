package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, expected three blank rows", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'X')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected space", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes leaked into the grid")
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "text clipped at the edge",
			draw: func(s *Screen) { s.DrawText(3, 0, "hello") },
			want: "   he\n     \n     ",
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '#') },
			want: "     \n ### \n ### ",
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 3)) },
			want: "┌───┐\n│   │\n└───┘",
		},
		{
			name: "empty box draws nothing",
			draw: func(s *Screen) { s.DrawBox(NewRect(1, 1, 0, 2)) },
			want: "     \n     \n     ",
		},
		{
			name: "line with negative length",
			draw: func(s *Screen) { s.DrawHLineColored(0, 0, -3, '-', ColorRed) },
			want: "     \n     \n     ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			tc.draw(s)
			if got := s.String(); got != tc.want {
				t.Errorf("String() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenClearResetsColour(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '#', ColorRed)
	s.DrawTextColored(3, 2, "ok", ColorGreen)

	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '#'", c)
	}
	if c := s.GetCell(4, 2); c.Rune != 'k' || c.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected green 'k'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != (Cell{Rune: ' '}) {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 2)
	if got := s.String(); got != "Hell\n    " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(8, 3)
	if got := s.Row(0); got != "Hell    " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(2); got != "        " {
		t.Errorf("new row should be blank, got %q", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 2)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(2); got != "   " {
		t.Errorf("Row(2) = %q, expected spaces", got)
	}
}

func TestScreenSpans(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(1, 0, "ab", ColorRed)
	s.SetColored(4, 0, 'c', ColorRed)

	want := []Span{
		{Text: " ", Color: ColorDefault},
		{Text: "ab", Color: ColorRed},
		{Text: " ", Color: ColorDefault},
		{Text: "c", Color: ColorRed},
		{Text: " ", Color: ColorDefault},
	}
	got := s.Spans(0)
	if len(got) != len(want) {
		t.Fatalf("Spans(0) = %+v, expected %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	if s.Spans(1) != nil {
		t.Error("Spans outside the grid should be nil")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
