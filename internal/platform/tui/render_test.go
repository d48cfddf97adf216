package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/campus-runner/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	if got := RenderScreen(s); got != "ab  \n cd " {
		t.Errorf("RenderScreen = %q", got)
	}
}

func TestRenderScreenKeepsColouredText(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColored(2, 0, "run", core.ColorCyan)

	out := RenderScreen(s)
	if !strings.Contains(out, "run") {
		t.Errorf("RenderScreen lost coloured text: %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", out)
	}
}
