package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/campus-runner/internal/core"
)

func TestScreenSinkDrawsField(t *testing.T) {
	g := newQuietGame(t, nil, nil)
	placeObstacle(g, ObstacleFlying, 400)
	step(g)

	screen := core.NewScreen(80, 21)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 1") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Freshman Year") {
		t.Errorf("HUD row missing semester: %q", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), FlyingChar) {
		t.Error("flying obstacle not drawn")
	}

	// Field is 400 units over 20 rows, so the ground starts at row 1 + 370/20
	if got := screen.GetCell(0, 19); got.Rune != GroundChar || got.Color != SemesterAt(0).Ground {
		t.Errorf("ground cell = %+v", got)
	}

	// Player at x=50 spans field columns 5..7 at 10 units per column
	if got := screen.Get(5, 18); got != PlayerChar {
		t.Errorf("player cell = %q, want %q", got, PlayerChar)
	}
}

func TestScreenSinkOverlays(t *testing.T) {
	g := newQuietGame(t, nil, nil)
	g.state.ExamSession = true
	screen := core.NewScreen(80, 21)
	g.Render(screen)
	if !strings.Contains(screen.String(), "EXAM SESSION") {
		t.Error("exam banner missing")
	}

	placeObstacle(g, ObstacleLabWork, g.player.X+5)
	step(g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over box missing")
	}
}

func TestScreenSinkTinyScreen(t *testing.T) {
	g := newQuietGame(t, nil, nil)
	screen := core.NewScreen(10, 1)
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("screen too small for the field should stay blank, got %q", screen.String())
	}
}
