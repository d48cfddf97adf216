package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/campus-runner/internal/core"
)

// RenderSink draws snapshots. Implementations must not retain or modify them.
type RenderSink interface {
	Draw(Snapshot)
}

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerBlink    = '▒'
	ObstacleChar   = '▓'
	FlyingChar     = '≈'
	GroundChar     = '▀'
	BuildingChar   = '░'
	WindowChar     = '▪'
	hudRows        = 1
	buildingWidth  = 90.0 // Field units per building slot
	parallaxFactor = 0.3
)

var obstacleColors = map[ObstacleType]core.Color{
	ObstacleLabWork: core.ColorYellow,
	ObstacleTest:    core.ColorRed,
	ObstacleProject: core.ColorMagenta,
	ObstacleExam:    core.ColorBrightRed,
	ObstacleFlying:  core.ColorBrightMagenta,
}

var powerupGlyphs = map[PowerupType]struct {
	r rune
	c core.Color
}{
	PowerupCoffee:     {'C', core.ColorOrange},
	PowerupCheatSheet: {'S', core.ColorBrightYellow},
	PowerupNotes:      {'N', core.ColorBrightGreen},
}

var characterColors = map[CharacterID]core.Color{
	CharacterStem:       core.ColorBrightCyan,
	CharacterHumanities: core.ColorBrightYellow,
	CharacterMedical:    core.ColorBrightWhite,
}

// ScreenSink rasterises snapshots into a character grid. The first row holds
// the HUD; the field is scaled into the remaining rows.
type ScreenSink struct {
	dst *core.Screen
}

// NewScreenSink creates a sink drawing into dst.
func NewScreenSink(dst *core.Screen) *ScreenSink {
	return &ScreenSink{dst: dst}
}

// Draw renders the snapshot.
func (s *ScreenSink) Draw(snap Snapshot) {
	dst := s.dst
	dst.Clear()

	if snap.FieldWidth <= 0 || snap.FieldHeight <= 0 || dst.Height() <= hudRows {
		return
	}

	sx := snap.FieldWidth / float64(dst.Width())
	sy := snap.FieldHeight / float64(dst.Height()-hudRows)

	project := func(b core.Box) core.Rect {
		r := b.Scale(sx, sy)
		r.Y += hudRows
		return r
	}
	groundRow := int(snap.GroundY/sy) + hudRows

	s.drawBuildings(snap, sx, sy, groundRow)
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), GroundChar, snap.Semester.Ground)
	}

	for _, p := range snap.Powerups {
		g := powerupGlyphs[p.Type]
		dst.DrawRectColored(project(p.Bounds()), g.r, g.c)
	}
	for _, o := range snap.Obstacles {
		r := ObstacleChar
		if o.Flying {
			r = FlyingChar
		}
		dst.DrawRectColored(project(o.Bounds()), r, obstacleColors[o.Type])
	}

	s.drawPlayer(snap, project)
	s.drawHUD(snap)

	if snap.ExamSession {
		banner := " EXAM SESSION! "
		dst.DrawTextColored((dst.Width()-len(banner))/2, hudRows, banner, core.ColorBrightRed)
	}

	switch {
	case snap.Phase == PhaseGameOver:
		hint := "R restart"
		if snap.CanContinue {
			hint = "C continue (knowledge) | R restart"
		}
		s.drawCenteredMessage("GAME OVER",
			fmt.Sprintf("Score: %d | Knowledge +%d = %d", snap.Score, snap.Earned, snap.Knowledge),
			hint)
	case snap.Paused:
		s.drawCenteredMessage("PAUSED", "Press P to resume")
	}
}

// drawBuildings draws the campus skyline scrolling slower than the field.
func (s *ScreenSink) drawBuildings(snap Snapshot, sx, sy float64, groundRow int) {
	dst := s.dst
	offset := float64(snap.Tick) * snap.Speed * parallaxFactor
	slots := int(snap.FieldWidth/buildingWidth) + 2
	first := int(offset / buildingWidth)

	for i := range slots {
		slot := first + i
		x := float64(slot)*buildingWidth - offset
		// Height varies per slot but is stable as the slot scrolls.
		h := 60 + float64((slot*37)%5)*25
		w := buildingWidth * 0.7

		r := core.NewBox(x, snap.GroundY-h, w, h).Scale(sx, sy)
		r.Y += hudRows
		if r.Bottom() > groundRow {
			r.H = groundRow - r.Y
		}
		dst.DrawRectColored(r, BuildingChar, snap.Semester.Buildings)
		for wy := r.Y + 1; wy < r.Bottom()-1; wy += 2 {
			for wx := r.X + 1; wx < r.Right()-1; wx += 2 {
				dst.SetColored(wx, wy, WindowChar, snap.Semester.Sky)
			}
		}
	}
}

// drawPlayer draws the player, blinking while invincible.
func (s *ScreenSink) drawPlayer(snap Snapshot, project func(core.Box) core.Rect) {
	p := snap.Player
	r := PlayerChar
	if p.Invincible && (snap.Tick/6)%2 == 0 {
		r = PlayerBlink
	}
	color, ok := characterColors[snap.Character]
	if !ok {
		color = core.ColorWhite
	}
	s.dst.DrawRectColored(project(p.Hitbox()), r, color)
}

// drawHUD draws score, knowledge and active effects on the top row.
func (s *ScreenSink) drawHUD(snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Knowledge: %d  Best: %d ", snap.Score, snap.Knowledge, snap.HighScore)
	s.dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	var parts []string
	for _, e := range snap.Effects {
		if e.Kind == KindExamSession {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.1fs", e.Kind, e.RemainingMS/1000))
	}
	parts = append(parts, snap.Semester.Name)
	right := " " + strings.Join(parts, "  ") + " "
	s.dst.DrawTextColored(s.dst.Width()-len([]rune(right)), 0, right, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *ScreenSink) drawCenteredMessage(title string, lines ...string) {
	dst := s.dst
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-len(l))/2, box.Y+3+i, l)
	}
}
