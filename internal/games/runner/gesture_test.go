package runner

import (
	"testing"

	"github.com/vovakirdan/campus-runner/internal/core"
)

func TestGestureTracker(t *testing.T) {
	tests := []struct {
		name  string
		moves []float64
		want  []core.Action // Actions from each move, then from release
	}{
		{"tap jumps", nil, []core.Action{core.ActionJump}},
		{"small drag is a tap", []float64{120, 140}, []core.Action{core.ActionNone, core.ActionNone, core.ActionJump}},
		{"upward drag is a tap", []float64{20}, []core.Action{core.ActionNone, core.ActionJump}},
		{
			"drag down crouches until release",
			[]float64{130, 170, 200},
			[]core.Action{core.ActionNone, core.ActionCrouchStart, core.ActionNone, core.ActionCrouchEnd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureTracker(50)
			g.Start(100)

			var got []core.Action
			for _, y := range tt.moves {
				got = append(got, g.Move(y))
			}
			got = append(got, g.End())

			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGestureWithoutPress(t *testing.T) {
	g := NewGestureTracker(50)
	if a := g.Move(500); a != core.ActionNone {
		t.Errorf("Move without press = %v", a)
	}
	if a := g.End(); a != core.ActionNone {
		t.Errorf("End without press = %v", a)
	}
}

func TestCrouchLatch(t *testing.T) {
	l := NewCrouchLatch(300)

	if a := l.Press(); a != core.ActionCrouchStart {
		t.Fatalf("first press = %v, want CrouchStart", a)
	}
	if a := l.Advance(200); a != core.ActionNone {
		t.Fatalf("Advance(200) = %v, want None", a)
	}
	// Key repeat keeps the crouch held
	if a := l.Press(); a != core.ActionNone {
		t.Fatalf("repeat press = %v, want None", a)
	}
	if a := l.Advance(200); a != core.ActionNone {
		t.Fatalf("Advance after repeat = %v, want None", a)
	}
	if a := l.Advance(100); a != core.ActionCrouchEnd {
		t.Fatalf("hold lapsed = %v, want CrouchEnd", a)
	}
	if l.Holding() {
		t.Error("latch still holding")
	}
	if a := l.Release(); a != core.ActionNone {
		t.Errorf("Release when idle = %v", a)
	}
}
