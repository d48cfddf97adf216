package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/campus-runner/internal/core"
)

func drain(t *testing.T, e core.Event) int {
	t.Helper()
	s := CueStreamer(e)
	if s == nil {
		t.Fatalf("no cue for %s", e)
	}

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
				t.Fatalf("%s: sample out of range or not mono: %v", e, smp)
			}
		}
		if !ok {
			return total
		}
	}
}

func TestCueLengths(t *testing.T) {
	for e, notes := range Cues {
		var want int
		for _, n := range notes {
			want += sampleRate.N(n.Dur)
		}
		if got := drain(t, e); got != want {
			t.Errorf("%s: %d samples, want %d", e, got, want)
		}
	}
}

func TestNoCueForNone(t *testing.T) {
	if CueStreamer(core.EventNone) != nil {
		t.Error("EventNone should have no cue")
	}
}

func TestRestIsSilent(t *testing.T) {
	tone := NewTone(sampleRate, 0, 10*time.Millisecond)
	buf := make([][2]float64, 100)
	tone.Stream(buf)
	for _, s := range buf {
		if s[0] != 0 {
			t.Fatal("rest produced sound")
		}
	}
}

func TestUninitializedPlayerIgnoresPlay(t *testing.T) {
	p := NewPlayer()
	p.Play(core.EventJump, core.EventGameOver)
	p.Close()
}
