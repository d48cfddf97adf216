// Package audio plays short synthesized cues for runner events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/campus-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Note is one tone of a cue.
type Note struct {
	Freq float64 // Hz; 0 is a rest
	Dur  time.Duration
}

// Cues maps simulation events to the notes played for them.
var Cues = map[core.Event][]Note{
	core.EventJump:       {{Freq: 520, Dur: 60 * time.Millisecond}},
	core.EventSpeedBoost: {{Freq: 440, Dur: 60 * time.Millisecond}, {Freq: 660, Dur: 90 * time.Millisecond}},
	core.EventInvincible: {{Freq: 660, Dur: 60 * time.Millisecond}, {Freq: 880, Dur: 60 * time.Millisecond}, {Freq: 1100, Dur: 90 * time.Millisecond}},
	core.EventPoints:     {{Freq: 988, Dur: 50 * time.Millisecond}, {Freq: 1319, Dur: 110 * time.Millisecond}},
	core.EventExamStart:  {{Freq: 220, Dur: 150 * time.Millisecond}, {Freq: 0, Dur: 50 * time.Millisecond}, {Freq: 220, Dur: 150 * time.Millisecond}},
	core.EventExamEnd:    {{Freq: 330, Dur: 80 * time.Millisecond}, {Freq: 440, Dur: 120 * time.Millisecond}},
	core.EventSemester:   {{Freq: 523, Dur: 90 * time.Millisecond}, {Freq: 659, Dur: 90 * time.Millisecond}, {Freq: 784, Dur: 160 * time.Millisecond}},
	core.EventGameOver:   {{Freq: 392, Dur: 120 * time.Millisecond}, {Freq: 311, Dur: 120 * time.Millisecond}, {Freq: 196, Dur: 300 * time.Millisecond}},
	core.EventContinue:   {{Freq: 392, Dur: 80 * time.Millisecond}, {Freq: 784, Dur: 120 * time.Millisecond}},
}

// Player mixes cues onto the speaker. A Player that failed to initialise,
// or was never initialised, silently ignores Play.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Initialize before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for every event that has one.
func (p *Player) Play(events ...core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	for _, e := range events {
		if s := CueStreamer(e); s != nil {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// CueStreamer builds the streamer for an event, or nil if it has no cue.
func CueStreamer(e core.Event) beep.Streamer {
	notes, ok := Cues[e]
	if !ok || len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(sampleRate.N(n.Dur), NewTone(sampleRate, n.Freq, n.Dur)))
	}
	return beep.Seq(parts...)
}

// Tone is a square-ish wave with a short attack and linear decay.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

// NewTone creates a tone generator. A zero frequency produces silence.
func NewTone(sr beep.SampleRate, freq float64, dur time.Duration) *Tone {
	return &Tone{sr: sr, freq: freq, length: max(sr.N(dur), 1)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sample := 0.0
		if t.freq > 0 {
			x := float64(t.pos) / float64(t.sr)
			sample += 0.5 * math.Sin(2*math.Pi*t.freq*x)
			sample += 0.15 * math.Sin(2*math.Pi*t.freq*3*x)

			attack := math.Min(float64(t.pos)/float64(t.sr)/0.005, 1)
			decay := math.Max(1-float64(t.pos)/float64(t.length), 0)
			sample *= attack * decay * 0.25
		}

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}
