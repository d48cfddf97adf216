package runner

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/zeebo/xxh3"
)

// Snapshot is a read-only copy of everything a render sink needs.
type Snapshot struct {
	Phase       Phase
	Paused      bool
	Tick        uint64
	ClockMS     float64
	Character   CharacterID
	Score       int
	Knowledge   int
	HighScore   int
	Earned      int // Knowledge awarded by this run so far
	Speed       float64
	Semester    Semester
	SemesterIdx int
	ExamSession bool
	CanContinue bool
	Continues   int

	FieldWidth  float64
	FieldHeight float64
	GroundY     float64

	Player    Player
	Obstacles []Obstacle
	Powerups  []Powerup
	Effects   []EffectStatus
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:       g.state.Phase,
		Paused:      g.state.Paused,
		Tick:        g.state.Tick,
		ClockMS:     g.state.ClockMS,
		Character:   g.state.Character,
		Score:       g.state.Score,
		Knowledge:   g.state.Knowledge,
		HighScore:   g.state.HighScore,
		Earned:      g.state.KnowledgeAwarded,
		Speed:       g.state.Speed,
		Semester:    SemesterAt(g.state.Semester),
		SemesterIdx: g.state.Semester,
		ExamSession: g.state.ExamSession,
		CanContinue: g.state.CanContinue,
		Continues:   g.state.Continues,
		FieldWidth:  g.cfg.Field.Width,
		FieldHeight: g.cfg.Field.Height,
		GroundY:     g.cfg.Field.GroundY(),
		Player:      g.player,
		Obstacles:   slices.Clone(g.obstacles),
		Powerups:    slices.Clone(g.powerups),
		Effects:     g.effects.Status(g.state.ClockMS),
	}
}

// Hash returns a digest of the simulation-relevant fields. Two runs with the
// same seed and inputs produce the same hash tick for tick.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 256)
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}

	u(uint64(s.Phase))
	u(s.Tick)
	f(s.ClockMS)
	buf = append(buf, s.Character...)
	u(uint64(s.Score))
	u(uint64(s.Earned))
	f(s.Speed)
	u(uint64(s.SemesterIdx))
	b(s.ExamSession)
	u(uint64(s.Continues))

	f(s.Player.Y)
	f(s.Player.VelocityY)
	b(s.Player.Jumping)
	b(s.Player.Crouching)
	b(s.Player.Invincible)

	u(uint64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		buf = append(buf, o.Type...)
		f(o.X)
		f(o.Y)
	}
	u(uint64(len(s.Powerups)))
	for _, p := range s.Powerups {
		buf = append(buf, p.Type...)
		f(p.X)
		f(p.Y)
	}
	for _, e := range s.Effects {
		u(uint64(e.Kind))
		f(e.RemainingMS)
	}

	return xxh3.Hash(buf)
}
