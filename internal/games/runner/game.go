// Package runner implements Campus Runner, a side-scrolling obstacle game.
// A student runs automatically, jumps and crouches past coursework, collects
// powerups and earns knowledge that unlocks other characters.
//
// The simulation works in continuous field units and knows nothing about
// terminals or storage. Rendering goes through a RenderSink and persistence
// through a ProgressStore.
package runner

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/campus-runner/internal/config"
	"github.com/vovakirdan/campus-runner/internal/core"
	"github.com/vovakirdan/campus-runner/internal/registry"
)

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunState is the mutable state of the current run.
type RunState struct {
	Phase       Phase
	Paused      bool
	Character   CharacterID
	RunID       string
	Tick        uint64
	ClockMS     float64 // Game clock; advances only while running
	Score       int
	Speed       float64
	Semester    int
	ExamSession bool
	CanContinue bool

	Knowledge int // Persistent balance
	HighScore int // Persistent best

	Dodged           int
	Collected        int
	Continues        int
	KnowledgeAwarded int // Knowledge already paid out for this run
}

// Game implements the runner simulation.
type Game struct {
	runtime     core.RuntimeConfig
	cfg         config.RunnerConfig
	cfgOverride bool

	rng      *rand.Rand
	spawner  *Spawner
	effects  *Effects
	progress *Progression
	logger   *log.Logger
	store    ProgressStore

	state     RunState
	player    Player
	obstacles []Obstacle
	powerups  []Powerup
	events    []core.Event
}

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Option customises a Game.
type Option func(*Game)

// WithStore persists progress and, if supported, run history.
func WithStore(store ProgressStore) Option {
	return func(g *Game) {
		g.store = store
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithConfig uses cfg instead of loading one from disk.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgOverride = true
	}
}

// New creates a game in the Idle phase. Call Reset to start a run.
func New(opts ...Option) *Game {
	g := &Game{
		logger:  log.New(io.Discard),
		effects: NewEffects(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.progress = NewProgression(g.store, g.logger)
	g.state.Knowledge = g.progress.Knowledge()
	g.state.HighScore = g.progress.HighScore()
	g.state.Character = g.progress.Selected()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Campus Runner"
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	if !g.cfgOverride {
		cfg, err := config.LoadRunner(configPath)
		if err != nil {
			g.logger.Warn("using default config", "error", err)
		}
		if difficultyPreset != "" {
			config.ApplyRunnerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawner(g.rng, &g.cfg)

	g.state.Phase = PhaseIdle
	g.start()
}

// start performs the Idle -> Running transition.
func (g *Game) start() {
	c, ok := CharacterByID(g.progress.Selected())
	if !ok {
		c, _ = CharacterByID(StarterCharacter)
	}

	g.effects.Discard()
	g.spawner.SetExamSession(false)
	g.obstacles = g.obstacles[:0]
	g.powerups = g.powerups[:0]

	g.state = RunState{
		Phase:     PhaseRunning,
		Character: c.ID,
		RunID:     uuid.NewString(),
		Speed:     g.cfg.Speed.Initial * c.SpeedMultiplier,
		Knowledge: g.progress.Knowledge(),
		HighScore: g.progress.HighScore(),
	}

	g.player = Player{
		X:               g.cfg.Physics.PlayerX,
		Y:               g.cfg.Field.GroundY() - g.cfg.Physics.PlayerHeight,
		Width:           g.cfg.Physics.PlayerWidth,
		Height:          g.cfg.Physics.PlayerHeight,
		JumpForce:       c.JumpForce,
		SpeedMultiplier: c.SpeedMultiplier,
	}

	g.logger.Debug("run started", "run", g.state.RunID, "character", c.ID, "seed", g.runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.state.Phase {
	case PhaseGameOver:
		if in.Has(core.ActionContinue) {
			if err := g.Continue(); err != nil {
				g.logger.Debug("continue refused", "error", err)
			}
		} else if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return g.result()
	case PhaseIdle:
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return g.result()
	}

	g.handleInput(in)
	g.tick()
	return g.result()
}

// handleInput applies jump and crouch requests.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionCrouchStart) {
		g.player.Crouching = true
	}
	if in.Has(core.ActionCrouchEnd) {
		g.player.Crouching = false
	}
	if in.Has(core.ActionJump) && g.player.Jump() {
		g.emit(core.EventJump)
	}
}

// tick runs one fixed simulation step in the Running phase.
func (g *Game) tick() {
	dtMS := 1000 / float64(g.runtime.TickRate)
	g.state.Tick++
	g.state.ClockMS += dtMS

	for _, kind := range g.effects.Expire(g.state.ClockMS) {
		g.logger.Debug("effect expired", "effect", kind, "tick", g.state.Tick)
		if kind == KindExamSession {
			g.emit(core.EventExamEnd)
		}
	}

	g.player = AdvancePlayer(g.player, g.cfg.Field.GroundY(), g.cfg.Physics.Gravity, 1)

	g.state.Score++
	g.state.Speed += g.cfg.Speed.Increment
	g.updateSemester()
	g.rollExam()

	for i := range g.obstacles {
		g.obstacles[i].X -= g.state.Speed
	}
	for i := range g.powerups {
		g.powerups[i].X -= g.state.Speed
	}
	g.cull()

	if !g.player.Invincible {
		for _, o := range g.obstacles {
			if CheckCollision(g.player, o) {
				g.logger.Debug("hit obstacle", "type", o.Type, "tick", g.state.Tick)
				g.gameOver()
				return
			}
		}
	}

	kept := g.powerups[:0]
	for _, p := range g.powerups {
		if CheckCollision(g.player, p) {
			g.collect(p)
			continue
		}
		kept = append(kept, p)
	}
	g.powerups = kept

	for range g.spawner.Advance(dtMS) {
		o, p := g.spawner.Spawn()
		if o != nil {
			g.obstacles = append(g.obstacles, *o)
		}
		if p != nil {
			g.powerups = append(g.powerups, *p)
		}
	}
}

// updateSemester derives the semester from the score.
func (g *Game) updateSemester() {
	span := g.cfg.Progression.SemesterSpan
	if span <= 0 {
		return
	}
	sem := min(g.state.Score/span, LastSemester())
	if sem > g.state.Semester {
		g.state.Semester = sem
		g.emit(core.EventSemester)
		g.logger.Info("semester advanced", "semester", SemesterAt(sem).Name, "score", g.state.Score)
	}
}

// rollExam may start an exam session when none is active.
func (g *Game) rollExam() {
	if g.effects.Active(KindExamSession) {
		return
	}
	if g.rng.Float64() >= g.cfg.Exam.Chance {
		return
	}

	g.effects.Grant(KindExamSession, g.state.ClockMS, float64(g.cfg.Exam.DurationMS),
		func() {
			g.state.ExamSession = true
			g.spawner.SetExamSession(true)
		},
		func() {
			g.state.ExamSession = false
			g.spawner.SetExamSession(false)
		})
	g.emit(core.EventExamStart)
	g.logger.Info("exam session", "tick", g.state.Tick, "duration_ms", g.cfg.Exam.DurationMS)
}

// cull removes entities that left the field on the left.
func (g *Game) cull() {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.X+o.Width < 0 {
			g.state.Dodged++
			continue
		}
		kept = append(kept, o)
	}
	g.obstacles = kept

	keptP := g.powerups[:0]
	for _, p := range g.powerups {
		if p.X+p.Width < 0 {
			continue
		}
		keptP = append(keptP, p)
	}
	g.powerups = keptP
}

// collect applies a powerup's effect.
func (g *Game) collect(p Powerup) {
	g.state.Collected++

	switch p.Effect {
	case EffectSpeed:
		g.grantSpeedBoost(float64(p.DurationMS))
		g.emit(core.EventSpeedBoost)
	case EffectInvincibility:
		c, _ := CharacterByID(g.state.Character)
		g.grantInvincibility(float64(p.DurationMS) * c.InvincibilityMultiplier)
		g.emit(core.EventInvincible)
	case EffectPoints:
		g.state.Score += p.Points
		g.emit(core.EventPoints)
	}
	g.logger.Debug("powerup collected", "type", p.Type, "tick", g.state.Tick)
}

// grantSpeedBoost multiplies the speed and restores the captured value on expiry.
func (g *Game) grantSpeedBoost(durationMS float64) {
	var baseline float64
	g.effects.Grant(KindSpeedBoost, g.state.ClockMS, durationMS,
		func() {
			baseline = g.state.Speed
			g.state.Speed *= g.cfg.Effects.SpeedBoost
		},
		func() {
			g.state.Speed = baseline
		})
}

// grantInvincibility makes the player immune to obstacles for durationMS.
func (g *Game) grantInvincibility(durationMS float64) {
	g.effects.Grant(KindInvincibility, g.state.ClockMS, durationMS,
		func() { g.player.Invincible = true },
		func() { g.player.Invincible = false })
}

// gameOver performs the Running -> GameOver transition and settles the run.
func (g *Game) gameOver() {
	g.state.Phase = PhaseGameOver
	g.state.Paused = false

	earned := max(g.state.Score/g.cfg.Progression.KnowledgeDivisor-g.state.KnowledgeAwarded, 0)
	g.state.KnowledgeAwarded += earned

	if g.progress.Settle(g.state.Score, earned) {
		g.logger.Info("new high score", "score", g.state.Score)
	}
	g.state.Knowledge = g.progress.Knowledge()
	g.state.HighScore = g.progress.HighScore()
	g.state.CanContinue = g.state.Knowledge >= g.cfg.Progression.ContinueCost

	g.progress.Record(RunRecord{
		ID:        uuid.NewString(),
		Character: g.state.Character,
		Score:     g.state.Score,
		Earned:    earned,
		Semester:  g.state.Semester,
		Dodged:    g.state.Dodged,
		Collected: g.state.Collected,
		Continues: g.state.Continues,
	})

	g.emit(core.EventGameOver)
	g.logger.Info("game over",
		"run", g.state.RunID,
		"score", g.state.Score,
		"earned", earned,
		"knowledge", g.state.Knowledge,
	)
}

// Continue spends knowledge to resume a finished run with a short
// invincibility window. Score and entities are kept.
func (g *Game) Continue() error {
	if g.state.Phase != PhaseGameOver {
		return ErrNotGameOver
	}
	if err := g.progress.Spend(g.cfg.Progression.ContinueCost); err != nil {
		g.state.CanContinue = false
		return err
	}

	g.state.Knowledge = g.progress.Knowledge()
	g.state.Continues++
	g.state.Phase = PhaseRunning
	g.state.CanContinue = false
	g.grantInvincibility(float64(g.cfg.Progression.ContinueInvincible))
	g.spawner.Rearm()

	g.emit(core.EventContinue)
	g.logger.Info("continued", "run", g.state.RunID, "continues", g.state.Continues, "knowledge", g.state.Knowledge)
	return nil
}

// Restart abandons the current run and starts a new one with the selected
// character.
func (g *Game) Restart() {
	g.state.Phase = PhaseIdle
	g.start()
}

// Unlock unlocks a character with knowledge.
func (g *Game) Unlock(id CharacterID) error {
	if err := g.progress.Unlock(id); err != nil {
		return err
	}
	g.state.Knowledge = g.progress.Knowledge()
	return nil
}

// SelectCharacter picks the character for the next run.
func (g *Game) SelectCharacter(id CharacterID) error {
	return g.progress.Select(id)
}

// Progression exposes the persistent progress.
func (g *Game) Progression() *Progression {
	return g.progress
}

// RunState returns a copy of the run state.
func (g *Game) RunState() RunState {
	return g.state
}

// Config returns the active configuration.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	NewScreenSink(dst).Draw(g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.state.Score,
		GameOver:    g.state.Phase == PhaseGameOver,
		Paused:      g.state.Paused,
		CanContinue: g.state.CanContinue,
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
