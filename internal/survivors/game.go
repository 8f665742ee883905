package survivors

import (
	"math/rand"

	"github.com/vovakirdan/tui-survivors/internal/config"
	"github.com/vovakirdan/tui-survivors/internal/core"
	"github.com/vovakirdan/tui-survivors/internal/registry"
)

// RunState is the run's state machine position.
type RunState string

const (
	StateMenu     RunState = "menu"
	StatePlaying  RunState = "playing"
	StateLevelUp  RunState = "level_up"
	StateGameOver RunState = "game_over"
	StateVictory  RunState = "victory"
)

// Mode selects the registered run variant.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeBlitz    Mode = "blitz"
)

// Cause values in FinalStats.
const (
	CauseDefeat  = "defeat"
	CauseVictory = "victory"
)

// FinalStats describes a finished run.
type FinalStats struct {
	SurvivedSeconds float64
	Level           int
	Cause           string
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created (same pattern the platform uses for every mode).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied at the next Reset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game owns all mutable run state: the player, the entity collections and
// the clocks. Nothing outside this package mutates any of it; external
// collaborators read Snapshot() and submit input actions.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.SurvivorsConfig
	tables  *Tables

	tick    uint64
	elapsed float64 // Survival seconds; frozen during LevelUp and pause

	player    Player
	enemies   []Enemy
	instances []Instance
	pickups   []Pickup
	particles []Particle

	nextEnemyID int
	lastSpawn   float64

	state  RunState
	paused bool
	offers []Offer
	final  FinalStats
	stats  RunStats
}

// New creates a standard-mode game. State is Menu until Reset.
func New() *Game {
	return &Game{mode: ModeStandard, state: StateMenu}
}

// NewBlitz creates a blitz-mode game: a short run with a steeper ramp.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz, state: StateMenu}
}

func init() {
	registry.Register("survivors", func() registry.Game {
		return New()
	})
	registry.Register("survivors_blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "survivors_blitz"
	}
	return "survivors"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Survivors (Blitz)"
	}
	return "Survivors"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.LoadSurvivors(configPath)
	if err != nil {
		cfg = config.Normalize(config.DefaultSurvivorsConfig())
	}
	if difficultyPreset != "" {
		config.ApplySurvivorsPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeBlitz {
		cfg.Run.SurviveMinutes /= 3
		cfg.Run.BaseSpawnInterval *= 0.6
		cfg.Run.SpawnRampPerMinute *= 2.5
	}
	g.cfg = cfg
	g.tables = NewTables(cfg)

	g.tick = 0
	g.elapsed = 0
	g.lastSpawn = 0
	g.nextEnemyID = 0
	g.enemies = g.enemies[:0]
	g.instances = g.instances[:0]
	g.pickups = g.pickups[:0]
	g.particles = g.particles[:0]
	g.offers = nil
	g.final = FinalStats{}
	g.stats = RunStats{}
	g.paused = false

	g.player = Player{
		Speed:     cfg.Player.Speed,
		Radius:    cfg.Player.Radius,
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
		Level:     1,
		XPToNext:  g.tables.XPToNext(1),
		LastDir:   core.Vec2{X: 1},
		Stats:     NewStatBlock(),
	}
	if cfg.Player.StartingWeapon != "" {
		g.player.Weapons = append(g.player.Weapons, EquippedWeapon{
			ID:        cfg.Player.StartingWeapon,
			Level:     1,
			LastFired: neverFired,
		})
	}

	g.state = StatePlaying
}

// terminal reports whether the run has ended.
func (g *Game) terminal() bool {
	return g.state == StateGameOver || g.state == StateVictory
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && (g.state == StatePlaying || g.paused) {
		g.paused = !g.paused
	}

	if g.terminal() || g.paused || g.state == StateMenu {
		return core.StepResult{State: g.State()}
	}

	// The clock is logically paused while a choice is pending: no entity
	// update happens, only choice input is consumed.
	if g.state == StateLevelUp {
		if idx, ok := chosenOffer(in); ok {
			g.applyOffer(idx)
		}
		return core.StepResult{State: g.State()}
	}

	g.advance(g.runtime.Delta(), in.Movement())
	return core.StepResult{State: g.State()}
}

// chosenOffer maps choice actions to an offer index.
func chosenOffer(in core.InputFrame) (int, bool) {
	switch {
	case in.Has(core.ActionChoose1):
		return 0, true
	case in.Has(core.ActionChoose2):
		return 1, true
	case in.Has(core.ActionChoose3):
		return 2, true
	}
	return 0, false
}

// advance performs one simulation tick. Sub-system order is fixed:
// weapons fire, enemies move and apply contact damage, instances move and
// expire, collisions resolve, pickups absorb, particles decay, spawn.
// Instances created by the weapon phase collide this tick at spawn position.
func (g *Game) advance(dt float64, intent core.Vec2) {
	g.elapsed += dt

	// Victory wins ties: the survival check runs before any damage this tick.
	if g.elapsed >= g.cfg.Run.SurviveMinutes*60 {
		g.finish(StateVictory, CauseVictory)
		return
	}

	g.movePlayer(dt, intent)
	g.fireWeapons()
	g.updateEnemies(dt)

	if g.player.Health <= 0 {
		g.player.Health = 0
		g.finish(StateGameOver, CauseDefeat)
		return
	}

	g.updateInstances(dt)
	g.resolveCollisions()
	g.updatePickups(dt)

	// Absorption may have frozen the clock for an upgrade choice.
	if g.state != StatePlaying {
		return
	}

	g.updateParticles(dt)
	g.trySpawn()
}

// movePlayer applies the normalized movement intent and tracks facing.
func (g *Game) movePlayer(dt float64, intent core.Vec2) {
	if intent.X == 0 && intent.Y == 0 {
		return
	}
	g.player.Pos = g.player.Pos.Add(intent.Scale(g.player.Speed * dt))
	g.player.LastDir = intent
	g.player.Facing = intent.Angle()
}

// finish records the terminal transition. No further ticks mutate state.
func (g *Game) finish(state RunState, cause string) {
	g.state = state
	g.final = FinalStats{
		SurvivedSeconds: g.elapsed,
		Level:           g.player.Level,
		Cause:           cause,
	}
}

// Score is the run score: xp collected plus a survival bonus.
func (g *Game) Score() int {
	return int(g.stats.XPCollected) + int(g.elapsed)
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.terminal(),
		Paused:   g.paused || g.state == StateLevelUp,
	}
}
