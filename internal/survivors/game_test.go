package survivors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-survivors/internal/config"
	"github.com/vovakirdan/tui-survivors/internal/core"
)

// testConfig returns a small fully cross-referenced table set so tests
// never depend on files or embedded defaults.
func testConfig() config.SurvivorsConfig {
	return config.SurvivorsConfig{
		Run: config.RunConfig{
			SurviveMinutes:      15,
			MaxEnemies:          10,
			BaseSpawnInterval:   1.5,
			MinSpawnInterval:    0.25,
			SpawnRampPerMinute:  0.1,
			SpawnRadius:         40,
			PickupAttractRadius: 10,
			PickupAbsorbRadius:  1.2,
			PickupAttractSpeed:  26,
		},
		Player: config.PlayerConfig{
			Speed:          16,
			MaxHealth:      100,
			Radius:         1.0,
			StartingWeapon: "lash",
		},
		Weapons: []config.WeaponDef{
			{ID: "lash", Name: "Lash", Mode: config.ModeSweep, Damage: 12,
				Cooldown: 1.2, Range: 9, Pierce: 5, Lifetime: 0.18, Size: 3,
				EvolvesTo: "scourge", EvolveItem: "lens"},
			{ID: "bolt", Name: "Bolt", Mode: config.ModeMissile,
				Targeting: config.TargetNearest, Damage: 8, Cooldown: 0.8,
				Range: 30, Pierce: 1, Speed: 40, Lifetime: 1.5, Size: 0.5},
			{ID: "crossblade", Name: "Crossblade", Mode: config.ModeBoomerang,
				Targeting: config.TargetNearest, Damage: 10, Cooldown: 2.0,
				Range: 14, Pierce: 3, Speed: 20, Lifetime: 1.4, Size: 1},
		},
		EvolvedWeapons: []config.WeaponDef{
			{ID: "scourge", Name: "Scourge", Mode: config.ModeSweep, Damage: 30,
				Cooldown: 0.9, Range: 12, Pierce: 12, Lifetime: 0.2, Size: 4},
		},
		Passives: []config.PassiveDef{
			{ID: "lens", Name: "Lens", Effect: config.EffectArea, Magnitude: 0.2},
			{ID: "whetstone", Name: "Whetstone", Effect: config.EffectDamage, Magnitude: 0.25},
			{ID: "clover", Name: "Clover", Effect: config.EffectLuck, Magnitude: 0.2},
		},
		Enemies: []config.EnemyDef{
			{ID: "drifter", Tier: 0, UnlockMinute: 0, Health: 12, Speed: 6,
				Damage: 4, XP: 5, Radius: 1, Color: "gray"},
			{ID: "runner", Tier: 1, UnlockMinute: 2, Health: 20, Speed: 10,
				Damage: 6, XP: 9, Radius: 1, Color: "green"},
			{ID: "brute", Tier: 2, UnlockMinute: 5, Health: 60, Speed: 4,
				Damage: 12, XP: 20, Radius: 1.6, Color: "red"},
		},
		LevelThresholds: []float64{10, 24, 42},
	}
}

// newTestGame builds a playing-state game on the given config without
// touching the config search path.
func newTestGame(cfg config.SurvivorsConfig, seed int64) *Game {
	g := New()
	g.runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
	g.rng = rand.New(rand.NewSource(seed))
	g.cfg = cfg
	g.tables = NewTables(cfg)
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
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i > 60 && i < 200 {
			input.Set(core.ActionRight)
		}
		if i > 300 && i < 400 {
			input.Set(core.ActionUp)
		}
		// Both games see the same choice input if a level-up lands
		input.Set(core.ActionChoose1)

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Elapsed != snap2.Elapsed {
		t.Errorf("Elapsed mismatch: %v vs %v", snap1.Elapsed, snap2.Elapsed)
	}
	if snap1.Player.Pos != snap2.Player.Pos {
		t.Errorf("Player position mismatch: %v vs %v",
			snap1.Player.Pos, snap2.Player.Pos)
	}
	if snap1.Player.Health != snap2.Player.Health {
		t.Errorf("Health mismatch: %v vs %v", snap1.Player.Health, snap2.Player.Health)
	}
	if len(snap1.Enemies) != len(snap2.Enemies) {
		t.Fatalf("Enemy count mismatch: %d vs %d",
			len(snap1.Enemies), len(snap2.Enemies))
	}
	for i := range snap1.Enemies {
		if snap1.Enemies[i].Pos != snap2.Enemies[i].Pos {
			t.Errorf("Enemy %d position mismatch: %v vs %v",
				i, snap1.Enemies[i].Pos, snap2.Enemies[i].Pos)
		}
	}
	if snap1.Stats != snap2.Stats {
		t.Errorf("Stats mismatch: %+v vs %+v", snap1.Stats, snap2.Stats)
	}
}

func TestResetStartsPlaying(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if g.state != StatePlaying {
		t.Fatalf("Expected state playing after Reset, got %v", g.state)
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("Expected full health, got %v/%v", g.player.Health, g.player.MaxHealth)
	}
	if g.player.Level != 1 {
		t.Errorf("Expected level 1, got %d", g.player.Level)
	}
	if len(g.player.Weapons) != 1 {
		t.Fatalf("Expected one starting weapon, got %d", len(g.player.Weapons))
	}
	if _, ok := g.tables.Weapon(g.player.Weapons[0].ID); !ok {
		t.Errorf("Starting weapon %q not in tables", g.player.Weapons[0].ID)
	}
}

func TestMovementIntent(t *testing.T) {
	g := newTestGame(testConfig(), 7)
	dt := g.runtime.Delta()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	wantX := g.player.Speed * dt
	if math.Abs(g.player.Pos.X-wantX) > 1e-9 {
		t.Errorf("Expected X=%v after one right step, got %v", wantX, g.player.Pos.X)
	}
	if g.player.Pos.Y != 0 {
		t.Errorf("Expected Y=0, got %v", g.player.Pos.Y)
	}
	if g.player.Facing != 0 {
		t.Errorf("Expected facing 0 (east), got %v", g.player.Facing)
	}

	// Opposing directions cancel: no movement
	before := g.player.Pos
	in.Clear()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.Step(in)
	if g.player.Pos != before {
		t.Errorf("Opposing inputs moved the player: %v -> %v", before, g.player.Pos)
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	g := newTestGame(testConfig(), 7)
	dt := g.runtime.Delta()

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	dist := g.player.Pos.Len()
	want := g.player.Speed * dt
	if math.Abs(dist-want) > 1e-9 {
		t.Errorf("Diagonal step distance %v, want %v (unit intent)", dist, want)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(testConfig(), 3)

	in := core.NewInputFrame()
	g.Step(in)
	elapsed := g.elapsed
	if elapsed <= 0 {
		t.Fatal("Expected elapsed to advance while playing")
	}

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)

	in.Clear()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if g.elapsed != elapsed {
		t.Errorf("Elapsed advanced while paused: %v -> %v", elapsed, g.elapsed)
	}

	in.Set(core.ActionPause)
	g.Step(in)
	in.Clear()
	g.Step(in)
	if g.elapsed <= elapsed {
		t.Error("Elapsed did not resume after unpause")
	}
}

func TestVictoryWinsTies(t *testing.T) {
	g := newTestGame(testConfig(), 11)

	// Lethal enemy standing on the player, but the survival threshold is
	// crossed this same tick. Victory must win.
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "brute", Pos: g.player.Pos,
		Health: 1000, MaxHealth: 1000, Damage: 1e9, Radius: 2,
	})
	g.player.Health = 1
	g.elapsed = g.cfg.Run.SurviveMinutes*60 - 0.001

	g.Step(core.NewInputFrame())

	if g.state != StateVictory {
		t.Fatalf("Expected victory, got %v", g.state)
	}
	if g.final.Cause != CauseVictory {
		t.Errorf("Expected cause %q, got %q", CauseVictory, g.final.Cause)
	}
	if !g.State().GameOver {
		t.Error("Expected GameOver=true in terminal state")
	}
}

func TestGameOverOnLethalContact(t *testing.T) {
	g := newTestGame(testConfig(), 5)
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "brute", Pos: g.player.Pos,
		Health: 1000, MaxHealth: 1000, Damage: 1e9, Radius: 2,
	})

	g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("Expected game over, got %v", g.state)
	}
	if g.player.Health != 0 {
		t.Errorf("Expected health clamped to 0, got %v", g.player.Health)
	}
	if g.final.Cause != CauseDefeat {
		t.Errorf("Expected cause %q, got %q", CauseDefeat, g.final.Cause)
	}

	// Terminal state is inert: further steps change nothing
	final := g.final
	tick := g.tick
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.final != final {
		t.Error("Final stats mutated after terminal state")
	}
	if g.tick != tick+5 {
		t.Errorf("Tick counter should still advance: %d vs %d", g.tick, tick+5)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 9, ScreenW: 80, ScreenH: 24, TickRate: 60})

	g.player.Health = 0.001
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: g.player.Pos,
		Health: 10, MaxHealth: 10, Damage: 1e9, Radius: 2,
	})
	g.Step(core.NewInputFrame())
	if g.state != StateGameOver {
		t.Fatalf("Expected game over, got %v", g.state)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.state != StatePlaying {
		t.Fatalf("Expected playing after restart, got %v", g.state)
	}
	if g.elapsed != 0 {
		t.Errorf("Expected elapsed reset to 0, got %v", g.elapsed)
	}
	if len(g.enemies) != 0 {
		t.Errorf("Expected no enemies after restart, got %d", len(g.enemies))
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("Expected full health after restart, got %v", g.player.Health)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(testConfig(), 2)
	g.elapsed = 30

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.elapsed < 30 {
		t.Error("Restart must not reset a live run")
	}
}

func TestScoreCombinesXPAndTime(t *testing.T) {
	g := newTestGame(testConfig(), 2)
	g.elapsed = 90
	g.stats.XPCollected = 55

	if got := g.Score(); got != 145 {
		t.Errorf("Score = %d, want 145", got)
	}
}

func TestBlitzModeScaling(t *testing.T) {
	std := New()
	std.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	blitz := NewBlitz()
	blitz.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if blitz.cfg.Run.SurviveMinutes >= std.cfg.Run.SurviveMinutes {
		t.Errorf("Blitz run should be shorter: %v vs %v",
			blitz.cfg.Run.SurviveMinutes, std.cfg.Run.SurviveMinutes)
	}
	if blitz.cfg.Run.SpawnRampPerMinute <= std.cfg.Run.SpawnRampPerMinute {
		t.Errorf("Blitz ramp should be steeper: %v vs %v",
			blitz.cfg.Run.SpawnRampPerMinute, std.cfg.Run.SpawnRampPerMinute)
	}
	if blitz.ID() != "survivors_blitz" || std.ID() != "survivors" {
		t.Errorf("Unexpected IDs: %q, %q", blitz.ID(), std.ID())
	}
}

func TestSnapshotCopiesEntityGeometry(t *testing.T) {
	g := newTestGame(testConfig(), 4)
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "brute", Pos: core.Vec2{X: 7, Y: -2},
		Health: 60, MaxHealth: 60, Radius: 1.6, Tier: 2,
	})
	g.instances = append(g.instances, Instance{
		Weapon: "gyreblade", Mode: ModeOrbital,
		Pos:          core.Vec2{X: 8},
		Angle:        1.25,
		OrbitRadius:  8,
		AngularSpeed: 3,
		Size:         1,
		Lifetime:     4,
	})

	snap := g.Snapshot()

	if len(snap.Enemies) != 1 || len(snap.Instances) != 1 {
		t.Fatalf("Snapshot entity counts: %d enemies, %d instances",
			len(snap.Enemies), len(snap.Instances))
	}
	e := snap.Enemies[0]
	if e.Radius != 1.6 {
		t.Errorf("Enemy radius = %v, want 1.6", e.Radius)
	}
	in := snap.Instances[0]
	if in.Angle != 1.25 || in.OrbitRadius != 8 || in.AngularSpeed != 3 {
		t.Errorf("Orbital parameters lost in snapshot: %+v", in)
	}
	if in.Mode != ModeOrbital || in.Size != 1 {
		t.Errorf("Instance fields lost in snapshot: %+v", in)
	}
}
