package survivors

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-survivors/internal/core"
)

func TestSpawnIntervalRampsDown(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	if got := g.spawnInterval(0); got != 1.5 {
		t.Errorf("Interval at minute 0 = %v, want base 1.5", got)
	}
	if got := g.spawnInterval(5); got != 1.0 {
		t.Errorf("Interval at minute 5 = %v, want 1.0", got)
	}

	prev := g.spawnInterval(0)
	for m := 1.0; m <= 30; m++ {
		cur := g.spawnInterval(m)
		if cur > prev {
			t.Fatalf("Interval increased at minute %v: %v -> %v", m, prev, cur)
		}
		prev = cur
	}
}

func TestSpawnIntervalFloors(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	// Base 1.5, ramp 0.1/min: the floor of 0.25 binds from minute 12.5 on
	if got := g.spawnInterval(20); got != 0.25 {
		t.Errorf("Interval at minute 20 = %v, want floor 0.25", got)
	}
	if got := g.spawnInterval(1000); got != 0.25 {
		t.Errorf("Interval at minute 1000 = %v, want floor 0.25", got)
	}
}

func TestSpawnGatedByInterval(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	// Too soon: the base interval is 1.5s from the run start
	g.elapsed = 1.0
	g.trySpawn()
	if len(g.enemies) != 0 {
		t.Fatal("Spawned before the interval elapsed")
	}
	if g.stats.EnemiesSpawned != 0 {
		t.Errorf("EnemiesSpawned = %d, want 0", g.stats.EnemiesSpawned)
	}

	g.elapsed = 1.5
	g.trySpawn()
	if len(g.enemies) != 1 {
		t.Fatalf("Expected first spawn at 1.5s, got %d enemies", len(g.enemies))
	}
	if g.stats.EnemiesSpawned != 1 {
		t.Errorf("EnemiesSpawned = %d, want 1", g.stats.EnemiesSpawned)
	}
	if g.lastSpawn != 1.5 {
		t.Errorf("lastSpawn = %v, want 1.5", g.lastSpawn)
	}

	// The gate rearms from the new lastSpawn
	g.elapsed = 2.0
	g.trySpawn()
	if len(g.enemies) != 1 {
		t.Error("Spawned again before the interval rearmed")
	}
}

func TestSpawnRespectsEnemyCap(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	for i := 0; i < g.cfg.Run.MaxEnemies; i++ {
		g.enemies = append(g.enemies, Enemy{
			ID: i + 1, Archetype: "drifter", Pos: core.Vec2{X: 30},
			Health: 12, MaxHealth: 12, Radius: 1,
		})
	}
	g.elapsed = 100

	g.trySpawn()

	if len(g.enemies) != g.cfg.Run.MaxEnemies {
		t.Errorf("Spawned past the cap: %d enemies", len(g.enemies))
	}
	if g.stats.EnemiesSpawned != 0 {
		t.Errorf("EnemiesSpawned = %d, want 0", g.stats.EnemiesSpawned)
	}
}

func TestSpawnOnRingAroundPlayer(t *testing.T) {
	g := newTestGame(testConfig(), 42)
	g.player.Pos = core.Vec2{X: 100, Y: -50}
	g.elapsed = 2

	g.trySpawn()

	if len(g.enemies) != 1 {
		t.Fatalf("Expected one enemy, got %d", len(g.enemies))
	}
	dist := g.enemies[0].Pos.Dist(g.player.Pos)
	if math.Abs(dist-g.cfg.Run.SpawnRadius) > 1e-9 {
		t.Errorf("Spawn distance %v, want ring radius %v", dist, g.cfg.Run.SpawnRadius)
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	seen := map[int]bool{}
	for i := 1; i <= 5; i++ {
		g.elapsed = float64(i) * 2
		g.trySpawn()
	}
	if len(g.enemies) != 5 {
		t.Fatalf("Expected 5 enemies, got %d", len(g.enemies))
	}
	for _, e := range g.enemies {
		if seen[e.ID] {
			t.Fatalf("Duplicate enemy ID %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestArchetypeForMinuteUnlocksByTier(t *testing.T) {
	tables := NewTables(testConfig())

	cases := []struct {
		minute float64
		want   string
	}{
		{0, "drifter"},
		{1.9, "drifter"},
		{2, "runner"},
		{4.5, "runner"},
		{5, "brute"},
		{60, "brute"},
	}
	for _, tc := range cases {
		def, ok := tables.ArchetypeForMinute(tc.minute)
		if !ok {
			t.Fatalf("No archetype at minute %v", tc.minute)
		}
		if def.ID != tc.want {
			t.Errorf("Minute %v: got %q, want %q", tc.minute, def.ID, tc.want)
		}
	}
}

func TestSpawnUsesCurrentArchetype(t *testing.T) {
	g := newTestGame(testConfig(), 3)
	g.elapsed = 6 * 60
	g.lastSpawn = g.elapsed - 10

	g.trySpawn()

	if len(g.enemies) != 1 {
		t.Fatalf("Expected one enemy, got %d", len(g.enemies))
	}
	e := g.enemies[0]
	if e.Archetype != "brute" {
		t.Errorf("Archetype at minute 6 = %q, want brute", e.Archetype)
	}
	def, ok := g.tables.Enemy("brute")
	if !ok {
		t.Fatal("Brute missing from enemy table")
	}
	if e.Health != def.Health || e.MaxHealth != def.Health {
		t.Errorf("Brute health %v/%v, want %v", e.Health, e.MaxHealth, def.Health)
	}
	if e.Tier != def.Tier || e.Damage != def.Damage || e.Radius != def.Radius {
		t.Errorf("Spawned enemy diverges from its definition: %+v vs %+v", e, def)
	}
}
