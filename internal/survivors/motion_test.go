package survivors

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-survivors/internal/core"
)

func TestEnemiesConvergeOnPlayer(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: core.Vec2{X: 20},
		Health: 12, MaxHealth: 12, Speed: 6, Radius: 1,
	})

	before := g.enemies[0].Pos.Dist(g.player.Pos)
	g.updateEnemies(g.runtime.Delta())
	after := g.enemies[0].Pos.Dist(g.player.Pos)

	if after >= before {
		t.Errorf("Enemy did not converge: %v -> %v", before, after)
	}
	if g.player.Health != g.player.MaxHealth {
		t.Error("Non-overlapping enemy should deal no damage")
	}
}

func TestContactDamageScalesWithOverlapTime(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: g.player.Pos,
		Health: 12, MaxHealth: 12, Speed: 0, Damage: 4, Radius: 1,
	})

	g.updateEnemies(dt)
	want := 4 * dt
	got := g.player.MaxHealth - g.player.Health
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Contact damage = %v, want %v (rate x dt)", got, want)
	}
	if math.Abs(g.stats.DamageTaken-want) > 1e-9 {
		t.Errorf("DamageTaken = %v, want %v", g.stats.DamageTaken, want)
	}
}

func TestDefenseReducesContactDamage(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()
	g.player.Stats.Defense = 0.5
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: g.player.Pos,
		Health: 12, MaxHealth: 12, Damage: 4, Radius: 1,
	})

	g.updateEnemies(dt)
	want := 4 * dt * 0.5
	got := g.player.MaxHealth - g.player.Health
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Contact damage with 50%% defense = %v, want %v", got, want)
	}
}

func TestHealthRegenClampsAtMax(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.player.Stats.HealthRegen = 100
	g.player.Health = g.player.MaxHealth - 0.5

	g.updateEnemies(1.0)
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("Regen overshot max: %v/%v", g.player.Health, g.player.MaxHealth)
	}
}

func TestInstanceExpiresBeforeDamage(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()

	g.instances = append(g.instances, Instance{
		Weapon: "lash", Mode: ModeAura, Pos: core.Vec2{},
		Damage: 10, Pierce: 5, Size: 5,
		Age: 0.18 - dt/2, Lifetime: 0.18,
	})
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: core.Vec2{X: 1},
		Health: 12, MaxHealth: 12, Radius: 1,
	})

	g.updateInstances(dt)
	g.resolveCollisions()

	if len(g.instances) != 0 {
		t.Fatal("Instance should have expired")
	}
	if g.enemies[0].Health != 12 {
		t.Error("Expired instance dealt damage")
	}
}

func TestFreshInstanceCollidesAtSpawnPosition(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()

	// A fresh missile must hit on its creation tick before any motion.
	g.instances = append(g.instances, Instance{
		Weapon: "bolt", Mode: ModeMissile, Pos: core.Vec2{X: 5},
		Vel: core.Vec2{X: 1000}, Damage: 8, Pierce: 1, Size: 0.5,
		Lifetime: 1.5, fresh: true,
	})
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: core.Vec2{X: 5},
		Health: 12, MaxHealth: 12, Radius: 1,
	})

	g.updateInstances(dt)
	g.resolveCollisions()

	if g.enemies[0].Health != 4 {
		t.Errorf("Fresh instance missed at spawn position: health %v, want 4",
			g.enemies[0].Health)
	}
}

func TestPierceLimitCountsDistinctEnemies(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	g.instances = append(g.instances, Instance{
		Weapon: "crossblade", Mode: ModeBoomerang, Pos: core.Vec2{},
		Damage: 10, Pierce: 2, Size: 5, Lifetime: 1.4,
	})
	for i := 1; i <= 3; i++ {
		g.enemies = append(g.enemies, Enemy{
			ID: i, Archetype: "drifter", Pos: core.Vec2{X: float64(i) * 0.1},
			Health: 100, MaxHealth: 100, Radius: 1,
		})
	}

	g.resolveCollisions()

	if len(g.instances) != 0 {
		t.Error("Instance should be removed when pierce limit is exhausted")
	}
	damaged := 0
	for _, e := range g.enemies {
		if e.Health < 100 {
			damaged++
		}
	}
	if damaged != 2 {
		t.Errorf("Pierce 2 damaged %d enemies, want exactly 2", damaged)
	}
}

func TestInstanceHitsEachEnemyOnce(t *testing.T) {
	g := newTestGame(testConfig(), 1)

	g.instances = append(g.instances, Instance{
		Weapon: "lash", Mode: ModeAura, Pos: core.Vec2{},
		Damage: 5, Pierce: 10, Size: 5, Lifetime: 10,
	})
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: core.Vec2{},
		Health: 100, MaxHealth: 100, Radius: 1,
	})

	g.resolveCollisions()
	g.resolveCollisions()
	g.resolveCollisions()

	if g.enemies[0].Health != 95 {
		t.Errorf("Enemy hit more than once by one instance: health %v, want 95",
			g.enemies[0].Health)
	}
}

func TestKillDropsPickupScaledByLuck(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.player.Stats.Luck = 2

	g.instances = append(g.instances, Instance{
		Weapon: "lash", Mode: ModeAura, Pos: core.Vec2{X: 8},
		Damage: 50, Pierce: 5, Size: 3, Lifetime: 10,
	})
	g.enemies = append(g.enemies, Enemy{
		ID: 1, Archetype: "drifter", Pos: core.Vec2{X: 8},
		Health: 12, MaxHealth: 12, XP: 5, Radius: 1,
	})

	g.resolveCollisions()

	if len(g.enemies) != 0 {
		t.Fatal("Enemy should be dead and removed")
	}
	if len(g.pickups) != 1 {
		t.Fatalf("Expected one pickup, got %d", len(g.pickups))
	}
	if g.pickups[0].Value != 10 {
		t.Errorf("Pickup value = %v, want 10 (xp 5 x luck 2)", g.pickups[0].Value)
	}
	if g.stats.EnemiesKilled != 1 {
		t.Errorf("EnemiesKilled = %d, want 1", g.stats.EnemiesKilled)
	}
	if len(g.particles) == 0 {
		t.Error("Kill should emit burst particles")
	}
}

func TestBoomerangReversesAtHalfLife(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()

	g.instances = append(g.instances, Instance{
		Weapon: "crossblade", Mode: ModeBoomerang, Pos: core.Vec2{},
		Vel: core.Vec2{X: 20}, Damage: 10, Pierce: 3,
		Age: 0.7 - dt/2, Lifetime: 1.4,
	})

	g.updateInstances(dt)

	in := g.instances[0]
	if !in.Returning {
		t.Fatal("Boomerang should be returning past half life")
	}
	if in.Vel.X != -20 {
		t.Errorf("Boomerang velocity = %v, want reversed (-20)", in.Vel.X)
	}
}

func TestOrbitalTracksPlayer(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	dt := g.runtime.Delta()

	g.instances = append(g.instances, Instance{
		Weapon: "gyreblade", Mode: ModeOrbital,
		Angle: 0, OrbitRadius: 7, AngularSpeed: 4,
		Damage: 6, Pierce: 3, Size: 1, Lifetime: 100,
	})
	g.player.Pos = core.Vec2{X: 50, Y: 30}

	g.updateInstances(dt)

	in := g.instances[0]
	dist := in.Pos.Dist(g.player.Pos)
	if math.Abs(dist-7) > 1e-9 {
		t.Errorf("Orbital distance from player = %v, want 7", dist)
	}
	if in.Angle != 4*dt {
		t.Errorf("Orbital angle = %v, want %v", in.Angle, 4*dt)
	}
}

func TestPickupAbsorptionGrantsXP(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.pickups = append(g.pickups, Pickup{Pos: g.player.Pos, Value: 5})

	g.updatePickups(g.runtime.Delta())

	if len(g.pickups) != 0 {
		t.Fatal("Pickup within absorb radius should be consumed")
	}
	if g.player.XP != 5 {
		t.Errorf("XP = %v, want 5", g.player.XP)
	}
	if g.stats.XPCollected != 5 {
		t.Errorf("XPCollected = %v, want 5", g.stats.XPCollected)
	}
}

func TestPickupAttraction(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	// Inside attract radius (10) but outside absorb radius (1.2)
	g.pickups = append(g.pickups, Pickup{Pos: core.Vec2{X: 5}, Value: 5})

	g.updatePickups(g.runtime.Delta())

	if len(g.pickups) != 1 {
		t.Fatal("Pickup outside absorb radius should remain")
	}
	if g.pickups[0].Pos.X >= 5 {
		t.Errorf("Pickup not attracted: X=%v", g.pickups[0].Pos.X)
	}

	// Outside attract radius: stays put
	g.pickups = []Pickup{{Pos: core.Vec2{X: 30}, Value: 5}}
	g.updatePickups(g.runtime.Delta())
	if g.pickups[0].Pos.X != 30 {
		t.Errorf("Distant pickup moved: X=%v", g.pickups[0].Pos.X)
	}
}

func TestLevelUpFreezesSameTick(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.pickups = append(g.pickups, Pickup{Pos: g.player.Pos, Value: 10})

	g.Step(core.NewInputFrame())

	if g.state != StateLevelUp {
		t.Fatalf("Expected level-up freeze, got %v", g.state)
	}
	if g.player.Level != 2 {
		t.Errorf("Level = %d, want 2", g.player.Level)
	}
	if len(g.offers) != 3 {
		t.Fatalf("Expected 3 offers, got %d", len(g.offers))
	}

	// Clock frozen while the choice is pending
	elapsed := g.elapsed
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.elapsed != elapsed {
		t.Errorf("Clock advanced during level-up: %v -> %v", elapsed, g.elapsed)
	}

	// Choice resumes play
	in := core.NewInputFrame()
	in.Set(core.ActionChoose2)
	g.Step(in)
	if g.state != StatePlaying {
		t.Errorf("Expected playing after choice, got %v", g.state)
	}
}

func TestXPCarriesOverPastThreshold(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.absorb(14) // threshold is 10

	if g.player.Level != 2 {
		t.Fatalf("Level = %d, want 2", g.player.Level)
	}
	if g.player.XP != 4 {
		t.Errorf("Carried-over XP = %v, want 4", g.player.XP)
	}
	if g.player.XPToNext != 24 {
		t.Errorf("XPToNext = %v, want 24", g.player.XPToNext)
	}
}

func TestSingleLevelPerAbsorption(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	// Enough xp for several levels at once; only one level applies before
	// the freeze, the rest accrues toward the next threshold.
	g.absorb(100)

	if g.player.Level != 2 {
		t.Errorf("Level = %d, want 2 (one level per absorption)", g.player.Level)
	}
	if g.state != StateLevelUp {
		t.Errorf("Expected level-up freeze, got %v", g.state)
	}
	if g.player.XP != 90 {
		t.Errorf("Banked XP = %v, want 90", g.player.XP)
	}
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame(testConfig(), 1)
	g.particles = append(g.particles, Particle{Lifetime: 0.1})

	g.updateParticles(0.2)
	if len(g.particles) != 0 {
		t.Errorf("Expected particles to expire, %d remain", len(g.particles))
	}
}
