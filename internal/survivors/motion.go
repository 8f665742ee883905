package survivors

import (
	"math"

	"github.com/vovakirdan/tui-survivors/internal/core"
)

// maxDefense caps damage reduction so contact damage never reaches zero.
const maxDefense = 0.9

// updateEnemies steps every enemy toward the player, applies contact damage
// while overlapping, and regenerates player health. Contact damage is a
// per-second rate scaled by dt, so overlap duration decides the total.
func (g *Game) updateEnemies(dt float64) {
	defense := core.ClampF(g.player.Stats.Defense, 0, maxDefense)
	for i := range g.enemies {
		e := &g.enemies[i]
		dir := g.player.Pos.Sub(e.Pos).Normalized()
		e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))

		if core.CirclesOverlap(e.Pos, e.Radius, g.player.Pos, g.player.Radius) {
			dmg := e.Damage * dt * (1 - defense)
			g.player.Health -= dmg
			g.stats.DamageTaken += dmg
		}
	}

	if g.player.Stats.HealthRegen > 0 && g.player.Health > 0 {
		g.player.Health = core.ClampF(
			g.player.Health+g.player.Stats.HealthRegen*dt,
			0, g.player.MaxHealth)
	}
}

// updateInstances ages and moves every weapon instance. Expiry happens before
// motion, so an instance never deals damage past its lifetime. Instances
// created this tick skip aging and motion and collide at spawn position.
func (g *Game) updateInstances(dt float64) {
	alive := g.instances[:0]
	for i := range g.instances {
		in := g.instances[i]
		if in.fresh {
			in.fresh = false
			alive = append(alive, in)
			continue
		}

		in.Age += dt
		if in.Age >= in.Lifetime {
			continue
		}

		switch in.Mode {
		case ModeMissile:
			in.Pos = in.Pos.Add(in.Vel.Scale(dt))
		case ModeOrbital:
			in.Angle += in.AngularSpeed * dt
			in.Pos = g.player.Pos.Add(core.Vec2{
				X: math.Cos(in.Angle) * in.OrbitRadius,
				Y: math.Sin(in.Angle) * in.OrbitRadius,
			})
		case ModeBoomerang:
			if !in.Returning && in.Age >= in.Lifetime/2 {
				in.Returning = true
				in.Vel = in.Vel.Scale(-1)
			}
			in.Pos = in.Pos.Add(in.Vel.Scale(dt))
		}
		// Sweeps and auras hold their spawn position for their whole life.

		alive = append(alive, in)
	}
	g.instances = alive
}

// resolveCollisions tests every live instance against every live enemy and
// applies premultiplied damage once per enemy per instance. An instance that
// exhausts its pierce limit is removed immediately; a killed enemy drops an
// xp pickup scaled by luck.
func (g *Game) resolveCollisions() {
	liveInstances := g.instances[:0]
	for i := range g.instances {
		in := &g.instances[i]
		exhausted := false

		for j := range g.enemies {
			e := &g.enemies[j]
			if e.Health <= 0 || in.alreadyHit(e.ID) {
				continue
			}
			if !g.instanceHits(in, e) {
				continue
			}

			e.Health -= in.Damage
			if e.Health <= 0 {
				g.killEnemy(e)
			}
			if in.markHit(e.ID) {
				exhausted = true
				break
			}
		}

		if !exhausted {
			liveInstances = append(liveInstances, *in)
		}
	}
	g.instances = liveInstances

	liveEnemies := g.enemies[:0]
	for i := range g.enemies {
		if g.enemies[i].Health > 0 {
			liveEnemies = append(liveEnemies, g.enemies[i])
		}
	}
	g.enemies = liveEnemies
}

// instanceHits tests one instance's shape against one enemy's circle.
func (g *Game) instanceHits(in *Instance, e *Enemy) bool {
	if in.Mode == ModeSweep {
		return core.RectCircleOverlap(in.Pos, in.HalfW, in.HalfH, e.Pos, e.Radius)
	}
	return core.CirclesOverlap(in.Pos, in.Size, e.Pos, e.Radius)
}

// killEnemy records the kill, drops the xp pickup and spawns burst debris.
func (g *Game) killEnemy(e *Enemy) {
	g.stats.EnemiesKilled++
	g.pickups = append(g.pickups, Pickup{
		Pos:   e.Pos,
		Value: e.XP * g.player.Stats.Luck,
	})
	g.burst(e.Pos, e.Color)
}

// burst emits a small ring of particles at a death position.
func (g *Game) burst(pos core.Vec2, color core.Color) {
	const count = 6
	for i := 0; i < count; i++ {
		angle := float64(i)/count*2*math.Pi + g.rng.Float64()*0.5
		speed := 4 + g.rng.Float64()*4
		g.particles = append(g.particles, Particle{
			Pos:      pos,
			Vel:      core.FromAngle(angle).Scale(speed),
			Color:    color,
			Size:     1,
			Lifetime: 0.4 + g.rng.Float64()*0.3,
		})
	}
}

// updatePickups absorbs gems within the absorb radius and attracts gems
// within the attract radius. Each absorption runs one level check, so an
// absorption can raise at most one level before the clock freezes for the
// upgrade choice; remaining gems wait for following ticks.
func (g *Game) updatePickups(dt float64) {
	remaining := g.pickups[:0]
	for i := range g.pickups {
		p := g.pickups[i]

		if core.PointInCircle(p.Pos, g.player.Pos, g.cfg.Run.PickupAbsorbRadius) {
			g.absorb(p.Value)
			continue
		}
		if core.PointInCircle(p.Pos, g.player.Pos, g.cfg.Run.PickupAttractRadius) {
			dir := g.player.Pos.Sub(p.Pos).Normalized()
			p.Pos = p.Pos.Add(dir.Scale(g.cfg.Run.PickupAttractSpeed * dt))
		}
		remaining = append(remaining, p)
	}
	g.pickups = remaining
}

// absorb grants xp and runs a single level check. XP past the threshold
// carries over; the next threshold applies only after the pending choice.
func (g *Game) absorb(value float64) {
	g.player.XP += value
	g.stats.XPCollected += value

	if g.state != StatePlaying {
		// A choice is already pending; xp accrues toward the next level.
		return
	}
	if g.player.XP >= g.player.XPToNext {
		g.player.XP -= g.player.XPToNext
		g.player.Level++
		g.player.XPToNext = g.tables.XPToNext(g.player.Level)
		g.offers = g.generateOffers()
		g.state = StateLevelUp
	}
}

// updateParticles ages debris and drops what expired.
func (g *Game) updateParticles(dt float64) {
	alive := g.particles[:0]
	for i := range g.particles {
		p := g.particles[i]
		p.Age += dt
		if p.Age >= p.Lifetime {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	g.particles = alive
}
