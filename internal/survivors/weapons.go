package survivors

import (
	"math"

	"github.com/vovakirdan/tui-survivors/internal/config"
	"github.com/vovakirdan/tui-survivors/internal/core"
)

// weaponLevelScale is the damage multiplier per weapon level above 1.
const weaponLevelScale = 0.15

// fireWeapons runs the cooldown gate over every equipped weapon.
// A weapon fires when elapsed-lastFired reaches its cooldown scaled by the
// player's cooldown multiplier. A failed target acquisition leaves
// lastFired unchanged so the weapon retries on its next eligible tick.
func (g *Game) fireWeapons() {
	for i := range g.player.Weapons {
		w := &g.player.Weapons[i]
		def, ok := g.tables.Weapon(w.ID)
		if !ok {
			continue
		}
		if g.elapsed-w.LastFired < def.Cooldown*g.player.Stats.Cooldown {
			continue
		}
		if g.fire(def, w.Level) {
			w.LastFired = g.elapsed
		}
	}
}

// fire creates exactly one weapon instance using the definition's kinematic
// strategy. Returns false when the strategy needs a target and none exists.
func (g *Game) fire(def config.WeaponDef, level int) bool {
	stats := g.player.Stats
	damage := def.Damage * (1 + weaponLevelScale*float64(level-1)) * stats.Damage

	inst := Instance{
		Weapon:   def.ID,
		Mode:     parseMode(def.Mode),
		Damage:   damage,
		Pierce:   def.Pierce,
		Size:     def.Size * stats.Area,
		Lifetime: def.Lifetime * stats.Duration,
		fresh:    true,
	}

	switch inst.Mode {
	case ModeSweep:
		// Rectangle ahead of the player along the facing angle, approximated
		// axis-aligned on the dominant facing axis.
		reach := def.Range * stats.Area
		dir := core.FromAngle(g.player.Facing)
		inst.Pos = g.player.Pos.Add(dir.Scale(reach / 2))
		if math.Abs(dir.X) >= math.Abs(dir.Y) {
			inst.HalfW = reach / 2
			inst.HalfH = inst.Size / 2
		} else {
			inst.HalfW = inst.Size / 2
			inst.HalfH = reach / 2
		}

	case ModeMissile:
		var dir core.Vec2
		if def.Targeting == config.TargetFacing {
			dir = core.FromAngle(g.player.Facing)
		} else {
			target, ok := g.nearestEnemy(g.player.Pos)
			if !ok {
				return false
			}
			dir = target.Pos.Sub(g.player.Pos).Normalized()
			if dir.X == 0 && dir.Y == 0 {
				// Coincident target; fall back to the last movement direction.
				dir = g.player.LastDir
			}
		}
		inst.Pos = g.player.Pos
		inst.Vel = dir.Scale(def.Speed * stats.ProjectileSpeed)

	case ModeOrbital:
		inst.OrbitRadius = def.Range * stats.Area
		inst.AngularSpeed = def.Speed * stats.ProjectileSpeed
		inst.Angle = g.rng.Float64() * 2 * math.Pi
		inst.Pos = g.player.Pos.Add(core.FromAngle(inst.Angle).Scale(inst.OrbitRadius))

	case ModeBoomerang:
		target, ok := g.nearestEnemy(g.player.Pos)
		if !ok {
			return false
		}
		dir := target.Pos.Sub(g.player.Pos).Normalized()
		if dir.X == 0 && dir.Y == 0 {
			dir = g.player.LastDir
		}
		inst.Pos = g.player.Pos
		inst.Vel = dir.Scale(def.Speed * stats.ProjectileSpeed)

	case ModeAura:
		// Recurring pulse: very short lifetime, recreated by the cooldown
		// gate rather than persisting.
		inst.Pos = g.player.Pos
		inst.Size = def.Range * stats.Area
	}

	g.instances = append(g.instances, inst)
	return true
}

// nearestEnemy scans the live enemies for the one closest to pos.
// Ties break on the first found during the linear scan.
func (g *Game) nearestEnemy(pos core.Vec2) (*Enemy, bool) {
	var best *Enemy
	bestDist := math.MaxFloat64
	for i := range g.enemies {
		d := g.enemies[i].Pos.Dist(pos)
		if d < bestDist {
			bestDist = d
			best = &g.enemies[i]
		}
	}
	return best, best != nil
}
