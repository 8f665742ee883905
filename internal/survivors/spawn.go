package survivors

import (
	"math"

	"github.com/vovakirdan/tui-survivors/internal/core"
)

// spawnInterval is the seconds between spawns at the given survival minute:
// the base interval shrinks linearly with survival time down to the floor.
func (g *Game) spawnInterval(minute float64) float64 {
	interval := g.cfg.Run.BaseSpawnInterval - g.cfg.Run.SpawnRampPerMinute*minute
	return math.Max(g.cfg.Run.MinSpawnInterval, interval)
}

// trySpawn places one enemy when the current interval has elapsed since the
// last spawn and the live-enemy cap has room. The archetype is the highest
// tier unlocked at the current minute; the position is a uniformly random
// angle on the spawn ring around the player.
func (g *Game) trySpawn() {
	if len(g.enemies) >= g.cfg.Run.MaxEnemies {
		return
	}
	minute := g.elapsed / 60
	if g.elapsed-g.lastSpawn < g.spawnInterval(minute) {
		return
	}

	def, ok := g.tables.ArchetypeForMinute(minute)
	if !ok {
		return
	}

	angle := g.rng.Float64() * 2 * math.Pi
	pos := g.player.Pos.Add(core.FromAngle(angle).Scale(g.cfg.Run.SpawnRadius))

	g.nextEnemyID++
	g.enemies = append(g.enemies, Enemy{
		ID:        g.nextEnemyID,
		Archetype: def.ID,
		Pos:       pos,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		XP:        def.XP,
		Radius:    def.Radius,
		Tier:      def.Tier,
		Color:     parseColor(def.Color),
	})
	g.stats.EnemiesSpawned++
	g.lastSpawn = g.elapsed
}
