package survivors

import "github.com/vovakirdan/tui-survivors/internal/core"

// PlayerView is the player's externally visible state.
type PlayerView struct {
	Pos       core.Vec2
	Facing    float64
	Health    float64
	MaxHealth float64
	Level     int
	XP        float64
	XPToNext  float64
	Weapons   []EquippedWeapon
	Items     []string
	Stats     StatBlock
}

// EnemyView is one enemy's externally visible state.
type EnemyView struct {
	ID        int
	Archetype string
	Pos       core.Vec2
	Health    float64
	MaxHealth float64
	Radius    float64
	Tier      int
	Color     core.Color
}

// InstanceView is one weapon instance's externally visible state.
// Orbital parameters are meaningful only for ModeOrbital instances.
type InstanceView struct {
	Weapon       string
	Mode         KinematicMode
	Pos          core.Vec2
	HalfW, HalfH float64
	Size         float64
	Angle        float64
	OrbitRadius  float64
	AngularSpeed float64
	Age          float64
	Lifetime     float64
}

// Snapshot captures the complete run state for determinism testing and the
// renderer. All slices are value copies; mutating a snapshot never touches
// the live game.
type Snapshot struct {
	Tick      uint64
	Elapsed   float64
	State     RunState
	Player    PlayerView
	Enemies   []EnemyView
	Instances []InstanceView
	Pickups   []Pickup
	Particles []Particle
	Offers    []Offer    // Populated only while a choice is pending
	Final     FinalStats // Populated only in a terminal state
	Stats     RunStats
}

// Snapshot returns the current run snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Elapsed: g.elapsed,
		State:   g.state,
		Player: PlayerView{
			Pos:       g.player.Pos,
			Facing:    g.player.Facing,
			Health:    g.player.Health,
			MaxHealth: g.player.MaxHealth,
			Level:     g.player.Level,
			XP:        g.player.XP,
			XPToNext:  g.player.XPToNext,
			Weapons:   append([]EquippedWeapon(nil), g.player.Weapons...),
			Items:     append([]string(nil), g.player.Items...),
			Stats:     g.player.Stats,
		},
		Pickups:   append([]Pickup(nil), g.pickups...),
		Particles: append([]Particle(nil), g.particles...),
		Stats:     g.stats,
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        e.ID,
			Archetype: e.Archetype,
			Pos:       e.Pos,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Radius:    e.Radius,
			Tier:      e.Tier,
			Color:     e.Color,
		})
	}
	for i := range g.instances {
		in := &g.instances[i]
		s.Instances = append(s.Instances, InstanceView{
			Weapon:       in.Weapon,
			Mode:         in.Mode,
			Pos:          in.Pos,
			HalfW:        in.HalfW,
			HalfH:        in.HalfH,
			Size:         in.Size,
			Angle:        in.Angle,
			OrbitRadius:  in.OrbitRadius,
			AngularSpeed: in.AngularSpeed,
			Age:          in.Age,
			Lifetime:     in.Lifetime,
		})
	}

	if g.state == StateLevelUp {
		s.Offers = append([]Offer(nil), g.offers...)
	}
	if g.terminal() {
		s.Final = g.final
	}
	return s
}
