package survivors

import (
	"github.com/vovakirdan/tui-survivors/internal/core"
)

// Equipment caps. A player carries at most this many distinct weapons and
// passive items; the upgrade generator never offers past a cap.
const (
	MaxWeapons = 6
	MaxItems   = 6
)

// neverFired keeps a freshly equipped weapon eligible on its first tick.
const neverFired = -1e9

// StatBlock is the player's permanent stat-multiplier record.
// Damage, Cooldown, ProjectileSpeed, Area, Duration and Luck are multipliers
// with neutral value 1; Defense is a damage-reduction fraction with neutral
// value 0; HealthRegen is flat health per second with neutral value 0.
type StatBlock struct {
	Damage          float64
	Defense         float64
	HealthRegen     float64
	Cooldown        float64
	ProjectileSpeed float64
	Area            float64
	Duration        float64
	Luck            float64
}

// NewStatBlock returns a stat block with all neutral values.
func NewStatBlock() StatBlock {
	return StatBlock{
		Damage:          1,
		Defense:         0,
		HealthRegen:     0,
		Cooldown:        1,
		ProjectileSpeed: 1,
		Area:            1,
		Duration:        1,
		Luck:            1,
	}
}

// EquippedWeapon is one slot in the player's weapon set.
// Level scales damage; evolution rewrites ID in place, keeping the slot.
type EquippedWeapon struct {
	ID        string
	Level     int
	LastFired float64 // Elapsed-seconds timestamp of the last successful fire
}

// Player is the single controlled entity. Created once per run.
type Player struct {
	Pos       core.Vec2
	Speed     float64
	Radius    float64
	Health    float64
	MaxHealth float64
	Level     int
	XP        float64
	XPToNext  float64
	Facing    float64   // Radians
	LastDir   core.Vec2 // Last nonzero movement direction
	Weapons   []EquippedWeapon
	Items     []string // Equipped passive-item IDs
	Stats     StatBlock
}

// HasWeapon reports whether a weapon ID occupies a slot.
func (p *Player) HasWeapon(id string) bool {
	for _, w := range p.Weapons {
		if w.ID == id {
			return true
		}
	}
	return false
}

// HasItem reports whether a passive item is equipped.
func (p *Player) HasItem(id string) bool {
	for _, it := range p.Items {
		if it == id {
			return true
		}
	}
	return false
}

// Enemy is one converging attacker. Health only ever decreases.
type Enemy struct {
	ID        int // Monotonic per run; instances track hits by it
	Archetype string
	Pos       core.Vec2
	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64 // Contact damage per second of overlap
	XP        float64
	Radius    float64
	Tier      int
	Color     core.Color
}

// Instance is one live weapon effect: a projectile, sweep, orbital blade,
// boomerang or aura pulse. Damage is pre-multiplied at fire time.
type Instance struct {
	Weapon string
	Mode   KinematicMode
	Pos    core.Vec2
	Vel    core.Vec2 // Missile and boomerang travel

	// Orbital parameters; Pos is recomputed from these every tick.
	Angle        float64
	OrbitRadius  float64
	AngularSpeed float64

	// Sweep rectangle half-extents around Pos.
	HalfW, HalfH float64

	Damage    float64
	Pierce    int // Distinct-enemy hit limit
	Hits      int // Hits so far; never exceeds Pierce
	Size      float64
	Age       float64
	Lifetime  float64
	Returning bool // Boomerang second half
	fresh     bool // Created this tick; collides at spawn position before moving

	hit map[int]struct{} // Enemy IDs already damaged by this instance
}

// markHit records a damaged enemy and reports whether the pierce limit
// is now exhausted.
func (in *Instance) markHit(enemyID int) bool {
	if in.hit == nil {
		in.hit = make(map[int]struct{}, in.Pierce)
	}
	in.hit[enemyID] = struct{}{}
	in.Hits++
	return in.Hits >= in.Pierce
}

// alreadyHit reports whether this instance has damaged the enemy before.
func (in *Instance) alreadyHit(enemyID int) bool {
	_, ok := in.hit[enemyID]
	return ok
}

// Pickup is an xp gem dropped at an enemy's death position.
type Pickup struct {
	Pos   core.Vec2
	Value float64
}

// Particle is purely cosmetic burst debris with an explicit age/lifetime.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Color    core.Color
	Size     float64
	Age      float64
	Lifetime float64
}

// Alpha derives the particle's fade from its age.
func (p Particle) Alpha() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(1-p.Age/p.Lifetime, 0, 1)
}

// RunStats accumulates bookkeeping for the final-stats descriptor and score.
type RunStats struct {
	EnemiesSpawned int
	EnemiesKilled  int
	DamageTaken    float64
	XPCollected    float64
}
