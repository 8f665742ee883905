// Package config provides YAML-based game configuration loading and
// difficulty presets for the survivors platform.
package config

// SurvivorsConfig contains all static configuration for a survivors run:
// pacing knobs plus the weapon, passive-item, enemy and level tables.
// Loaded once at startup; the simulation treats it as immutable.
type SurvivorsConfig struct {
	Run             RunConfig    `yaml:"run"`
	Player          PlayerConfig `yaml:"player"`
	Weapons         []WeaponDef  `yaml:"weapons"`
	EvolvedWeapons  []WeaponDef  `yaml:"evolved_weapons"`
	Passives        []PassiveDef `yaml:"passives"`
	Enemies         []EnemyDef   `yaml:"enemies"`
	LevelThresholds []float64    `yaml:"level_thresholds"`
}

// RunConfig defines run pacing and world-space knobs.
type RunConfig struct {
	SurviveMinutes      float64 `yaml:"survive_minutes"`       // Survival time required for victory
	MaxEnemies          int     `yaml:"max_enemies"`           // Global live-enemy cap
	BaseSpawnInterval   float64 `yaml:"base_spawn_interval"`   // Seconds between spawns at minute 0
	MinSpawnInterval    float64 `yaml:"min_spawn_interval"`    // Spawn interval floor
	SpawnRampPerMinute  float64 `yaml:"spawn_ramp_per_minute"` // Seconds removed from the interval per survival minute
	SpawnRadius         float64 `yaml:"spawn_radius"`          // Distance from the player where enemies appear
	PickupAttractRadius float64 `yaml:"pickup_attract_radius"` // Pickups inside this radius home toward the player
	PickupAbsorbRadius  float64 `yaml:"pickup_absorb_radius"`  // Pickups inside this radius are absorbed
	PickupAttractSpeed  float64 `yaml:"pickup_attract_speed"`  // Constant homing speed of attracted pickups
}

// PlayerConfig defines the player's base attributes.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	MaxHealth      float64 `yaml:"max_health"`
	Radius         float64 `yaml:"radius"`
	StartingWeapon string  `yaml:"starting_weapon"`
}

// Kinematic mode names used by WeaponDef.Mode.
const (
	ModeSweep     = "sweep"     // Short-lived rectangle ahead of the player
	ModeMissile   = "missile"   // Linear travel; target per Targeting
	ModeOrbital   = "orbital"   // Circles the player at fixed radius
	ModeBoomerang = "boomerang" // Out for half its lifetime, then back
	ModeAura      = "aura"      // Recurring pulse centered on the player
)

// Targeting strategies for missile and boomerang weapons.
const (
	TargetNearest = "nearest" // Acquire nearest enemy; skip fire when none exists
	TargetFacing  = "facing"  // Fire along the player's facing angle
)

// WeaponDef holds the static data for one weapon.
// Range is mode-dependent: sweep reach, orbital radius, or aura radius.
// Speed is projectile speed for missile/boomerang and angular speed
// (radians per second) for orbital weapons.
type WeaponDef struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Mode       string  `yaml:"mode"`
	Targeting  string  `yaml:"targeting,omitempty"`
	Damage     float64 `yaml:"damage"`
	Cooldown   float64 `yaml:"cooldown"` // Seconds between fires at cooldown multiplier 1.0
	Range      float64 `yaml:"range"`
	Pierce     int     `yaml:"pierce"`
	Speed      float64 `yaml:"speed,omitempty"`
	Lifetime   float64 `yaml:"lifetime"` // Seconds an instance lives
	Size       float64 `yaml:"size"`     // Hit radius (or sweep width) of an instance
	EvolvesTo  string  `yaml:"evolves_to,omitempty"`  // Evolved weapon ID, empty if none
	EvolveItem string  `yaml:"evolve_item,omitempty"` // Passive item required for evolution
}

// Passive effect kinds used by PassiveDef.Effect.
const (
	EffectDamage          = "damage"
	EffectDefense         = "defense"
	EffectMaxHealth       = "max_health"
	EffectHealthRegen     = "health_regen"
	EffectCooldown        = "cooldown"
	EffectProjectileSpeed = "projectile_speed"
	EffectArea            = "area"
	EffectDuration        = "duration"
	EffectLuck            = "luck"
)

// PassiveDef holds the static data for one passive item.
// Magnitude semantics depend on Effect: multiplicative deltas for stat
// multipliers (0.1 = +10%), flat amounts for max_health and health_regen.
type PassiveDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Effect      string  `yaml:"effect"`
	Magnitude   float64 `yaml:"magnitude"`
	Description string  `yaml:"description"`
}

// EnemyDef holds the static data for one enemy archetype.
type EnemyDef struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Tier         int     `yaml:"tier"`
	UnlockMinute float64 `yaml:"unlock_minute"` // Survival minute at which this tier unlocks
	Health       float64 `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Damage       float64 `yaml:"damage"` // Contact damage per tick of overlap
	XP           float64 `yaml:"xp"`
	Radius       float64 `yaml:"radius"`
	Color        string  `yaml:"color"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
