// Package survivors implements the survival-combat simulation: a single
// player passively defended by auto-firing weapons while enemies converge,
// xp pickups drop and are absorbed, and level-ups grant permanent upgrades.
// The package contains pure logic with no external dependencies; the
// platform handles input mapping, timing, and terminal display.
package survivors

import (
	"github.com/vovakirdan/tui-survivors/internal/config"
	"github.com/vovakirdan/tui-survivors/internal/core"
)

// KinematicMode selects the firing strategy and motion rule of a weapon
// instance. Closed set; every instance carries exactly one.
type KinematicMode int

const (
	ModeSweep KinematicMode = iota
	ModeMissile
	ModeOrbital
	ModeBoomerang
	ModeAura
)

// String returns the config-facing name of the mode.
func (m KinematicMode) String() string {
	switch m {
	case ModeSweep:
		return config.ModeSweep
	case ModeMissile:
		return config.ModeMissile
	case ModeOrbital:
		return config.ModeOrbital
	case ModeBoomerang:
		return config.ModeBoomerang
	case ModeAura:
		return config.ModeAura
	default:
		return "unknown"
	}
}

// parseMode maps a config mode string to its KinematicMode.
// Unknown strings fall back to ModeMissile; Normalize has already warned.
func parseMode(s string) KinematicMode {
	switch s {
	case config.ModeSweep:
		return ModeSweep
	case config.ModeOrbital:
		return ModeOrbital
	case config.ModeBoomerang:
		return ModeBoomerang
	case config.ModeAura:
		return ModeAura
	default:
		return ModeMissile
	}
}

// parseColor maps a config color name to a screen color.
func parseColor(s string) core.Color {
	switch s {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// Tables holds the immutable definition lookups for one run.
// Built once from config at Reset and never mutated afterwards.
type Tables struct {
	weapons    map[string]config.WeaponDef // base and evolved, by ID
	passives   map[string]config.PassiveDef
	enemies    map[string]config.EnemyDef
	baseOrder  []string // base weapon IDs in table order
	itemOrder  []string // passive IDs in table order
	enemyOrder []string // enemy IDs in table order
	thresholds []float64
}

// NewTables builds the lookup structures from a normalized config.
func NewTables(cfg config.SurvivorsConfig) *Tables {
	t := &Tables{
		weapons:    make(map[string]config.WeaponDef, len(cfg.Weapons)+len(cfg.EvolvedWeapons)),
		passives:   make(map[string]config.PassiveDef, len(cfg.Passives)),
		enemies:    make(map[string]config.EnemyDef, len(cfg.Enemies)),
		thresholds: cfg.LevelThresholds,
	}
	for _, w := range cfg.Weapons {
		t.weapons[w.ID] = w
		t.baseOrder = append(t.baseOrder, w.ID)
	}
	for _, w := range cfg.EvolvedWeapons {
		t.weapons[w.ID] = w
	}
	for _, p := range cfg.Passives {
		t.passives[p.ID] = p
		t.itemOrder = append(t.itemOrder, p.ID)
	}
	for _, e := range cfg.Enemies {
		t.enemies[e.ID] = e
		t.enemyOrder = append(t.enemyOrder, e.ID)
	}
	return t
}

// Weapon looks up a weapon definition (base or evolved) by ID.
func (t *Tables) Weapon(id string) (config.WeaponDef, bool) {
	w, ok := t.weapons[id]
	return w, ok
}

// Passive looks up a passive-item definition by ID.
func (t *Tables) Passive(id string) (config.PassiveDef, bool) {
	p, ok := t.passives[id]
	return p, ok
}

// Enemy looks up an enemy archetype by ID.
func (t *Tables) Enemy(id string) (config.EnemyDef, bool) {
	e, ok := t.enemies[id]
	return e, ok
}

// BaseWeaponIDs returns the base (non-evolved) weapon IDs in table order.
func (t *Tables) BaseWeaponIDs() []string {
	return t.baseOrder
}

// PassiveIDs returns the passive-item IDs in table order.
func (t *Tables) PassiveIDs() []string {
	return t.itemOrder
}

// ArchetypeForMinute returns the archetype of the highest tier unlocked at
// the given survival minute. Tiers never downgrade: once a tier unlocks it
// stays the active spawn until a higher one unlocks. Table order breaks ties.
func (t *Tables) ArchetypeForMinute(minute float64) (config.EnemyDef, bool) {
	var best config.EnemyDef
	found := false
	for _, id := range t.enemyOrder {
		e := t.enemies[id]
		if e.UnlockMinute > minute {
			continue
		}
		if !found || e.Tier > best.Tier {
			best = e
			found = true
		}
	}
	return best, found
}

// XPToNext returns the xp required to advance past the given level.
// Beyond the table's end the threshold is extrapolated from the last entry.
func (t *Tables) XPToNext(level int) float64 {
	if level < 1 {
		level = 1
	}
	n := len(t.thresholds)
	if n == 0 {
		return 50 * float64(level)
	}
	if level <= n {
		return t.thresholds[level-1]
	}
	return t.thresholds[n-1] + 50*float64(level-n)
}
