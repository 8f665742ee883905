package survivors

import (
	"fmt"

	"github.com/vovakirdan/tui-survivors/internal/config"
	"github.com/vovakirdan/tui-survivors/internal/core"
)

// OfferKind discriminates what an upgrade offer grants.
type OfferKind string

const (
	OfferWeapon  OfferKind = "weapon"  // Equip a new base weapon
	OfferPassive OfferKind = "passive" // Equip a new passive item
	OfferUpgrade OfferKind = "upgrade" // Raise an equipped weapon's level
	OfferBoost   OfferKind = "boost"   // Small generic stat bump (pool fallback)
)

// Offer is one of the three choices shown at a level-up.
type Offer struct {
	Kind        OfferKind
	ID          string
	Name        string
	Description string
}

// Generic boost fallbacks, drawn without replacement when the real pool
// cannot fill three slots.
var boostOffers = []Offer{
	{Kind: OfferBoost, ID: "boost_damage", Name: "Sharpen", Description: "+10% damage"},
	{Kind: OfferBoost, ID: "boost_speed", Name: "Sprint", Description: "+10% move speed"},
	{Kind: OfferBoost, ID: "boost_health", Name: "Vitality", Description: "+20 max health"},
	{Kind: OfferBoost, ID: "boost_cooldown", Name: "Haste", Description: "8% faster cooldowns"},
}

// generateOffers builds the three level-up choices. The pool holds at most
// one random unowned base weapon (when a weapon slot is free), one random
// unowned passive (when an item slot is free), and an upgrade per equipped
// weapon. The pool is shuffled and the first three taken; generic boosts
// pad a short pool.
func (g *Game) generateOffers() []Offer {
	var pool []Offer

	if len(g.player.Weapons) < MaxWeapons {
		if id, ok := g.randomUnowned(g.tables.BaseWeaponIDs(), g.ownsWeaponLine); ok {
			def, _ := g.tables.Weapon(id)
			pool = append(pool, Offer{
				Kind:        OfferWeapon,
				ID:          id,
				Name:        def.Name,
				Description: "New weapon",
			})
		}
	}
	if len(g.player.Items) < MaxItems {
		if id, ok := g.randomUnowned(g.tables.PassiveIDs(), g.player.HasItem); ok {
			def, _ := g.tables.Passive(id)
			pool = append(pool, Offer{
				Kind:        OfferPassive,
				ID:          id,
				Name:        def.Name,
				Description: def.Description,
			})
		}
	}
	for _, w := range g.player.Weapons {
		def, ok := g.tables.Weapon(w.ID)
		if !ok {
			continue
		}
		pool = append(pool, Offer{
			Kind:        OfferUpgrade,
			ID:          w.ID,
			Name:        def.Name,
			Description: fmt.Sprintf("Level %d → %d", w.Level, w.Level+1),
		})
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > 3 {
		pool = pool[:3]
	}

	// Pad with distinct generic boosts.
	perm := g.rng.Perm(len(boostOffers))
	for _, idx := range perm {
		if len(pool) >= 3 {
			break
		}
		pool = append(pool, boostOffers[idx])
	}
	return pool
}

// ownsWeaponLine reports whether the player holds the weapon or its evolved
// form. Equipping an evolution rewrites the base id in place, so the base id
// alone cannot tell an evolved weapon from a free slot.
func (g *Game) ownsWeaponLine(id string) bool {
	if g.player.HasWeapon(id) {
		return true
	}
	def, ok := g.tables.Weapon(id)
	return ok && def.EvolvesTo != "" && g.player.HasWeapon(def.EvolvesTo)
}

// randomUnowned picks a uniformly random ID from the candidates the player
// does not already own.
func (g *Game) randomUnowned(ids []string, owned func(string) bool) (string, bool) {
	var free []string
	for _, id := range ids {
		if !owned(id) {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return "", false
	}
	return free[g.rng.Intn(len(free))], true
}

// applyOffer consumes the chosen offer, runs the evolution check and
// unfreezes the clock. An out-of-range index is ignored so a stray choice
// action cannot stall the pending state with a wrong pick.
func (g *Game) applyOffer(idx int) {
	if idx < 0 || idx >= len(g.offers) {
		return
	}
	offer := g.offers[idx]

	switch offer.Kind {
	case OfferWeapon:
		g.player.Weapons = append(g.player.Weapons, EquippedWeapon{
			ID:        offer.ID,
			Level:     1,
			LastFired: neverFired,
		})
	case OfferPassive:
		g.player.Items = append(g.player.Items, offer.ID)
		if def, ok := g.tables.Passive(offer.ID); ok {
			g.applyPassive(def)
		}
	case OfferUpgrade:
		for i := range g.player.Weapons {
			if g.player.Weapons[i].ID == offer.ID {
				g.player.Weapons[i].Level++
				break
			}
		}
	case OfferBoost:
		g.applyBoost(offer.ID)
	}

	g.checkEvolutions()
	g.offers = nil
	g.state = StatePlaying
}

// applyPassive folds a passive item's effect into the permanent stat block.
func (g *Game) applyPassive(def config.PassiveDef) {
	s := &g.player.Stats
	switch def.Effect {
	case config.EffectDamage:
		s.Damage += def.Magnitude
	case config.EffectDefense:
		s.Defense = core.ClampF(s.Defense+def.Magnitude, 0, maxDefense)
	case config.EffectMaxHealth:
		g.player.MaxHealth += def.Magnitude
		g.player.Health += def.Magnitude
	case config.EffectHealthRegen:
		s.HealthRegen += def.Magnitude
	case config.EffectCooldown:
		s.Cooldown *= 1 - def.Magnitude
	case config.EffectProjectileSpeed:
		s.ProjectileSpeed += def.Magnitude
	case config.EffectArea:
		s.Area += def.Magnitude
	case config.EffectDuration:
		s.Duration += def.Magnitude
	case config.EffectLuck:
		s.Luck += def.Magnitude
	}
}

// applyBoost applies one of the generic fallback bumps.
func (g *Game) applyBoost(id string) {
	switch id {
	case "boost_damage":
		g.player.Stats.Damage += 0.1
	case "boost_speed":
		g.player.Speed *= 1.1
	case "boost_health":
		g.player.MaxHealth += 20
		g.player.Health += 20
	case "boost_cooldown":
		g.player.Stats.Cooldown *= 0.92
	}
}

// checkEvolutions rewrites equipped weapon IDs in place when the weapon's
// evolution target is defined and its catalyst item is equipped. Level and
// the cooldown timestamp carry over; rerunning the check is a no-op because
// an evolved weapon defines no further evolution.
func (g *Game) checkEvolutions() {
	for i := range g.player.Weapons {
		w := &g.player.Weapons[i]
		def, ok := g.tables.Weapon(w.ID)
		if !ok || def.EvolvesTo == "" {
			continue
		}
		if _, ok := g.tables.Weapon(def.EvolvesTo); !ok {
			continue
		}
		if def.EvolveItem != "" && !g.player.HasItem(def.EvolveItem) {
			continue
		}
		w.ID = def.EvolvesTo
	}
}
