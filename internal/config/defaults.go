package config

import (
	_ "embed"
)

//go:embed defaults/survivors.yaml
var defaultSurvivorsYAML []byte

// DefaultSurvivorsConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
// Kept deliberately small: pacing knobs, one weapon, one passive, one enemy,
// so a broken embed still yields a playable run.
func DefaultSurvivorsConfig() SurvivorsConfig {
	return SurvivorsConfig{
		Run: RunConfig{
			SurviveMinutes:      15,
			MaxEnemies:          150,
			BaseSpawnInterval:   1.5,
			MinSpawnInterval:    0.25,
			SpawnRampPerMinute:  0.1,
			SpawnRadius:         55,
			PickupAttractRadius: 10,
			PickupAbsorbRadius:  1.2,
			PickupAttractSpeed:  26,
		},
		Player: PlayerConfig{
			Speed:          16,
			MaxHealth:      100,
			Radius:         1.0,
			StartingWeapon: "lash",
		},
		Weapons: []WeaponDef{
			{
				ID:       "lash",
				Name:     "Lash",
				Mode:     ModeSweep,
				Damage:   12,
				Cooldown: 1.2,
				Range:    9,
				Pierce:   5,
				Lifetime: 0.18,
				Size:     3,
			},
		},
		Passives: []PassiveDef{
			{
				ID:          "whetstone",
				Name:        "Whetstone",
				Effect:      EffectDamage,
				Magnitude:   0.25,
				Description: "+25% weapon damage",
			},
		},
		Enemies: []EnemyDef{
			{
				ID:           "drifter",
				Name:         "Drifter",
				Tier:         0,
				UnlockMinute: 0,
				Health:       12,
				Speed:        6,
				Damage:       4,
				XP:           5,
				Radius:       1.0,
				Color:        "gray",
			},
		},
		LevelThresholds: []float64{10, 24, 42, 65, 95, 130, 175, 230, 295, 370},
	}
}
