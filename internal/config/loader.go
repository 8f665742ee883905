package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadSurvivors loads the survivors configuration.
// Search order: customPath -> ~/.survivors/configs/survivors.yaml ->
// ./configs/survivors.yaml -> embedded default.
// The returned config has already passed Normalize.
func LoadSurvivors(customPath string) (SurvivorsConfig, error) {
	var cfg SurvivorsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survivors.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/survivors.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSurvivorsYAML, &cfg); err != nil {
		return Normalize(DefaultSurvivorsConfig()), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivors", "configs", filename)
}

// ApplySurvivorsPreset modifies pacing based on a difficulty preset.
// "fixed" freezes the difficulty ramp at the base spawn interval.
func ApplySurvivorsPreset(cfg *SurvivorsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Run.BaseSpawnInterval *= 1.4
		cfg.Run.SpawnRampPerMinute *= 0.7
		cfg.Run.MaxEnemies = cfg.Run.MaxEnemies * 2 / 3
	case DifficultyHard:
		cfg.Run.BaseSpawnInterval *= 0.7
		cfg.Run.SpawnRampPerMinute *= 1.5
		cfg.Run.MaxEnemies = cfg.Run.MaxEnemies * 3 / 2
	case DifficultyFixed:
		cfg.Run.SpawnRampPerMinute = 0
	}
}

// Normalize validates table cross-references and drops the broken ones.
// A weapon or item identifier referenced by configuration but absent from
// any definition table is logged and ignored rather than applied, so the
// simulation never has to resolve a dangling ID at tick time.
func Normalize(cfg SurvivorsConfig) SurvivorsConfig {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "config"})

	weaponIDs := make(map[string]bool, len(cfg.Weapons))
	for _, w := range cfg.Weapons {
		weaponIDs[w.ID] = true
	}
	evolvedIDs := make(map[string]bool, len(cfg.EvolvedWeapons))
	for _, w := range cfg.EvolvedWeapons {
		evolvedIDs[w.ID] = true
	}
	passiveIDs := make(map[string]bool, len(cfg.Passives))
	for _, p := range cfg.Passives {
		passiveIDs[p.ID] = true
	}

	// Starting weapon must exist; fall back to the first defined weapon.
	if !weaponIDs[cfg.Player.StartingWeapon] {
		fallback := ""
		if len(cfg.Weapons) > 0 {
			fallback = cfg.Weapons[0].ID
		}
		logger.Warn("unknown starting weapon, ignored",
			"id", cfg.Player.StartingWeapon, "fallback", fallback)
		cfg.Player.StartingWeapon = fallback
	}

	// Pierce below one would still land a hit before removal; clamp it so
	// the hit count can never exceed the limit.
	clampPierce := func(weapons []WeaponDef) {
		for i := range weapons {
			if weapons[i].Pierce < 1 {
				logger.Warn("pierce below 1, clamped", "weapon", weapons[i].ID, "pierce", weapons[i].Pierce)
				weapons[i].Pierce = 1
			}
		}
	}
	clampPierce(cfg.Weapons)
	clampPierce(cfg.EvolvedWeapons)

	// Evolution references must resolve to an evolved weapon and a passive.
	for i := range cfg.Weapons {
		w := &cfg.Weapons[i]
		if w.EvolvesTo != "" && !evolvedIDs[w.EvolvesTo] {
			logger.Warn("unknown evolution target, ignored", "weapon", w.ID, "target", w.EvolvesTo)
			w.EvolvesTo = ""
			w.EvolveItem = ""
		}
		if w.EvolvesTo != "" && !passiveIDs[w.EvolveItem] {
			logger.Warn("unknown evolution item, ignored", "weapon", w.ID, "item", w.EvolveItem)
			w.EvolvesTo = ""
			w.EvolveItem = ""
		}
	}

	// Evolved weapons never evolve further; scrub any stray references.
	for i := range cfg.EvolvedWeapons {
		w := &cfg.EvolvedWeapons[i]
		if w.EvolvesTo != "" {
			logger.Warn("evolved weapon cannot evolve, ignored", "weapon", w.ID, "target", w.EvolvesTo)
			w.EvolvesTo = ""
			w.EvolveItem = ""
		}
	}

	return cfg
}
