// internal/config/level.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelConfig holds every numeric parameter of a level.
// Level files are JSON; yaml.v3 reads them as YAML.
type LevelConfig struct {
	Layout string       `yaml:"layout"`
	Waves  []WaveConfig `yaml:"waves"`

	InitialTowerRange       float64 `yaml:"initial_tower_range"`
	InitialTowerFiringSpeed float64 `yaml:"initial_tower_firing_speed"`
	InitialTowerDamage      float64 `yaml:"initial_tower_damage"`
	TowerCost               float64 `yaml:"tower_cost"`

	InitialMana               float64 `yaml:"initial_mana"`
	InitialManaCap            float64 `yaml:"initial_mana_cap"`
	InitialManaGainedPerSec   float64 `yaml:"initial_mana_gained_per_second"`
	ManaSpellInitialCost      float64 `yaml:"mana_pool_spell_initial_cost"`
	ManaSpellCostIncrease     float64 `yaml:"mana_pool_spell_cost_increase_per_use"`
	ManaSpellCapMultiplier    float64 `yaml:"mana_pool_spell_cap_multiplier"`
	ManaSpellGainedMultiplier float64 `yaml:"mana_pool_spell_mana_gained_multiplier"`
}

// WaveConfig describes one wave.
type WaveConfig struct {
	Duration     float64         `yaml:"duration"`
	PreWavePause float64         `yaml:"pre_wave_pause"`
	Monsters     []MonsterConfig `yaml:"monsters"`
}

// MonsterConfig is one roster line of a wave.
type MonsterConfig struct {
	Type             string  `yaml:"type"`
	HP               float64 `yaml:"hp"`
	Speed            float64 `yaml:"speed"`
	Armour           float64 `yaml:"armour"`
	ManaGainedOnKill float64 `yaml:"mana_gained_on_kill"`
	Quantity         int     `yaml:"quantity"`
	MonstersInMoag   int     `yaml:"monsters_in_moag"`
}

// LoadLevelConfig reads and validates a level config file.
// A relative layout path is resolved against the config file's directory.
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", path, err)
	}

	if cfg.Layout != "" && !filepath.IsAbs(cfg.Layout) {
		cfg.Layout = filepath.Join(filepath.Dir(path), cfg.Layout)
	}
	return cfg, nil
}

// ParseLevelConfig decodes config bytes, applies defaults and validates.
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults заполняет необязательные поля
func applyDefaults(cfg *LevelConfig) {
	if cfg.InitialManaCap == 0 {
		cfg.InitialManaCap = cfg.InitialMana
	}
	if cfg.ManaSpellCapMultiplier == 0 {
		cfg.ManaSpellCapMultiplier = 1
	}
	if cfg.ManaSpellGainedMultiplier == 0 {
		cfg.ManaSpellGainedMultiplier = 1
	}
}

// KnownMonsterTypes lists the roster types the simulation can construct.
var KnownMonsterTypes = map[string]bool{
	"gremlin": true,
	"worm":    true,
	"beetle":  true,
	"moag":    true,
}

// Validate checks the structural rules of a level config.
// Monster stat ranges are checked later, when the monsters are constructed.
func (cfg *LevelConfig) Validate() error {
	if len(cfg.Waves) == 0 {
		return errors.New("no waves configured")
	}
	for i, w := range cfg.Waves {
		if w.Duration <= 0 {
			return fmt.Errorf("wave %d: duration must be > 0", i+1)
		}
		if w.PreWavePause < 0 {
			return fmt.Errorf("wave %d: pre_wave_pause must be >= 0", i+1)
		}
		total := 0
		for _, m := range w.Monsters {
			if !KnownMonsterTypes[m.Type] {
				return fmt.Errorf("wave %d: unknown monster type %q", i+1, m.Type)
			}
			if m.Quantity < 0 {
				return fmt.Errorf("wave %d: quantity of %s must be >= 0", i+1, m.Type)
			}
			total += m.Quantity
		}
		if total == 0 {
			return fmt.Errorf("wave %d: roster is empty", i+1)
		}
	}
	if cfg.InitialTowerRange <= 0 || cfg.InitialTowerFiringSpeed <= 0 || cfg.InitialTowerDamage <= 0 {
		return errors.New("initial tower range, firing speed and damage must be > 0")
	}
	if cfg.TowerCost < 0 {
		return errors.New("tower_cost must be >= 0")
	}
	if cfg.InitialMana <= 0 {
		return errors.New("initial_mana must be > 0")
	}
	return nil
}
