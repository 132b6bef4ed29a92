package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/maximpopov11/pokeworld/internal/domain"
)

// Config holds the session start parameters.
type Config struct {
	// Seed is the master seed. Every tile derives its own stream from it and
	// its coordinate.
	Seed int64 `yaml:"seed"`

	// Trainers per generated tile, clamped to [0, domain.MaxTrainers].
	Trainers int `yaml:"trainers"`

	// EncounterChance is the percent chance of a wild encounter per step
	// onto encounter terrain.
	EncounterChance int `yaml:"encounter_chance"`

	// Strict turns generation invariant failures into panics.
	Strict bool `yaml:"strict"`

	// Creatures overrides the species the default data store hands out.
	Creatures []string `yaml:"creatures"`

	// ReplayPath, when set, records the session's commands to this file.
	ReplayPath string `yaml:"replay_path"`

	// SpectatorAddr, when set, starts the spectator HTTP server on it.
	SpectatorAddr string `yaml:"spectator_addr"`
}

// NewConfig returns the defaults with a time-based seed.
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		Trainers:        domain.DefaultTrainers,
		EncounterChance: domain.DefaultEncounterChance,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	c.Trainers = min(max(c.Trainers, 0), domain.MaxTrainers)
	c.EncounterChance = min(max(c.EncounterChance, 0), 100)
	return c
}
