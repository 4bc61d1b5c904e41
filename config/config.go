package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/card-grove/core"
)

// Config carries every tunable of the simulation
// Balance values default to the baseline ruleset; a TOML file overrides them
type Config struct {
	Game    GameConfig    `toml:"game"`
	Cards   CardsConfig   `toml:"cards"`
	Stacks  StacksConfig  `toml:"stacks"`
	Tiles   TilesConfig   `toml:"tiles"`
	Combat  CombatConfig  `toml:"combat"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
}

// StatsConfig is the base stat line for a card type
type StatsConfig struct {
	Health    int `toml:"health"`
	MaxHealth int `toml:"max_health"`
	Damage    int `toml:"damage"`
}

type CardsConfig struct {
	Villager StatsConfig `toml:"villager"`
	Log      StatsConfig `toml:"log"`
	Goblin   StatsConfig `toml:"goblin"`

	// SpawnOffset is the X distance from a producer at which new cards appear
	SpawnOffset float64 `toml:"spawn_offset"`
}

// Stats returns the base stat line for a card type
func (c *CardsConfig) Stats(t core.CardType) StatsConfig {
	switch t {
	case core.CardVillager:
		return c.Villager
	case core.CardGoblin:
		return c.Goblin
	case core.CardLog:
		return c.Log
	default:
		return StatsConfig{}
	}
}

type StacksConfig struct {
	BreedDuration time.Duration `toml:"breed_duration"`

	// Visual chain layout below the root card
	ChildOffsetY     float64 `toml:"child_offset_y"`
	ChildOffsetDepth float64 `toml:"child_offset_depth"`
}

type TilesConfig struct {
	WoodsProduction   time.Duration `toml:"woods_production"`
	EnemiesProduction time.Duration `toml:"enemies_production"`

	// Woods grid spans [-half..half] on both axes; the enemy camp sits above it
	WoodsGridHalf int `toml:"woods_grid_half"`

	Size        float64 `toml:"size"`
	Overlap     float64 `toml:"overlap"`
	SlotSize    float64 `toml:"slot_size"`
	SpawnOffset float64 `toml:"spawn_offset"`
}

// Pitch returns the center-to-center distance between adjacent tiles
func (c *TilesConfig) Pitch() core.Vec2 {
	p := c.Size + c.Overlap
	return core.Vec2{X: p, Y: p}
}

// SlotHalf returns the half extents of a tile's card slot
func (c *TilesConfig) SlotHalf() core.Vec2 {
	return core.Vec2{
		X: c.SlotSize * core.CardAspectRatio / 2.0,
		Y: c.SlotSize / 2.0,
	}
}

type CombatConfig struct {
	StrikeRange       float64       `toml:"strike_range"`
	ApproachSpeed     float64       `toml:"approach_speed"`
	AttackCooldown    time.Duration `toml:"attack_cooldown"`
	RetaliateCooldown time.Duration `toml:"retaliate_cooldown"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AudioConfig struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
}

// Load reads a TOML config from path, layered over defaults
// An empty path returns the defaults unchanged
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the baseline ruleset
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickRate: 33 * time.Millisecond,
		},
		Cards: CardsConfig{
			Villager:    StatsConfig{Health: 3, MaxHealth: 3, Damage: 1},
			Goblin:      StatsConfig{Health: 1, MaxHealth: 1, Damage: 1},
			Log:         StatsConfig{},
			SpawnOffset: 1.0,
		},
		Stacks: StacksConfig{
			BreedDuration:    5 * time.Second,
			ChildOffsetY:     -0.3,
			ChildOffsetDepth: 0.01,
		},
		Tiles: TilesConfig{
			WoodsProduction:   15 * time.Second,
			EnemiesProduction: 20 * time.Second,
			WoodsGridHalf:     1,
			Size:              3.0,
			Overlap:           -0.05,
			SlotSize:          1.2,
			SpawnOffset:       0.95,
		},
		Combat: CombatConfig{
			StrikeRange:       1.0,
			ApproachSpeed:     1.0,
			AttackCooldown:    1 * time.Second,
			RetaliateCooldown: 900 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
	}
}

func (c *Config) validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %v", c.Game.TickRate)
	}
	if c.Tiles.Size <= 0 {
		return fmt.Errorf("tiles.size must be positive, got %v", c.Tiles.Size)
	}
	if c.Tiles.Size+c.Tiles.Overlap <= 0 {
		return fmt.Errorf("tiles.size + tiles.overlap must be positive")
	}
	if c.Combat.StrikeRange <= 0 {
		return fmt.Errorf("combat.strike_range must be positive, got %v", c.Combat.StrikeRange)
	}
	if c.Stacks.BreedDuration <= 0 || c.Tiles.WoodsProduction <= 0 || c.Tiles.EnemiesProduction <= 0 {
		return fmt.Errorf("production durations must be positive")
	}
	return nil
}
