// Package config loads the optional TOML tuning file
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Game holds simulation tuning overrides
type Game struct {
	Level          int     `toml:"level"`
	LevelsFile     string  `toml:"levels_file"`
	PlayerSpeed    float64 `toml:"player_speed"`
	EnemySpeed     float64 `toml:"enemy_speed"`
	DetectionRange float64 `toml:"detection_range"`
	Seed           uint64  `toml:"seed"`
}

// Audio holds sound settings
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Log holds logging settings
type Log struct {
	Level string `toml:"level"`
}

// Config is the full configuration tree
type Config struct {
	Game  Game  `toml:"game"`
	Audio Audio `toml:"audio"`
	Log   Log   `toml:"log"`
}

// Default returns the configuration used when no file is given. Zero
// tuning values mean "use the built-in parameter".
func Default() Config {
	return Config{
		Game:  Game{Level: 0, Seed: 1},
		Audio: Audio{Enabled: true, Volume: 0.5},
		Log:   Log{Level: "info"},
	}
}

// Load reads a TOML config file over the defaults. An empty path or a
// missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Game.Level < 0 {
		return fmt.Errorf("game.level must not be negative")
	}
	if c.Game.PlayerSpeed < 0 || c.Game.EnemySpeed < 0 || c.Game.DetectionRange < 0 {
		return fmt.Errorf("tuning overrides must not be negative")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in 0..1")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}
