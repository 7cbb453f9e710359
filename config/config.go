package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is where the game looks for its config when -config is not
// given. A missing file at this path is not an error.
const DefaultPath = "dungeon.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`  // screen pixels
	Height int    `toml:"height"` // screen pixels
	Scale  int    `toml:"scale"`  // logical pixels are Width/Scale x Height/Scale
}

type GameConfig struct {
	Level        string `toml:"level"`
	TPS          int    `toml:"tps"`
	Debug        bool   `toml:"debug"`
	WatchPrefabs bool   `toml:"watch_prefabs"`
	Seed         uint64 `toml:"seed"` // 0 picks a random seed for enemy rerolls
}

type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns a config that runs the embedded dungeon.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Dungeon",
			Width:  960,
			Height: 640,
			Scale:  2,
		},
		Game: GameConfig{
			Level: "dungeon",
			TPS:   60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file at DefaultPath yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale %d must be positive", c.Window.Scale)
	}
	if c.Game.TPS < 1 || c.Game.TPS > 240 {
		return fmt.Errorf("tps %d out of range [1, 240]", c.Game.TPS)
	}
	if c.Game.Level == "" {
		return errors.New("game level is required")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	return nil
}

// NewLogger builds the process logger described by c.
func (c LoggingConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
