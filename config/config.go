// Package config loads the demo's runtime settings from an optional file and
// MAZEPORTAL_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "MAZEPORTAL"

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Game   GameConfig   `mapstructure:"game"`
	Audio  AudioConfig  `mapstructure:"audio"`
	Log    LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type GameConfig struct {
	Level        string `mapstructure:"level"`
	TileSize     int    `mapstructure:"tile_size"`
	Ghosts       int    `mapstructure:"ghosts"`
	GenerateSeed int64  `mapstructure:"generate_seed"`
	Debug        bool   `mapstructure:"debug"`
	Watch        bool   `mapstructure:"watch"`
}

type AudioConfig struct {
	Volume float64 `mapstructure:"volume"`
	Mute   bool    `mapstructure:"mute"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "mazeportal")
	v.SetDefault("game.level", "classic")
	v.SetDefault("game.tile_size", 20)
	v.SetDefault("game.ghosts", 4)
	v.SetDefault("game.generate_seed", 0)
	v.SetDefault("game.debug", false)
	v.SetDefault("game.watch", false)
	v.SetDefault("audio.volume", 0.8)
	v.SetDefault("audio.mute", false)
	v.SetDefault("log.level", "info")
}

// Load reads path when it is not empty, then applies environment overrides
// such as MAZEPORTAL_GAME_TILE_SIZE.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the maze cannot be laid out with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Game.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %d", c.Game.TileSize)
	}
	if c.Game.Ghosts < 0 {
		return fmt.Errorf("config: ghosts must not be negative, got %d", c.Game.Ghosts)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: volume must be within [0, 1], got %v", c.Audio.Volume)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) ParseLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}

// EffectiveVolume is the volume to play at once mute is applied.
func (a AudioConfig) EffectiveVolume() float64 {
	if a.Mute {
		return 0
	}
	return a.Volume
}
