// Package config loads textrogue settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds every setting for local play and the SSH server.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// GameConfig shapes each session.
type GameConfig struct {
	MapWidth      int `yaml:"map_width"`
	MapHeight     int `yaml:"map_height"`
	SightRadius   int `yaml:"sight_radius"`
	RegenInterval int `yaml:"regen_interval"`
	// Seed fixes the random stream. 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// ServerConfig holds SSH listener settings.
type ServerConfig struct {
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
	// MaxSessions caps concurrent games. 0 means unlimited.
	MaxSessions int `yaml:"max_sessions"`
}

// LoggingConfig holds log level, format and rotation settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MapWidth:      50,
			MapHeight:     30,
			SightRadius:   5,
			RegenInterval: 8,
		},
		Server: ServerConfig{
			Port:        2222,
			HostKey:     "server_host_key",
			MaxSessions: 16,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "text",
			FileEnabled:    true,
			FilePath:       "logs/textrogue.log",
			FileMaxSizeMB:  10,
			FileMaxBackups: 5,
			FileMaxAgeDays: 30,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if seed := os.Getenv("TEXTROGUE_SEED"); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("TEXTROGUE_SEED: %w", err)
		}
		c.Game.Seed = n
	}
	return nil
}

// Validate rejects settings the generator or server cannot work with.
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.MapWidth < 40 || g.MapHeight < 24:
		return fmt.Errorf("map must be at least 40x24, got %dx%d", g.MapWidth, g.MapHeight)
	case g.SightRadius < 1:
		return fmt.Errorf("sight_radius must be positive, got %d", g.SightRadius)
	case g.RegenInterval < 1:
		return fmt.Errorf("regen_interval must be positive, got %d", g.RegenInterval)
	case c.Server.Port < 1 || c.Server.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Server.Port)
	case c.Server.MaxSessions < 0:
		return fmt.Errorf("max_sessions must not be negative, got %d", c.Server.MaxSessions)
	}
	return nil
}
