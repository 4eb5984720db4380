// Package config loads game settings from .env, an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file read when no other path is given.
const DefaultPath = "dungeonsgambit.yaml"

// Config holds game configuration options.
type Config struct {
	// Seed for deck shuffling. A seed of 0 means a time-based seed.
	Seed int64 `yaml:"seed"`

	TurnDelay       time.Duration `yaml:"turn_delay"`       // Combat auto-advance
	IntroDuration   time.Duration `yaml:"intro_duration"`   // Battle start animation
	RevealDelay     time.Duration `yaml:"reveal_delay"`     // Loot and level-up reveal
	MessageDuration time.Duration `yaml:"message_duration"` // Advisory text animation
	TitleDelay      time.Duration `yaml:"title_delay"`      // Title taps ignored for this long
	ShuffleDuration time.Duration `yaml:"shuffle_duration"`
	FrameInterval   time.Duration `yaml:"frame_interval"`

	// LogFile receives diagnostics while the terminal is in use. Empty
	// discards them.
	LogFile string `yaml:"log_file"`

	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures span export to Honeycomb.
type Telemetry struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	Dataset string `yaml:"dataset"`
}

// Default returns the stock pacing.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.TurnDelay == 0 {
		c.TurnDelay = time.Second
	}
	if c.IntroDuration == 0 {
		c.IntroDuration = 2 * time.Second
	}
	if c.RevealDelay == 0 {
		c.RevealDelay = 2 * time.Second
	}
	if c.MessageDuration == 0 {
		c.MessageDuration = 2 * time.Second
	}
	if c.TitleDelay == 0 {
		c.TitleDelay = 2 * time.Second
	}
	if c.ShuffleDuration == 0 {
		c.ShuffleDuration = 1500 * time.Millisecond
	}
	if c.FrameInterval == 0 {
		c.FrameInterval = 33 * time.Millisecond
	}
	if c.Telemetry.Dataset == "" {
		c.Telemetry.Dataset = "dungeonsgambit"
	}
}

// Validate rejects negative durations.
func (c *Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"turn_delay", c.TurnDelay},
		{"intro_duration", c.IntroDuration},
		{"reveal_delay", c.RevealDelay},
		{"message_duration", c.MessageDuration},
		{"title_delay", c.TitleDelay},
		{"shuffle_duration", c.ShuffleDuration},
	}
	for _, d := range durations {
		if d.d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", d.name, d.d)
		}
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	return nil
}

// Load reads .env (if present), then the YAML file at path (if present),
// then environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	// Not fatal - variables may be set directly
	_ = godotenv.Load()

	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DUNGEON_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DUNGEON_SEED: %w", err)
		}
		c.Seed = seed
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"DUNGEON_TURN_DELAY", &c.TurnDelay},
		{"DUNGEON_INTRO_DURATION", &c.IntroDuration},
		{"DUNGEON_REVEAL_DELAY", &c.RevealDelay},
		{"DUNGEON_MESSAGE_DURATION", &c.MessageDuration},
		{"DUNGEON_TITLE_DELAY", &c.TitleDelay},
		{"DUNGEON_SHUFFLE_DURATION", &c.ShuffleDuration},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("DUNGEON_LOG_FILE"); v != "" {
		c.LogFile = v
	}

	if v := os.Getenv("HONEYCOMB_DUNGEON_API_KEY"); v != "" {
		c.Telemetry.APIKey = v
		c.Telemetry.Enabled = true
	}
	if v := os.Getenv("HONEYCOMB_DUNGEON_DATASET"); v != "" {
		c.Telemetry.Dataset = v
	}
	if v := os.Getenv("DUNGEON_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DUNGEON_TELEMETRY: %w", err)
		}
		c.Telemetry.Enabled = enabled
	}
	return nil
}
