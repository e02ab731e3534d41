// ABOUTME: Alarm generator configuration
// ABOUTME: Loads YAML settings on top of built-in defaults and validates them
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete generator configuration
type Config struct {
	Characters []string     `yaml:"characters"`
	Messages   []string     `yaml:"messages"`
	Output     OutputConfig `yaml:"output"`
	Drum       DrumConfig   `yaml:"drum"`
	TTS        TTSConfig    `yaml:"tts"`
}

// OutputConfig controls where files are written
type OutputConfig struct {
	Path       string `yaml:"path"`
	SoundsDir  string `yaml:"sounds_dir"`
	VoiceSpool string `yaml:"voice_spool"` // empty keeps speech in memory
}

// DrumConfig contains drum synthesis parameters
type DrumConfig struct {
	DurationMs  int    `yaml:"duration_ms"`
	DefaultBeat string `yaml:"default_beat"`
	Cache       bool   `yaml:"cache"`
	KeepCache   bool   `yaml:"keep_cache"`
}

// TTSConfig contains text-to-speech client settings
type TTSConfig struct {
	Endpoint string `yaml:"endpoint"`
	Language string `yaml:"language"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Characters: []string{"Kelly", "Maxim", "Moco", "Andrew", "Chrono"},
		Messages: []string{
			"Rise and shine, it's Sahur time!",
			"Grab your dates, don't be late!",
			"Fuel up for fasting, you're a champ!",
			"Sahur squad, let's do this!",
			"Time to eat before the dawn!",
		},
		Output: OutputConfig{
			Path:       "tung_sahur_alarm.mp3",
			SoundsDir:  "sounds",
			VoiceSpool: "temp_tts.mp3",
		},
		Drum: DrumConfig{
			DurationMs:  1000,
			DefaultBeat: "fast",
			Cache:       true,
		},
		TTS: TTSConfig{
			Endpoint: "https://translate.google.com/translate_tts",
			Language: "en",
			Timeout:  30,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if len(c.Characters) == 0 {
		return fmt.Errorf("characters cannot be empty")
	}
	for i, name := range c.Characters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("characters[%d] cannot be empty", i)
		}
	}

	if len(c.Messages) == 0 {
		return fmt.Errorf("messages cannot be empty")
	}
	for i, msg := range c.Messages {
		if strings.TrimSpace(msg) == "" {
			return fmt.Errorf("messages[%d] cannot be empty", i)
		}
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Drum.Validate(); err != nil {
		return fmt.Errorf("drum config: %w", err)
	}

	if err := c.TTS.Validate(); err != nil {
		return fmt.Errorf("tts config: %w", err)
	}

	return nil
}

// Validate validates output configuration
func (o *OutputConfig) Validate() error {
	if o.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if o.SoundsDir == "" {
		return fmt.Errorf("sounds_dir cannot be empty")
	}
	return nil
}

// Validate validates drum configuration
func (d *DrumConfig) Validate() error {
	if d.DurationMs <= 0 {
		return fmt.Errorf("duration_ms must be positive, got %d", d.DurationMs)
	}
	if d.DefaultBeat != "fast" && d.DefaultBeat != "slow" {
		return fmt.Errorf("default_beat must be 'fast' or 'slow', got '%s'", d.DefaultBeat)
	}
	return nil
}

// Validate validates TTS configuration
func (t *TTSConfig) Validate() error {
	if t.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if t.Language == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if t.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got %d", t.Timeout)
	}
	return nil
}

// GetTimeoutDuration returns the TTS request timeout as a time.Duration
func (t *TTSConfig) GetTimeoutDuration() time.Duration {
	return time.Duration(t.Timeout) * time.Second
}
