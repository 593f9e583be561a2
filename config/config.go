// Package config holds application configuration, loaded from a YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration.
type Config struct {
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Splitter  SplitterConfig  `yaml:"splitter"`
	Log       LogConfig       `yaml:"log"`
}

// TokenizerConfig selects the morphological dictionary.
type TokenizerConfig struct {
	Dictionary string `yaml:"dictionary" env:"TOKENIZER_DICTIONARY" env-default:"ipa"`
}

// SplitterConfig selects the splitting strategy. "morph" is the rule
// engine; "runes" is the degraded per-character mode.
type SplitterConfig struct {
	Strategy string `yaml:"strategy" env:"SPLITTER_STRATEGY" env-default:"morph"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path comes from CONFIG_PATH
// (fallback "./config.yaml"); a missing default file is not an error.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate rejects values outside the closed option sets.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"ipa", "uni"}, c.Tokenizer.Dictionary) {
		return fmt.Errorf("tokenizer.dictionary must be ipa or uni, got %q", c.Tokenizer.Dictionary)
	}
	if !slices.Contains([]string{"morph", "runes"}, c.Splitter.Strategy) {
		return fmt.Errorf("splitter.strategy must be morph or runes, got %q", c.Splitter.Strategy)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
