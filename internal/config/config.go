package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abc-elearning/aso-audit/pkg/aso"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// DatabaseConfig configures SQLite storage for audit history.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// ScoringConfig configures the scoring engine defaults.
type ScoringConfig struct {
	// Platform is the default weight profile ("apple", "google" or "default").
	Platform string `yaml:"platform"`
	// Weights overrides the platform profile entirely when set. The six
	// weights must sum to 100.
	Weights *aso.WeightProfile `yaml:"weights"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "./asoaudit.db"},
		Server:   ServerConfig{Port: 8080},
		Scoring:  ScoringConfig{Platform: "default"},
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks constraints a YAML file can violate.
func (c *Config) Validate() error {
	if w := c.Scoring.Weights; w != nil {
		if sum := w.Sum(); sum != 100 {
			return fmt.Errorf("scoring weights must sum to 100, got %d", sum)
		}
	}
	return nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ASOAUDIT_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("ASOAUDIT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ASOAUDIT_PLATFORM"); v != "" {
		cfg.Scoring.Platform = v
	}
}
