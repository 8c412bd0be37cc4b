// Package config provides YAML-based configuration loading for CrateCraft.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/CrateCraft/internal/model"
)

// Config is the top-level CrateCraft configuration, loaded from config.yaml.
type Config struct {
	Catalog   model.Catalog  `yaml:"catalog"`
	Optimizer model.Settings `yaml:"optimizer"`
	Log       LogConfig      `yaml:"log"`
	Server    ServerConfig   `yaml:"server"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig holds the HTTP adapter settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Catalog:   model.DefaultCatalog(),
		Optimizer: model.DefaultSettings(),
		Log:       LogConfig{Level: "info"},
		Server:    ServerConfig{Addr: ":8080"},
	}
}

// DefaultDir returns ~/.cratecraft, or ./.cratecraft when the home
// directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cratecraft")
}

// DefaultPath returns the default location of config.yaml.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads a YAML config file from path and returns a validated Config.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes over the defaults and validates the result.
// Keys missing from data keep their default value; a boards list replaces
// the default list entirely.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Save writes cfg to path as YAML, creating missing parent directories.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// LogLevel parses Log.Level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// applyDefaults fills in zero values an explicit file may have cleared.
// max_fillers is left alone: 0 turns the filler strategies off.
func (c *Config) applyDefaults() {
	d := model.DefaultSettings()
	if c.Optimizer.Epsilon == 0 {
		c.Optimizer.Epsilon = d.Epsilon
	}
	if c.Optimizer.VolumeScale == 0 {
		c.Optimizer.VolumeScale = d.VolumeScale
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}

// validate checks the catalog and optimizer settings and reports every
// problem at once.
func (c *Config) validate() error {
	var errs []string
	for _, e := range c.Catalog.Validate() {
		errs = append(errs, "catalog: "+e)
	}
	if c.Optimizer.MaxFillers < 0 {
		errs = append(errs, "optimizer.max_fillers must not be negative")
	}
	if c.Optimizer.Epsilon < 0 || math.IsNaN(c.Optimizer.Epsilon) {
		errs = append(errs, "optimizer.epsilon must not be negative")
	}
	if c.Optimizer.VolumeScale <= 0 || math.IsNaN(c.Optimizer.VolumeScale) {
		errs = append(errs, "optimizer.volume_scale must be positive")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
