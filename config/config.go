// Package config loads the service configuration from a yaml or json file
// with IZUN_-prefixed environment overrides, unmarshals it over populated
// defaults and validates every section.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/taldata/izun-sub001/core/constraint"
	"github.com/taldata/izun-sub001/core/metrics"
	"github.com/taldata/izun-sub001/core/scoring"
	"github.com/taldata/izun-sub001/infra/announce"
	"github.com/taldata/izun-sub001/infra/store"
)

type Config struct {
	Store    store.Config      `json:"store"`
	Calendar CalendarConfig    `json:"calendar"`
	Limits   constraint.Limits `json:"limits"`
	Weights  scoring.Weights   `json:"weights"`
	Assist   AssistConfig      `json:"assist"`
	Announce announce.Config   `json:"announce"`
	Metrics  metrics.Config    `json:"metrics"`
}

// Default returns a fully populated configuration. Weights are prefilled
// before unmarshaling so an explicit zero in the file survives; zero is a
// legitimate weight value.
func Default() Config {
	var cfg Config
	cfg.Store.SetDefaults()
	cfg.Calendar.SetDefaults()
	cfg.Limits.SetDefaults()
	cfg.Weights = scoring.DefaultWeights()
	cfg.Assist.SetDefaults()
	cfg.Announce.SetDefaults()
	cfg.Metrics.SetDefaults()
	return cfg
}

// Load reads the configuration at path. An empty path skips the file and uses
// defaults plus environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("IZUN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "izun_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Store.SetDefaults()
	cfg.Calendar.SetDefaults()
	cfg.Limits.SetDefaults()
	cfg.Assist.SetDefaults()
	cfg.Announce.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := c.Calendar.Validate(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if err := c.Assist.Validate(); err != nil {
		return fmt.Errorf("assist: %w", err)
	}
	if err := c.Announce.Validate(); err != nil {
		return fmt.Errorf("announce: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
