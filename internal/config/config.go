// Package config loads the warehouse's YAML configuration: its
// dimensions, the active allocator, and the initial filter chain.
// Adapted from the teacher's internal/config/config.go (same
// struct-of-structs + yaml tags + Load(path) + default-filling
// shape), generalized from game-server settings to warehouse
// settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all warehouse configuration.
type Config struct {
	Warehouse WarehouseConfig `yaml:"warehouse"`
	Allocator AllocatorConfig `yaml:"allocator"`
	Filters   []FilterConfig  `yaml:"filters"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WarehouseConfig holds the grid dimensions.
type WarehouseConfig struct {
	Rows    int `yaml:"rows"`
	Shelves int `yaml:"shelves"`
	Zones   int `yaml:"zones"`
}

// AllocatorConfig selects the active allocation strategy.
type AllocatorConfig struct {
	// Strategy is one of "proximity" or "round_robin".
	Strategy string `yaml:"strategy"`
}

// FilterConfig describes one entry in the filter chain. Params are
// interpreted per Type by the caller (see cmd/warehousedemo for the
// mapping into concrete filter.Filter values).
type FilterConfig struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	JSONOutput bool   `yaml:"json_output"`
}

// Load reads and parses a YAML configuration file, filling in
// defaults for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Warehouse.Rows == 0 {
		cfg.Warehouse.Rows = 4
	}
	if cfg.Warehouse.Shelves == 0 {
		cfg.Warehouse.Shelves = 4
	}
	if cfg.Warehouse.Zones == 0 {
		cfg.Warehouse.Zones = 8
	}
	if cfg.Allocator.Strategy == "" {
		cfg.Allocator.Strategy = "proximity"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
