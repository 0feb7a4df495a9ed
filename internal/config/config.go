package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file kept inside the data directory.
const FileName = "splittab.yaml"

// Storage backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents the top-level splittab.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Group   GroupConfig   `yaml:"group"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
}

// GroupConfig describes the expense group.
type GroupConfig struct {
	Members  []string `yaml:"members"`  // seed list for a fresh store
	Currency string   `yaml:"currency"` // symbol used in output
}

// Load reads a splittab.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new group.
func Default(members []string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
		},
		Group: GroupConfig{
			Members:  members,
			Currency: "₹",
		},
	}
}
