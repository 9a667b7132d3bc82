// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Report    ReportConfig    `toml:"report"`
	Algorithm AlgorithmConfig `toml:"algorithm"`
	Store     StoreConfig     `toml:"store"`
}

// ReportConfig maps report rendering settings.
type ReportConfig struct {
	AgeGroup *string `toml:"age-group"`
	Format   *string `toml:"format"`
	Width    *int    `toml:"width"`
	Height   *int    `toml:"height"`
	Color    *bool   `toml:"color"`
}

// AlgorithmConfig points at custom coefficient tables.
type AlgorithmConfig struct {
	Tables *string `toml:"tables"`
}

// StoreConfig overrides the database location.
type StoreConfig struct {
	Path *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
