// Package config loads the application-level TOML configuration and
// resolves XDG paths. This covers where data lives and which storage
// backend is used; the user-facing work settings live in the ledger's
// settings snapshot instead.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in the config file.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// FileConfig mirrors the TOML file. Pointer fields distinguish "unset"
// from zero values so file values merge over built-in defaults.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig maps the [storage] table.
type StorageConfig struct {
	Backend *string `toml:"backend"`
	Dir     *string `toml:"dir"`
}

// LogConfig maps the [log] table.
type LogConfig struct {
	Level *string `toml:"level"`
}

// Config is the resolved configuration with all defaults applied.
type Config struct {
	Backend  string
	DataDir  string
	LogLevel string
}

// Load reads a TOML config from the given path. A missing file is not
// an error; the zero FileConfig resolves to pure defaults.
func Load(path string) (FileConfig, error) {
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve merges file values over the defaults: JSON backend, XDG data
// dir, warn-level logging.
func Resolve(fc FileConfig) Config {
	cfg := Config{
		Backend:  BackendJSON,
		DataDir:  DefaultDataDir(),
		LogLevel: "warn",
	}
	if fc.Storage.Backend != nil {
		cfg.Backend = *fc.Storage.Backend
	}
	if fc.Storage.Dir != nil {
		cfg.DataDir = *fc.Storage.Dir
	}
	if fc.Log.Level != nil {
		cfg.LogLevel = *fc.Log.Level
	}
	return cfg
}

// Validate rejects unknown backend names early, before a store is
// opened.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (expected %q or %q)", c.Backend, BackendJSON, BackendSQLite)
	}
}
