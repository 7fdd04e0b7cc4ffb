// Package config handles loading the grind config.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/calev/grind/internal/paths"
)

// Backend names accepted by the [storage] section.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config represents the config.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Tags    Tags    `toml:"tags"`
}

// Storage selects where persisted state lives.
type Storage struct {
	// Backend is "file" (default) or "badger".
	Backend string `toml:"backend"`

	// Dir overrides the data directory. GRIND_DATA_DIR takes precedence
	// over both this and the default.
	Dir string `toml:"dir"`
}

// Tags extends the predefined tag palette.
type Tags struct {
	// Extra tags are appended to the palette shown by `grind tags`.
	Extra []string `toml:"extra"`
}

// Load reads the global config file. Returns a default config if the file
// does not exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendBadger:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}

// DataDir resolves the data directory: GRIND_DATA_DIR, then [storage] dir,
// then the platform default.
func (c *Config) DataDir() (string, error) {
	if dir := os.Getenv(paths.DataDirEnv); dir != "" {
		return dir, nil
	}
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return paths.DefaultDataDir()
}
