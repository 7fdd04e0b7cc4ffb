// Package paths resolves the default grind directories.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "GRIND_DATA_DIR"

// DefaultDataDir returns the directory holding the persisted blob store.
// The GRIND_DATA_DIR environment variable takes precedence.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "grind"), nil
}

// DefaultConfigPath returns the path to the global config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "grind", "config.toml"), nil
}
