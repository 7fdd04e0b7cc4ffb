package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDataDir_EnvOverride(t *testing.T) {
	t.Setenv(DataDirEnv, "/tmp/grind-test-data")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	if dir != "/tmp/grind-test-data" {
		t.Errorf("expected env override, got %q", dir)
	}
}

func TestDefaultDataDir_Home(t *testing.T) {
	t.Setenv(DataDirEnv, "")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("failed to resolve data dir: %v", err)
	}
	want := filepath.Join(".local", "share", "grind")
	if !strings.HasSuffix(dir, want) {
		t.Errorf("expected dir ending in %q, got %q", want, dir)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("failed to resolve config path: %v", err)
	}
	want := filepath.Join(".config", "grind", "config.toml")
	if !strings.HasSuffix(path, want) {
		t.Errorf("expected path ending in %q, got %q", want, path)
	}
}
