// Package main implements the grind CLI tool.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/calev/grind/checklist"
	"github.com/calev/grind/internal/blob"
	"github.com/calev/grind/internal/config"
	"github.com/calev/grind/tracker"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "grind",
	Short:         "Grind - track your daily problem practice",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func logger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("GRIND_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openBlob resolves the configured backend and data directory.
func openBlob() (blob.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	switch cfg.Storage.Backend {
	case config.BackendBadger:
		return blob.OpenBadger(blob.BadgerOptions{
			Path:   dataDir,
			Logger: logger(),
		})
	default:
		return blob.NewFileStore(dataDir), nil
	}
}

func openTrackerStore() (*tracker.Store, blob.Store, error) {
	b, err := openBlob()
	if err != nil {
		return nil, nil, err
	}
	store, err := tracker.Open(b, logger())
	if err != nil {
		b.Close()
		return nil, nil, err
	}
	return store, b, nil
}

func openChecklistStore() (*checklist.Store, blob.Store, error) {
	b, err := openBlob()
	if err != nil {
		return nil, nil, err
	}
	store, err := checklist.Open(b, logger())
	if err != nil {
		b.Close()
		return nil, nil, err
	}
	return store, b, nil
}

// parseDay parses a YYYY-MM-DD argument in the local time zone.
func parseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}
