// Package config manages tabgroups configuration and filesystem paths.
//
// Configuration includes the locations of tabgroups data directories, which
// can be customized via environment variables. The default root is
// ~/.tabgroups/ containing the settings database, the config file, and logs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by tabgroups.
type Paths struct {
	// Root is the base directory for all tabgroups data (default: ~/.tabgroups)
	Root string

	// SettingsDB is the path to the settings-store database
	SettingsDB string

	// Config is the path to the global config file
	Config string

	// Logs is the directory containing log files
	Logs string
}

// DefaultPaths returns the default paths for tabgroups.
// Paths can be overridden with environment variables:
// - TABGROUPS_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("TABGROUPS_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".tabgroups")
	}

	return &Paths{
		Root:       root,
		SettingsDB: filepath.Join(root, "settings.db"),
		Config:     filepath.Join(root, "config.yaml"),
		Logs:       filepath.Join(root, "logs"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Logs,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
