package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoWorkspace indicates no workspace file could be found from the
// starting directory.
var ErrNoWorkspace = errors.New("no workspace found")

// workspaceExtensions are the file extensions recognized as workspace files.
var workspaceExtensions = []string{".sln", ".code-workspace"}

// DiscoverWorkspace finds the workspace key by walking up from cwd looking
// for a workspace file. When a directory contains several candidates the
// lexicographically first wins, keeping the result deterministic.
func DiscoverWorkspace(cwd string) (string, error) {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	current := absPath
	for {
		if key, ok := findWorkspaceFile(current); ok {
			return key, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root directory
			return "", ErrNoWorkspace
		}
		current = parent
	}
}

func findWorkspaceFile(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range workspaceExtensions {
			if ext == want {
				candidates = append(candidates, filepath.Join(dir, entry.Name()))
			}
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Strings(candidates)
	return candidates[0], true
}
