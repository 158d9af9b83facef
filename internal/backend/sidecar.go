package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/tabgroups/internal/fsops"
)

// sidecarFilename is the fixed filename of the sidecar file.
const sidecarFilename = "groups.json"

// SidecarPath derives the sidecar file location from the workspace path:
// <workspaceDir>/.vs/<workspaceBaseName>/groups.json.
func SidecarPath(workspaceKey string) string {
	dir := filepath.Dir(workspaceKey)
	base := filepath.Base(workspaceKey)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, ".vs", base, sidecarFilename)
}

// Sidecar persists the envelope as a single JSON file next to the workspace.
// There is no size limit and no chunking; every write is one atomic file
// replacement. The file carries no lock, matching the host's model of one
// editor instance per workspace.
type Sidecar struct {
	fs   fsops.FS
	path string
}

// NewSidecar creates a sidecar backend for the workspace.
func NewSidecar(fs fsops.FS, workspaceKey string) *Sidecar {
	return &Sidecar{fs: fs, path: SidecarPath(workspaceKey)}
}

// Kind identifies the backend.
func (s *Sidecar) Kind() Kind {
	return KindSidecar
}

// Path returns the sidecar file location.
func (s *Sidecar) Path() string {
	return s.path
}

// Read returns the sidecar file contents, or nil if the file does not exist.
func (s *Sidecar) Read() ([]byte, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sidecar file: %w", err)
	}
	return data, nil
}

// Write replaces the sidecar file contents atomically.
func (s *Sidecar) Write(data []byte) error {
	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sidecar file: %w", err)
	}
	return nil
}

// Clear removes the sidecar file. A missing file is not an error.
func (s *Sidecar) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove sidecar file: %w", err)
	}
	return nil
}
