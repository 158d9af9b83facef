package host

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/tabgroups/internal/fsops"
)

// sessionFilename is the fixed filename of the headless session file.
const sessionFilename = "session.json"

// sessionJSON is the on-disk shape of the headless editor session.
type sessionJSON struct {
	OpenDocuments []string `json:"OpenDocuments"`
	Layout        []byte   `json:"Layout,omitempty"`
}

// SessionHost is a file-backed implementation of LayoutPort and DocumentPort.
// It persists the "editor session" (open document list plus layout blob) at
// <workspaceDir>/.vs/<workspaceBase>/session.json, which lets the CLI
// exercise the full save/restore path without a live editor. State is
// re-read on every call so consecutive CLI invocations observe each other.
type SessionHost struct {
	fs   fsops.FS
	path string
}

// NewSessionHost creates a session host for the workspace.
func NewSessionHost(fs fsops.FS, workspaceKey string) *SessionHost {
	dir := filepath.Dir(workspaceKey)
	base := filepath.Base(workspaceKey)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return &SessionHost{
		fs:   fs,
		path: filepath.Join(dir, ".vs", base, sessionFilename),
	}
}

func (h *SessionHost) load() (*sessionJSON, error) {
	data, err := h.fs.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &sessionJSON{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s sessionJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

func (h *SessionHost) save(s *sessionJSON) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}
	if err := h.fs.AtomicWrite(h.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// CaptureLayout returns the stored layout blob. When none has been replayed
// yet, a blob is synthesized from the open-document list so a fresh session
// still captures.
func (h *SessionHost) CaptureLayout() ([]byte, error) {
	s, err := h.load()
	if err != nil {
		return nil, err
	}
	if len(s.Layout) > 0 {
		return append([]byte(nil), s.Layout...), nil
	}

	blob, err := json.Marshal(map[string]any{"documents": s.OpenDocuments})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize layout: %w", err)
	}
	return blob, nil
}

// ReplayLayout stores the blob as the session's current layout.
func (h *SessionHost) ReplayLayout(blob []byte) error {
	s, err := h.load()
	if err != nil {
		return err
	}
	s.Layout = append([]byte(nil), blob...)
	return h.save(s)
}

// OpenDocuments returns the ordered open-document paths.
func (h *SessionHost) OpenDocuments() ([]string, error) {
	s, err := h.load()
	if err != nil {
		return nil, err
	}
	return s.OpenDocuments, nil
}

// Open adds a document to the session. Already-open paths (case-insensitive)
// are left in place.
func (h *SessionHost) Open(path string) error {
	s, err := h.load()
	if err != nil {
		return err
	}
	for _, d := range s.OpenDocuments {
		if strings.EqualFold(d, path) {
			return nil
		}
	}
	s.OpenDocuments = append(s.OpenDocuments, path)
	return h.save(s)
}

// CloseAll removes every open document whose path satisfies match.
func (h *SessionHost) CloseAll(match func(path string) bool) error {
	s, err := h.load()
	if err != nil {
		return err
	}

	kept := s.OpenDocuments[:0]
	for _, d := range s.OpenDocuments {
		if !match(d) {
			kept = append(kept, d)
		}
	}
	s.OpenDocuments = kept
	return h.save(s)
}
