// Package backend persists the serialized group collection for a workspace.
//
// Two backends coexist: a sidecar JSON file next to the workspace, and a
// key/value settings store with a hard per-value size limit that forces a
// chunking scheme for large collections. Which backend a workspace uses is
// decided by the existence of its sidecar file, resolved once per load/save
// cycle into an explicit Kind rather than re-probed on every call.
package backend

import (
	"fmt"

	"github.com/danieljhkim/tabgroups/internal/fsops"
)

// Kind identifies which persistence backend a workspace uses.
type Kind int

const (
	// KindSettings stores the collection in the settings store (the default).
	KindSettings Kind = iota

	// KindSidecar stores the collection in a JSON file next to the workspace.
	KindSidecar
)

// String returns a display name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSidecar:
		return "sidecar"
	case KindSettings:
		return "settings"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Backend is a checkpoint/restore target for one workspace's serialized
// collection. Read returns (nil, nil) when nothing is stored; "no stored
// value" and "stored empty collection" are the same state.
type Backend interface {
	// Kind identifies the backend.
	Kind() Kind

	// Read returns the stored payload, or nil if nothing is stored.
	Read() ([]byte, error)

	// Write stores the payload, replacing any previous value.
	Write(data []byte) error

	// Clear removes any stored value.
	Clear() error
}

// ResolveKind decides the backend for a workspace by probing for its sidecar
// file. Probe errors resolve to the settings backend.
func ResolveKind(fs fsops.FS, workspaceKey string) Kind {
	exists, err := fs.Exists(SidecarPath(workspaceKey))
	if err == nil && exists {
		return KindSidecar
	}
	return KindSettings
}

// For selects the backend instance matching kind.
func For(kind Kind, fs fsops.FS, store SettingsStore, workspaceKey string) Backend {
	if kind == KindSidecar {
		return NewSidecar(fs, workspaceKey)
	}
	return NewSettings(store, workspaceKey)
}
