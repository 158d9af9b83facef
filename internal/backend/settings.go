package backend

import (
	"fmt"
	"strconv"
)

// SettingsStore is the narrow port onto the host's key/value settings store.
// Values are strings. Enforcing the per-value size limit is this package's
// concern, not the store's.
type SettingsStore interface {
	// Get returns the value of a property and whether it exists.
	Get(collection, property string) (string, bool, error)

	// Set stores a property value, creating or replacing it.
	Set(collection, property, value string) error

	// Delete removes a property. Deleting a missing property is not an error.
	Delete(collection, property string) error
}

const (
	// settingsCollection is the fixed collection all workspaces share.
	settingsCollection = "TabGroups"

	// propertyPrefix prefixes the workspace-derived property name.
	propertyPrefix = "Groups"

	// MaxValueLength is the hard maximum string length the settings store
	// accepts per value. Larger payloads are split into chunks of exactly
	// this size (plus a shorter final chunk).
	MaxValueLength = 512000
)

// PropertyName returns the settings property for a workspace key, optionally
// suffixed ".0", ".1", ... for chunks.
func PropertyName(workspaceKey string) string {
	return propertyPrefix + "." + workspaceKey
}

// Settings persists the serialized collection in the settings store,
// splitting oversized payloads across suffixed chunk properties.
//
// The read path probes "<property>.0" to decide chunked-vs-single. A ".0"
// property existing for an unrelated reason would misclassify a single value
// as chunked; the suffix namespace is reserved to this package to keep that
// from happening in practice.
type Settings struct {
	store    SettingsStore
	property string
	limit    int
}

// NewSettings creates a settings backend for the workspace.
func NewSettings(store SettingsStore, workspaceKey string) *Settings {
	return &Settings{
		store:    store,
		property: PropertyName(workspaceKey),
		limit:    MaxValueLength,
	}
}

// SetLimit overrides the per-value size limit. Tests use small limits to
// exercise chunking without megabyte payloads.
func (s *Settings) SetLimit(limit int) {
	if limit > 0 {
		s.limit = limit
	}
}

// Kind identifies the backend.
func (s *Settings) Kind() Kind {
	return KindSettings
}

func (s *Settings) chunkProperty(i int) string {
	return s.property + "." + strconv.Itoa(i)
}

// Read returns the stored payload, reassembling a chunk sequence if one is
// present, else the single value, else nil.
func (s *Settings) Read() ([]byte, error) {
	// A ".0" chunk existing marks the value as chunked.
	first, ok, err := s.store.Get(settingsCollection, s.chunkProperty(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read settings chunk 0: %w", err)
	}
	if ok {
		var data []byte
		data = append(data, first...)
		for i := 1; ; i++ {
			chunk, ok, err := s.store.Get(settingsCollection, s.chunkProperty(i))
			if err != nil {
				return nil, fmt.Errorf("failed to read settings chunk %d: %w", i, err)
			}
			if !ok {
				break
			}
			data = append(data, chunk...)
		}
		return data, nil
	}

	value, ok, err := s.store.Get(settingsCollection, s.property)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings value: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

// Write stores the payload, deleting any previously-stored single value and
// chunk sequence first so stale pieces never survive a shrink.
func (s *Settings) Write(data []byte) error {
	if err := s.Clear(); err != nil {
		return err
	}

	if len(data) <= s.limit {
		if err := s.store.Set(settingsCollection, s.property, string(data)); err != nil {
			return fmt.Errorf("failed to write settings value: %w", err)
		}
		return nil
	}

	for i := 0; len(data) > 0; i++ {
		n := s.limit
		if n > len(data) {
			n = len(data)
		}
		if err := s.store.Set(settingsCollection, s.chunkProperty(i), string(data[:n])); err != nil {
			return fmt.Errorf("failed to write settings chunk %d: %w", i, err)
		}
		data = data[n:]
	}
	return nil
}

// Clear deletes the single value and the entire chunk sequence. Writing an
// empty collection routes here: "no stored value" and "stored empty
// collection" are the same state.
func (s *Settings) Clear() error {
	if err := s.store.Delete(settingsCollection, s.property); err != nil {
		return fmt.Errorf("failed to delete settings value: %w", err)
	}
	for i := 0; ; i++ {
		prop := s.chunkProperty(i)
		_, ok, err := s.store.Get(settingsCollection, prop)
		if err != nil {
			return fmt.Errorf("failed to probe settings chunk %d: %w", i, err)
		}
		if !ok {
			break
		}
		if err := s.store.Delete(settingsCollection, prop); err != nil {
			return fmt.Errorf("failed to delete settings chunk %d: %w", i, err)
		}
	}
	return nil
}
