package registry

import "errors"

var (
	// ErrNoWorkspace indicates no workspace key is active. Persistence
	// operations silently no-op on it; explicit user actions (export,
	// import, toggle) surface it.
	ErrNoWorkspace = errors.New("no active workspace")

	// ErrNotFound indicates a named group does not exist.
	ErrNotFound = errors.New("group not found")

	// ErrBuiltIn indicates an operation that is invalid for the reserved
	// built-in groups (naming, slotting, reordering).
	ErrBuiltIn = errors.New("built-in group")
)
