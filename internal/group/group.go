// Package group defines the document group entity and the in-memory,
// ordered collection of groups for a single workspace.
//
// A group is a named snapshot of open documents plus an opaque window-layout
// blob captured from the host editor. Two reserved names, "<stash>" and
// "<undo>", denote built-in singleton groups that are pinned to the head of
// the collection and never carry a slot.
package group

import (
	"strings"
)

// Reserved names for the built-in groups.
const (
	StashName = "<stash>"
	UndoName  = "<undo>"
)

// Kind classifies a group as ordinary or one of the two built-ins.
// It is decided once at construction from the name, so callers never
// re-compare reserved-name strings.
type Kind int

const (
	// Named is an ordinary, user-named group.
	Named Kind = iota

	// BuiltInStash is the reserved "<stash>" group.
	BuiltInStash

	// BuiltInUndo is the reserved "<undo>" group.
	BuiltInUndo
)

// KindOf returns the Kind for a group name.
func KindOf(name string) Kind {
	switch strings.ToLower(name) {
	case StashName:
		return BuiltInStash
	case UndoName:
		return BuiltInUndo
	default:
		return Named
	}
}

// Group is a named, orderable record of open documents and window layout.
type Group struct {
	// Name uniquely identifies the group within a workspace (case-insensitive).
	Name string

	// Description is a display string derived from member document names.
	// It is a non-authoritative cache, regenerated on every save.
	Description string

	// Files is the set of absolute document paths belonging to the group.
	// Membership is case-insensitive; order is preserved for display.
	Files []string

	// Positions is the opaque window-layout blob captured from the host.
	// Nil for path-only groups created via import or translation.
	Positions []byte

	// Slot is the optional fast-access slot in [1,9]; nil for none.
	// Built-in groups never carry a slot.
	Slot *int

	// Kind classifies the group; derived from Name at construction.
	Kind Kind

	// Selected is the UI-driven selection flag. At most one group is
	// expected to carry it at a time.
	Selected bool
}

// New creates a Group with the given name, deciding its Kind once.
func New(name string) *Group {
	return &Group{
		Name: name,
		Kind: KindOf(name),
	}
}

// IsBuiltIn reports whether the group is one of the reserved built-ins.
func (g *Group) IsBuiltIn() bool {
	return g.Kind != Named
}

// HasFile reports whether path is a member of the group (case-insensitive).
func (g *Group) HasFile(path string) bool {
	for _, f := range g.Files {
		if strings.EqualFold(f, path) {
			return true
		}
	}
	return false
}

// SlotValue returns the slot number and whether one is assigned.
func (g *Group) SlotValue() (int, bool) {
	if g.Slot == nil {
		return 0, false
	}
	return *g.Slot, true
}

// Snapshot returns a deep copy of the group's persisted state. Used when
// capturing the pre-overwrite state into the "<undo>" group.
func (g *Group) Snapshot() *Group {
	c := &Group{
		Name:        g.Name,
		Description: g.Description,
		Kind:        g.Kind,
	}
	if g.Files != nil {
		c.Files = append([]string(nil), g.Files...)
	}
	if g.Positions != nil {
		c.Positions = append([]byte(nil), g.Positions...)
	}
	if g.Slot != nil {
		slot := *g.Slot
		c.Slot = &slot
	}
	return c
}

// maxDescriptionLen caps the derived description for display.
const maxDescriptionLen = 100

// DescribeFiles derives a display description from a list of document paths:
// the comma-separated base names, truncated with an ellipsis.
func DescribeFiles(files []string) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = baseName(f)
	}
	desc := strings.Join(names, ", ")
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen] + "..."
	}
	return desc
}

// baseName returns the last path element, accepting both separator styles so
// imported Windows-style paths describe correctly on any platform.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}
