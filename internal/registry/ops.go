package registry

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/tabgroups/internal/group"
)

// SaveGroup captures the host's current window layout and open-file set into
// the named group, creating it if needed. Overwriting a non-built-in group
// first copies its previous state into "<undo>", so the last save is always
// one step reversible. A failed host capture removes any pre-existing group
// of that name instead of leaving it with invalid data; the failure is
// logged, never returned.
func (r *Registry) SaveGroup(name string, slot *int) {
	positions, err := r.layout.CaptureLayout()
	if err != nil {
		r.log.Warn("layout capture failed, dropping stale group", "group", name, "error", err)
		if stale := r.store.Lookup(name); stale != nil {
			r.store.Remove(stale)
		}
		return
	}

	files, err := r.docs.OpenDocuments()
	if err != nil {
		r.log.Warn("document enumeration failed, dropping stale group", "group", name, "error", err)
		if stale := r.store.Lookup(name); stale != nil {
			r.store.Remove(stale)
		}
		return
	}

	g := r.store.Lookup(name)
	if g == nil {
		g = group.New(name)
		if g.IsBuiltIn() {
			r.store.Insert(0, g)
		} else {
			r.store.Append(g)
		}
	} else if !g.IsBuiltIn() {
		r.snapshotToUndo(g)
	}

	g.Description = group.DescribeFiles(files)
	g.Files = append([]string(nil), files...)
	g.Positions = positions
	r.store.ItemChanged(g)
	r.store.Select(g.Name)

	if !g.IsBuiltIn() {
		r.store.AssignSlot(g, slot)
	}
}

// snapshotToUndo copies g's current state into the "<undo>" built-in group,
// creating it at the head of the collection if needed. The undo history is a
// single slot, not a stack: each snapshot overwrites the previous one.
func (r *Registry) snapshotToUndo(g *group.Group) {
	undo := r.store.Lookup(group.UndoName)
	if undo == nil {
		undo = group.New(group.UndoName)
		r.store.Insert(0, undo)
	}

	snap := g.Snapshot()
	undo.Description = snap.Description
	undo.Files = snap.Files
	undo.Positions = snap.Positions
	r.store.ItemChanged(undo)
}

// snapshotSessionToUndo captures the live host session into "<undo>" before
// a destructive restore. Capture failures are logged and skipped; the
// restore proceeds without an undo point.
func (r *Registry) snapshotSessionToUndo() {
	positions, err := r.layout.CaptureLayout()
	if err != nil {
		r.log.Warn("layout capture for undo snapshot failed", "error", err)
		return
	}
	files, err := r.docs.OpenDocuments()
	if err != nil {
		r.log.Warn("document enumeration for undo snapshot failed", "error", err)
		return
	}

	undo := r.store.Lookup(group.UndoName)
	if undo == nil {
		undo = group.New(group.UndoName)
		r.store.Insert(0, undo)
	}
	undo.Description = group.DescribeFiles(files)
	undo.Files = append([]string(nil), files...)
	undo.Positions = positions
	r.store.ItemChanged(undo)
}

// RestoreGroup closes the current session and replays the group in its
// place. When documents are open and the target is not "<undo>" itself, the
// current state is snapshotted into "<undo>" first, so a restore is always
// one-step reversible.
func (r *Registry) RestoreGroup(g *group.Group) {
	if g == nil {
		return
	}

	open, err := r.docs.OpenDocuments()
	if err != nil {
		r.log.Warn("document enumeration failed before restore", "group", g.Name, "error", err)
		open = nil
	}
	if len(open) > 0 && g.Kind != group.BuiltInUndo {
		r.snapshotSessionToUndo()
	}

	if err := r.docs.CloseAll(func(string) bool { return true }); err != nil {
		r.log.Warn("failed to close open documents", "error", err)
	}

	r.OpenGroup(g)
	r.store.Select(g.Name)
}

// OpenGroup replays the group's window layout (if it has one) and opens
// every member file not already open. Each open is attempted independently;
// one failure never aborts the rest.
func (r *Registry) OpenGroup(g *group.Group) {
	if g == nil {
		return
	}

	if g.Positions != nil {
		if err := r.layout.ReplayLayout(g.Positions); err != nil {
			r.log.Warn("layout replay failed", "group", g.Name, "error", err)
		}
	}

	open, err := r.docs.OpenDocuments()
	if err != nil {
		r.log.Warn("document enumeration failed, opening all group files", "group", g.Name, "error", err)
		open = nil
	}
	isOpen := func(path string) bool {
		for _, o := range open {
			if strings.EqualFold(o, path) {
				return true
			}
		}
		return false
	}

	for _, f := range g.Files {
		if isOpen(f) {
			continue
		}
		if err := r.docs.Open(f); err != nil {
			r.log.Warn("failed to open document", "group", g.Name, "path", f, "error", err)
		}
	}
}

// CloseGroup closes every open document that belongs to the group. A group
// with no files is a no-op.
func (r *Registry) CloseGroup(g *group.Group) {
	if g == nil || len(g.Files) == 0 {
		return
	}
	if err := r.docs.CloseAll(g.HasFile); err != nil {
		r.log.Warn("failed to close group documents", "group", g.Name, "error", err)
	}
}

// RemoveGroup deletes a group, optionally gated on the confirmation port.
// The deleted state of a non-built-in group is snapshotted into "<undo>"
// exactly like an overwrite-save, so an accidental delete is recoverable.
func (r *Registry) RemoveGroup(g *group.Group, confirm bool) {
	if g == nil {
		return
	}
	if confirm && !r.confirm.Confirm(fmt.Sprintf("Delete group %q?", g.Name)) {
		return
	}

	if !g.IsBuiltIn() {
		r.snapshotToUndo(g)
	}
	r.store.Remove(g)
}

// MoveGroup reorders a group by delta positions within the collection. The
// move is rejected (silently) when the group is built-in, the destination is
// out of bounds, or the destination is occupied by a built-in group:
// built-ins are pinned at the head and never displaced.
func (r *Registry) MoveGroup(g *group.Group, delta int) {
	if g == nil || g.IsBuiltIn() {
		return
	}

	from := r.store.IndexOf(g)
	if from < 0 {
		return
	}
	to := from + delta
	if to < 0 || to >= r.store.Len() {
		return
	}
	if r.store.Groups()[to].IsBuiltIn() {
		return
	}
	r.store.Move(from, to)
}

// SetGroupSlot assigns g the requested slot through the allocator's
// eviction rule, or clears g's slot when slot is nil. Nil groups, built-in
// groups, and re-assignments of the current slot short-circuit.
func (r *Registry) SetGroupSlot(g *group.Group, slot *int) {
	if g == nil || g.IsBuiltIn() {
		return
	}
	if slot == nil {
		// The allocator treats a nil slot as a no-op request, so a clear
		// is performed here rather than delegated.
		if g.Slot != nil {
			g.Slot = nil
			r.store.ItemChanged(g)
		}
		return
	}
	if cur, ok := g.SlotValue(); ok && cur == *slot {
		return
	}
	r.store.AssignSlot(g, slot)
}

// SaveStash saves the current session into the "<stash>" built-in group.
func (r *Registry) SaveStash() {
	r.SaveGroup(group.StashName, nil)
}

// OpenStash opens the "<stash>" group on top of the current session.
func (r *Registry) OpenStash() {
	r.OpenGroup(r.store.Lookup(group.StashName))
}

// RestoreStash replaces the current session with the "<stash>" group.
func (r *Registry) RestoreStash() {
	r.RestoreGroup(r.store.Lookup(group.StashName))
}

