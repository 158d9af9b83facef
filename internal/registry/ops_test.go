package registry

import (
	"errors"
	"testing"

	"github.com/danieljhkim/tabgroups/internal/group"
)

func TestSaveGroup_CreatesNamedGroup(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/x.cs", "/proj/y.cs"}

	slot := 3
	env.reg.SaveGroup("A", &slot)

	g := env.reg.Store().Lookup("A")
	if g == nil {
		t.Fatal("expected group A to exist")
	}
	if len(g.Files) != 2 {
		t.Errorf("expected 2 files, got %v", g.Files)
	}
	if g.Description != "x.cs, y.cs" {
		t.Errorf("unexpected description: %q", g.Description)
	}
	if g.Positions == nil {
		t.Error("expected captured positions")
	}
	if got, ok := g.SlotValue(); !ok || got != 3 {
		t.Errorf("expected slot 3, got (%d, %v)", got, ok)
	}
}

func TestSaveGroup_BuiltInInsertedAtHead(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/x.cs"}

	env.reg.SaveGroup("A", nil)
	env.reg.SaveStash()

	groups := env.reg.Store().Groups()
	if groups[0].Name != group.StashName {
		t.Errorf("expected stash at head, got %q", groups[0].Name)
	}
	if groups[0].Slot != nil {
		t.Error("built-in group must not carry a slot")
	}
}

func TestSaveGroup_OverwriteSnapshotsToUndo(t *testing.T) {
	env := newTestEnv("")

	env.docs.open = []string{"/proj/x.cs", "/proj/y.cs"}
	env.reg.SaveGroup("A", nil)

	env.docs.open = []string{"/proj/x.cs", "/proj/z.cs"}
	env.reg.SaveGroup("A", nil)

	a := env.reg.Store().Lookup("A")
	if len(a.Files) != 2 || a.Files[1] != "/proj/z.cs" {
		t.Errorf("expected A to hold new files, got %v", a.Files)
	}

	undo := env.reg.Store().Lookup(group.UndoName)
	if undo == nil {
		t.Fatal("expected <undo> group after overwrite")
	}
	if len(undo.Files) != 2 || undo.Files[1] != "/proj/y.cs" {
		t.Errorf("expected <undo> to hold pre-overwrite files, got %v", undo.Files)
	}
}

func TestSaveGroup_UndoIsSingleSlotNotStack(t *testing.T) {
	env := newTestEnv("")

	env.docs.open = []string{"/proj/v1.cs"}
	env.reg.SaveGroup("A", nil)
	env.docs.open = []string{"/proj/v2.cs"}
	env.reg.SaveGroup("A", nil)
	env.docs.open = []string{"/proj/v3.cs"}
	env.reg.SaveGroup("A", nil)

	undo := env.reg.Store().Lookup(group.UndoName)
	if len(undo.Files) != 1 || undo.Files[0] != "/proj/v2.cs" {
		t.Errorf("expected <undo> to hold only the last pre-save state, got %v", undo.Files)
	}
}

func TestSaveGroup_CaptureFailureRemovesStaleGroup(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/x.cs"}
	env.reg.SaveGroup("A", nil)

	env.layout.captureErr = errors.New("host busy")
	env.reg.SaveGroup("A", nil)

	if env.reg.Store().Lookup("A") != nil {
		t.Error("expected stale group removed after capture failure")
	}
}

func TestSaveGroup_BuiltInOverwriteSkipsUndo(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/x.cs"}
	env.reg.SaveStash()
	env.docs.open = []string{"/proj/y.cs"}
	env.reg.SaveStash()

	if env.reg.Store().Lookup(group.UndoName) != nil {
		t.Error("overwriting a built-in must not snapshot to <undo>")
	}
}

func TestRestoreGroup_SnapshotsAndReplaces(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveGroup("A", nil)

	env.docs.open = []string{"/proj/other.cs"}
	a := env.reg.Store().Lookup("A")
	env.reg.RestoreGroup(a)

	// Current session snapshotted into <undo> before the switch.
	undo := env.reg.Store().Lookup(group.UndoName)
	if undo == nil || len(undo.Files) != 1 || undo.Files[0] != "/proj/other.cs" {
		t.Errorf("expected <undo> to hold pre-restore session, got %v", undo)
	}

	// Previous documents closed, group files opened.
	if len(env.docs.open) != 1 || env.docs.open[0] != "/proj/a.cs" {
		t.Errorf("expected only group files open, got %v", env.docs.open)
	}
	if len(env.layout.replayed) == 0 {
		t.Error("expected layout replay during restore")
	}
}

func TestRestoreGroup_UndoTargetSkipsSnapshot(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveGroup("A", nil)
	env.docs.open = []string{"/proj/b.cs"}
	env.reg.SaveGroup("A", nil) // <undo> now holds a.cs

	undo := env.reg.Store().Lookup(group.UndoName)
	env.docs.open = []string{"/proj/current.cs"}
	env.reg.RestoreGroup(undo)

	// Restoring <undo> must not overwrite it with the current session.
	undo = env.reg.Store().Lookup(group.UndoName)
	if len(undo.Files) != 1 || undo.Files[0] != "/proj/a.cs" {
		t.Errorf("<undo> clobbered by its own restore: %v", undo.Files)
	}
}

func TestOpenGroup_BestEffortPerFile(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs", "/proj/b.cs", "/proj/c.cs"}
	env.reg.SaveGroup("A", nil)

	env.docs.open = []string{"/proj/a.cs"} // already open, must be skipped
	env.docs.failOpen = map[string]bool{"/proj/b.cs": true}

	env.reg.OpenGroup(env.reg.Store().Lookup("A"))

	if len(env.docs.open) != 2 {
		t.Errorf("expected a.cs and c.cs open, got %v", env.docs.open)
	}
	for _, opened := range env.docs.opened {
		if opened == "/proj/a.cs" {
			t.Error("already-open document re-opened")
		}
	}
}

func TestCloseGroup(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs", "/proj/b.cs"}
	env.reg.SaveGroup("A", nil)

	env.docs.open = []string{"/proj/a.cs", "/proj/b.cs", "/other/keep.cs"}
	env.reg.CloseGroup(env.reg.Store().Lookup("A"))

	if len(env.docs.open) != 1 || env.docs.open[0] != "/other/keep.cs" {
		t.Errorf("expected only non-members open, got %v", env.docs.open)
	}

	// Group without files is a no-op.
	empty := group.New("empty")
	env.reg.Store().Append(empty)
	before := append([]string(nil), env.docs.open...)
	env.reg.CloseGroup(empty)
	if len(env.docs.open) != len(before) {
		t.Error("empty group close mutated session")
	}
}

func TestRemoveGroup_ConfirmGate(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveGroup("A", nil)

	env.confirm.answer = false
	env.reg.RemoveGroup(env.reg.Store().Lookup("A"), true)
	if env.reg.Store().Lookup("A") == nil {
		t.Fatal("declined confirmation must not delete")
	}

	env.confirm.answer = true
	env.reg.RemoveGroup(env.reg.Store().Lookup("A"), true)
	if env.reg.Store().Lookup("A") != nil {
		t.Fatal("expected group deleted after confirmation")
	}

	undo := env.reg.Store().Lookup(group.UndoName)
	if undo == nil || len(undo.Files) != 1 {
		t.Error("expected deleted state snapshotted into <undo>")
	}
}

func TestRemoveGroup_NoConfirmSkipsPrompt(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveGroup("A", nil)

	env.reg.RemoveGroup(env.reg.Store().Lookup("A"), false)
	if len(env.confirm.prompts) != 0 {
		t.Errorf("unexpected prompts: %v", env.confirm.prompts)
	}
	if env.reg.Store().Lookup("A") != nil {
		t.Error("expected group deleted without prompting")
	}
}

func TestMoveGroup_PinnedBuiltIns(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveStash()
	env.reg.SaveGroup("A", nil)
	env.reg.SaveGroup("B", nil)
	// Collection: [<stash>, A, B]

	names := func() []string {
		var out []string
		for _, g := range env.reg.Store().Groups() {
			out = append(out, g.Name)
		}
		return out
	}

	// Destination occupied by a built-in: rejected.
	env.reg.MoveGroup(env.reg.Store().Lookup("A"), -1)
	got := names()
	if got[0] != group.StashName || got[1] != "A" {
		t.Errorf("move into built-in position not rejected: %v", got)
	}

	// Built-ins themselves never move.
	env.reg.MoveGroup(env.reg.Store().Lookup(group.StashName), 2)
	if names()[0] != group.StashName {
		t.Error("built-in group moved")
	}

	// Out of bounds: rejected.
	env.reg.MoveGroup(env.reg.Store().Lookup("B"), 5)
	if names()[2] != "B" {
		t.Error("out-of-bounds move not rejected")
	}

	// A legal move works.
	env.reg.MoveGroup(env.reg.Store().Lookup("A"), 1)
	got = names()
	if got[1] != "B" || got[2] != "A" {
		t.Errorf("expected [<stash> B A], got %v", got)
	}
}

func TestSetGroupSlot(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	slot2 := 2
	env.reg.SaveGroup("A", &slot2)
	env.reg.SaveGroup("B", nil)

	b := env.reg.Store().Lookup("B")
	env.reg.SetGroupSlot(b, &slot2)

	a := env.reg.Store().Lookup("A")
	if a.Slot != nil {
		t.Errorf("expected A evicted from slot 2, got %d", *a.Slot)
	}
	if got, ok := b.SlotValue(); !ok || got != 2 {
		t.Errorf("expected B at slot 2, got (%d, %v)", got, ok)
	}

	// Nil group and built-in targets short-circuit.
	env.reg.SetGroupSlot(nil, &slot2)
	env.reg.SaveStash()
	stash := env.reg.Store().Lookup(group.StashName)
	env.reg.SetGroupSlot(stash, &slot2)
	if stash.Slot != nil {
		t.Error("built-in group acquired a slot")
	}
	if got, _ := b.SlotValue(); got != 2 {
		t.Error("B lost its slot to a rejected assignment")
	}
}

func TestSetGroupSlot_NilClearsSlot(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	slot3 := 3
	env.reg.SaveGroup("A", &slot3)

	g := env.reg.Store().Lookup("A")
	env.reg.SetGroupSlot(g, nil)
	if got, ok := g.SlotValue(); ok {
		t.Errorf("slot not cleared: group still holds slot %d", got)
	}

	// Clearing an already slot-less group stays silent.
	var changes int
	env.reg.Store().Subscribe(func(group.Change) { changes++ })
	env.reg.SetGroupSlot(g, nil)
	if changes != 0 {
		t.Errorf("expected no notification for a redundant clear, got %d", changes)
	}
}

func TestSelectionFollowsSaveAndRestore(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/a.cs"}
	env.reg.SaveGroup("A", nil)
	env.reg.SaveGroup("B", nil)

	if sel := env.reg.Store().Selected(); sel == nil || sel.Name != "B" {
		t.Errorf("expected B selected after save, got %v", sel)
	}

	env.reg.RestoreGroup(env.reg.Store().Lookup("A"))
	if sel := env.reg.Store().Selected(); sel == nil || sel.Name != "A" {
		t.Errorf("expected A selected after restore, got %v", sel)
	}
}

func TestStashOps(t *testing.T) {
	env := newTestEnv("")
	env.docs.open = []string{"/proj/scratch.cs"}
	env.reg.SaveStash()

	stash := env.reg.Store().Lookup(group.StashName)
	if stash == nil {
		t.Fatal("expected <stash> group")
	}
	if stash.Slot != nil {
		t.Error("stash must be slot-less")
	}

	env.docs.open = nil
	env.reg.OpenStash()
	if len(env.docs.open) != 1 || env.docs.open[0] != "/proj/scratch.cs" {
		t.Errorf("expected stash files opened, got %v", env.docs.open)
	}

	env.docs.open = []string{"/proj/other.cs"}
	env.reg.RestoreStash()
	if len(env.docs.open) != 1 || env.docs.open[0] != "/proj/scratch.cs" {
		t.Errorf("expected session replaced by stash, got %v", env.docs.open)
	}
}
