package group

import (
	"testing"
)

func TestStore_LookupCaseInsensitive(t *testing.T) {
	s := NewStore()
	s.Append(New("Feature-Work"))

	if g := s.Lookup("feature-work"); g == nil {
		t.Fatal("expected case-insensitive lookup to find group")
	}
	if g := s.Lookup("missing"); g != nil {
		t.Errorf("expected nil for unknown name, got %q", g.Name)
	}
}

func TestStore_InsertOrder(t *testing.T) {
	s := NewStore()
	a := New("A")
	b := New("B")
	stash := New(StashName)

	s.Append(a)
	s.Append(b)
	s.Insert(0, stash)

	got := s.Groups()
	want := []string{StashName, "A", "B"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestStore_Move(t *testing.T) {
	s := NewStore()
	for _, n := range []string{"A", "B", "C"} {
		s.Append(New(n))
	}

	s.Move(0, 2)
	got := s.Groups()
	want := []string{"B", "C", "A"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
		}
	}

	// Out-of-bounds moves are no-ops.
	s.Move(-1, 0)
	s.Move(0, 3)
	if s.Groups()[0].Name != "B" {
		t.Error("out-of-bounds move mutated the collection")
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	s := NewStore()
	a := New("A")
	s.Append(a)
	s.Append(New("B"))

	if !s.Remove(a) {
		t.Error("expected Remove to report true")
	}
	if s.Remove(a) {
		t.Error("expected second Remove to report false")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 group, got %d", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty collection, got %d", s.Len())
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	s.Append(New("old"))

	s.Replace([]*Group{New("x"), New("y")})

	if s.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", s.Len())
	}
	if s.Lookup("old") != nil {
		t.Error("expected wholesale replacement, found old group")
	}
}

func TestStore_SelectedFirstMatch(t *testing.T) {
	s := NewStore()
	a := New("A")
	b := New("B")
	s.Append(a)
	s.Append(b)

	if s.Selected() != nil {
		t.Error("expected no selection initially")
	}

	// If two groups end up flagged, the first in display order wins.
	a.Selected = true
	b.Selected = true
	if got := s.Selected(); got != a {
		t.Errorf("expected first match A, got %q", got.Name)
	}

	s.Select("B")
	if got := s.Selected(); got != b {
		t.Errorf("expected B selected, got %v", got)
	}
	if a.Selected {
		t.Error("expected Select to clear other flags")
	}
}

func TestStore_Notifications(t *testing.T) {
	s := NewStore()

	var changes []Change
	token := s.Subscribe(func(c Change) { changes = append(changes, c) })

	a := New("A")
	s.Append(a)
	s.ItemChanged(a)
	s.Move(0, 0) // no-op, no notification
	s.Remove(a)
	s.Clear() // already empty, no notification

	want := []ChangeKind{ChangeAdd, ChangeItem, ChangeRemove}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d", len(want), len(changes))
	}
	for i, kind := range want {
		if changes[i].Kind != kind {
			t.Errorf("change %d: expected kind %v, got %v", i, kind, changes[i].Kind)
		}
	}
	if changes[0].Group != "A" {
		t.Errorf("expected change group A, got %q", changes[0].Group)
	}
	if !changes[0].Structural() || changes[1].Structural() {
		t.Error("unexpected Structural() classification")
	}

	if !s.Unsubscribe(token) {
		t.Error("expected Unsubscribe to report true")
	}
	s.Append(New("B"))
	if len(changes) != len(want) {
		t.Error("handler called after Unsubscribe")
	}
}

func TestStore_AssignSlotNotifiesOnChange(t *testing.T) {
	s := NewStore()
	a := New("A")
	s.Append(a)

	var items int
	s.Subscribe(func(c Change) {
		if c.Kind == ChangeItem {
			items++
		}
	})

	slot := 4
	s.AssignSlot(a, &slot)
	if items != 1 {
		t.Errorf("expected 1 item change, got %d", items)
	}

	// Re-assigning the same slot is silent.
	s.AssignSlot(a, &slot)
	if items != 1 {
		t.Errorf("expected no change for same slot, got %d", items)
	}
}
