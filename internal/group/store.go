package group

import (
	"strings"

	"github.com/google/uuid"
)

// ChangeKind identifies what mutated in the store.
type ChangeKind int

const (
	// ChangeAdd is a group insertion.
	ChangeAdd ChangeKind = iota

	// ChangeRemove is a group removal.
	ChangeRemove

	// ChangeMove is a reorder within the collection.
	ChangeMove

	// ChangeClear is a wholesale replacement or clearing of the collection.
	ChangeClear

	// ChangeItem is a mutation of a single group's fields
	// (name/slot/files/positions). Persistence of these is debounced.
	ChangeItem
)

// Change describes a single store mutation delivered to subscribers.
type Change struct {
	Kind  ChangeKind
	Group string
}

// Structural reports whether the change alters the shape of the collection
// rather than a single item's fields.
func (c Change) Structural() bool {
	return c.Kind != ChangeItem
}

// Handler receives store change notifications.
type Handler func(Change)

type subscription struct {
	id      string
	handler Handler
}

// Store holds the ordered group collection for one workspace and notifies
// subscribers of mutations. Collection order is the user-visible display
// order. The store performs no locking: all access is expected on the single
// owner context that serializes registry entry points.
type Store struct {
	groups []*Group
	subs   []subscription
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a handler for change notifications and returns a token
// for Unsubscribe. Handlers are called synchronously in registration order.
func (s *Store) Subscribe(h Handler) string {
	id := uuid.NewString()
	s.subs = append(s.subs, subscription{id: id, handler: h})
	return id
}

// Unsubscribe removes a subscription by token.
// Returns true if the subscription was found and removed.
func (s *Store) Unsubscribe(id string) bool {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) notify(c Change) {
	for _, sub := range s.subs {
		sub.handler(c)
	}
}

// Len returns the number of groups in the collection.
func (s *Store) Len() int {
	return len(s.groups)
}

// Groups returns the collection in display order. The returned slice is a
// copy; the groups themselves are shared.
func (s *Store) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// Lookup returns the group with the given name (case-insensitive), or nil.
func (s *Store) Lookup(name string) *Group {
	for _, g := range s.groups {
		if strings.EqualFold(g.Name, name) {
			return g
		}
	}
	return nil
}

// BySlot returns the group holding the given slot, or nil.
func (s *Store) BySlot(slot int) *Group {
	for _, g := range s.groups {
		if cur, ok := g.SlotValue(); ok && cur == slot {
			return g
		}
	}
	return nil
}

// Selected returns the group carrying the selection flag. If more than one
// is flagged the first match wins.
func (s *Store) Selected() *Group {
	for _, g := range s.groups {
		if g.Selected {
			return g
		}
	}
	return nil
}

// Select flags the named group as selected and clears the flag elsewhere.
// Unknown names clear the selection entirely.
func (s *Store) Select(name string) {
	for _, g := range s.groups {
		g.Selected = strings.EqualFold(g.Name, name)
	}
}

// IndexOf returns the position of g in the collection, or -1.
func (s *Store) IndexOf(g *Group) int {
	for i, cur := range s.groups {
		if cur == g {
			return i
		}
	}
	return -1
}

// Insert places g at index, clamped to the collection bounds.
func (s *Store) Insert(index int, g *Group) {
	if index < 0 {
		index = 0
	}
	if index > len(s.groups) {
		index = len(s.groups)
	}
	s.groups = append(s.groups, nil)
	copy(s.groups[index+1:], s.groups[index:])
	s.groups[index] = g
	s.notify(Change{Kind: ChangeAdd, Group: g.Name})
}

// Append places g at the end of the collection.
func (s *Store) Append(g *Group) {
	s.Insert(len(s.groups), g)
}

// Move shifts the group at index from to index to. Out-of-bounds indexes are
// a no-op; bounds policy (built-in pinning) is enforced by the caller.
func (s *Store) Move(from, to int) {
	if from < 0 || from >= len(s.groups) || to < 0 || to >= len(s.groups) || from == to {
		return
	}
	g := s.groups[from]
	s.groups = append(s.groups[:from], s.groups[from+1:]...)
	s.groups = append(s.groups, nil)
	copy(s.groups[to+1:], s.groups[to:])
	s.groups[to] = g
	s.notify(Change{Kind: ChangeMove, Group: g.Name})
}

// Remove deletes the group from the collection.
// Returns true if the group was present.
func (s *Store) Remove(g *Group) bool {
	for i, cur := range s.groups {
		if cur == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			s.notify(Change{Kind: ChangeRemove, Group: g.Name})
			return true
		}
	}
	return false
}

// Clear empties the collection.
func (s *Store) Clear() {
	if len(s.groups) == 0 {
		return
	}
	s.groups = nil
	s.notify(Change{Kind: ChangeClear})
}

// Replace swaps the collection wholesale, as on workspace switch or import.
// No merge is performed; previous groups are dropped.
func (s *Store) Replace(groups []*Group) {
	s.groups = append([]*Group(nil), groups...)
	s.notify(Change{Kind: ChangeClear})
}

// ItemChanged reports a mutation of a single group's fields to subscribers.
// Callers mutate the group in place and then signal through this.
func (s *Store) ItemChanged(g *Group) {
	s.notify(Change{Kind: ChangeItem, Group: g.Name})
}

// FindFreeSlot returns the lowest unused slot, or false if all are taken.
func (s *Store) FindFreeSlot() (int, bool) {
	return FindFreeSlot(s.groups)
}

// AssignSlot applies the allocator's eviction rule to g and signals an item
// change when the slot actually moved.
func (s *Store) AssignSlot(g *Group, slot *int) {
	before, hadBefore := g.SlotValue()
	AssignSlot(s.groups, g, slot)
	after, hasAfter := g.SlotValue()
	if before != after || hadBefore != hasAfter {
		s.notify(Change{Kind: ChangeItem, Group: g.Name})
	}
}
