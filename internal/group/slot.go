package group

// Slot range for fast-access shortcuts.
const (
	MinSlot = 1
	MaxSlot = 9
)

// FindFreeSlot returns the lowest unused slot in [MinSlot, MaxSlot] among
// groups, or false if all nine are occupied.
func FindFreeSlot(groups []*Group) (int, bool) {
	var used [MaxSlot + 1]bool
	for _, g := range groups {
		if slot, ok := g.SlotValue(); ok && slot >= MinSlot && slot <= MaxSlot {
			used[slot] = true
		}
	}
	for slot := MinSlot; slot <= MaxSlot; slot++ {
		if !used[slot] {
			return slot, true
		}
	}
	return 0, false
}

// AssignSlot gives g the requested slot. Slots are a scarce, exclusive,
// 9-way resource with last-writer-wins semantics: if another group currently
// holds the slot, that group's slot is cleared. The call is a no-op when slot
// is nil, out of range, or already the group's current slot; an invalid
// request is never an error.
func AssignSlot(groups []*Group, g *Group, slot *int) {
	if slot == nil {
		return
	}
	if *slot < MinSlot || *slot > MaxSlot {
		return
	}
	if cur, ok := g.SlotValue(); ok && cur == *slot {
		return
	}

	// Evict the prior occupant, if any.
	for _, other := range groups {
		if other == g {
			continue
		}
		if cur, ok := other.SlotValue(); ok && cur == *slot {
			other.Slot = nil
		}
	}

	v := *slot
	g.Slot = &v
}
