package dock

import "slices"

// Changes describes what a reconciliation did. Removed holds logical indices
// into the previous identities (in the order they were removed, back to
// front); Inserted holds logical indices into the new identities.
type Changes struct {
	Removed  []int
	Inserted []int
}

// Changed reports whether any entry was created or destroyed.
func (c Changes) Changed() bool {
	return len(c.Removed) > 0 || len(c.Inserted) > 0
}

// Reconcile diffs next against previous (the identities entries currently
// mirror) and returns the updated entries. When first is set there is no
// previous collection and an entry is appended for every identity.
//
// Removals run back to front over previous so earlier indices stay valid,
// then insertions run front to back over next so new panes land at their
// logical index. Matched entries are left alone even if their identity moved;
// reordering is not reflected. Any structural change ends with a full target
// refresh.
func Reconcile(entries []Entry, previous, next []Identity, first bool, m Metrics) ([]Entry, Changes) {
	var ch Changes

	if first {
		for i := len(entries); i < len(next); i++ {
			entries = append(entries, newEntry(entries, m))
			ch.Inserted = append(ch.Inserted, i)
		}
		assertf(len(entries) == len(next), "first reconcile: %d entries for %d identities", len(entries), len(next))
		return entries, ch
	}

	assertf(len(entries) == len(previous), "reconcile: %d entries mirror %d previous identities", len(entries), len(previous))

	live := make(map[int]struct{}, len(next))
	for _, id := range next {
		live[id.ID] = struct{}{}
	}
	for i := len(previous) - 1; i >= 0; i-- {
		if _, ok := live[previous[i].ID]; ok {
			continue
		}
		entries = slices.Delete(entries, i, i+1)
		ch.Removed = append(ch.Removed, i)
	}

	known := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		known[id.ID] = struct{}{}
	}
	for i, id := range next {
		if _, ok := known[id.ID]; ok {
			continue
		}
		entries = slices.Insert(entries, i, newEntry(entries, m))
		ch.Inserted = append(ch.Inserted, i)
	}
	assertf(len(entries) == len(next), "reconcile: %d entries for %d identities", len(entries), len(next))

	if ch.Changed() {
		RefreshAllTargetPositions(entries, m.Spacing)
	}
	return entries, ch
}

// newEntry places a fresh pane one spacing past the furthest occupied slot,
// already displayed at its target.
func newEntry(entries []Entry, m Metrics) Entry {
	at := NextAppendOffset(entries) + m.Spacing
	return Entry{
		Target:  at,
		Display: at,
		Width:   m.PaneWidth,
		Height:  m.PaneHeight,
	}
}
