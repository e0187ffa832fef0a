package dock

// NextAppendOffset returns the far edge of the furthest occupied slot, or 0
// when there are no entries. A newly appended pane goes one spacing past it.
func NextAppendOffset(entries []Entry) float64 {
	next := 0.0
	for _, e := range entries {
		if far := e.Target + e.Width; far > next {
			next = far
		}
	}
	return next
}

// ClosestEntryToRight finds the entry, other than exclude, whose slot centre
// is the largest value strictly below probe: the nearest neighbour sitting
// closer to the anchored edge. Targets are compared, not display offsets.
func ClosestEntryToRight(entries []Entry, probe float64, exclude int) (int, bool) {
	if len(entries) <= 1 {
		return NoEntry, false
	}
	closest := 0.0
	found := NoEntry
	for i, e := range entries {
		c := e.center()
		if i != exclude && c > closest && c < probe {
			closest = c
			found = i
		}
	}
	return found, found != NoEntry
}

// ResolvedTargetFor returns the target offset a pane probing at probe should
// take: just past its right-hand neighbour, or flush against the edge.
func ResolvedTargetFor(entries []Entry, probe float64, exclude int, spacing float64) float64 {
	if i, ok := ClosestEntryToRight(entries, probe, exclude); ok {
		n := entries[i]
		return n.Target + n.Width + spacing
	}
	return spacing
}

// ShiftLeftOf makes room for entries[moved] after it was retargeted. Every
// other entry whose target starts inside the moved span forces a shift; the
// largest one is applied to all entries at or beyond the moved target.
func ShiftLeftOf(entries []Entry, moved int) {
	start, end := entries[moved].Span()
	shift := 0.0
	for i, e := range entries {
		if i == moved {
			continue
		}
		if e.Target >= start && e.Target < end {
			if need := end - e.Target; need >= shift {
				shift = need
			}
		}
	}
	if shift <= 0 {
		return
	}
	for i := range entries {
		if i != moved && entries[i].Target >= start {
			entries[i].Target += shift
		}
	}
}

// RefreshAllTargetPositions repairs every target after a structural change
// or a drag settles. It re-anchors the nearest pane to the edge, resolves
// each entry against its neighbours by centre, and cascades exact
// collisions outward by the processed entry's width plus spacing.
//
// This is a single pass. Adversarial layouts can need more than one call to
// reach a fixed point; callers run it once per event.
func RefreshAllTargetPositions(entries []Entry, spacing float64) {
	if len(entries) == 0 {
		return
	}

	nearest := entries[0].Target
	for _, e := range entries[1:] {
		nearest = min(nearest, e.Target)
	}
	if excess := nearest - spacing; excess > 0 {
		for i := range entries {
			entries[i].Target -= excess
		}
	}

	for i := range entries {
		target := ResolvedTargetFor(entries, entries[i].center(), i, spacing)
		entries[i].Target = target

		collides := false
		for j := range entries {
			if j != i && entries[j].Target == target {
				collides = true
				break
			}
		}
		if !collides {
			continue
		}
		push := entries[i].Width + spacing
		for j := range entries {
			if j != i && entries[j].Target >= target {
				entries[j].Target += push
			}
		}
	}
}

// Overlapping reports the first pair of entries whose target spans
// intersect, or ok=false when the layout is clean.
func Overlapping(entries []Entry) (a, b int, ok bool) {
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			si, ei := entries[i].Span()
			sj, ej := entries[j].Span()
			if si < ej && sj < ei {
				return i, j, true
			}
		}
	}
	return NoEntry, NoEntry, false
}
