package dock

import (
	"math"
	"time"
)

// SpeedCorrection scales per-frame movement by how long the last frame took
// relative to the reference frame, clamped to the tuning bounds.
func (t Tuning) SpeedCorrection(elapsed time.Duration) float64 {
	if t.ReferenceFrame <= 0 {
		return 1
	}
	c := float64(elapsed) / float64(t.ReferenceFrame)
	return min(max(c, t.MinCorrection), t.MaxCorrection)
}

// Step eases every entry except excluded toward its target. Far from the
// target a pane moves by a speed floor plus a proportional term; within one
// floor's distance it snaps. A step never carries a pane past its target.
//
// moved reports whether any display offset changed, more whether any entry
// still needs frames after this one.
func Step(entries []Entry, excluded int, elapsed time.Duration, t Tuning) (moved, more bool) {
	corr := t.SpeedCorrection(elapsed)
	floor := t.MinSpeed * corr

	for i := range entries {
		if i == excluded {
			continue
		}
		e := &entries[i]
		diff := e.Target - e.Display
		if diff == 0 {
			continue
		}
		dist := math.Abs(diff)
		step := dist
		if dist >= floor {
			step = min(floor+dist*t.Easing*corr, dist)
		}
		if step >= dist {
			e.Display = e.Target
		} else {
			e.Display += math.Copysign(step, diff)
		}
		moved = true
		if e.Target != e.Display {
			more = true
		}
	}
	return moved, more
}
