package dock

import (
	"math"
	"time"
)

// recentSamples is how many frame-to-frame deltas decide drag direction.
const recentSamples = 15

// clickSlop is the total horizontal travel below which a release counts as
// a click rather than a drag.
const clickSlop = 1.0

// Mode is the pointer state of the dock.
type Mode int

const (
	Idle Mode = iota
	DraggingWindow
	DraggingPane
)

func (m Mode) String() string {
	switch m {
	case DraggingWindow:
		return "dragging window"
	case DraggingPane:
		return "dragging pane"
	default:
		return "idle"
	}
}

// dragState lives for exactly one pointer-down to pointer-up gesture.
type dragState struct {
	anchor   Point
	pane     int // NoEntry while dragging the window
	recent   [recentSamples]float64
	cursor   int
	distance float64
}

// Mode returns the current pointer state and, when dragging a pane, its
// logical index.
func (e *Engine) Mode() (Mode, int) {
	switch {
	case e.drag == nil:
		return Idle, NoEntry
	case e.drag.pane == NoEntry:
		return DraggingWindow, NoEntry
	default:
		return DraggingPane, e.drag.pane
	}
}

// PointerDown starts a gesture. Over a pane header it picks the pane up;
// elsewhere inside the interactable area the press is left to the dock's own
// controls; outside it the press drags the window.
func (e *Engine) PointerDown(p Point, primary bool) {
	if !primary {
		return
	}
	e.drag = nil

	if !e.InteractableArea().Contains(p) {
		e.drag = &dragState{anchor: p, pane: NoEntry}
		e.log.Debug().Float64("x", p.X).Float64("y", p.Y).Msg("window drag started")
		return
	}

	i, ok := e.HeaderAt(p)
	if !ok {
		return
	}
	e.drag = &dragState{anchor: p, pane: i}
	e.log.Debug().Int("index", i).Msg("pane drag started")
	e.host.RequestAnimFrame()
}

// PointerMove advances the gesture with the pointer at p. Deltas are frame
// to frame: the anchor follows the pointer during a pane drag.
func (e *Engine) PointerMove(p Point, primaryHeld bool) {
	d := e.drag
	if d == nil || !primaryHeld {
		return
	}
	delta := p.Sub(d.anchor)

	if d.pane == NoEntry {
		e.window.SetPosition(e.window.Position().Add(delta))
		return
	}

	i := d.pane
	en := &e.entries[i]
	en.Display -= delta.X
	d.distance += math.Abs(delta.X)
	if math.Abs(delta.X) > 1 {
		d.recent[d.cursor] = delta.X
		d.cursor = (d.cursor + 1) % len(d.recent)
	}

	motion := 0.0
	for _, v := range d.recent {
		motion += v
	}
	// Positive screen motion carries the pane toward the anchored edge.
	// Probe ahead of the pane in the direction of travel.
	var probe float64
	if motion > 0 {
		probe = en.Display - en.Width*0.25
	} else {
		probe = en.Display + en.Width*1.25
	}

	en.Target = ResolvedTargetFor(e.entries, probe, i, e.metrics.Spacing)
	ShiftLeftOf(e.entries, i)
	RefreshAllTargetPositions(e.entries, e.metrics.Spacing)

	d.anchor = p
	e.host.RequestLayout()
}

// PointerUp ends the gesture. A pane released over its own close control
// without having travelled is closed; any other pane release settles the
// layout.
func (e *Engine) PointerUp(p Point) {
	d := e.drag
	if d == nil {
		return
	}
	e.drag = nil

	if d.pane == NoEntry {
		e.log.Debug().Msg("window drag ended")
		return
	}

	header := e.frame(d.pane).Header
	rel := p.Sub(header.Origin())
	if d.distance < clickSlop && e.inCloseButton(header, rel) {
		e.log.Debug().Int("index", d.pane).Msg("close clicked")
		e.panes.RemovePane(d.pane)
		e.host.RequestUpdate()
		e.host.RequestLayout()
		return
	}

	e.log.Debug().Int("index", d.pane).Float64("distance", d.distance).Msg("pane drag ended")
	RefreshAllTargetPositions(e.entries, e.metrics.Spacing)
	e.host.RequestLayout()
}

// Cancel abandons the gesture when pointer capture is lost. A dragged pane
// settles as if released away from its close control.
func (e *Engine) Cancel() {
	d := e.drag
	if d == nil {
		return
	}
	e.drag = nil
	if d.pane != NoEntry {
		RefreshAllTargetPositions(e.entries, e.metrics.Spacing)
		e.host.RequestLayout()
	}
}

// Tick runs one animation frame. The dragged pane follows the pointer and is
// not eased. Frames keep coming while anything is converging or a gesture is
// in progress.
func (e *Engine) Tick(elapsed time.Duration) {
	excluded := NoEntry
	if e.drag != nil {
		excluded = e.drag.pane
	}
	moved, more := Step(e.entries, excluded, elapsed, e.tuning)
	if more || e.drag != nil {
		e.host.RequestAnimFrame()
	}
	if moved {
		e.host.RequestLayout()
	}
}

// Animating reports whether any entry has not reached its target yet.
func (e *Engine) Animating() bool {
	for _, en := range e.entries {
		if en.Display != en.Target {
			return true
		}
	}
	return false
}
