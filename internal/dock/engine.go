package dock

import (
	"slices"

	"github.com/rs/zerolog"
)

// WindowControl is the window-manager surface the dock drives. Offsets and
// sizes are in the same units as the engine.
type WindowControl interface {
	Position() Point
	SetPosition(Point)
	Size() Size
	SetSize(Size)
	ShowTitlebar(bool)
	SetAlwaysOnTop(bool)
	Close()
	// SetInputRegion restricts pointer input to region. A nil region makes
	// the whole window responsive again.
	SetInputRegion(Region)
}

// Host receives the engine's explicit requests. None of them happen
// automatically.
type Host interface {
	RequestLayout()
	RequestAnimFrame()
	// RequestUpdate asks for the identity collection to be re-read and
	// reconciled.
	RequestUpdate()
}

// PaneRemover removes the identity at a logical index from the application
// state. It is how a header close click reaches the owner of the identities.
type PaneRemover interface {
	RemovePane(index int)
}

// Config wires an Engine to its collaborators.
type Config struct {
	Metrics Metrics
	Tuning  Tuning
	Window  WindowControl
	Host    Host
	Panes   PaneRemover
	Logger  zerolog.Logger
}

// Engine owns the pane entries and the in-flight drag gesture.
type Engine struct {
	metrics Metrics
	tuning  Tuning
	window  WindowControl
	host    Host
	panes   PaneRemover
	log     zerolog.Logger

	entries    []Entry
	reconciled bool
	drag       *dragState

	size     Size
	controls Rect
}

func New(cfg Config) *Engine {
	return &Engine{
		metrics: cfg.Metrics,
		tuning:  cfg.Tuning,
		window:  cfg.Window,
		host:    cfg.Host,
		panes:   cfg.Panes,
		log:     cfg.Logger.With().Str("component", "dock").Logger(),
	}
}

// Entries returns a copy of the entries in logical order.
func (e *Engine) Entries() []Entry {
	return slices.Clone(e.entries)
}

func (e *Engine) Len() int { return len(e.entries) }

func (e *Engine) Metrics() Metrics { return e.metrics }

func (e *Engine) Tuning() Tuning { return e.tuning }

// Reconcile brings the entries in line with next. previous must be the
// identities the entries were last reconciled against; it is ignored on the
// first call. Reports whether any pane was created or destroyed.
func (e *Engine) Reconcile(previous, next []Identity) bool {
	first := !e.reconciled
	e.reconciled = true

	var ch Changes
	e.entries, ch = Reconcile(e.entries, previous, next, first, e.metrics)
	e.remapDrag(ch)
	for _, i := range ch.Removed {
		e.log.Debug().Int("index", i).Int("pane_id", previous[i].ID).Msg("removed pane entry")
	}
	for _, i := range ch.Inserted {
		e.log.Debug().Int("index", i).Int("pane_id", next[i].ID).Float64("target", e.entries[i].Target).Msg("created pane entry")
	}
	if ch.Changed() {
		e.log.Debug().Int("entries", len(e.entries)).Msg("reconciled")
		e.host.RequestLayout()
	}
	return ch.Changed()
}

// remapDrag keeps the dragged index pointing at the same entry across a
// structural change, dropping the gesture if that entry was destroyed.
func (e *Engine) remapDrag(ch Changes) {
	if e.drag == nil || e.drag.pane == NoEntry || !ch.Changed() {
		return
	}
	idx := e.drag.pane
	shift := 0
	for _, r := range ch.Removed {
		if r == idx {
			e.log.Debug().Int("index", idx).Msg("dragged pane removed, ending drag")
			e.drag = nil
			return
		}
		if r < idx {
			shift++
		}
	}
	idx -= shift
	for _, ins := range ch.Inserted {
		if ins <= idx {
			idx++
		}
	}
	e.drag.pane = idx
}

// SetMetrics applies new pane geometry to every entry and re-solves targets.
func (e *Engine) SetMetrics(m Metrics) {
	e.metrics = m
	for i := range e.entries {
		e.entries[i].Width = m.PaneWidth
		e.entries[i].Height = m.PaneHeight
	}
	RefreshAllTargetPositions(e.entries, m.Spacing)
	e.host.RequestLayout()
	e.host.RequestAnimFrame()
}

func (e *Engine) SetTuning(t Tuning) {
	e.tuning = t
}

// Layout records the window size used for every rectangle the engine hands
// out and refreshes the window's input region: the whole window while the
// dock chrome is shown, only the interactable area while it is hidden.
func (e *Engine) Layout(size Size, dockShown bool) {
	e.size = size
	if dockShown {
		e.window.SetInputRegion(nil)
		return
	}
	e.window.SetInputRegion(e.InteractableArea())
}

// SetControlsRect sets the rectangle of the always-visible dock controls,
// which stays part of the interactable area.
func (e *Engine) SetControlsRect(r Rect) {
	e.controls = r
}
