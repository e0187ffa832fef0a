// Package state holds the application state the dock reconciles against:
// the pane identities and the window toggles. It is owned by the UI event
// loop and is not safe for concurrent use.
package state

import (
	"github.com/rs/zerolog"

	"github.com/justinpbarnett/panedock/internal/dock"
)

type App struct {
	panes       Panes
	showDock    bool
	alwaysOnTop bool
	subscribers []func()
	log         zerolog.Logger
}

func New(showDock, alwaysOnTop bool, logger zerolog.Logger) *App {
	return &App{
		showDock:    showDock,
		alwaysOnTop: alwaysOnTop,
		log:         logger.With().Str("component", "state").Logger(),
	}
}

// AddPane appends a new pane at the end of the collection.
func (a *App) AddPane() dock.Identity {
	id := a.panes.Add()
	a.log.Debug().Int("pane_id", id.ID).Msg("pane added")
	a.notify()
	return id
}

// RemovePane removes the pane at logical index i. It satisfies
// dock.PaneRemover so a header close click lands here.
func (a *App) RemovePane(i int) {
	if !a.panes.RemoveAt(i) {
		a.log.Warn().Int("index", i).Int("panes", a.panes.Len()).Msg("remove out of range")
		return
	}
	a.log.Debug().Int("index", i).Msg("pane removed")
	a.notify()
}

// Snapshot returns the current identities. The caller keeps it as the
// previous collection for the next reconciliation.
func (a *App) Snapshot() []dock.Identity {
	return a.panes.Identities()
}

func (a *App) Len() int {
	return a.panes.Len()
}

func (a *App) ShowDock() bool {
	return a.showDock
}

// ToggleDock flips dock visibility and returns the new value.
func (a *App) ToggleDock() bool {
	a.showDock = !a.showDock
	a.notify()
	return a.showDock
}

func (a *App) AlwaysOnTop() bool {
	return a.alwaysOnTop
}

// ToggleAlwaysOnTop flips the always-on-top preference and returns the new
// value.
func (a *App) ToggleAlwaysOnTop() bool {
	a.alwaysOnTop = !a.alwaysOnTop
	a.log.Debug().Bool("always_on_top", a.alwaysOnTop).Msg("always on top toggled")
	a.notify()
	return a.alwaysOnTop
}

// Subscribe registers fn to run after every change.
func (a *App) Subscribe(fn func()) {
	a.subscribers = append(a.subscribers, fn)
}

func (a *App) notify() {
	for _, fn := range a.subscribers {
		fn()
	}
}
