// Package dock implements the pane dock engine: reconciling pane identities
// into layout entries, solving right-anchored slot positions, easing panes
// toward their slots, and the pointer state machine that reorders panes,
// moves the window and closes panes from their header.
//
// Offsets are distances from the right edge of the window. All engine
// methods must be called from a single goroutine (the UI event loop).
package dock

import "time"

// NoEntry marks the absence of an entry index.
const NoEntry = -1

// Identity is the application-owned key of a live pane.
type Identity struct {
	ID int
}

// Entry is the engine's geometric record for one live pane. Entries are kept
// in the same (logical) order as the identity collection they mirror, which
// is not necessarily screen order.
type Entry struct {
	Target  float64 // resolved distance from the anchored edge
	Display float64 // rendered distance, eased toward Target
	Width   float64
	Height  float64
}

// Span returns the half-open target interval [Target, Target+Width).
func (e Entry) Span() (float64, float64) {
	return e.Target, e.Target + e.Width
}

func (e Entry) center() float64 {
	return e.Target + e.Width/2
}

// Metrics holds the fixed pane geometry.
type Metrics struct {
	Spacing      float64
	PaneWidth    float64
	PaneHeight   float64
	HeaderHeight float64
	CloseWidth   float64
}

// Tuning holds the animation constants.
type Tuning struct {
	ReferenceFrame time.Duration
	MinSpeed       float64
	Easing         float64
	MinCorrection  float64
	MaxCorrection  float64
}

// DefaultMetrics mirrors the stock dock: 300x400 panes, 10 unit spacing.
func DefaultMetrics() Metrics {
	return Metrics{
		Spacing:      10,
		PaneWidth:    300,
		PaneHeight:   400,
		HeaderHeight: 25,
		CloseWidth:   25,
	}
}

func DefaultTuning() Tuning {
	return Tuning{
		ReferenceFrame: 16 * time.Millisecond,
		MinSpeed:       20,
		Easing:         0.15,
		MinCorrection:  0.25,
		MaxCorrection:  1.25,
	}
}
