package ui

import (
	"github.com/justinpbarnett/panedock/internal/ui/canvas"
	"github.com/justinpbarnett/panedock/internal/ui/text"
)

// control identifies a clickable dock button.
type control int

const (
	controlNone control = iota
	controlToggleDock
	controlAddPane
	controlCloseWindow
	controlAlwaysOnTop
)

func (c control) String() string {
	switch c {
	case controlToggleDock:
		return "toggle dock"
	case controlAddPane:
		return "add pane"
	case controlCloseWindow:
		return "close window"
	case controlAlwaysOnTop:
		return "toggle always on top"
	default:
		return "none"
	}
}

const (
	infoText = "Move and resize the pane dock, then hide the dock."
	// Shown on Linux, where always on top is up to the window manager.
	alwaysOnTopHint = `If the always on top button does nothing, most desktop environments allow you to set this window always on top by right clicking on the titlebar and selecting "Always on top"`

	controlsWidth = 13
	// maxHintLines caps the wrapped always-on-top hint.
	maxHintLines = 3
)

// button is a clickable label. rect is in window cells.
type button struct {
	id    control
	label string
	rect  canvas.Rect
}

// textLine is a static label in window cells.
type textLine struct {
	x, y  int
	text  string
	width int
	hint  bool
}

// chrome is the dock's own widgets laid out for one window size.
type chrome struct {
	// controls holds the persistent buttons at the top-right corner.
	controls canvas.Rect
	buttons  []button
	labels   []textLine
}

// layoutChrome lays out the dock widgets for a window cols x rows cells.
// The persistent controls are always present; the info text, the hint and
// the window buttons only while the dock is shown.
func layoutChrome(cols, rows int, dockShown, showHint bool) chrome {
	var ch chrome
	x0 := max(cols-controlsWidth, 0)
	ch.controls = canvas.Rect{X0: x0, Y0: 0, X1: cols, Y1: min(2, rows)}
	ch.buttons = append(ch.buttons,
		button{id: controlToggleDock, label: "Toggle Dock", rect: canvas.Rect{X0: x0, Y0: 0, X1: cols, Y1: 1}},
		button{id: controlAddPane, label: "Add Pane", rect: canvas.Rect{X0: x0, Y0: 1, X1: cols, Y1: 2}},
	)
	if !dockShown {
		return ch
	}

	avail := x0 - 2
	if avail <= 0 {
		return ch
	}
	y := 0
	ch.labels = append(ch.labels, textLine{x: 1, y: y, text: infoText, width: avail})
	y++
	if showHint {
		lines := text.WrapText(alwaysOnTopHint, avail)
		for i, l := range lines {
			if i == maxHintLines {
				break
			}
			if i == maxHintLines-1 && len(lines) > maxHintLines {
				l = text.Truncate(l+" "+lines[i+1], avail)
			}
			ch.labels = append(ch.labels, textLine{x: 1, y: y, text: l, width: avail, hint: true})
			y++
		}
	}
	y++

	x := 1
	for _, b := range []button{
		{id: controlCloseWindow, label: "Close Window"},
		{id: controlAlwaysOnTop, label: "Toggle Always On Top"},
	} {
		w := len(b.label) + 2
		if x+w > x0-1 {
			break
		}
		b.rect = canvas.Rect{X0: x, Y0: y, X1: x + w, Y1: y + 1}
		ch.buttons = append(ch.buttons, b)
		x += w + 2
	}
	return ch
}

// buttonAt returns the button under window cell (x, y).
func (ch chrome) buttonAt(x, y int) control {
	for _, b := range ch.buttons {
		if b.rect.Contains(x, y) {
			return b.id
		}
	}
	return controlNone
}
