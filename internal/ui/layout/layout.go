package layout

import (
	"math"

	"github.com/justinpbarnett/panedock/internal/dock"
	"github.com/justinpbarnett/panedock/internal/ui/canvas"
)

// Layout holds the computed cell dimensions of the screen regions.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	// Desktop is the simulated screen the window lives on.
	DesktopWidth  int
	DesktopHeight int

	// Status bar, zero height when hidden.
	StatusBarWidth  int
	StatusBarHeight int
}

const (
	MinWidth  = 40
	MinHeight = 12
)

// Calculate computes region sizes from the terminal size. The status bar,
// when shown, takes the bottom row. Returns Layout with TooSmall=true if
// under minimum.
func Calculate(termWidth, termHeight int, statusBar bool) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	usableHeight := termHeight
	if statusBar {
		l.StatusBarWidth = termWidth
		l.StatusBarHeight = 1
		usableHeight--
	}

	l.DesktopWidth = termWidth
	l.DesktopHeight = usableHeight

	return l
}

// Grid maps between terminal cells and layout units.
type Grid struct {
	CellWidth  float64
	CellHeight float64
}

// Point returns the layout position at the centre of cell (x, y).
func (g Grid) Point(x, y int) dock.Point {
	return dock.Point{
		X: (float64(x) + 0.5) * g.CellWidth,
		Y: (float64(y) + 0.5) * g.CellHeight,
	}
}

// Size converts a cell extent to layout units.
func (g Grid) Size(w, h int) dock.Size {
	return dock.Size{Width: float64(w) * g.CellWidth, Height: float64(h) * g.CellHeight}
}

// Rect rounds a layout rectangle to the cells it covers most of.
func (g Grid) Rect(r dock.Rect) canvas.Rect {
	return canvas.Rect{
		X0: int(math.Round(r.X0 / g.CellWidth)),
		Y0: int(math.Round(r.Y0 / g.CellHeight)),
		X1: int(math.Round(r.X1 / g.CellWidth)),
		Y1: int(math.Round(r.Y1 / g.CellHeight)),
	}
}

// Units converts a cell rectangle back to layout units.
func (g Grid) Units(r canvas.Rect) dock.Rect {
	return dock.Rect{
		X0: float64(r.X0) * g.CellWidth,
		Y0: float64(r.Y0) * g.CellHeight,
		X1: float64(r.X1) * g.CellWidth,
		Y1: float64(r.Y1) * g.CellHeight,
	}
}
