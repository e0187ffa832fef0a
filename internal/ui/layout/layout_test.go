package layout

import (
	"testing"

	"github.com/justinpbarnett/panedock/internal/dock"
	"github.com/justinpbarnett/panedock/internal/ui/canvas"
)

func TestTooSmallWidth(t *testing.T) {
	l := Calculate(39, 24, true)
	if !l.TooSmall {
		t.Error("expected TooSmall for width 39")
	}
}

func TestTooSmallHeight(t *testing.T) {
	l := Calculate(80, 11, true)
	if !l.TooSmall {
		t.Error("expected TooSmall for height 11")
	}
}

func TestMinimumViable(t *testing.T) {
	l := Calculate(40, 12, true)
	if l.TooSmall {
		t.Error("40x12 should not be too small")
	}
	if l.DesktopHeight+l.StatusBarHeight != 12 {
		t.Errorf("height mismatch: desktop(%d) + status(%d) != 12", l.DesktopHeight, l.StatusBarHeight)
	}
}

func TestStatusBarHidden(t *testing.T) {
	l := Calculate(120, 40, false)
	if l.DesktopWidth != 120 || l.DesktopHeight != 40 {
		t.Errorf("desktop: got %dx%d, want 120x40", l.DesktopWidth, l.DesktopHeight)
	}
	if l.StatusBarWidth != 0 || l.StatusBarHeight != 0 {
		t.Errorf("expected no status bar, got %dx%d", l.StatusBarWidth, l.StatusBarHeight)
	}
}

func TestStandard120x40(t *testing.T) {
	l := Calculate(120, 40, true)
	if l.DesktopWidth != 120 || l.DesktopHeight != 39 {
		t.Errorf("desktop: got %dx%d, want 120x39", l.DesktopWidth, l.DesktopHeight)
	}
	if l.StatusBarWidth != 120 {
		t.Errorf("status bar width: got %d, want 120", l.StatusBarWidth)
	}
}

func TestGridPointIsCellCentre(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 25}
	if got := g.Point(3, 2); got != (dock.Point{X: 35, Y: 62.5}) {
		t.Errorf("got %+v", got)
	}
}

func TestGridRectRounds(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 25}
	got := g.Rect(dock.Rect{X0: 384, Y0: 150, X1: 686, Y1: 175})
	want := canvas.Rect{X0: 38, Y0: 6, X1: 69, Y1: 7}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGridRoundTrip(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 25}
	r := canvas.Rect{X0: 2, Y0: 2, X1: 102, Y1: 25}
	if got := g.Rect(g.Units(r)); got != r {
		t.Errorf("got %+v, want %+v", got, r)
	}
	if got := g.Size(100, 23); got != (dock.Size{Width: 1000, Height: 575}) {
		t.Errorf("got %+v", got)
	}
}
