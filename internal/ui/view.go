package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/justinpbarnett/panedock/internal/dock"
	"github.com/justinpbarnett/panedock/internal/ui/border"
	"github.com/justinpbarnett/panedock/internal/ui/canvas"
	"github.com/justinpbarnett/panedock/internal/ui/styles"
)

// Canvas palette indexes.
const (
	styleDesktop canvas.Style = iota
	styleDesktopDot
	styleDock
	styleDockHint
	styleTitlebar
	styleControls
	styleButton
	styleArmed
	stylePane
	stylePaneEdge
	styleHeader
	styleClose
	styleDragged
)

func palette() []lipgloss.Style {
	return []lipgloss.Style{
		styleDesktop:    styles.DesktopStyle,
		styleDesktopDot: styles.DesktopStyle,
		styleDock:       styles.DockStyle,
		styleDockHint:   styles.DockHintStyle,
		styleTitlebar:   styles.TitlebarStyle,
		styleControls:   styles.ControlsStyle,
		styleButton:     styles.ButtonStyle,
		styleArmed:      styles.ArmedStyle,
		stylePane:       styles.PaneStyle,
		stylePaneEdge:   styles.PaneEdgeStyle,
		styleHeader:     styles.HeaderStyle,
		styleClose:      styles.CloseStyle,
		styleDragged:    styles.DraggedStyle,
	}
}

const (
	closeGlyph  = "✖"
	paneLabel   = "Pane"
	windowTitle = "panedock"
)

// windowCells is the window's client area in desktop cells.
func (a App) windowCells() canvas.Rect {
	return a.grid.Rect(a.window.Bounds())
}

// chrome lays out the dock widgets for the current window.
func (a App) chrome() chrome {
	r := a.windowCells()
	return layoutChrome(r.Width(), r.Height(), a.state.ShowDock(), a.showHint)
}

// toDesktop converts a window-space rectangle to desktop cells.
func (a App) toDesktop(r dock.Rect) canvas.Rect {
	p := a.window.Position()
	return a.grid.Rect(dock.Rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y})
}

func shift(r canvas.Rect, origin canvas.Rect) canvas.Rect {
	return canvas.Rect{X0: r.X0 + origin.X0, Y0: r.Y0 + origin.Y0, X1: r.X1 + origin.X0, Y1: r.Y1 + origin.Y0}
}

// renderDesktop paints, back to front: the desktop, the window chrome, the
// persistent controls and the panes in logical order.
func (a App) renderDesktop() string {
	c := canvas.New(a.layout.DesktopWidth, a.layout.DesktopHeight, palette())
	for y := 0; y < c.Height(); y += 2 {
		for x := (y / 2) % 2 * 2; x < c.Width(); x += 4 {
			c.Fill(canvas.Rect{X0: x, Y0: y, X1: x + 1, Y1: y + 1}, '·', styleDesktopDot)
		}
	}

	win := a.windowCells()
	shown := a.state.ShowDock()

	if tb := a.window.TitlebarRect(); !tb.Empty() {
		r := a.grid.Rect(tb)
		c.Fill(r, ' ', styleTitlebar)
		title := windowTitle
		if a.state.AlwaysOnTop() {
			title += " (always on top)"
		}
		c.Text(r.X0+1, r.Y0, title, styleTitlebar, r.Width()-2)
	}

	ch := a.chrome()
	if shown {
		c.Fill(win, ' ', styleDock)
		for _, l := range ch.labels {
			st := styleDock
			if l.hint {
				st = styleDockHint
			}
			c.Text(win.X0+l.x, win.Y0+l.y, l.text, st, l.width)
		}
	}

	c.Fill(shift(ch.controls, win), ' ', styleControls)
	for _, b := range ch.buttons {
		st := styleButton
		if b.id == a.pressed {
			st = styleArmed
		}
		r := shift(b.rect, win)
		c.Fill(r, ' ', st)
		label := " " + b.label + " "
		x := r.X0 + max((r.Width()-len(label))/2, 0)
		c.Text(x, r.Y0, label, st, r.X1-x)
	}

	mode, dragged := a.engine.Mode()
	for _, f := range a.engine.Frames() {
		pane := a.toDesktop(f.Pane)
		header := a.toDesktop(f.Header)
		closeBox := a.toDesktop(f.Close)

		c.Fill(pane, ' ', stylePane)
		c.Fill(canvas.Rect{X0: pane.X0, Y0: header.Y0, X1: pane.X0 + 1, Y1: pane.Y1}, '▏', stylePaneEdge)
		c.Text(pane.X0+2, pane.Y0+1, paneLabel, stylePane, pane.Width()-3)

		c.Fill(header, ' ', styleHeader)
		id := 0
		if f.Index < len(a.prev) {
			id = a.prev[f.Index].ID
		}
		c.Text(header.X0+1, header.Y0, fmt.Sprintf("Pane %d header", id), styleHeader, closeBox.X0-header.X0-2)
		if mode == dock.DraggingPane && f.Index == dragged {
			c.Restyle(header, styleDragged)
		}
		c.Fill(closeBox, ' ', styleClose)
		c.Text(closeBox.X0+max((closeBox.Width()-1)/2, 0), closeBox.Y0, closeGlyph, styleClose, closeBox.Width())
	}

	if !shown && len(a.prev) == 0 {
		border.Frame(c, win, "dock hidden", styleDockHint)
	}

	return c.Render()
}

// layoutSnapshot is the copyable summary of the window and pane slots.
type layoutSnapshot struct {
	Window struct {
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"window"`
	DockShown   bool         `yaml:"dock_shown"`
	AlwaysOnTop bool         `yaml:"always_on_top"`
	Panes       []paneRecord `yaml:"panes"`
}

type paneRecord struct {
	ID      int     `yaml:"id"`
	Target  float64 `yaml:"target"`
	Display float64 `yaml:"display"`
}

func (a App) layoutSnapshot() layoutSnapshot {
	var s layoutSnapshot
	p, sz := a.window.Position(), a.window.Size()
	s.Window.X, s.Window.Y = p.X, p.Y
	s.Window.Width, s.Window.Height = sz.Width, sz.Height
	s.DockShown = a.state.ShowDock()
	s.AlwaysOnTop = a.state.AlwaysOnTop()
	for i, e := range a.engine.Entries() {
		rec := paneRecord{Target: e.Target, Display: e.Display}
		if i < len(a.prev) {
			rec.ID = a.prev[i].ID
		}
		s.Panes = append(s.Panes, rec)
	}
	return s
}

func (s layoutSnapshot) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
