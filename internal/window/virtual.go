// Package window implements the dock's window-manager surface for a
// terminal: a movable, resizable window drawn on the terminal "desktop".
package window

import (
	"github.com/rs/zerolog"

	"github.com/justinpbarnett/panedock/internal/dock"
)

type Options struct {
	Position    dock.Point
	Size        dock.Size
	Desktop     dock.Size
	TitleHeight float64
	Titlebar    bool
	AlwaysOnTop bool
	Logger      zerolog.Logger
}

// Virtual is a window living inside the terminal. Position is the desktop
// coordinate of the top-left corner of its client area; the titlebar, when
// shown, sits directly above it.
type Virtual struct {
	pos         dock.Point
	size        dock.Size
	desktop     dock.Size
	titleHeight float64
	titlebar    bool
	alwaysOnTop bool
	closed      bool
	region      dock.Region
	log         zerolog.Logger
}

var _ dock.WindowControl = (*Virtual)(nil)

func New(opts Options) *Virtual {
	w := &Virtual{
		pos:         opts.Position,
		size:        opts.Size,
		desktop:     opts.Desktop,
		titleHeight: opts.TitleHeight,
		titlebar:    opts.Titlebar,
		alwaysOnTop: opts.AlwaysOnTop,
		log:         opts.Logger.With().Str("component", "window").Logger(),
	}
	w.clamp()
	return w
}

func (w *Virtual) Position() dock.Point { return w.pos }

func (w *Virtual) SetPosition(p dock.Point) {
	w.pos = p
	w.clamp()
}

func (w *Virtual) Size() dock.Size { return w.size }

// SetSize resizes the client area. Sizes are kept at least one unit in each
// direction.
func (w *Virtual) SetSize(s dock.Size) {
	w.size = dock.Size{Width: max(s.Width, 1), Height: max(s.Height, 1)}
	w.log.Debug().Float64("width", w.size.Width).Float64("height", w.size.Height).Msg("resized")
	w.clamp()
}

// SetDesktop updates the desktop bounds, e.g. after a terminal resize.
func (w *Virtual) SetDesktop(s dock.Size) {
	w.desktop = s
	w.clamp()
}

func (w *Virtual) Desktop() dock.Size { return w.desktop }

func (w *Virtual) ShowTitlebar(show bool) {
	w.titlebar = show
	w.clamp()
}

func (w *Virtual) TitlebarShown() bool { return w.titlebar }

// SetAlwaysOnTop records the request. A terminal has no stacking order, so
// it only changes how the window is drawn.
func (w *Virtual) SetAlwaysOnTop(on bool) {
	w.alwaysOnTop = on
	w.log.Info().Bool("always_on_top", on).Msg("always on top")
}

func (w *Virtual) AlwaysOnTop() bool { return w.alwaysOnTop }

func (w *Virtual) Close() {
	w.closed = true
	w.log.Info().Msg("window closed")
}

func (w *Virtual) Closed() bool { return w.closed }

// SetInputRegion restricts which client points accept pointer input. Nil
// accepts the whole window.
func (w *Virtual) SetInputRegion(r dock.Region) {
	w.region = r
}

func (w *Virtual) InputRegion() dock.Region { return w.region }

// Bounds is the client area in desktop space.
func (w *Virtual) Bounds() dock.Rect {
	return dock.RectFromOrigin(w.pos, w.size)
}

// TitlebarRect is the titlebar strip in desktop space, empty when hidden.
func (w *Virtual) TitlebarRect() dock.Rect {
	if !w.titlebar {
		return dock.Rect{}
	}
	return dock.Rect{X0: w.pos.X, Y0: w.pos.Y - w.titleHeight, X1: w.pos.X + w.size.Width, Y1: w.pos.Y}
}

// ToWindow converts a desktop point to client coordinates.
func (w *Virtual) ToWindow(p dock.Point) dock.Point {
	return p.Sub(w.pos)
}

// Accepts reports whether a desktop point reaches the client area: inside
// the window and, when an input region is set, inside that region. Points
// that are not accepted fall through to the desktop.
func (w *Virtual) Accepts(p dock.Point) bool {
	if !w.Bounds().Contains(p) {
		return false
	}
	if w.region == nil {
		return true
	}
	return w.region.Contains(w.ToWindow(p))
}

// clamp keeps the window (and its titlebar) on the desktop where it fits.
func (w *Virtual) clamp() {
	if w.desktop.Width <= 0 || w.desktop.Height <= 0 {
		return
	}
	top := 0.0
	if w.titlebar {
		top = w.titleHeight
	}
	w.pos.X = min(max(w.pos.X, 0), max(w.desktop.Width-w.size.Width, 0))
	w.pos.Y = min(max(w.pos.Y, top), max(w.desktop.Height-w.size.Height, top))
}
