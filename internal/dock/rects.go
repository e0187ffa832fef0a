package dock

// Frame is the window-space geometry of one pane for a render pass.
type Frame struct {
	Index  int
	Pane   Rect
	Header Rect
	Close  Rect
}

// Frames returns one Frame per entry in render (logical) order. Panes sit on
// the bottom edge of the window with their header directly above.
func (e *Engine) Frames() []Frame {
	frames := make([]Frame, len(e.entries))
	for i := range e.entries {
		frames[i] = e.frame(i)
	}
	return frames
}

func (e *Engine) frame(i int) Frame {
	en := e.entries[i]
	x := e.size.Width - en.Display - en.Width
	pane := RectFromOrigin(Point{X: x, Y: e.size.Height - en.Height}, Size{Width: en.Width, Height: en.Height})
	header := RectFromOrigin(Point{X: x, Y: pane.Y0 - e.metrics.HeaderHeight}, Size{Width: en.Width, Height: e.metrics.HeaderHeight})
	return Frame{
		Index:  i,
		Pane:   pane,
		Header: header,
		Close:  closeRect(header, e.metrics.CloseWidth),
	}
}

// closeRect is the close control at the far right of a header.
func closeRect(header Rect, width float64) Rect {
	width = min(width, header.Width())
	return Rect{X0: header.X1 - width, Y0: header.Y0, X1: header.X1, Y1: header.Y1}
}

// InteractableArea is the region that keeps receiving pointer input when the
// dock background is hidden: the controls plus every pane and header.
func (e *Engine) InteractableArea() Region {
	var area Region
	area = area.Add(e.controls)
	for _, f := range e.Frames() {
		area = area.Add(f.Pane)
		area = area.Add(f.Header)
	}
	return area
}

// HeaderAt returns the first pane, in render order, whose header contains p.
func (e *Engine) HeaderAt(p Point) (int, bool) {
	for i := range e.entries {
		if e.frame(i).Header.Contains(p) {
			return i, true
		}
	}
	return NoEntry, false
}

// inCloseButton reports whether p, relative to the header's origin, falls in
// the header's close control.
func (e *Engine) inCloseButton(header Rect, rel Point) bool {
	local := closeRect(RectFromOrigin(Point{}, Size{Width: header.Width(), Height: header.Height()}), e.metrics.CloseWidth)
	return local.Contains(rel)
}
