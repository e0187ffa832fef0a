// Package canvas composites overlapping rectangles and text into a grid of
// terminal cells and renders the grid with lipgloss styles.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/justinpbarnett/panedock/internal/ui/text"
)

// Rect is a cell rectangle. X0/Y0 are inclusive, X1/Y1 exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Intersect returns the overlap of r and o, empty when they do not meet.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{X0: max(r.X0, o.X0), Y0: max(r.Y0, o.Y0), X1: min(r.X1, o.X1), Y1: min(r.Y1, o.Y1)}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Style indexes the palette the canvas was created with.
type Style int

type cell struct {
	r     rune
	style Style
	// wide marks the trailing half of a double-width rune.
	wide bool
}

type Canvas struct {
	width, height int
	cells         []cell
	palette       []lipgloss.Style
}

// New returns a canvas filled with spaces in palette[0].
func New(width, height int, palette []lipgloss.Style) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([]cell, width*height),
		palette: palette,
	}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Bounds() Rect {
	return Rect{X1: c.width, Y1: c.height}
}

// At returns the rune and style at (x, y). Out-of-range reads return a
// space in style 0.
func (c *Canvas) At(x, y int) (rune, Style) {
	if !c.Bounds().Contains(x, y) {
		return ' ', 0
	}
	cl := c.cells[y*c.width+x]
	if cl.wide {
		return 0, cl.style
	}
	return cl.r, cl.style
}

// Fill paints r (clipped to the canvas) with ch in style s.
func (c *Canvas) Fill(r Rect, ch rune, s Style) {
	r = r.Intersect(c.Bounds())
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			c.set(x, y, cell{r: ch, style: s})
		}
	}
}

// Text writes s starting at (x, y), truncated with an ellipsis to maxWidth
// columns. It returns the number of columns written.
func (c *Canvas) Text(x, y int, s string, st Style, maxWidth int) int {
	if y < 0 || y >= c.height || maxWidth <= 0 {
		return 0
	}
	s = text.Truncate(s, maxWidth)
	col := x
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= c.width {
			c.set(col, y, cell{r: r, style: st})
			if w == 2 {
				c.set(col+1, y, cell{style: st, wide: true})
			}
		}
		col += w
	}
	return col - x
}

// Restyle changes the style of every cell in r without touching its runes.
func (c *Canvas) Restyle(r Rect, s Style) {
	r = r.Intersect(c.Bounds())
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			c.cells[y*c.width+x].style = s
		}
	}
}

func (c *Canvas) set(x, y int, cl cell) {
	i := y*c.width + x
	// Overwriting either half of a wide rune blanks the other half.
	if old := c.cells[i]; old.wide && x > 0 {
		c.cells[i-1] = cell{r: ' ', style: c.cells[i-1].style}
	} else if x+1 < c.width && c.cells[i+1].wide && !cl.wide {
		c.cells[i+1] = cell{r: ' ', style: c.cells[i+1].style}
	}
	c.cells[i] = cl
}

// Lines returns the unstyled text of each row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		for x := range c.width {
			cl := c.cells[y*c.width+x]
			if !cl.wide {
				b.WriteRune(cl.r)
			}
		}
		out[y] = b.String()
	}
	return out
}

// Render styles each run of same-styled cells and joins the rows.
func (c *Canvas) Render() string {
	rows := make([]string, c.height)
	for y := range c.height {
		var b, run strings.Builder
		cur := Style(-1)
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(c.style(cur).Render(run.String()))
				run.Reset()
			}
		}
		for x := range c.width {
			cl := c.cells[y*c.width+x]
			if cl.wide {
				continue
			}
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) style(s Style) lipgloss.Style {
	if int(s) < 0 || int(s) >= len(c.palette) {
		return lipgloss.NewStyle()
	}
	return c.palette[s]
}
