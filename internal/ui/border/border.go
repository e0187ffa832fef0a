package border

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/panedock/internal/ui/canvas"
	"github.com/justinpbarnett/panedock/internal/ui/styles"
)

// Border characters
const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func borderColor(focused bool) lipgloss.AdaptiveColor {
	if focused {
		return styles.BorderFocused
	}
	return styles.BorderUnfocused
}

// RenderBorderTop renders: ╭─ Title ────────────╮
// Title is bold TitleText (focused) or TextSecondary (unfocused).
func RenderBorderTop(title string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bc := borderColor(focused)
	bs := lipgloss.NewStyle().Foreground(bc)

	var ts lipgloss.Style
	if focused {
		ts = styles.TitleStyle
	} else {
		ts = styles.TextSecondaryStyle.Bold(true)
	}

	innerWidth := width - 2 // corners
	if title == "" {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}

	// ╭─ Title ─...─╮
	// "─ " + title + " " = title visual width + 3
	titleRendered := ts.Render(title)
	titleVisualWidth := lipgloss.Width(titleRendered)
	// prefix: "─ "
	prefixWidth := 2
	// suffix: " " then fill
	suffixPadWidth := 1
	usedWidth := prefixWidth + titleVisualWidth + suffixPadWidth
	fillWidth := innerWidth - usedWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	return bs.Render(cornerTL+horizBar+" ") +
		titleRendered +
		bs.Render(" "+strings.Repeat(horizBar, fillWidth)+cornerTR)
}

// RenderBorderBottom renders the bottom border.
// If focused and bindings provided: ╰─ [esc] close  [q] quit ──╯
// Otherwise: ╰────────────────────╯
func RenderBorderBottom(bindings []key.Binding, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bc := borderColor(focused)
	bs := lipgloss.NewStyle().Foreground(bc)

	innerWidth := width - 2

	if !focused || len(bindings) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, innerWidth) + cornerBR)
	}

	// "─ " prefix (2) + bindings + " " suffix pad (1) must fit within innerWidth.
	// Bindings that overflow the panel are dropped.
	prefixWidth := 2
	suffixPadWidth := 1
	maxKbWidth := innerWidth - prefixWidth - suffixPadWidth
	if maxKbWidth < 0 {
		maxKbWidth = 0
	}

	var kbParts []string
	usedWidth := 0
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		kbW := KeybindWidth(b)
		sepW := 0
		if len(kbParts) > 0 {
			sepW = 2 // "  " separator
		}
		if usedWidth+sepW+kbW > maxKbWidth {
			break
		}
		kbParts = append(kbParts, RenderKeybind(b))
		usedWidth += sepW + kbW
	}

	kbStr := strings.Join(kbParts, "  ")
	fillWidth := maxKbWidth - usedWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	return bs.Render(cornerBL+horizBar+" ") +
		kbStr +
		bs.Render(" "+strings.Repeat(horizBar, fillWidth)+cornerBR)
}

// RenderBorderSides wraps content lines with │ on each side.
// Each line is truncated/padded to innerWidth (width - 2).
// Uses lipgloss.Width() for ANSI-aware width measurement so styled
// content is handled correctly.
func RenderBorderSides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	bc := borderColor(focused)
	bs := lipgloss.NewStyle().Foreground(bc)
	truncator := lipgloss.NewStyle().MaxWidth(width - 2)

	innerWidth := width - 2
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > innerWidth {
			line = truncator.Render(line)
			w = lipgloss.Width(line)
		}
		if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		result = append(result, bs.Render(vertBar)+line+bs.Render(vertBar))
	}
	return strings.Join(result, "\n")
}

// Box-drawing runes for frames painted onto a canvas.
var (
	frameCorners = [4]rune{'╭', '╮', '╰', '╯'}
	frameHoriz   = '─'
	frameVert    = '│'
)

// Frame paints a rounded outline on the edge cells of r with the title set
// into the top edge. Rects smaller than 2x2 are skipped.
func Frame(c *canvas.Canvas, r canvas.Rect, title string, s canvas.Style) {
	if r.Width() < 2 || r.Height() < 2 {
		return
	}
	c.Fill(canvas.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + 1}, frameHoriz, s)
	c.Fill(canvas.Rect{X0: r.X0, Y0: r.Y1 - 1, X1: r.X1, Y1: r.Y1}, frameHoriz, s)
	c.Fill(canvas.Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + 1, Y1: r.Y1}, frameVert, s)
	c.Fill(canvas.Rect{X0: r.X1 - 1, Y0: r.Y0, X1: r.X1, Y1: r.Y1}, frameVert, s)
	c.Fill(canvas.Rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + 1, Y1: r.Y0 + 1}, frameCorners[0], s)
	c.Fill(canvas.Rect{X0: r.X1 - 1, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + 1}, frameCorners[1], s)
	c.Fill(canvas.Rect{X0: r.X0, Y0: r.Y1 - 1, X1: r.X0 + 1, Y1: r.Y1}, frameCorners[2], s)
	c.Fill(canvas.Rect{X0: r.X1 - 1, Y0: r.Y1 - 1, X1: r.X1, Y1: r.Y1}, frameCorners[3], s)

	// ╭─ Title ─╮
	if title != "" && r.Width() > 6 {
		c.Fill(canvas.Rect{X0: r.X0 + 2, Y0: r.Y0, X1: r.X0 + 3, Y1: r.Y0 + 1}, ' ', s)
		n := c.Text(r.X0+3, r.Y0, title, s, r.Width()-6)
		end := r.X0 + 3 + n
		c.Fill(canvas.Rect{X0: end, Y0: r.Y0, X1: end + 1, Y1: r.Y0 + 1}, ' ', s)
	}
}
