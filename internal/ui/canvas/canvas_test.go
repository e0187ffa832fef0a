package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	plain Style = iota
	ink
)

func newPlain(w, h int) *Canvas {
	return New(w, h, []lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle().Bold(true)})
}

func TestFillClipsToBounds(t *testing.T) {
	c := newPlain(5, 3)
	c.Fill(Rect{X0: 3, Y0: -2, X1: 10, Y1: 2}, '#', ink)

	want := []string{"   ##", "   ##", "     "}
	got := c.Lines()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if _, s := c.At(4, 0); s != ink {
		t.Errorf("expected filled cell to carry the fill style, got %d", s)
	}
}

func TestLaterFillsPaintOver(t *testing.T) {
	c := newPlain(4, 1)
	c.Fill(Rect{X1: 4, Y1: 1}, 'a', plain)
	c.Fill(Rect{X0: 1, X1: 3, Y1: 1}, 'b', ink)

	if got := c.Lines()[0]; got != "abba" {
		t.Errorf("got %q, want %q", got, "abba")
	}
}

func TestTextTruncates(t *testing.T) {
	c := newPlain(12, 1)
	n := c.Text(1, 0, "Pane 12 header", plain, 8)

	if n != 8 {
		t.Errorf("expected 8 columns written, got %d", n)
	}
	if got := c.Lines()[0]; got != " Pane 12…   " {
		t.Errorf("got %q", got)
	}
}

func TestTextClipsAtEdges(t *testing.T) {
	c := newPlain(4, 1)
	c.Text(-2, 0, "abcdef", plain, 10)

	if got := c.Lines()[0]; got != "cdef" {
		t.Errorf("got %q, want %q", got, "cdef")
	}
}

func TestTextOutsideRowsIgnored(t *testing.T) {
	c := newPlain(4, 1)
	if n := c.Text(0, 3, "abc", plain, 4); n != 0 {
		t.Errorf("expected nothing written, got %d", n)
	}
}

func TestWideRunesOccupyTwoCells(t *testing.T) {
	c := newPlain(6, 1)
	c.Text(0, 0, "日本", plain, 6)

	if got := c.Lines()[0]; got != "日本  " {
		t.Errorf("got %q", got)
	}
	if r, _ := c.At(1, 0); r != 0 {
		t.Errorf("expected continuation cell, got %q", r)
	}

	// Overwriting the trailing half blanks the leading half.
	c.Text(1, 0, "x", plain, 1)
	if got := c.Lines()[0]; got != " x本  " {
		t.Errorf("got %q", got)
	}
}

func TestRenderKeepsVisibleWidth(t *testing.T) {
	c := newPlain(6, 2)
	c.Fill(Rect{X0: 2, X1: 4, Y1: 2}, '█', ink)

	out := c.Render()
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if w := ansi.StringWidth(row); w != 6 {
			t.Errorf("row %d: visible width %d, want 6", i, w)
		}
		if stripped := ansi.Strip(row); stripped != "  ██  " {
			t.Errorf("row %d: got %q", i, stripped)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 4, Y1: 4}
	b := Rect{X0: 2, Y0: 3, X1: 6, Y1: 8}

	if got := a.Intersect(b); got != (Rect{X0: 2, Y0: 3, X1: 4, Y1: 4}) {
		t.Errorf("got %+v", got)
	}
	if got := a.Intersect(Rect{X0: 5, X1: 6, Y1: 1}); !got.Empty() {
		t.Errorf("expected empty intersection, got %+v", got)
	}
}
