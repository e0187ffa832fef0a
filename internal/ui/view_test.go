package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestViewFillsTerminal(t *testing.T) {
	a := newTestApp()
	a = sendWindowSize(a, 120, 40)

	lines := strings.Split(a.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("line count=%d, want 40", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 120 {
			t.Errorf("line %d: width=%d, want 120", i, w)
		}
	}
}

func TestViewWithoutStatusBar(t *testing.T) {
	a := newTestApp()
	hidden := false
	a.config.UI.ShowStatusBar = &hidden
	a = sendWindowSize(a, 120, 40)

	lines := strings.Split(a.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("line count=%d, want 40", len(lines))
	}
	if strings.Contains(a.View(), "panedock dev") {
		t.Error("expected no status bar")
	}
}

func TestViewShowsDockChrome(t *testing.T) {
	a := newTestApp()
	a = sendWindowSize(a, 120, 40)
	view := a.View()

	for _, want := range []string{
		"panedock",
		"Toggle Dock",
		"Add Pane",
		infoText,
		"Close Window",
		"Toggle Always On Top",
		"Pane 1 header",
		"Pane 2 header",
		"Pane 3 header",
		closeGlyph,
		"3 panes",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestViewHidesDockItems(t *testing.T) {
	a := newTestApp()
	a = sendWindowSize(a, 120, 40)
	a = sendKey(a, "t")
	view := a.View()

	if strings.Contains(view, infoText) || strings.Contains(view, "Close Window") {
		t.Error("expected dock items hidden")
	}
	if !strings.Contains(view, "Toggle Dock") || !strings.Contains(view, "Add Pane") {
		t.Error("expected persistent controls to stay")
	}
	if !strings.Contains(view, "Pane 1 header") {
		t.Error("expected panes to stay")
	}
}

func TestViewPaneHeaderRow(t *testing.T) {
	a := newTestApp()
	a = sendWindowSize(a, 120, 40)

	lines := strings.Split(a.View(), "\n")
	row := lines[headerRow]
	if !strings.Contains(row, "Pane 1 header") {
		t.Errorf("expected pane 1 header on row %d, got %q", headerRow, row)
	}
	if !strings.Contains(row, closeGlyph) {
		t.Errorf("expected close glyph on row %d", headerRow)
	}
}

func TestViewAlwaysOnTopTitle(t *testing.T) {
	a := newTestApp()
	a = sendWindowSize(a, 120, 40)
	a = sendKey(a, "o")

	if !strings.Contains(a.View(), "panedock (always on top)") {
		t.Error("expected always on top marker in the titlebar")
	}
}
