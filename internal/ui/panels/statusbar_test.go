package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStatusBarCounts(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(120)
	sb.SetStatus(Status{Panes: 3, Mode: "dragging pane 2", DockShown: true})

	view := sb.View()
	if !strings.Contains(view, "3 panes") {
		t.Error("expected pane count in status bar")
	}
	if !strings.Contains(view, "dragging pane 2") {
		t.Error("expected drag mode in status bar")
	}
	if !strings.Contains(view, "dock on") || !strings.Contains(view, "on top off") {
		t.Errorf("expected flags in status bar, got %q", view)
	}
}

func TestStatusBarIdleMode(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(120)

	if view := sb.View(); !strings.Contains(view, "idle") {
		t.Error("expected 'idle' when no mode is set")
	}
}

func TestStatusBarHelpHint(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(140)

	view := sb.View()
	if !strings.Contains(view, "add pane") || !strings.Contains(view, "quit") {
		t.Errorf("expected short help in status bar, got %q", view)
	}
}

func TestStatusBarNarrowDropsHints(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(40)

	if view := sb.View(); strings.Contains(view, "add pane") {
		t.Errorf("expected hints dropped in a narrow bar, got %q", view)
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(140)
	sb.SetStatus(Status{Panes: 1})

	if w := lipgloss.Width(sb.View()); w != 140 {
		t.Errorf("width %d, want 140", w)
	}
}

func TestStatusBarVersion(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(80)

	view := sb.View()
	if !strings.Contains(view, "panedock") {
		t.Error("expected 'panedock' in status bar")
	}
}

func TestStatusBarFlash(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(120)
	sb.SetFlashWithLevel("layout copied", FlashSuccess)

	if view := sb.View(); !strings.Contains(view, "✓ layout copied") {
		t.Errorf("expected flash, got %q", view)
	}

	sb.ClearFlash()
	if view := sb.View(); strings.Contains(view, "layout copied") {
		t.Error("expected flash cleared")
	}
}

func TestStatusBarSpinnerWhileAnimating(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetSize(80)
	sb.SetStatus(Status{Animating: true})

	if view := sb.View(); !strings.Contains(view, statusSpinnerFrames[0]) {
		t.Error("expected spinner frame while animating")
	}
	sb.Tick()
	if view := sb.View(); !strings.Contains(view, statusSpinnerFrames[1]) {
		t.Error("expected spinner to advance on Tick")
	}
}
