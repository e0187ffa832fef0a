package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestHelpOverlayRenders(t *testing.T) {
	h := NewHelpOverlay(newTestKeys())

	tm := teatest.NewTestModel(t, wrapHelpOverlay(h), teatest.WithInitialTermSize(60, 20))
	waitForAll(t, tm, "Keybinds", "toggle dock")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}

func TestStatusBarRenders(t *testing.T) {
	sb := NewStatusBar(newTestKeys())
	sb.SetSize(100)
	sb.SetStatus(Status{Panes: 2, DockShown: true})

	tm := teatest.NewTestModel(t, wrapStatusBar(&sb), teatest.WithInitialTermSize(100, 5))
	waitForContains(t, tm, "2 panes")
	tm.Send(tea.QuitMsg{})
	tm.FinalModel(t, teatest.WithFinalTimeout(waitDuration))
}
