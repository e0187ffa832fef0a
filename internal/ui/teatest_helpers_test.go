package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/rs/zerolog"

	"github.com/justinpbarnett/panedock/internal/config"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) into a pointer model so
// teatest can drive it without the real Init side effects.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) *appAdapter {
	tb.Helper()
	cfg := config.DefaultConfig()
	a := NewApp(&cfg, zerolog.Nop())
	a.showHint = false
	return &appAdapter{app: a}
}

func (a *appAdapter) Init() tea.Cmd {
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}
