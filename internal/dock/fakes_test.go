package dock

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type recordingHost struct {
	layouts int
	frames  int
	updates int
}

func (h *recordingHost) RequestLayout()    { h.layouts++ }
func (h *recordingHost) RequestAnimFrame() { h.frames++ }
func (h *recordingHost) RequestUpdate()    { h.updates++ }

type recordingRemover struct {
	removed []int
}

func (r *recordingRemover) RemovePane(i int) { r.removed = append(r.removed, i) }

// mockWindow is a testify mock of WindowControl.
type mockWindow struct {
	mock.Mock
}

func (m *mockWindow) Position() Point {
	args := m.Called()
	return args.Get(0).(Point)
}
func (m *mockWindow) SetPosition(p Point)     { m.Called(p) }
func (m *mockWindow) Size() Size              { return m.Called().Get(0).(Size) }
func (m *mockWindow) SetSize(s Size)          { m.Called(s) }
func (m *mockWindow) ShowTitlebar(b bool)     { m.Called(b) }
func (m *mockWindow) SetAlwaysOnTop(b bool)   { m.Called(b) }
func (m *mockWindow) Close()                  { m.Called() }
func (m *mockWindow) SetInputRegion(r Region) { m.Called(r) }

// testRig is an engine over a 1000x500 window with default metrics.
type testRig struct {
	engine  *Engine
	host    *recordingHost
	remover *recordingRemover
	window  *mockWindow
}

func newTestRig(t *testing.T, ids ...int) *testRig {
	t.Helper()
	rig := &testRig{
		host:    &recordingHost{},
		remover: &recordingRemover{},
		window:  &mockWindow{},
	}
	rig.window.On("SetInputRegion", mock.Anything).Maybe()
	rig.engine = New(Config{
		Metrics: DefaultMetrics(),
		Tuning:  DefaultTuning(),
		Window:  rig.window,
		Host:    rig.host,
		Panes:   rig.remover,
		Logger:  zerolog.Nop(),
	})
	rig.engine.Reconcile(nil, identities(ids...))
	rig.engine.Layout(Size{Width: 1000, Height: 500}, true)
	return rig
}

func identities(ids ...int) []Identity {
	out := make([]Identity, len(ids))
	for i, id := range ids {
		out[i] = Identity{ID: id}
	}
	return out
}

func targets(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Target
	}
	return out
}

func displays(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Display
	}
	return out
}
