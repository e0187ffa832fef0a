package ui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/justinpbarnett/panedock/internal/config"
	"github.com/justinpbarnett/panedock/internal/dock"
	"github.com/justinpbarnett/panedock/internal/logging"
	"github.com/justinpbarnett/panedock/internal/state"
	"github.com/justinpbarnett/panedock/internal/ui/clipboard"
	"github.com/justinpbarnett/panedock/internal/ui/layout"
	"github.com/justinpbarnett/panedock/internal/ui/panels"
	"github.com/justinpbarnett/panedock/internal/ui/styles"
	"github.com/justinpbarnett/panedock/internal/ui/text"
	"github.com/justinpbarnett/panedock/internal/window"
)

// hostRequests records what the engine asked for during one message. The
// app acts on the flags once the message is handled.
type hostRequests struct {
	layout bool
	frame  bool
	update bool
}

func (h *hostRequests) RequestLayout()    { h.layout = true }
func (h *hostRequests) RequestAnimFrame() { h.frame = true }
func (h *hostRequests) RequestUpdate()    { h.update = true }

type App struct {
	config      *config.Config
	state       *state.App
	window      *window.Virtual
	engine      *dock.Engine
	host        *hostRequests
	prev        []dock.Identity
	grid        layout.Grid
	width       int
	height      int
	layout      layout.Layout
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	showHint    bool
	ready       bool
	log         zerolog.Logger

	frameInterval time.Duration
	framePending  bool
	lastFrame     time.Time

	// pressed is the button armed by the last press; it fires on release
	// over the same button.
	pressed control
	// titleGrab is set while the titlebar is dragged.
	titleGrab *dock.Point
}

func NewApp(cfg *config.Config, logger zerolog.Logger) App {
	log := logging.WithComponent(logger, "ui")
	styles.Apply(cfg.UI.Theme)

	showDock := config.Enabled(cfg.Window.ShowDock)
	onTop := config.Enabled(cfg.Window.AlwaysOnTop)

	st := state.New(showDock, onTop, logger)
	grid := layout.Grid{CellWidth: cfg.Window.CellWidth, CellHeight: cfg.Window.CellHeight}
	win := window.New(window.Options{
		Position:    dock.Point{X: cfg.Window.X, Y: cfg.Window.Y},
		Size:        dock.Size{Width: cfg.Window.Width, Height: cfg.Window.Height},
		TitleHeight: grid.CellHeight,
		Titlebar:    showDock,
		AlwaysOnTop: onTop,
		Logger:      logger,
	})
	host := &hostRequests{}

	eng := dock.New(dock.Config{
		Metrics: cfg.Dock.Metrics(),
		Tuning:  cfg.Animation.Tuning(),
		Window:  win,
		Host:    host,
		Panes:   st,
		Logger:  logger,
	})
	st.Subscribe(host.RequestUpdate)

	for range cfg.Dock.InitialPanes {
		st.AddPane()
	}
	prev := st.Snapshot()
	eng.Reconcile(nil, prev)
	host.update = false

	keys := DefaultKeyMap()
	return App{
		config:        cfg,
		state:         st,
		window:        win,
		engine:        eng,
		host:          host,
		prev:          prev,
		grid:          grid,
		statusBar:     panels.NewStatusBar(keys),
		keys:          keys,
		showHint:      runtime.GOOS == "linux",
		log:           log,
		frameInterval: cfg.Animation.FrameInterval(),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.relayout()
		return a.flush()

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case FrameMsg:
		elapsed := a.frameInterval
		if !a.lastFrame.IsZero() {
			elapsed = msg.At.Sub(a.lastFrame)
		}
		a.framePending = false
		a.engine.Tick(elapsed)
		a.statusBar.Tick()
		if a.host.frame {
			a.lastFrame = msg.At
		} else {
			a.lastFrame = time.Time{}
		}
		return a.flush()

	case ConfigReloadedMsg:
		a.applyConfig(msg.Config)
		return a.flush(a.flash("config reloaded", panels.FlashInfo))

	case tea.MouseMsg:
		a.handleMouse(msg)
		return a.flush()

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.Help):
		a.helpOverlay = panels.NewHelpOverlay(k)
		return a, nil
	case key.Matches(msg, k.AddPane):
		a.activate(controlAddPane)
	case key.Matches(msg, k.ToggleDock):
		a.activate(controlToggleDock)
	case key.Matches(msg, k.AlwaysOnTop):
		a.activate(controlAlwaysOnTop)
	case key.Matches(msg, k.Cancel):
		a.engine.Cancel()
		a.titleGrab = nil
		a.pressed = controlNone
	case key.Matches(msg, k.Up):
		a.nudge(0, -a.grid.CellHeight)
	case key.Matches(msg, k.Down):
		a.nudge(0, a.grid.CellHeight)
	case key.Matches(msg, k.Left):
		a.nudge(-a.grid.CellWidth, 0)
	case key.Matches(msg, k.Right):
		a.nudge(a.grid.CellWidth, 0)
	case key.Matches(msg, k.CopyLayout):
		return a.flush(a.copyLayout())
	}
	return a.flush()
}

// flush services the engine's requests after a message: reconcile, then
// layout, then at most one pending animation frame.
func (a App) flush(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	if a.host.update {
		a.host.update = false
		next := a.state.Snapshot()
		a.engine.Reconcile(a.prev, next)
		a.prev = next
		if a.engine.Animating() {
			a.host.frame = true
		}
	}
	if a.host.layout {
		a.host.layout = false
		ch := a.chrome()
		a.engine.SetControlsRect(a.grid.Units(ch.controls))
		a.engine.Layout(a.window.Size(), a.state.ShowDock())
	}
	if a.window.Closed() {
		a.log.Debug().Msg("window closed, quitting")
		return a, tea.Quit
	}
	if a.host.frame {
		a.host.frame = false
		if !a.framePending {
			a.framePending = true
			cmds = append(cmds, frameTick(a.frameInterval))
		}
	}
	a.syncStatus()
	return a, tea.Batch(cmds...)
}

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// activate runs a dock control, from a button release or its key.
func (a *App) activate(c control) {
	a.log.Debug().Stringer("control", c).Msg("control activated")
	switch c {
	case controlToggleDock:
		shown := a.state.ToggleDock()
		a.window.ShowTitlebar(shown)
		// A resize makes the window manager repaint the background.
		sz := a.window.Size()
		if shown {
			sz.Height -= a.grid.CellHeight
		} else {
			sz.Height += a.grid.CellHeight
		}
		a.window.SetSize(sz)
		a.host.RequestLayout()
	case controlAddPane:
		a.state.AddPane()
	case controlCloseWindow:
		a.window.Close()
	case controlAlwaysOnTop:
		a.window.SetAlwaysOnTop(a.state.ToggleAlwaysOnTop())
	}
}

func (a *App) nudge(dx, dy float64) {
	a.window.SetPosition(a.window.Position().Add(dock.Point{X: dx, Y: dy}))
	p := a.window.Position()
	a.log.Debug().Str("position", text.FormatPoint(p.X, p.Y)).Msg("window nudged")
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if msg.Y >= a.layout.DesktopHeight && msg.Action == tea.MouseActionPress {
		return
	}
	desk := a.grid.Point(msg.X, msg.Y)
	wp := a.window.ToWindow(desk)
	mode, _ := a.engine.Mode()
	dragging := mode != dock.Idle
	primary := msg.Button == tea.MouseButtonLeft

	switch msg.Action {
	case tea.MouseActionPress:
		if primary && a.window.TitlebarRect().Contains(desk) {
			a.titleGrab = &desk
			return
		}
		if !a.window.Accepts(desk) {
			a.log.Debug().Float64("x", desk.X).Float64("y", desk.Y).Msg("press passed through to desktop")
			return
		}
		if c := a.buttonAt(msg.X, msg.Y); c != controlNone {
			if primary {
				a.pressed = c
			}
			return
		}
		a.engine.PointerDown(wp, primary)

	case tea.MouseActionMotion:
		if a.titleGrab != nil {
			if primary {
				a.nudge(desk.X-a.titleGrab.X, desk.Y-a.titleGrab.Y)
				a.titleGrab = &desk
			}
			return
		}
		if dragging || a.window.Accepts(desk) {
			a.engine.PointerMove(wp, primary)
		}

	case tea.MouseActionRelease:
		if a.titleGrab != nil {
			a.titleGrab = nil
			return
		}
		if a.pressed != controlNone {
			c := a.pressed
			a.pressed = controlNone
			if a.buttonAt(msg.X, msg.Y) == c {
				a.activate(c)
			}
			return
		}
		if dragging || a.window.Accepts(desk) {
			a.engine.PointerUp(wp)
		}
	}
}

// buttonAt hit-tests the dock buttons at desktop cell (x, y).
func (a App) buttonAt(x, y int) control {
	origin := a.windowCells()
	return a.chrome().buttonAt(x-origin.X0, y-origin.Y0)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.config = cfg
	styles.Apply(cfg.UI.Theme)
	a.frameInterval = cfg.Animation.FrameInterval()
	a.engine.SetTuning(cfg.Animation.Tuning())
	if cfg.Dock.Metrics() != a.engine.Metrics() {
		a.engine.SetMetrics(cfg.Dock.Metrics())
	}
	a.relayout()
	a.log.Info().Str("file", cfg.Source).Msg("config applied")
}

func (a *App) relayout() {
	a.layout = layout.Calculate(a.width, a.height, config.Enabled(a.config.UI.ShowStatusBar))
	a.statusBar.SetSize(a.layout.StatusBarWidth)
	desktop := a.grid.Size(a.layout.DesktopWidth, a.layout.DesktopHeight)
	a.window.SetDesktop(desktop)
	a.host.RequestLayout()
	a.log.Debug().Str("desktop", text.FormatSize(desktop.Width, desktop.Height)).Msg("terminal resized")
}

func (a *App) syncStatus() {
	mode, i := a.engine.Mode()
	modeStr := mode.String()
	if mode == dock.DraggingPane && i < len(a.prev) {
		modeStr = fmt.Sprintf("dragging pane %d", a.prev[i].ID)
	}
	a.statusBar.SetStatus(panels.Status{
		Panes:       a.engine.Len(),
		Mode:        modeStr,
		DockShown:   a.state.ShowDock(),
		AlwaysOnTop: a.state.AlwaysOnTop(),
		Animating:   a.engine.Animating(),
	})
}

func (a *App) flash(msg string, level panels.FlashLevel) tea.Cmd {
	a.statusBar.SetFlashWithLevel(msg, level)
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func (a *App) copyLayout() tea.Cmd {
	out, err := a.layoutSnapshot().Marshal()
	if err != nil {
		a.log.Error().Err(err).Msg("encoding layout")
		return a.flash("copy failed: "+err.Error(), panels.FlashError)
	}
	if err := clipboard.Write(string(out)); err != nil {
		a.log.Warn().Err(err).Msg("clipboard write failed")
		return a.flash("copy failed: "+err.Error(), panels.FlashError)
	}
	return a.flash("layout copied", panels.FlashSuccess)
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	full := a.renderDesktop()
	if a.layout.StatusBarHeight > 0 {
		full = lipgloss.JoinVertical(lipgloss.Left, full, a.statusBar.View())
	}

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}

	return full
}
