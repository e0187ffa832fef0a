package panels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/panedock/internal/ui/styles"
	"github.com/justinpbarnett/panedock/internal/ui/text"
)

const flashDurationVal = 5 * time.Second

var statusSpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

// Status is the dock state summarised in the status bar.
type Status struct {
	Panes       int
	Mode        string
	DockShown   bool
	AlwaysOnTop bool
	Animating   bool
}

type StatusBar struct {
	width      int
	status     Status
	keys       help.KeyMap
	help       help.Model
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
	tickStep   int
}

func NewStatusBar(keys help.KeyMap) StatusBar {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	h.Styles.ShortSeparator = styles.TextDimStyle
	h.Styles.Ellipsis = styles.TextDimStyle
	return StatusBar{keys: keys, help: h}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	appName := "panedock " + Version
	if s.status.Animating {
		frame := statusSpinnerFrames[s.tickStep%len(statusSpinnerFrames)]
		spinner := lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(frame)
		appName = spinner + " " + appName
	}
	version := styles.TextSecondaryStyle.Render(appName)

	panes := lipgloss.NewStyle().Foreground(styles.StatusSuccess).Render(text.Plural(s.status.Panes, "pane"))

	mode := s.status.Mode
	if mode == "" {
		mode = "idle"
	}
	modeStr := lipgloss.NewStyle().Foreground(styles.StatusRunning).Render(mode)

	flags := styles.TextSecondaryStyle.Render(
		"dock " + text.OnOff(s.status.DockShown) + "  on top " + text.OnOff(s.status.AlwaysOnTop),
	)

	left := " " + version + sep + panes + sep + modeStr + sep + flags

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusRunning
		}
		flashStr := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + s.flash)
		left += sep + flashStr
	}

	leftWidth := lipgloss.Width(left)

	// Key hints get whatever room the summary leaves.
	right := ""
	if s.keys != nil {
		h := s.help
		h.Width = s.width - leftWidth - 2
		if h.Width > 0 {
			right = h.ShortHelpView(s.keys.ShortHelp()) + " "
		}
	}

	return text.PadRight(left+" ", s.width-lipgloss.Width(right)) + right
}

func (s *StatusBar) SetStatus(st Status) {
	s.status = st
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

// Tick advances the animation frame for the status bar spinner.
func (s *StatusBar) Tick() {
	s.tickStep++
}
