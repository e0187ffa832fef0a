package panels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/panedock/internal/ui/border"
	"github.com/justinpbarnett/panedock/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
	keys   help.KeyMap
	help   help.Model
}

func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "   "
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	h.Styles.FullDesc = styles.TextPrimaryStyle
	h.Styles.FullSeparator = styles.TextDimStyle
	return &HelpOverlay{
		width:  56,
		height: 12,
		keys:   keys,
		help:   h,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	content := "\n" + styles.TitleStyle.Render(" Keys") + "\n\n" +
		lipgloss.NewStyle().PaddingLeft(1).Render(h.help.FullHelpView(h.keys.FullHelp()))

	bottom := []key.Binding{
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "close")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
	return border.RenderPanel("Keybinds", content, bottom, h.width, h.height, true)
}
