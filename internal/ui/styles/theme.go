package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)

	DesktopStyle  = lipgloss.NewStyle().Background(DesktopBg).Foreground(DesktopDot)
	DockStyle     = lipgloss.NewStyle().Background(DockBg).Foreground(TextPrimary)
	DockHintStyle = lipgloss.NewStyle().Background(DockBg).Foreground(TextSecondary).Italic(true)
	TitlebarStyle = lipgloss.NewStyle().Background(TitlebarBg).Foreground(TitleText).Bold(true)
	ControlsStyle = lipgloss.NewStyle().Background(ControlsBg).Foreground(TextPrimary)
	ButtonStyle   = lipgloss.NewStyle().Background(ButtonBg).Foreground(ButtonText)
	ArmedStyle    = lipgloss.NewStyle().Background(ButtonArmed).Foreground(lipgloss.Color("0"))
	PaneStyle     = lipgloss.NewStyle().Background(PaneBg).Foreground(PaneText)
	PaneEdgeStyle = lipgloss.NewStyle().Background(PaneBg).Foreground(PaneEdge)
	HeaderStyle   = lipgloss.NewStyle().Background(HeaderBg).Foreground(HeaderText).Bold(true)
	CloseStyle    = lipgloss.NewStyle().Background(CloseBg).Foreground(HeaderText)
	DraggedStyle  = lipgloss.NewStyle().Background(BorderFocused).Foreground(HeaderText).Bold(true)
)

// Apply selects the color scheme. "default" follows the terminal
// background; "dark" and "light" force one side of every AdaptiveColor.
func Apply(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}
