package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors: AdaptiveColor{Light, Dark}
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}

	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim       = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusRunning = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}

	// Desktop and window chrome
	DesktopBg   = lipgloss.AdaptiveColor{Light: "#f4f4f6", Dark: "#16161e"}
	DesktopDot  = lipgloss.AdaptiveColor{Light: "#d8d8de", Dark: "#24283b"}
	DockBg      = lipgloss.AdaptiveColor{Light: "#e3e6ee", Dark: "#1f2335"}
	TitlebarBg  = lipgloss.AdaptiveColor{Light: "#c8d8f0", Dark: "#283457"}
	ControlsBg  = lipgloss.AdaptiveColor{Light: "#d6dae4", Dark: "#2a2f45"}
	ButtonBg    = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#3d59a1"}
	ButtonText  = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#c0caf5"}
	ButtonArmed = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}

	// Panes
	PaneBg     = lipgloss.AdaptiveColor{Light: "#b8bcc8", Dark: "#414868"}
	PaneText   = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#a9b1d6"}
	HeaderBg   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	HeaderText = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#c0caf5"}
	CloseBg    = lipgloss.AdaptiveColor{Light: "#a0a8be", Dark: "#6b7399"}
	PaneEdge   = lipgloss.AdaptiveColor{Light: "#6b7089", Dark: "#1a1b26"}
)
