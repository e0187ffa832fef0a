package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	AddPane     key.Binding
	ToggleDock  key.Binding
	AlwaysOnTop key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CopyLayout  key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddPane: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add pane"),
		),
		ToggleDock: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle dock"),
		),
		AlwaysOnTop: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "always on top"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move window up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move window down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move window left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move window right"),
		),
		CopyLayout: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy layout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddPane, k.ToggleDock, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddPane, k.ToggleDock, k.AlwaysOnTop, k.CopyLayout},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cancel, k.Help, k.Quit},
	}
}
