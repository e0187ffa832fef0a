package border

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/justinpbarnett/panedock/internal/ui/styles"
)

// RenderKeybind renders a binding hint as [key] desc, the key in KeybindKey
// color (bold) and the description in KeybindLabel.
func RenderKeybind(b key.Binding) string {
	h := b.Help()
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+h.Key+"]") + labelStyle.Render(" "+h.Desc)
}

// KeybindWidth returns the display width of a rendered binding hint.
func KeybindWidth(b key.Binding) int {
	h := b.Help()
	return 3 + lipgloss.Width(h.Key) + lipgloss.Width(h.Desc)
}
