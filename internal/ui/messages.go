package ui

import (
	"time"

	"github.com/justinpbarnett/panedock/internal/config"
	"github.com/justinpbarnett/panedock/internal/ui/panels"
)

// Aliases to the panels message types.

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// FrameMsg drives one animation frame.
type FrameMsg struct {
	At time.Time
}

// ConfigReloadedMsg carries a configuration re-read from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
