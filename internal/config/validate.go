package config

import (
	"fmt"
	"strings"

	"github.com/justinpbarnett/panedock/internal/logging"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be positive, got %g", name, v))
		}
	}

	// Dock geometry
	if cfg.Dock.Spacing < 0 {
		errs = append(errs, fmt.Sprintf("dock.spacing must not be negative, got %g", cfg.Dock.Spacing))
	}
	positive("dock.pane_width", cfg.Dock.PaneWidth)
	positive("dock.pane_height", cfg.Dock.PaneHeight)
	positive("dock.header_height", cfg.Dock.HeaderHeight)
	positive("dock.close_width", cfg.Dock.CloseWidth)
	if cfg.Dock.CloseWidth > cfg.Dock.PaneWidth {
		errs = append(errs, fmt.Sprintf("dock.close_width %g must not exceed dock.pane_width %g", cfg.Dock.CloseWidth, cfg.Dock.PaneWidth))
	}
	if cfg.Dock.InitialPanes < 0 {
		errs = append(errs, fmt.Sprintf("dock.initial_panes must not be negative, got %d", cfg.Dock.InitialPanes))
	}

	// Animation
	if cfg.Animation.FrameIntervalMS <= 0 {
		errs = append(errs, fmt.Sprintf("animation.frame_interval_ms must be positive, got %d", cfg.Animation.FrameIntervalMS))
	}
	if cfg.Animation.ReferenceFrameMS <= 0 {
		errs = append(errs, fmt.Sprintf("animation.reference_frame_ms must be positive, got %d", cfg.Animation.ReferenceFrameMS))
	}
	positive("animation.min_speed", cfg.Animation.MinSpeed)
	if cfg.Animation.Easing <= 0 || cfg.Animation.Easing > 1 {
		errs = append(errs, fmt.Sprintf("animation.easing must be in (0, 1], got %g", cfg.Animation.Easing))
	}
	positive("animation.min_correction", cfg.Animation.MinCorrection)
	if cfg.Animation.MinCorrection > cfg.Animation.MaxCorrection {
		errs = append(errs, fmt.Sprintf("animation.min_correction %g must not exceed animation.max_correction %g", cfg.Animation.MinCorrection, cfg.Animation.MaxCorrection))
	}

	// Window
	positive("window.width", cfg.Window.Width)
	positive("window.height", cfg.Window.Height)
	positive("window.cell_width", cfg.Window.CellWidth)
	positive("window.cell_height", cfg.Window.CellHeight)

	// UI
	switch cfg.UI.Theme {
	case "default", "dark", "light":
	default:
		errs = append(errs, fmt.Sprintf("ui.theme %q must be \"default\", \"dark\", or \"light\"", cfg.UI.Theme))
	}

	// Log
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q must be \"console\" or \"json\"", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
