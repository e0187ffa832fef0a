package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := validate(&cfg); err != nil {
		t.Fatalf("DefaultConfig() should pass validation, got: %v", err)
	}
}

func TestValidateSingleField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative spacing", func(c *Config) { c.Dock.Spacing = -1 }, "dock.spacing"},
		{"zero pane width", func(c *Config) { c.Dock.PaneWidth = 0 }, "dock.pane_width"},
		{"close wider than pane", func(c *Config) { c.Dock.CloseWidth = 400 }, "dock.close_width"},
		{"negative initial panes", func(c *Config) { c.Dock.InitialPanes = -2 }, "dock.initial_panes"},
		{"zero frame interval", func(c *Config) { c.Animation.FrameIntervalMS = 0 }, "animation.frame_interval_ms"},
		{"easing above one", func(c *Config) { c.Animation.Easing = 1.5 }, "animation.easing"},
		{"inverted correction", func(c *Config) { c.Animation.MinCorrection = 2 }, "animation.min_correction"},
		{"zero cell height", func(c *Config) { c.Window.CellHeight = 0 }, "window.cell_height"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := validate(&cfg)
			if err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error about %s, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateZeroSpacingAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.Spacing = 0
	if err := validate(&cfg); err != nil {
		t.Errorf("zero spacing should be valid, got: %v", err)
	}
}

func TestValidateMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dock.PaneHeight = -1
	cfg.Animation.MinSpeed = 0
	cfg.UI.Theme = "neon"
	cfg.Log.Format = "xml"

	err := validate(&cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if len(ve.Errors) != 4 {
		t.Errorf("expected 4 validation errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func TestLoadWrapsValidationError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PANEDOCK_THEME", "neon")

	_, err := LoadFrom(t.TempDir())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected wrapped *ValidationError, got %v", err)
	}
}
