package config

import (
	"time"

	"github.com/justinpbarnett/panedock/internal/dock"
)

type Config struct {
	Dock      DockConfig      `yaml:"dock" toml:"dock"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Window    WindowConfig    `yaml:"window" toml:"window"`
	UI        UIConfig        `yaml:"ui" toml:"ui"`
	Log       LogConfig       `yaml:"log" toml:"log"`

	// Source is the file the config was read from, empty for defaults only.
	Source string `yaml:"-" toml:"-"`
}

// DockConfig is the pane geometry, in pixel units.
type DockConfig struct {
	Spacing      float64 `yaml:"spacing" toml:"spacing"`
	PaneWidth    float64 `yaml:"pane_width" toml:"pane_width"`
	PaneHeight   float64 `yaml:"pane_height" toml:"pane_height"`
	HeaderHeight float64 `yaml:"header_height" toml:"header_height"`
	CloseWidth   float64 `yaml:"close_width" toml:"close_width"`
	InitialPanes int     `yaml:"initial_panes" toml:"initial_panes"`
}

type AnimationConfig struct {
	FrameIntervalMS  int     `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
	ReferenceFrameMS int     `yaml:"reference_frame_ms" toml:"reference_frame_ms"`
	MinSpeed         float64 `yaml:"min_speed" toml:"min_speed"`
	Easing           float64 `yaml:"easing" toml:"easing"`
	MinCorrection    float64 `yaml:"min_correction" toml:"min_correction"`
	MaxCorrection    float64 `yaml:"max_correction" toml:"max_correction"`
}

// WindowConfig places the virtual window on the terminal. Cell sizes map
// one terminal cell to pixel units.
type WindowConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	X           float64 `yaml:"x" toml:"x"`
	Y           float64 `yaml:"y" toml:"y"`
	CellWidth   float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight  float64 `yaml:"cell_height" toml:"cell_height"`
	AlwaysOnTop *bool   `yaml:"always_on_top" toml:"always_on_top"`
	ShowDock    *bool   `yaml:"show_dock" toml:"show_dock"`
}

type UIConfig struct {
	Theme         string `yaml:"theme" toml:"theme"`
	ShowStatusBar *bool  `yaml:"show_status_bar" toml:"show_status_bar"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

func (c DockConfig) Metrics() dock.Metrics {
	return dock.Metrics{
		Spacing:      c.Spacing,
		PaneWidth:    c.PaneWidth,
		PaneHeight:   c.PaneHeight,
		HeaderHeight: c.HeaderHeight,
		CloseWidth:   c.CloseWidth,
	}
}

func (c AnimationConfig) Tuning() dock.Tuning {
	return dock.Tuning{
		ReferenceFrame: time.Duration(c.ReferenceFrameMS) * time.Millisecond,
		MinSpeed:       c.MinSpeed,
		Easing:         c.Easing,
		MinCorrection:  c.MinCorrection,
		MaxCorrection:  c.MaxCorrection,
	}
}

func (c AnimationConfig) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// Enabled dereferences an optional flag.
func Enabled(b *bool) bool {
	return b != nil && *b
}
