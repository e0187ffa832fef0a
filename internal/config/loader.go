package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using dir as the starting point for file discovery.
func LoadFrom(dir string) (*Config, error) {
	path, err := discoverConfigPath(dir)
	if err != nil {
		return nil, fmt.Errorf("config discovery: %w", err)
	}
	return LoadFile(path)
}

// LoadFile loads an explicit config file on top of the defaults. An empty
// path yields defaults plus environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
		cfg.Source = path
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first config
// file that exists. Returns empty string if none found (defaults-only mode).
func discoverConfigPath(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, "panedock.yaml"),
		filepath.Join(dir, "panedock.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "panedock", "config.yaml"),
			filepath.Join(home, ".config", "panedock", "config.toml"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// loadFromFile reads a YAML or TOML config file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Marshal renders cfg as YAML, or TOML when asTOML is set.
func Marshal(cfg *Config, asTOML bool) ([]byte, error) {
	if !asTOML {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// merge overlays override onto base. Scalar fields override when non-zero.
// Pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// Dock
	if override.Dock.Spacing != 0 {
		base.Dock.Spacing = override.Dock.Spacing
	}
	if override.Dock.PaneWidth != 0 {
		base.Dock.PaneWidth = override.Dock.PaneWidth
	}
	if override.Dock.PaneHeight != 0 {
		base.Dock.PaneHeight = override.Dock.PaneHeight
	}
	if override.Dock.HeaderHeight != 0 {
		base.Dock.HeaderHeight = override.Dock.HeaderHeight
	}
	if override.Dock.CloseWidth != 0 {
		base.Dock.CloseWidth = override.Dock.CloseWidth
	}
	if override.Dock.InitialPanes != 0 {
		base.Dock.InitialPanes = override.Dock.InitialPanes
	}

	// Animation
	if override.Animation.FrameIntervalMS != 0 {
		base.Animation.FrameIntervalMS = override.Animation.FrameIntervalMS
	}
	if override.Animation.ReferenceFrameMS != 0 {
		base.Animation.ReferenceFrameMS = override.Animation.ReferenceFrameMS
	}
	if override.Animation.MinSpeed != 0 {
		base.Animation.MinSpeed = override.Animation.MinSpeed
	}
	if override.Animation.Easing != 0 {
		base.Animation.Easing = override.Animation.Easing
	}
	if override.Animation.MinCorrection != 0 {
		base.Animation.MinCorrection = override.Animation.MinCorrection
	}
	if override.Animation.MaxCorrection != 0 {
		base.Animation.MaxCorrection = override.Animation.MaxCorrection
	}

	// Window
	if override.Window.Width != 0 {
		base.Window.Width = override.Window.Width
	}
	if override.Window.Height != 0 {
		base.Window.Height = override.Window.Height
	}
	if override.Window.X != 0 {
		base.Window.X = override.Window.X
	}
	if override.Window.Y != 0 {
		base.Window.Y = override.Window.Y
	}
	if override.Window.CellWidth != 0 {
		base.Window.CellWidth = override.Window.CellWidth
	}
	if override.Window.CellHeight != 0 {
		base.Window.CellHeight = override.Window.CellHeight
	}
	if override.Window.AlwaysOnTop != nil {
		base.Window.AlwaysOnTop = override.Window.AlwaysOnTop
	}
	if override.Window.ShowDock != nil {
		base.Window.ShowDock = override.Window.ShowDock
	}

	// UI
	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
	if override.UI.ShowStatusBar != nil {
		base.UI.ShowStatusBar = override.UI.ShowStatusBar
	}

	// Log
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}
	if override.Log.File != "" {
		base.Log.File = override.Log.File
	}
}

// applyEnvOverrides applies PANEDOCK_* environment variables on top of the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PANEDOCK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PANEDOCK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("PANEDOCK_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("PANEDOCK_SPACING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Dock.Spacing = f
		} else {
			fmt.Fprintf(os.Stderr, "warning: PANEDOCK_SPACING=%q is not a valid number, ignoring\n", v)
		}
	}
}
