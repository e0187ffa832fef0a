package config

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Dock: DockConfig{
			Spacing:      10,
			PaneWidth:    300,
			PaneHeight:   400,
			HeaderHeight: 25,
			CloseWidth:   25,
			InitialPanes: 3,
		},
		Animation: AnimationConfig{
			FrameIntervalMS:  16,
			ReferenceFrameMS: 16,
			MinSpeed:         20,
			Easing:           0.15,
			MinCorrection:    0.25,
			MaxCorrection:    1.25,
		},
		Window: WindowConfig{
			Width:       1000,
			Height:      575,
			X:           20,
			Y:           50,
			CellWidth:   10,
			CellHeight:  25,
			AlwaysOnTop: boolPtr(false),
			ShowDock:    boolPtr(true),
		},
		UI: UIConfig{
			Theme:         "default",
			ShowStatusBar: boolPtr(true),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
