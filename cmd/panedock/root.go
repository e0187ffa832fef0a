package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/justinpbarnett/panedock/internal/config"
	"github.com/justinpbarnett/panedock/internal/logging"
	"github.com/justinpbarnett/panedock/internal/ui"
)

type rootOptions struct {
	configPath string
	logLevel   string
	panes      int
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "panedock",
		Short: "A right-anchored dock of draggable panes in the terminal",
		Long: `panedock shows a virtual window holding a dock of fixed-size panes.
Drag a pane by its header to reorder it, click its close box to remove it,
and drag the backdrop to move the window.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runApp(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./panedock.yaml or ~/.config/panedock/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")
	cmd.Flags().IntVar(&opts.panes, "panes", 0, "number of panes to open at startup")

	cmd.AddCommand(newVersionCmd(), newUpdateCmd(), newConfigCmd(&opts))
	return cmd
}

// loadConfig resolves the config file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command, opts rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			return nil, err
		}
		cfg.Log.Level = opts.logLevel
	}
	if f := cmd.Flags().Lookup("panes"); f != nil && f.Changed {
		if opts.panes < 0 {
			return nil, fmt.Errorf("--panes must not be negative, got %d", opts.panes)
		}
		cfg.Dock.InitialPanes = opts.panes
	}
	return cfg, nil
}

// runApp runs the terminal program alongside the config watcher. The
// watcher stops when the program exits.
func runApp(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info().Str("config", cfg.Source).Int("panes", cfg.Dock.InitialPanes).Msg("starting panedock")

	p := tea.NewProgram(ui.NewApp(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(logging.WithContext(ctx, logger))
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		watchConfig(gctx, cfg.Source, p)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("panedock exited with error")
		return err
	}
	logger.Info().Msg("panedock stopped")
	return nil
}

// watchConfig forwards reloaded configs to the program. A watcher failure
// only disables live reload.
func watchConfig(ctx context.Context, path string, p *tea.Program) {
	logger := logging.FromContext(ctx)
	err := config.Watch(ctx, path, *logger, func(c *config.Config) {
		p.Send(ui.ConfigReloadedMsg{Config: c})
	})
	if err != nil {
		logger.Warn().Err(err).Msg("config reload disabled")
	}
}
