package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/justinpbarnett/panedock/internal/logging"
)

// reloadDelay coalesces the burst of events a single save produces.
var reloadDelay = 100 * time.Millisecond

// Watch reloads path whenever it changes and hands each valid result to
// onChange. Events are coalesced until the file has been quiet for
// reloadDelay, and an empty file is treated as a save still in progress.
// Invalid edits are logged and skipped; the last good config stays in
// effect. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save by rename keep being picked up.
func Watch(ctx context.Context, path string, logger zerolog.Logger, onChange func(*Config)) error {
	if path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	log := logging.WithComponent(logger, "config").With().Str("file", abs).Logger()
	log.Debug().Msg("watching config")

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Msg("config change detected")
			timer.Reset(reloadDelay)
			pending = timer.C
		case <-pending:
			pending = nil
			if info, err := os.Stat(abs); err != nil || info.Size() == 0 {
				log.Debug().Msg("config file empty or missing, waiting for the next write")
				continue
			}
			cfg, err := LoadFile(abs)
			if err != nil {
				log.Warn().Err(err).Msg("failed to reload config")
				continue
			}
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
