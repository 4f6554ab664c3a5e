package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/pluqqy/blockpad/pkg/models"
)

// PageCallback receives a freshly parsed page, or the error that stopped it
// from loading
type PageCallback func(page *models.Page, err error)

const reloadDebounce = 100 * time.Millisecond

// WatchPage re-reads the page file whenever it changes and hands the result
// to cb until ctx is cancelled. The parent directory is watched so editors
// that save by renaming a temp file over the page are picked up.
func WatchPage(ctx context.Context, path string, logger zerolog.Logger, cb PageCallback) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	logger.Info().Str("path", abs).Msg("watcher: started")

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info().Msg("watcher: stopped")
			return nil

		case <-timerCh:
			timerCh = nil
			page, err := ReadPage(abs)
			if err != nil {
				logger.Warn().Err(err).Str("path", abs).Msg("watcher: reload failed")
			} else {
				logger.Debug().Str("path", abs).Int("blocks", len(page.Blocks)).Msg("watcher: reloaded")
			}
			cb(page, err)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			timerCh = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher: error")
		}
	}
}
