package core

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change to the
// configuration file before applying it.
const DefaultDebounce = 500 * time.Millisecond

// WatchOptions controls Watch.
type WatchOptions struct {
	Apply    ApplyOptions
	Debounce time.Duration

	// OnApply receives the outcome of every apply triggered by a change.
	OnApply func(*ApplyResult, error)
}

// Watch re-applies the configuration each time its file changes, until ctx
// is cancelled. It does not apply on start. A failed apply is reported to
// OnApply and watching continues.
func Watch(ctx context.Context, opts WatchOptions) error {
	logger := logging.GetLogger("core.watch")

	dir, cfgPath, err := resolveLocations(opts.Apply.Directory, opts.Apply.ConfigPath)
	if err != nil {
		return err
	}
	cfgPath, err = filepath.Abs(cfgPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve config path %s", cfgPath)
	}

	applyOpts := opts.Apply
	applyOpts.Directory = dir
	applyOpts.ConfigPath = cfgPath

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrIO, "failed to create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	// Editors replace files on save; watching the directory survives that.
	if err := watcher.Add(filepath.Dir(cfgPath)); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to watch %s", filepath.Dir(cfgPath))
	}
	logger.Info().Str("config", cfgPath).Msg("Watching configuration")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cfgPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("Configuration changed")
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("File watcher error")

		case <-timer.C:
			result, err := Apply(applyOpts)
			if err != nil {
				logger.Error().Err(err).Msg("Apply after change failed")
			}
			if opts.OnApply != nil {
				opts.OnApply(result, err)
			}
		}
	}
}
