package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultReloadDelay = 200 * time.Millisecond

// Watcher reloads a config file and its includes when they change on disk.
type Watcher struct {
	path    string
	environ map[string]string
	delay   time.Duration
	logger  *slog.Logger
}

// NewWatcher returns a Watcher for the config file at path.
func NewWatcher(path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{
		path:   path,
		delay:  defaultReloadDelay,
		logger: logger,
	}
}

// Run watches until ctx is done. Each burst of writes triggers one reload;
// results that load and validate are passed to onChange, failures are
// logged and the previous config stays in effect.
func (w *Watcher) Run(ctx context.Context, onChange func(*LoadResult)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer fw.Close()

	dirs := make(map[string]struct{})
	targets := make(map[string]struct{})
	track := func(files []string) {
		for _, f := range append([]string{w.path}, files...) {
			f = filepath.Clean(f)
			targets[f] = struct{}{}
			dir := filepath.Dir(f)
			if _, ok := dirs[dir]; ok {
				continue
			}
			// Watch the directory: editors replace files by rename.
			if err := fw.Add(dir); err != nil {
				w.logger.Debug("cannot watch config directory", "dir", dir, "error", err)
				continue
			}
			dirs[dir] = struct{}{}
		}
	}

	if res, err := loadFromPath(w.path, w.environ); err == nil {
		track(res.Files)
	} else {
		track(nil)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("failed to watch %s", w.path)
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if _, hit := targets[filepath.Clean(ev.Name)]; !hit {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				reload = time.After(w.delay)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-reload:
			reload = nil
			res, err := loadFromPath(w.path, w.environ)
			if err != nil {
				w.logger.Warn("config reload failed", "error", err)
				continue
			}
			track(res.Files)
			onChange(res)
		}
	}
}
