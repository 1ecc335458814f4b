// Package watch re-runs highlighting when watched files change.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mwpeters/hilite/pkg/errors"
	"github.com/mwpeters/hilite/pkg/logging"
)

// Watcher debounces change events for a fixed set of files and invokes a
// callback per changed file.
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	onChange func(path string)
	logger   zerolog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher for the given files. onChange runs on its own
// goroutine after a path has been quiet for the debounce interval.
func New(files []string, debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New(errors.ErrWatchSetup, "nothing to watch")
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrWatchSetup, "cannot resolve %s", f)
		}
		watched[abs] = true
	}

	return &Watcher{
		files:    watched,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.GetLogger("watch"),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
//
// The parent directories are watched rather than the files themselves:
// editors typically replace files on save, which would otherwise drop the
// watch.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatchSetup, "cannot create filesystem watcher")
	}
	defer func() { _ = fsw.Close() }()

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrWatchSetup, "cannot watch %s", dir)
		}
		w.logger.Debug().Str("dir", dir).Msg("Watching directory")
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("Watch cancelled")
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	path := event.Name
	if !w.files[path] {
		return
	}

	w.logger.Debug().Str("path", path).Str("op", event.Op.String()).Msg("Change detected")

	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.onChange(path)
	})
}
