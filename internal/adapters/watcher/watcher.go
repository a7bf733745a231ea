package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWindow is the debounce window applied to bursts of file events.
const DefaultWindow = 100 * time.Millisecond

var _ ports.InputWatcher = (*Watcher)(nil)

// Watcher implements ports.InputWatcher using fsnotify.
//
// The parent directories of the inputs are watched rather than the files, so
// editors that save by replacing the file keep triggering events.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a new Watcher coalescing events within window.
func NewWatcher(logger ports.Logger, window time.Duration) *Watcher {
	return &Watcher{logger: logger, window: window}
}

// Watch implements ports.InputWatcher.
func (w *Watcher) Watch(ctx context.Context, paths []string, ready func(), onChange func(paths []string)) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	// Events report absolute paths of the watched directories; callers get their own spelling back.
	targets := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve input path"), "path", path)
		}
		targets[abs] = path
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	debouncer := NewDebouncer(w.window, onChange)
	defer debouncer.Stop()

	// Events raised while ready runs stay queued on fsWatcher.Events.
	if ready != nil {
		ready()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if path, ok := targets[abs]; ok {
				debouncer.Add(path)
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}
