// Package watcher reports changes of manifest directories using fsnotify.
package watcher

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/filedep/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default quiet period before a batch is emitted.
const DefaultDebounceWindow = 100 * time.Millisecond

// Watcher implements ports.Watcher. Directories are watched non-recursively.
type Watcher struct {
	window time.Duration
	log    ports.Logger

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	changes   chan []string
}

// NewWatcher creates a Watcher. Nothing is opened until Start.
func NewWatcher(window time.Duration, log ports.Logger) *Watcher {
	return &Watcher{
		window: window,
		log:    log,
	}
}

// Start watches dirs until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, dirs ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return zerr.New("watcher already started")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	for _, dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	// A single slot is enough: a pending batch already triggers a full refresh.
	changes := make(chan []string, 1)
	debouncer := NewDebouncer(w.window, func(paths []string) {
		select {
		case changes <- paths:
		default:
		}
	})

	w.fsWatcher = fsWatcher
	w.changes = changes

	go w.processEvents(ctx, fsWatcher, debouncer, changes)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	if err != nil {
		return zerr.Wrap(err, "failed to stop file watcher")
	}
	return nil
}

// Changes yields debounced batches of changed paths until the watcher stops.
func (w *Watcher) Changes() iter.Seq[[]string] {
	w.mu.Lock()
	changes := w.changes
	w.mu.Unlock()

	return func(yield func([]string) bool) {
		if changes == nil {
			return
		}
		for paths := range changes {
			if !yield(paths) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, debouncer *Debouncer, changes chan []string) {
	defer close(changes)
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				debouncer.Add(event.Name)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error: " + err.Error())
		}
	}
}
