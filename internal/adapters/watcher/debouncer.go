package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces bursts of change events into one sorted batch of paths.
// Editors usually write a manifest in several steps (truncate, write, chmod);
// only the state after the burst is interesting.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	window  time.Duration
	emit    func(paths []string)
	stopped bool
}

// NewDebouncer creates a Debouncer calling emit once no event arrived for window.
func NewDebouncer(window time.Duration, emit func(paths []string)) *Debouncer {
	return &Debouncer{
		pending: make(map[string]struct{}),
		window:  window,
		emit:    emit,
	}
}

// Add records a changed path and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop drops pending paths. No batch is emitted after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.pending) == 0 {
		return
	}

	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	clear(d.pending)
	d.timer = nil

	// emit runs under the lock so it can never race with Stop.
	if d.emit != nil {
		d.emit(paths)
	}
}
