package ports

import (
	"context"
	"iter"
)

// Watcher reports file changes inside directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching dirs. Watching ends when ctx is done or Stop is called.
	Start(ctx context.Context, dirs ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes yields batches of changed paths until the watcher stops.
	Changes() iter.Seq[[]string]
}
