package watcher_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filedep/internal/adapters/logger"
	"go.trai.ch/filedep/internal/adapters/watcher"
)

func newWatcher() *watcher.Watcher {
	return watcher.NewWatcher(20*time.Millisecond, logger.NewWithWriter(io.Discard, slog.LevelInfo))
}

func TestWatcher_ReportsManifestWrite(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := newWatcher()
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	received := make(chan []string, 1)
	go func() {
		for paths := range w.Changes() {
			received <- paths
			return
		}
	}()

	require.NoError(t, os.WriteFile(manifest, []byte(`{"name":"x"}`), 0o600))

	select {
	case paths := <-received:
		assert.Contains(t, paths, manifest)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change batch")
	}
}

func TestWatcher_ContextCancelEndsChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	w := newWatcher()
	require.NoError(t, w.Start(ctx, dir))

	done := make(chan struct{})
	go func() {
		for range w.Changes() {
		}
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("changes did not end after cancel")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w := newWatcher()
	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestWatcher_StartTwice(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := newWatcher()
	require.NoError(t, w.Start(ctx, t.TempDir()))
	defer func() { _ = w.Stop() }()

	require.Error(t, w.Start(ctx, t.TempDir()))
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w := newWatcher()
	require.NoError(t, w.Stop())

	var count int
	for range w.Changes() {
		count++
	}
	assert.Zero(t, count)
}
