package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/internal/adapters/watcher"
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/core/ports"
)

func TestWatcher_ReportsConfigChanges(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(config, []byte("version: \"1\"\n"), domain.PrivateFilePerm))

	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, config))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	// Unrelated files in the same directory are filtered out.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(config, []byte("version: \"1\"\nentry: ./a.js\n"), domain.PrivateFilePerm))

	select {
	case ev := <-events:
		assert.Equal(t, config, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config event")
	}
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, t.TempDir()))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events iterator did not end after cancel")
	}
}
