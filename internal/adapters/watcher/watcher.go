// Package watcher reports changes to the project config file.
package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/assemble/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 64

// Watcher implements ports.Watcher using fsnotify.
//
// Watching a file watches its parent directory and filters events down to the
// file, so that editors replacing the file by rename keep being observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
	errs      func(error)

	mu    sync.RWMutex
	files map[string]bool
	dirs  map[string]bool
}

// NewWatcher creates a new file system watcher. onError receives fsnotify errors
// and may be nil.
func NewWatcher(onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: fsw,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		errs:      onError,
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
	}, nil
}

// Start begins watching paths and processing events until ctx is canceled.
func (w *Watcher) Start(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve watch path"), "path", p)
		}

		target := abs
		info, statErr := os.Stat(abs)
		w.mu.Lock()
		if statErr == nil && info.IsDir() {
			w.dirs[abs] = true
		} else {
			w.files[abs] = true
			target = filepath.Dir(abs)
		}
		w.mu.Unlock()

		if err := w.fsWatcher.Add(target); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch path"), "path", target)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			watchEvent, ok := w.convertEvent(event)
			if !ok {
				continue
			}
			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.errs != nil {
				w.errs(err)
			}
		}
	}
}

// convertEvent maps an fsnotify event onto a WatchEvent, dropping events for
// files that are not watched.
func (w *Watcher) convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	w.mu.RLock()
	relevant := w.files[path] || w.dirs[filepath.Dir(path)]
	w.mu.RUnlock()
	if !relevant {
		return ports.WatchEvent{}, false
	}

	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}

	return ports.WatchEvent{Path: path, Operation: op}, true
}
