// Package watcher reports changes to the task file so the list can reload.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce groups the burst of events an atomic save produces into one call.
const debounce = 100 * time.Millisecond

const meaningfulOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

// Watcher calls a callback after files it watches change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	callback func()

	// names limits events to these base names. Empty means every file.
	names map[string]bool
}

// New watches every directory in dirs.
func New(dirs []string, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return &Watcher{fsw: fsw, callback: callback}, nil
}

// NewForFile watches a single file. The parent directory is watched so the
// file may be replaced by rename.
func NewForFile(path string, callback func()) (*Watcher, error) {
	w, err := New([]string{filepath.Dir(path)}, callback)
	if err != nil {
		return nil, err
	}
	w.names = map[string]bool{filepath.Base(path): true}
	return w, nil
}

// Run delivers debounced change notifications until ctx is done or the
// watcher is closed. errFn, when set, receives watcher errors.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.callback)
			mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&meaningfulOps == 0 {
		return false
	}
	if len(w.names) == 0 {
		return true
	}
	return w.names[filepath.Base(ev.Name)]
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
