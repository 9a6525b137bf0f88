// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the watched path after a change has settled.
type Handler func(path string)

// =============================================================================
// FILE WATCHER INTERFACE
// =============================================================================

// FileWatcher is the interface for file watching implementations
type FileWatcher interface {
	// Watch starts watching for file changes
	Watch() error

	// Close stops watching and releases resources
	Close() error
}

// Start creates and starts a watcher for path. It tries fsnotify first and
// falls back to polling. The handler runs on the watcher's goroutine; keep
// it short or hand off to a channel.
func Start(path string, debounce, pollInterval time.Duration, onChange Handler) (FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	if fw, err := NewFsnotifyWatcher(abs, debounce, onChange); err == nil {
		if err := fw.Watch(); err == nil {
			return fw, nil
		}
		fw.Close()
	}

	pw := NewPollingWatcher(abs, pollInterval, onChange)
	if err := pw.Watch(); err != nil {
		return nil, err
	}
	return pw, nil
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher implements FileWatcher using fsnotify
type FsnotifyWatcher struct {
	path     string
	debounce time.Duration
	onChange Handler
	watcher  *fsnotify.Watcher

	mu      sync.Mutex
	pending time.Time // zero when no change is pending
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based watcher for a single file.
func NewFsnotifyWatcher(path string, debounce time.Duration, onChange Handler) (*FsnotifyWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FsnotifyWatcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for file changes.
func (fw *FsnotifyWatcher) Watch() error {
	// Watch the parent directory, not the file itself: editors typically
	// replace a file by rename, which drops a watch on the file path.
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processPending()

	return nil
}

// processEvents processes file system events.
func (fw *FsnotifyWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.markPending()
			}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event still arrives
			// or the poller takes over at the caller's discretion.
		}
	}
}

// markPending records that the file changed and restarts the settle clock.
func (fw *FsnotifyWatcher) markPending() {
	fw.mu.Lock()
	fw.pending = time.Now()
	fw.mu.Unlock()
}

// processPending fires the handler once a pending change has settled.
func (fw *FsnotifyWatcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			fw.mu.Lock()
			fire := !fw.pending.IsZero() && time.Since(fw.pending) >= fw.debounce
			if fire {
				fw.pending = time.Time{}
			}
			fw.mu.Unlock()

			if fire {
				fw.onChange(fw.path)
			}
		}
	}
}

// Close stops watching and releases resources.
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher implements FileWatcher using periodic stat polling.
type PollingWatcher struct {
	path     string
	interval time.Duration
	onChange Handler

	mu      sync.Mutex
	modTime time.Time
	size    int64
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewPollingWatcher creates a new polling-based watcher.
func NewPollingWatcher(path string, interval time.Duration, onChange Handler) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		path:     path,
		interval: interval,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch starts watching for file changes.
func (pw *PollingWatcher) Watch() error {
	// Record the baseline; a missing file counts as "not yet seen" and
	// fires once it appears.
	if info, err := os.Stat(pw.path); err == nil {
		pw.modTime = info.ModTime()
		pw.size = info.Size()
	}

	go pw.poll()
	return nil
}

// poll periodically checks for file changes.
func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			if pw.checkChanged() {
				pw.onChange(pw.path)
			}
		}
	}
}

// checkChanged reports whether the file differs from the last observation
// and updates the baseline.
func (pw *PollingWatcher) checkChanged() bool {
	info, err := os.Stat(pw.path)
	if err != nil {
		return false // gone or unreadable; fire again when it returns
	}

	pw.mu.Lock()
	defer pw.mu.Unlock()

	changed := !info.ModTime().Equal(pw.modTime) || info.Size() != pw.size
	pw.modTime = info.ModTime()
	pw.size = info.Size()
	return changed
}

// Close stops watching.
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}
