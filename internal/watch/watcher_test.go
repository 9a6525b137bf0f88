// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPollingWatcher_DetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.aff")
	writeFile(t, path, "SET UTF-8\n")

	changed := make(chan string, 4)
	pw := NewPollingWatcher(path, 20*time.Millisecond, func(p string) {
		changed <- p
	})
	if err := pw.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer pw.Close()

	// Different length guarantees detection even with coarse mtime.
	writeFile(t, path, "SET UTF-8\nTRY abcdef\n")

	select {
	case p := <-changed:
		if p != path {
			t.Errorf("handler got %q, want %q", p, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestPollingWatcher_NoSpuriousEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.aff")
	writeFile(t, path, "SET UTF-8\n")

	changed := make(chan string, 4)
	pw := NewPollingWatcher(path, 20*time.Millisecond, func(p string) {
		changed <- p
	})
	if err := pw.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer pw.Close()

	select {
	case <-changed:
		t.Fatal("handler fired without a file change")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFsnotifyWatcher_DetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.aff")
	writeFile(t, path, "SET UTF-8\n")

	changed := make(chan string, 4)
	fw, err := NewFsnotifyWatcher(path, 50*time.Millisecond, func(p string) {
		changed <- p
	})
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := fw.Watch(); err != nil {
		t.Skipf("fsnotify watch failed: %v", err)
	}
	defer fw.Close()

	writeFile(t, path, "SET UTF-8\nTRY abcdef\n")

	select {
	case p := <-changed:
		if p != path {
			t.Errorf("handler got %q, want %q", p, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestFsnotifyWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.aff")
	writeFile(t, path, "SET UTF-8\n")

	changed := make(chan string, 4)
	fw, err := NewFsnotifyWatcher(path, 20*time.Millisecond, func(p string) {
		changed <- p
	})
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := fw.Watch(); err != nil {
		t.Skipf("fsnotify watch failed: %v", err)
	}
	defer fw.Close()

	// A change to another file in the same directory must not fire.
	writeFile(t, filepath.Join(dir, "other.dic"), "1\nszó/AB\n")

	select {
	case p := <-changed:
		t.Fatalf("handler fired for sibling change: %q", p)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStart_FallsBackOrSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.aff")
	writeFile(t, path, "SET UTF-8\n")

	w, err := Start(path, 20*time.Millisecond, 20*time.Millisecond, func(string) {})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
