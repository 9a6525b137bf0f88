// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch provides file watching for afftab's watch mode.
//
// The watcher observes a single affix file and invokes a handler once the
// file has settled after a change. It prefers fsnotify and falls back to
// polling when the platform's notification facility is unavailable.
package watch
