// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and command handlers for
// afftab.
//
// # Commands
//
//   - inspect: parse an affix file and print its keyword table
//   - query: one-off presence/parameter lookups
//   - shell: interactive query REPL with history and completion
//   - export: write the table as JSON, Markdown or CSV
//   - watch: re-parse and reprint on file change
//   - browse: interactive TUI browser (dispatched from main)
//
// Non-interactive commands accept --json for machine-readable output; all
// output honors NO_COLOR and non-TTY stdout by dropping styling.
package cli
