// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package browser provides the interactive keyword table browser for
// afftab.
//
// The browser shows the commands of a parsed affix file in a filterable
// list with the selected command's parameter lines in a side pane.
//
// Key bindings:
//
//	up/k, down/j   move selection
//	/              filter commands
//	esc            clear filter
//	pgup/pgdn      scroll parameters
//	q, ctrl+c      quit
package browser
