// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Lip Gloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/afftab/internal/ui/styles"
)

var (
	// Command keyword in table output
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Parameter lines
	paramStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// Counts and hints
	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// Success indicator (command present)
	successStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	// Error / absent indicator
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// Warnings (unknown charset etc.)
	warnStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Section header (file name banner)
	headerStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)
)

// styled applies style only when colored output is enabled; otherwise the
// raw text passes through untouched.
func styled(style lipgloss.Style, s string, plain bool) string {
	if plain || !UseColor() {
		return s
	}
	return style.Render(s)
}
