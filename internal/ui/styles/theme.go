// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the afftab TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the browser view.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER / STATUS
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style

	// ==========================================================================
	// KEYWORD LIST
	// ==========================================================================

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListCount    lipgloss.Style

	// ==========================================================================
	// PARAMETER PANE
	// ==========================================================================

	PanelBorder lipgloss.Style
	ParamText   lipgloss.Style
	ParamIndex  lipgloss.Style
	EmptyHint   lipgloss.Style

	// ==========================================================================
	// FILTER INPUT
	// ==========================================================================

	FilterPrompt lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. appearance is
// the configured color scheme: "dark" and "light" force the background
// assumption, anything else ("auto") uses terminal detection.
func NewTheme(appearance string) *Theme {
	colorProfile := termenv.ColorProfile()

	isDark := termenv.HasDarkBackground()
	switch appearance {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	// AdaptiveColor resolves against the renderer's background assumption,
	// so a forced scheme has to be pushed down to lipgloss.
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ListItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ListSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 1)

	t.ListCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PanelBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ParamText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ParamIndex = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.EmptyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FilterPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
}
