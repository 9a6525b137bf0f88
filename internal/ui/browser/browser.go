// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/afftab/internal/aff"
	"github.com/jeranaias/afftab/internal/config"
	"github.com/jeranaias/afftab/internal/ui/styles"
)

// listWidth is the fixed width of the keyword list pane.
const listWidth = 28

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the keyword table browser.
type Model struct {
	table  *aff.Table
	source string
	theme  *styles.Theme

	keys     []string // all commands, sorted
	filtered []string // commands matching the filter
	cursor   int      // index into filtered

	filter    textinput.Model
	filtering bool

	params viewport.Model

	// previewWidth caps parameter line width in the preview pane;
	// 0 means pane width only.
	previewWidth int

	width  int
	height int
	ready  bool
}

// New creates a browser model over a parsed table. source is shown in the
// header.
func New(table *aff.Table, source string) Model {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/"
	filter.CharLimit = 64

	cfg := config.Global()
	m := Model{
		table:        table,
		source:       source,
		theme:        styles.NewTheme(cfg.UI.Theme),
		keys:         table.Commands(),
		filter:       filter,
		previewWidth: cfg.UI.ParamPreviewWidth,
	}
	m.filtered = m.keys
	return m
}

// Run opens the browser in the alternate screen and blocks until quit.
func Run(table *aff.Table, source string) error {
	p := tea.NewProgram(New(table, source), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshParams()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

// updateBrowsing handles keys while the list has focus.
func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refreshParams()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.refreshParams()
		}

	case "home", "g":
		m.cursor = 0
		m.refreshParams()

	case "end", "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
			m.refreshParams()
		}

	case "pgup":
		m.params.HalfViewUp()

	case "pgdown":
		m.params.HalfViewDown()

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	}

	return m, nil
}

// updateFiltering handles keys while the filter input has focus.
func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible command list from the filter value.
// Matching is a case-insensitive substring test; commands are stored
// uppercase so folding the needle suffices.
func (m *Model) applyFilter() {
	needle := strings.ToUpper(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		m.filtered = m.keys
	} else {
		filtered := make([]string, 0, len(m.keys))
		for _, k := range m.keys {
			if strings.Contains(k, needle) {
				filtered = append(filtered, k)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	m.refreshParams()
}

// layout resizes the parameter viewport to the current window.
func (m *Model) layout() {
	paramsWidth := m.width - listWidth - 4
	if paramsWidth < 20 {
		paramsWidth = 20
	}
	// header + status + filter line
	paramsHeight := m.height - 4
	if paramsHeight < 3 {
		paramsHeight = 3
	}
	m.params.Width = paramsWidth
	m.params.Height = paramsHeight
}

// refreshParams fills the viewport with the selected command's parameters.
func (m *Model) refreshParams() {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		m.params.SetContent(m.theme.EmptyHint.Render("no matching commands"))
		return
	}

	cmd := m.filtered[m.cursor]
	params := m.table.CommandParameters(cmd)
	if len(params) == 0 {
		m.params.SetContent(m.theme.EmptyHint.Render("command present, no parameters"))
		return
	}

	limit := maxInt(m.params.Width-5, 10)
	if m.previewWidth > 0 && m.previewWidth < limit {
		limit = m.previewWidth
	}

	var sb strings.Builder
	for i, p := range params {
		idx := m.theme.ParamIndex.Render(fmt.Sprintf("%3d ", i+1))
		text := m.theme.ParamText.Render(runewidth.Truncate(p, limit, "…"))
		sb.WriteString(idx + text + "\n")
	}
	m.params.SetContent(sb.String())
	m.params.GotoTop()
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.theme.Header.Width(m.width).Render(
		"afftab — " + m.source)

	list := m.renderList()
	paramsPane := m.theme.PanelBorder.Render(m.params.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, paramsPane)

	var filterLine string
	if m.filtering || m.filter.Value() != "" {
		filterLine = m.theme.FilterPrompt.Render(m.filter.View())
	} else {
		filterLine = m.theme.EmptyHint.Render("press / to filter")
	}

	status := m.theme.StatusBar.Width(m.width).Render(fmt.Sprintf(
		"%d/%d commands  %s",
		len(m.filtered), len(m.keys),
		m.theme.StatusKey.Render("q")+" quit  "+
			m.theme.StatusKey.Render("/")+" filter  "+
			m.theme.StatusKey.Render("pgup/pgdn")+" scroll"))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, filterLine, status)
}

// renderList renders the keyword list pane with the cursor highlighted.
func (m Model) renderList() string {
	visible := m.params.Height
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor on screen with a simple scrolling window.
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		cmd := m.filtered[i]
		count := m.theme.ListCount.Render(fmt.Sprintf(" %d", len(m.table.CommandParameters(cmd))))
		label := runewidth.Truncate(cmd, listWidth-6, "…")
		if i == m.cursor {
			sb.WriteString(m.theme.ListSelected.Render(label) + count)
		} else {
			sb.WriteString(m.theme.ListItem.Render(label) + count)
		}
		sb.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		sb.WriteString(m.theme.EmptyHint.Render("nothing matches"))
	}

	return lipgloss.NewStyle().Width(listWidth).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
