// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/afftab/internal/aff"
	"github.com/jeranaias/afftab/internal/config"
)

func testModel(t *testing.T) Model {
	t.Helper()
	tbl := aff.New()
	src := "SET UTF-8\nSFX A Y 2\nSFX A abc qwe .\nPFX B N 1\nCOMPLEXPREFIXES\n"
	if err := tbl.Parse(strings.NewReader(src)); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m := New(tbl, "test.aff")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down", "up", "esc", "enter":
		types := map[string]tea.KeyType{
			"down": tea.KeyDown, "up": tea.KeyUp,
			"esc": tea.KeyEsc, "enter": tea.KeyEnter,
		}
		return tea.KeyMsg{Type: types[s]}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_InitialState(t *testing.T) {
	m := testModel(t)

	if len(m.keys) != 4 {
		t.Fatalf("keys = %v, want 4 commands", m.keys)
	}
	// Commands are sorted.
	if m.keys[0] != "COMPLEXPREFIXES" {
		t.Errorf("keys[0] = %q, want COMPLEXPREFIXES", m.keys[0])
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestModel_CursorMovement(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.cursor)
	}

	// Moving above the first entry stays put.
	updated, _ = m.Update(keyMsg("up"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor must not go negative, got %d", m.cursor)
	}
}

func TestModel_Filter(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(Model)
	if !m.filtering {
		t.Fatal("'/' must enter filter mode")
	}

	for _, r := range "fx" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	// "fx" matches SFX and PFX, case-insensitively.
	if len(m.filtered) != 2 {
		t.Fatalf("filtered = %v, want SFX and PFX", m.filtered)
	}

	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	if m.filtering {
		t.Error("enter must leave filter mode")
	}
	if len(m.filtered) != 2 {
		t.Error("filter must persist after enter")
	}

	// esc in browse mode clears the filter.
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)
	if len(m.filtered) != len(m.keys) {
		t.Errorf("esc must clear the filter, got %v", m.filtered)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("'q' must return a quit command")
	}
}

func TestModel_View(t *testing.T) {
	m := testModel(t)

	view := m.View()
	if !strings.Contains(view, "test.aff") {
		t.Error("view missing source name")
	}
	if !strings.Contains(view, "COMPLEXPREFIXES") {
		t.Error("view missing first command")
	}
	if !strings.Contains(view, "4/4 commands") {
		t.Error("view missing command count")
	}
}

func TestModel_ParamPreviewWidth(t *testing.T) {
	cfg := config.Default()
	cfg.UI.ParamPreviewWidth = 12
	config.SetGlobal(cfg)
	t.Cleanup(config.ResetGlobalForTesting)

	tbl := aff.New()
	src := "SFX A abcdefghijklmnopqrstuvwxyz0123456789\n"
	if err := tbl.Parse(strings.NewReader(src)); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	m := New(tbl, "test.aff")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	// The pane is wide enough for the whole parameter; the configured
	// preview width must still cut it off.
	view := m.View()
	if strings.Contains(view, "0123456789") {
		t.Error("parameter preview must truncate to the configured width")
	}
	if !strings.Contains(view, "…") {
		t.Error("truncated preview must end with an ellipsis")
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	tbl := aff.New()
	m := New(tbl, "x.aff")
	if m.View() == "" {
		t.Error("View() before the first WindowSizeMsg must still render")
	}
}
