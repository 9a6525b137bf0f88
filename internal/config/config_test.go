// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("UI.Theme = %q, want auto", cfg.UI.Theme)
	}
	if cfg.Watch.Debounce().Milliseconds() != int64(cfg.Watch.DebounceMs) {
		t.Error("Debounce() disagrees with DebounceMs")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[ui]
theme = "dark"
param_preview_width = 40

[export]
format = "markdown"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.UI.ParamPreviewWidth != 40 {
		t.Errorf("UI.ParamPreviewWidth = %d, want 40", cfg.UI.ParamPreviewWidth)
	}
	if cfg.Export.Format != "markdown" {
		t.Errorf("Export.Format = %q, want markdown", cfg.Export.Format)
	}

	// Fields the file omits keep their previous values.
	if cfg.Watch.DebounceMs != Default().Watch.DebounceMs {
		t.Errorf("Watch.DebounceMs = %d, want default", cfg.Watch.DebounceMs)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("AFFTAB_THEME", "light")
	t.Setenv("AFFTAB_WATCH_DEBOUNCE_MS", "150")
	t.Setenv("AFFTAB_PARAM_PREVIEW_WIDTH", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.Watch.DebounceMs != 150 {
		t.Errorf("Watch.DebounceMs = %d, want 150", cfg.Watch.DebounceMs)
	}
	if cfg.UI.ParamPreviewWidth != Default().UI.ParamPreviewWidth {
		t.Error("malformed numeric env var must leave the field untouched")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"preview width too small", func(c *Config) { c.UI.ParamPreviewWidth = 5 }, true},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -1 }, true},
		{"zero poll interval", func(c *Config) { c.Watch.PollIntervalSecs = 0 }, true},
		{"bad export format", func(c *Config) { c.Export.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal() can be
// safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
