// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for afftab.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete afftab configuration.
type Config struct {
	Version string `toml:"version"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Watch configuration
	Watch WatchConfig `toml:"watch"`

	// Export configuration
	Export ExportConfig `toml:"export"`
}

// UIConfig holds terminal output and browser settings.
type UIConfig struct {
	// Theme selects the color scheme: "dark", "light" or "auto".
	Theme string `toml:"theme"`

	// ParamPreviewWidth is the maximum display width for a parameter
	// line in the browser's preview pane before truncation.
	ParamPreviewWidth int `toml:"param_preview_width"`
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	// DebounceMs is how long a file must stay quiet before a change
	// event fires. Editors often write a file several times in a burst.
	DebounceMs int `toml:"debounce_ms"`

	// PollIntervalSecs is the polling fallback interval used when
	// fsnotify is unavailable.
	PollIntervalSecs int `toml:"poll_interval_secs"`
}

// Debounce returns the debounce window as a duration.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// PollInterval returns the polling fallback interval as a duration.
func (w WatchConfig) PollInterval() time.Duration {
	return time.Duration(w.PollIntervalSecs) * time.Second
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	// OutputDir is where exported tables land. Empty means the current
	// working directory.
	OutputDir string `toml:"output_dir"`

	// Format is the default export format: "json", "markdown" or "csv".
	Format string `toml:"format"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			Theme:             "auto",
			ParamPreviewWidth: 60,
		},
		Watch: WatchConfig{
			DebounceMs:       300,
			PollIntervalSecs: 5,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Format:    "json",
		},
	}
}

// =============================================================================
// CONFIG FILE PATHS
// =============================================================================

// ConfigDir returns the afftab configuration directory (~/.afftab).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".afftab"), nil
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when no file exists. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode TOML file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides overrides config fields from AFFTAB_* environment
// variables. Unset or malformed values leave the field untouched.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("AFFTAB_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("AFFTAB_PARAM_PREVIEW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.ParamPreviewWidth = n
		}
	}
	if v := os.Getenv("AFFTAB_WATCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Watch.DebounceMs = n
		}
	}
	if v := os.Getenv("AFFTAB_EXPORT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("AFFTAB_EXPORT_FORMAT"); v != "" {
		c.Export.Format = v
	}
}

// SetDefaults fills zero-valued fields with their defaults. Applies after
// decoding so a partial config file works.
func (c *Config) SetDefaults() {
	def := Default()
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.ParamPreviewWidth == 0 {
		c.UI.ParamPreviewWidth = def.UI.ParamPreviewWidth
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = def.Watch.DebounceMs
	}
	if c.Watch.PollIntervalSecs == 0 {
		c.Watch.PollIntervalSecs = def.Watch.PollIntervalSecs
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = def.Export.OutputDir
	}
	if c.Export.Format == "" {
		c.Export.Format = def.Export.Format
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.UI.ParamPreviewWidth < 10 {
		errs = append(errs, ValidationError{
			Field:   "ui.param_preview_width",
			Message: fmt.Sprintf("must be at least 10, got %d", c.UI.ParamPreviewWidth),
		})
	}

	if c.Watch.DebounceMs < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce_ms",
			Message: "cannot be negative",
		})
	}
	if c.Watch.PollIntervalSecs < 1 {
		errs = append(errs, ValidationError{
			Field:   "watch.poll_interval_secs",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Watch.PollIntervalSecs),
		})
	}

	validFormats := map[string]bool{"json": true, "markdown": true, "csv": true}
	if !validFormats[strings.ToLower(c.Export.Format)] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: json, markdown, csv", c.Export.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first use.
// A load failure falls back to defaults so callers always get a usable
// config.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ResetGlobalForTesting clears the cached global config. Test helper only.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = nil
}
