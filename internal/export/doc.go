// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides keyword table export functionality for afftab.
//
// This package supports exporting a parsed affix keyword table to various
// formats with optional metadata.
//
// # Key Types
//
//   - Exporter: Main export interface
//   - Options: Export configuration options
//
// # Supported Formats
//
//   - JSON: Machine-readable with full metadata
//   - Markdown: Human-readable with per-command sections
//   - CSV: One row per parameter line, for spreadsheets
//
// # Usage
//
// Export a table to a file:
//
//	exporter := export.NewJSONExporter(opts)
//	path, err := export.ExportToFile(table, "hu_HU.aff", exporter, opts)
package export
