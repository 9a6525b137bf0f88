// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/afftab/internal/aff"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// jsonDocument is the on-disk shape of a JSON export.
type jsonDocument struct {
	Source     string              `json:"source,omitempty"`
	ExportedAt string              `json:"exported_at,omitempty"`
	Charset    string              `json:"charset,omitempty"`
	Commands   int                 `json:"commands"`
	Table      map[string][]string `json:"table"`
}

// JSONExporter exports keyword tables to JSON format.
// NOTE: the table map marshals with sorted keys (encoding/json guarantees
// this), so exports of the same table are byte-for-byte reproducible apart
// from the timestamp.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// Export converts a keyword table to JSON format.
func (e *JSONExporter) Export(t *aff.Table, source string) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("table is nil")
	}

	doc := jsonDocument{
		Commands: t.Len(),
		Table:    t.Data(),
	}
	if e.options.IncludeMetadata {
		doc.Source = source
		doc.ExportedAt = time.Now().UTC().Format(time.RFC3339)
		doc.Charset = t.DeclaredCharset()
	}

	return json.MarshalIndent(doc, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
