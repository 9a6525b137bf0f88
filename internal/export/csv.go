// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jeranaias/afftab/internal/aff"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter exports keyword tables to CSV format. One row per parameter
// line; commands without parameters get a single row with an empty
// parameter column so they are not lost in the export.
type CSVExporter struct {
	options *Options
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(opts *Options) *CSVExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &CSVExporter{options: opts}
}

// Export converts a keyword table to CSV format.
func (e *CSVExporter) Export(t *aff.Table, source string) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("table is nil")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"command", "index", "parameter"}); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}

	for _, cmd := range t.Commands() {
		params := t.CommandParameters(cmd)
		if len(params) == 0 {
			if err := w.Write([]string{cmd, "", ""}); err != nil {
				return nil, fmt.Errorf("write CSV row: %w", err)
			}
			continue
		}
		for i, p := range params {
			if err := w.Write([]string{cmd, strconv.Itoa(i), p}); err != nil {
				return nil, fmt.Errorf("write CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
