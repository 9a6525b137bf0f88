// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/afftab/internal/aff"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports keyword tables to Markdown format.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a keyword table to Markdown format.
func (e *MarkdownExporter) Export(t *aff.Table, source string) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("table is nil")
	}

	var sb strings.Builder

	// YAML frontmatter with metadata
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("source: %s\n", escapeYAML(source)))
		sb.WriteString(fmt.Sprintf("charset: %s\n", escapeYAML(t.DeclaredCharset())))
		sb.WriteString(fmt.Sprintf("commands: %d\n", t.Len()))
		sb.WriteString(fmt.Sprintf("exported: %s\n", time.Now().UTC().Format(time.RFC3339)))
		sb.WriteString("generator: afftab\n")
		sb.WriteString("---\n\n")
	}

	sb.WriteString("# Affix keyword table\n\n")

	for _, cmd := range t.Commands() {
		params := t.CommandParameters(cmd)
		sb.WriteString(fmt.Sprintf("## %s\n\n", cmd))
		if len(params) == 0 {
			sb.WriteString("_no parameters_\n\n")
			continue
		}
		for _, p := range params {
			// Backticks keep embedded '#' and whitespace visible.
			sb.WriteString(fmt.Sprintf("- `%s`\n", p))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// escapeYAML escapes a string for use in YAML frontmatter.
func escapeYAML(s string) string {
	if strings.ContainsAny(s, ":#\"'\n") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
