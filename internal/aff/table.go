// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// table.go - Keyword table builder for affix files.
//
// The table maps an uppercased command keyword to the ordered list of raw
// parameter strings that followed each occurrence of that keyword. It is a
// purely lexical pass: no command is validated, no parameter is parsed.
package aff

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
)

// maxLineBytes is the largest single line Parse accepts. Real affix files
// top out at a few KB per line (long TRY or REP sets); 1 MiB leaves plenty
// of headroom without letting a corrupt file exhaust memory.
const maxLineBytes = 1 << 20

// =============================================================================
// TABLE
// =============================================================================

// Table is the keyword table built from an affix source.
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Table struct {
	table map[string][]string
}

// New creates an empty keyword table.
func New() *Table {
	return &Table{table: make(map[string][]string)}
}

// Reset discards all accumulated entries. Idempotent.
func (t *Table) Reset() {
	t.table = make(map[string][]string)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse consumes r line by line until end of input and records every
// command occurrence in the table.
//
// Per line:
//   - blank lines and lines whose first non-space character is '#' are
//     skipped entirely
//   - the first whitespace-delimited token, uppercased, becomes the key;
//     the key is registered even when nothing follows it
//   - the remainder after the whitespace following the token is appended
//     verbatim, trailing spaces and embedded '#' included
//
// A final line without a trailing newline is processed like any other.
//
// Parse appends into whatever state the table already holds; call Reset
// first for a fresh table. On a read error the table is emptied, including
// entries accumulated from earlier lines of the same call, and the error
// is returned. A nil return means the whole input was consumed.
func (t *Table) Parse(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		t.addLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		// Whole-call failure: either Parse succeeds completely or the
		// table ends up empty.
		t.Reset()
		return fmt.Errorf("read affix source: %w", err)
	}
	return nil
}

// ParseFile opens path and parses it. See Parse for semantics.
func (t *Table) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open affix file: %w", err)
	}
	defer f.Close()
	return t.Parse(f)
}

// addLine records a single source line in the table.
func (t *Table) addLine(line string) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" || trimmed[0] == '#' {
		return // whole-line comment or blank
	}

	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		// Command with no remainder: register the key only.
		t.register(strings.ToUpper(trimmed))
		return
	}

	key := strings.ToUpper(trimmed[:end])
	rest := strings.TrimLeftFunc(trimmed[end:], unicode.IsSpace)
	if rest == "" {
		// All-whitespace remainder counts the same as no remainder.
		t.register(key)
		return
	}
	t.table[key] = append(t.table[key], rest)
}

// register ensures key exists without appending a parameter.
func (t *Table) register(key string) {
	if _, ok := t.table[key]; !ok {
		t.table[key] = nil
	}
}

// =============================================================================
// QUERIES
// =============================================================================

// IsCommandPresent reports whether cmd occurred at least once in the
// parsed input. cmd must already be uppercase; no normalization is done
// on the caller's behalf.
func (t *Table) IsCommandPresent(cmd string) bool {
	_, ok := t.table[cmd]
	return ok
}

// CommandParameters returns the parameter lines recorded for cmd in file
// order. An absent command and a command that never carried parameters
// both return an empty slice; use IsCommandPresent to tell them apart.
//
// The returned slice is a view into the table. It stays valid only until
// the next Parse or Reset on the same Table.
func (t *Table) CommandParameters(cmd string) []string {
	return t.table[cmd]
}

// Data returns the full keyword mapping for iteration. The map is the
// table's own storage: treat it as read only, and do not hold it across
// a Parse or Reset.
func (t *Table) Data() map[string][]string {
	return t.table
}

// Commands returns all recorded keywords in sorted order. Useful for
// deterministic display and export.
func (t *Table) Commands() []string {
	keys := make([]string, 0, len(t.table))
	for k := range t.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct commands in the table.
func (t *Table) Len() int {
	return len(t.table)
}
