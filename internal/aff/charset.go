// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// charset.go - Character set handling for affix files.
//
// An affix file declares its own encoding with the SET command. Dictionaries
// in the wild still ship as ISO8859-x, KOI8 or Windows code pages, so the
// tool re-reads such files through a decoder before building the table.
package aff

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// SetCommand is the keyword that declares the file's character encoding.
const SetCommand = "SET"

// charsets maps normalized SET values to decoders. Names follow the set
// Hunspell accepts; UTF-8 is handled separately as the identity.
var charsets = map[string]encoding.Encoding{
	"ISO8859-1":   charmap.ISO8859_1,
	"ISO8859-2":   charmap.ISO8859_2,
	"ISO8859-3":   charmap.ISO8859_3,
	"ISO8859-4":   charmap.ISO8859_4,
	"ISO8859-5":   charmap.ISO8859_5,
	"ISO8859-6":   charmap.ISO8859_6,
	"ISO8859-7":   charmap.ISO8859_7,
	"ISO8859-8":   charmap.ISO8859_8,
	"ISO8859-9":   charmap.ISO8859_9,
	"ISO8859-10":  charmap.ISO8859_10,
	"ISO8859-13":  charmap.ISO8859_13,
	"ISO8859-14":  charmap.ISO8859_14,
	"ISO8859-15":  charmap.ISO8859_15,
	"KOI8-R":      charmap.KOI8R,
	"KOI8-U":      charmap.KOI8U,
	"CP1251":      charmap.Windows1251,
	"TIS620-2533": charmap.Windows874, // Windows-874 decodes TIS-620 as a superset
}

// normalizeCharset canonicalizes a SET value: uppercase, no surrounding
// whitespace, and the "microsoft-" prefix some dictionaries carry removed.
func normalizeCharset(name string) string {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "MICROSOFT-")
	return n
}

// IsUTF8 reports whether name declares UTF-8 (the identity encoding).
func IsUTF8(name string) bool {
	return normalizeCharset(name) == "UTF-8"
}

// DecodeReader wraps r so that bytes in the named encoding come out as
// UTF-8. For UTF-8 input r is returned unchanged. Unknown encoding names
// are an error.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	if IsUTF8(name) {
		return r, nil
	}
	enc, ok := charsets[normalizeCharset(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported affix encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Charsets returns the supported encoding names (UTF-8 included), sorted.
func Charsets() []string {
	names := make([]string, 0, len(charsets)+1)
	names = append(names, "UTF-8")
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeclaredCharset returns the encoding the parsed table declares via SET,
// or "UTF-8" when the file declares none. Hunspell uses the first SET
// occurrence and ignores the rest.
func (t *Table) DeclaredCharset() string {
	params := t.CommandParameters(SetCommand)
	if len(params) == 0 {
		return "UTF-8"
	}
	return strings.TrimSpace(params[0])
}
