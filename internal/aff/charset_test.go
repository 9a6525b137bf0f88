// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package aff

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestDecodeReader_UTF8Identity(t *testing.T) {
	src := strings.NewReader("SET UTF-8\n")
	r, err := DecodeReader(src, "UTF-8")
	if err != nil {
		t.Fatalf("DecodeReader() error = %v", err)
	}
	if r != src {
		t.Error("UTF-8 must be the identity: same reader expected back")
	}
}

func TestDecodeReader_Latin1(t *testing.T) {
	// "TRY <a-umlaut><o-umlaut>" in ISO8859-1 bytes.
	raw := []byte{'T', 'R', 'Y', ' ', 0xE4, 0xF6, '\n'}

	r, err := DecodeReader(bytes.NewReader(raw), "ISO8859-1")
	if err != nil {
		t.Fatalf("DecodeReader() error = %v", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got, want := string(decoded), "TRY äö\n"; got != want {
		t.Errorf("decoded = %q, want %q", got, want)
	}
}

func TestDecodeReader_NameNormalization(t *testing.T) {
	for _, name := range []string{"iso8859-2", " ISO8859-2 ", "microsoft-cp1251", "koi8-r"} {
		if _, err := DecodeReader(strings.NewReader(""), name); err != nil {
			t.Errorf("DecodeReader(%q) error = %v, want nil", name, err)
		}
	}
}

func TestDecodeReader_Unknown(t *testing.T) {
	if _, err := DecodeReader(strings.NewReader(""), "EBCDIC"); err == nil {
		t.Error("DecodeReader with an unknown encoding must return an error")
	}
}

func TestTable_DeclaredCharset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no SET defaults to UTF-8", "TRY abc\n", "UTF-8"},
		{"explicit SET", "SET ISO8859-2\n", "ISO8859-2"},
		{"first SET wins", "SET KOI8-R\nSET UTF-8\n", "KOI8-R"},
		{"trailing whitespace trimmed", "SET UTF-8 \n", "UTF-8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New()
			if err := tbl.Parse(strings.NewReader(tt.input)); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := tbl.DeclaredCharset(); got != tt.want {
				t.Errorf("DeclaredCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCharsets(t *testing.T) {
	names := Charsets()
	if len(names) == 0 {
		t.Fatal("Charsets() returned nothing")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"UTF-8", "ISO8859-1", "KOI8-R", "CP1251"} {
		if !seen[want] {
			t.Errorf("Charsets() missing %q", want)
		}
	}
}
