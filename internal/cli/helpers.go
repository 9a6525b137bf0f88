// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared helpers for CLI command handlers.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/afftab/internal/aff"
)

// LoadTable parses the affix file at path into a fresh table, honoring
// the file's SET charset declaration. charsetOverride, when non-empty,
// wins over the declaration. An unknown charset falls back to the raw
// byte-for-byte parse with a warning on stderr rather than failing; the
// table structure is intact either way, only non-ASCII parameter bytes
// differ.
func LoadTable(path, charsetOverride string) (*aff.Table, error) {
	t := aff.New()
	if err := t.ParseFile(path); err != nil {
		return nil, err
	}

	charset := charsetOverride
	if charset == "" {
		charset = t.DeclaredCharset()
	}
	if aff.IsUTF8(charset) {
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reopen affix file: %w", err)
	}
	defer f.Close()

	r, err := aff.DecodeReader(f, charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v; using raw bytes\n",
			styled(warnStyle, "Warning:", false), err)
		return t, nil
	}

	t.Reset()
	if err := t.Parse(r); err != nil {
		return nil, err
	}
	return t, nil
}

// requireFile returns the first positional argument or an error when the
// command was called without a file.
func requireFile(args *ArgParser, command string) (string, error) {
	path := args.Positional(0)
	if path == "" {
		return "", fmt.Errorf("usage: afftab %s FILE", command)
	}
	return path, nil
}
