// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package aff implements the low-level reader for Hunspell-style affix
// (.aff) configuration files.
//
// An affix file is line oriented. Each meaningful line has the shape
//
//	COMMAND [PARAMETER-LINE]
//
// where COMMAND is the first whitespace-delimited token and everything
// after it is an opaque parameter string. A command may appear any number
// of times; the Table keeps one entry per distinct command with the
// parameter lines in file order.
//
// # Key Types
//
//   - Table: the keyword table built from a single pass over the input
//
// # Usage
//
// Parse a file and query it:
//
//	t := aff.New()
//	if err := t.ParseFile("hu_HU.aff"); err != nil {
//	    log.Fatal(err)
//	}
//	if t.IsCommandPresent("SFX") {
//	    for _, p := range t.CommandParameters("SFX") {
//	        fmt.Println(p)
//	    }
//	}
//
// The package never interprets parameter strings. Affix rule compilation,
// flag parsing and dictionary assembly are for higher layers.
package aff
