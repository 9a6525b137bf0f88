// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// inspect.go - Inspect command handler for afftab CLI.
//
// Handles "afftab inspect FILE": parses the file and prints the keyword
// table sorted by command.
//
// Examples:
//   afftab inspect hu_HU.aff
//   afftab inspect --json hu_HU.aff
//   afftab inspect --charset ISO8859-2 old.aff
package cli

import (
	"fmt"

	"github.com/jeranaias/afftab/internal/aff"
)

// inspectData is the JSON payload for the inspect command.
type inspectData struct {
	Source   string              `json:"source"`
	Charset  string              `json:"charset"`
	Commands int                 `json:"commands"`
	Table    map[string][]string `json:"table"`
}

// HandleInspect parses an affix file and prints its keyword table.
func HandleInspect(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	path, err := requireFile(args, "inspect")
	if err != nil {
		return err
	}

	table, err := LoadTable(path, args.Flag("charset"))
	if err != nil {
		if args.BoolFlag("json") {
			return NewJSONErrorResponse("inspect", err).Print()
		}
		return err
	}

	if args.BoolFlag("json") {
		return NewJSONResponse("inspect", inspectData{
			Source:   path,
			Charset:  table.DeclaredCharset(),
			Commands: table.Len(),
			Table:    table.Data(),
		}).Print()
	}

	printTable(table, path, args.BoolFlag("plain"))
	return nil
}

// printTable renders the keyword table for humans, one command per block.
func printTable(t *aff.Table, source string, plain bool) {
	fmt.Println(styled(headerStyle, source, plain))
	fmt.Println(styled(mutedStyle,
		fmt.Sprintf("charset %s, %d commands", t.DeclaredCharset(), t.Len()), plain))
	fmt.Println()

	for _, cmd := range t.Commands() {
		params := t.CommandParameters(cmd)
		fmt.Printf("%s %s\n",
			styled(commandStyle, cmd, plain),
			styled(mutedStyle, fmt.Sprintf("(%d)", len(params)), plain))
		for _, p := range params {
			fmt.Printf("  %s\n", styled(paramStyle, p, plain))
		}
	}
}
