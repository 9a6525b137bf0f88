// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// query.go - Query command handler for afftab CLI.
//
// Handles "afftab query FILE CMD [CMD...]": looks up commands in the
// keyword table. Lookups are uppercased on the caller's behalf here, at
// the tool boundary; the table itself never normalizes queries.
//
// Exit status: 0 when every queried command is present, 1 otherwise.
//
// Examples:
//   afftab query hu_HU.aff SFX
//   afftab query hu_HU.aff sfx complexprefixes
//   afftab query --json hu_HU.aff SET TRY
package cli

import (
	"fmt"
	"strings"
)

// ErrNotPresent reports that at least one queried command was absent.
// main turns it into exit status 1 without printing a duplicate message.
var ErrNotPresent = fmt.Errorf("command not present")

// queryResult is the JSON payload for a single command lookup.
type queryResult struct {
	Command    string   `json:"command"`
	Present    bool     `json:"present"`
	Parameters []string `json:"parameters"`
}

// HandleQuery looks up one or more commands in an affix file.
func HandleQuery(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	path, err := requireFile(args, "query FILE CMD [CMD...]")
	if err != nil {
		return err
	}
	queries := args.PositionalsAfter(1)
	if len(queries) == 0 {
		return fmt.Errorf("usage: afftab query FILE CMD [CMD...]")
	}

	table, err := LoadTable(path, args.Flag("charset"))
	if err != nil {
		if args.BoolFlag("json") {
			return NewJSONErrorResponse("query", err).Print()
		}
		return err
	}

	plain := args.BoolFlag("plain")
	allPresent := true
	results := make([]queryResult, 0, len(queries))

	for _, q := range queries {
		cmd := strings.ToUpper(q)
		present := table.IsCommandPresent(cmd)
		params := table.CommandParameters(cmd)
		if !present {
			allPresent = false
		}

		results = append(results, queryResult{
			Command:    cmd,
			Present:    present,
			Parameters: params,
		})

		if args.BoolFlag("json") {
			continue
		}

		if present {
			fmt.Printf("%s %s\n",
				styled(successStyle, "present", plain),
				styled(commandStyle, cmd, plain))
			for _, p := range params {
				fmt.Printf("  %s\n", styled(paramStyle, p, plain))
			}
			if len(params) == 0 {
				fmt.Printf("  %s\n", styled(mutedStyle, "(no parameters)", plain))
			}
		} else {
			fmt.Printf("%s %s\n",
				styled(errorStyle, "absent ", plain),
				styled(commandStyle, cmd, plain))
		}
	}

	if args.BoolFlag("json") {
		if err := NewJSONResponse("query", results).Print(); err != nil {
			return err
		}
	}

	if !allPresent {
		return ErrNotPresent
	}
	return nil
}
