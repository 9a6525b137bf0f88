// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for afftab.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdInspect Command = iota
	CmdQuery
	CmdShell
	CmdExport
	CmdWatch
	CmdBrowse
	CmdVersion
	CmdHelp
)

const usageText = `afftab - inspect Hunspell affix files from the terminal

afftab reads the line-oriented .aff format and builds a keyword table:
each command keyword maps to the ordered parameter lines that followed it
in the file. It never interprets the parameters.

Usage:
  afftab <command> [arguments]

Commands:
  inspect FILE            Parse FILE and print its keyword table
  query FILE CMD [CMD...] Look up one or more commands in FILE
  shell FILE              Interactive query shell with completion
  export FILE             Export the keyword table to a file
  watch FILE              Re-parse and reprint whenever FILE changes
  browse FILE             Browse the table in a TUI
  version                 Print version information
  help                    Show this help

Flags:
  --json                  Machine-readable JSON output
  --plain                 Disable styled output
  --charset NAME          Override the file's SET declaration
  --format FORMAT         Export format: json, markdown, csv
  --output DIR            Export output directory

Examples:
  afftab inspect hu_HU.aff
  afftab query hu_HU.aff SFX COMPLEXPREFIXES
  afftab export hu_HU.aff --format csv --output ./out
  afftab inspect --json hu_HU.aff | jq '.data.table.SFX'
`

// Parse parses os.Args and returns the command plus its remaining
// arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdHelp, nil
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "inspect", "parse":
		return CmdInspect, rest
	case "query", "q":
		return CmdQuery, rest
	case "shell", "repl":
		return CmdShell, rest
	case "export":
		return CmdExport, rest
	case "watch":
		return CmdWatch, rest
	case "browse", "tui":
		return CmdBrowse, rest
	case "version", "--version", "-v":
		return CmdVersion, rest
	case "help", "--help", "-h":
		return CmdHelp, rest
	default:
		// Bare FILE argument defaults to inspect, so `afftab x.aff` works.
		if _, err := os.Stat(cmd); err == nil {
			return CmdInspect, args
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		return CmdHelp, nil
	}
}

// HandleHelp prints usage information.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(rawArgs []string) {
	args := NewArgParser(rawArgs)
	if args.BoolFlag("json") {
		_ = NewJSONResponse("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		}).Print()
		return
	}
	fmt.Printf("afftab %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
