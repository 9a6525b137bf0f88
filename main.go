// afftab - A terminal toolkit for inspecting Hunspell affix files.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/afftab/internal/cli"
	"github.com/jeranaias/afftab/internal/config"
	"github.com/jeranaias/afftab/internal/ui/browser"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Load configuration at startup; a broken config file should not block
	// read-only commands, so warn and continue with defaults.
	if cfg, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		config.SetGlobal(config.Default())
	} else {
		config.SetGlobal(cfg)
	}

	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdInspect:
		exitOnError(cli.HandleInspect(args))
	case cli.CmdQuery:
		err := cli.HandleQuery(args)
		if errors.Is(err, cli.ErrNotPresent) {
			os.Exit(1)
		}
		exitOnError(err)
	case cli.CmdShell:
		exitOnError(cli.HandleShell(args))
	case cli.CmdExport:
		exitOnError(cli.HandleExport(args))
	case cli.CmdWatch:
		exitOnError(cli.HandleWatch(args))
	case cli.CmdBrowse:
		runBrowser(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		cli.HandleHelp()
	}
}

// runBrowser starts the TUI table browser.
func runBrowser(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: afftab browse FILE")
		os.Exit(1)
	}
	path := args[0]

	table, err := cli.LoadTable(path, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := browser.Run(table, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
