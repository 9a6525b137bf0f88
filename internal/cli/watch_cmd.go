// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch_cmd.go - Watch command handler for afftab CLI.
//
// Handles "afftab watch FILE": prints the keyword table, then re-parses
// and reprints it whenever the file changes on disk. Debounce and poll
// interval come from the [watch] section of the config file.
//
// Examples:
//   afftab watch hu_HU.aff
//   afftab watch hu_HU.aff --poll
//   afftab watch hu_HU.aff --plain
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/afftab/internal/config"
	"github.com/jeranaias/afftab/internal/watch"
)

// HandleWatch re-parses and reprints an affix file whenever it changes.
// Blocks until interrupted.
func HandleWatch(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	path, err := requireFile(args, "watch")
	if err != nil {
		return err
	}

	cfg := config.Global()
	plain := args.BoolFlag("plain")
	charset := args.Flag("charset")

	reprint := func(reason string) error {
		table, err := LoadTable(path, charset)
		if err != nil {
			return err
		}
		fmt.Println(styled(mutedStyle,
			fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), reason), plain))
		printTable(table, path, plain)
		fmt.Println()
		return nil
	}

	// The initial parse must succeed; later failures only warn so a
	// half-saved file does not kill the watch.
	if err := reprint("initial parse"); err != nil {
		return err
	}

	var watcher watch.FileWatcher
	onChange := func(p string) {
		if err := reprint("file changed"); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n",
				styled(errorStyle, "[Error]", plain), err)
		}
	}

	if args.BoolFlag("poll") {
		watcher = watch.NewPollingWatcher(path, cfg.Watch.PollInterval(), onChange)
		if err := watcher.Watch(); err != nil {
			return fmt.Errorf("start poller: %w", err)
		}
	} else {
		watcher, err = watch.Start(path, cfg.Watch.Debounce(), cfg.Watch.PollInterval(), onChange)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
	}
	defer watcher.Close()

	fmt.Println(styled(mutedStyle, "Watching for changes. Ctrl+C to stop.", plain))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	return nil
}
