// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shell.go - Interactive query shell for afftab CLI.
//
// Handles "afftab shell FILE": a REPL over one parsed affix file with
// readline-like input history and tab completion over the table's
// command keywords.
//
// Interactive Commands (during the shell):
//   CMD                 Look up a command (uppercased for you)
//   /list, /l           List all commands in the table
//   /reload, /r         Re-parse the file from disk
//   /charset            Show the file's declared charset
//   /help, /h           Show available commands
//   /quit, /q           Exit the shell
//   Ctrl+D              Exit the shell
//
// Examples:
//   afftab shell hu_HU.aff
//   afftab shell --charset ISO8859-2 old.aff
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/afftab/internal/aff"
	"github.com/jeranaias/afftab/internal/config"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ShellInput provides input history and line editing for the query shell.
type ShellInput struct {
	line        *liner.State
	historyFile string
}

// NewShellInput creates a ShellInput with history loaded from the config
// directory. completions seeds tab completion.
func NewShellInput(completions []string) *ShellInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(prefix string) []string {
		upper := strings.ToUpper(prefix)
		var out []string
		for _, c := range completions {
			if strings.HasPrefix(c, upper) {
				out = append(out, c)
			}
		}
		return out
	})

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "shell_history")

	in := &ShellInput{
		line:        line,
		historyFile: historyFile,
	}
	in.LoadHistory()
	return in
}

// LoadHistory loads input history from file.
func (s *ShellInput) LoadHistory() {
	if f, err := os.Open(s.historyFile); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Non-empty input
// is appended to history.
func (s *ShellInput) ReadInput(prompt string) (string, error) {
	input, err := s.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		s.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (s *ShellInput) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(s.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	s.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (s *ShellInput) Close() {
	s.SaveHistory()
	s.line.Close()
}

// =============================================================================
// SHELL HANDLER
// =============================================================================

// shellSession holds the state for one interactive shell.
type shellSession struct {
	table   *aff.Table
	path    string
	charset string // override from --charset, empty when none
	plain   bool
	queries int
	input   *ShellInput
}

// HandleShell runs the interactive query shell over an affix file.
func HandleShell(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	path, err := requireFile(args, "shell")
	if err != nil {
		return err
	}

	table, err := LoadTable(path, args.Flag("charset"))
	if err != nil {
		return err
	}

	session := &shellSession{
		table:   table,
		path:    path,
		charset: args.Flag("charset"),
		plain:   args.BoolFlag("plain"),
		input:   NewShellInput(table.Commands()),
	}
	defer session.input.Close()

	printShellWelcome(session)

	prompt := styled(commandStyle, "afftab> ", session.plain)
	for {
		input, err := session.input.ReadInput(prompt)
		if err != nil {
			// Ctrl+C, Ctrl+D or EOF all exit gracefully.
			fmt.Println()
			printShellSummary(session)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if !session.handleSlash(input) {
				printShellSummary(session)
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printShellSummary(session)
			return nil
		}

		session.lookup(input)
	}
}

// lookup prints presence and parameters for each whitespace-separated
// keyword on the line.
func (s *shellSession) lookup(input string) {
	for _, word := range strings.Fields(input) {
		cmd := strings.ToUpper(word)
		s.queries++

		if !s.table.IsCommandPresent(cmd) {
			fmt.Printf("%s %s\n",
				styled(errorStyle, "absent ", s.plain),
				styled(commandStyle, cmd, s.plain))
			continue
		}

		params := s.table.CommandParameters(cmd)
		fmt.Printf("%s %s %s\n",
			styled(successStyle, "present", s.plain),
			styled(commandStyle, cmd, s.plain),
			styled(mutedStyle, fmt.Sprintf("(%d)", len(params)), s.plain))
		for _, p := range params {
			fmt.Printf("  %s\n", styled(paramStyle, p, s.plain))
		}
	}
}

// handleSlash processes slash commands. Returns false when the shell
// should exit.
func (s *shellSession) handleSlash(input string) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/help", "/h", "/?", "/":
		printShellHelp()
		return true

	case "/list", "/l":
		for _, cmd := range s.table.Commands() {
			fmt.Printf("%s %s\n",
				styled(commandStyle, cmd, s.plain),
				styled(mutedStyle,
					fmt.Sprintf("(%d)", len(s.table.CommandParameters(cmd))), s.plain))
		}
		return true

	case "/reload", "/r":
		table, err := LoadTable(s.path, s.charset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n",
				styled(errorStyle, "[Error]", s.plain), err)
			return true
		}
		s.table = table
		s.input.line.SetCompleter(func(prefix string) []string {
			upper := strings.ToUpper(prefix)
			var out []string
			for _, c := range table.Commands() {
				if strings.HasPrefix(c, upper) {
					out = append(out, c)
				}
			}
			return out
		})
		fmt.Printf("%s reloaded, %d commands\n",
			styled(successStyle, "[OK]", s.plain), s.table.Len())
		return true

	case "/charset":
		fmt.Printf("%s %s\n",
			styled(mutedStyle, "declared charset:", s.plain),
			styled(paramStyle, s.table.DeclaredCharset(), s.plain))
		return true

	case "/quit", "/q", "/exit":
		return false

	default:
		fmt.Fprintf(os.Stderr, "%s unknown command: %s (type /help)\n",
			styled(errorStyle, "[Error]", s.plain), input)
		return true
	}
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printShellWelcome prints the shell banner.
func printShellWelcome(s *shellSession) {
	fmt.Println()
	fmt.Println(styled(headerStyle, "afftab query shell", s.plain))
	fmt.Println(styled(mutedStyle, strings.Repeat("─", 30), s.plain))
	fmt.Printf("%s %s\n",
		styled(mutedStyle, "File:    ", s.plain),
		styled(paramStyle, s.path, s.plain))
	fmt.Printf("%s %s\n",
		styled(mutedStyle, "Charset: ", s.plain),
		styled(paramStyle, s.table.DeclaredCharset(), s.plain))
	fmt.Printf("%s %d\n",
		styled(mutedStyle, "Commands:", s.plain),
		s.table.Len())
	fmt.Println()
	fmt.Println(styled(mutedStyle,
		"Type a command keyword and press Enter. Tab completes. Commands: /help, /quit", s.plain))
	fmt.Println()
}

// printShellHelp prints available shell commands.
func printShellHelp() {
	fmt.Println()
	commands := []struct {
		cmd  string
		desc string
	}{
		{"CMD [CMD...]", "Look up one or more command keywords"},
		{"/list, /l", "List all commands in the table"},
		{"/reload, /r", "Re-parse the file from disk"},
		{"/charset", "Show the file's declared charset"},
		{"/help, /h", "Show this help"},
		{"/quit, /q", "Exit the shell"},
	}
	for _, c := range commands {
		fmt.Printf("  %-15s %s\n", c.cmd, c.desc)
	}
	fmt.Println()
	fmt.Println("  Tip: Ctrl+D exits")
	fmt.Println()
}

// printShellSummary prints a one-line summary on exit.
func printShellSummary(s *shellSession) {
	if s.queries > 0 {
		fmt.Printf("%d lookups. Goodbye!\n", s.queries)
		return
	}
	fmt.Println("Goodbye!")
}
