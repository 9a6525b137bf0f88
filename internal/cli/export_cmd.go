// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Export command handler for afftab CLI.
//
// Handles "afftab export FILE": parses the file and writes the keyword
// table to disk in the requested format. Flag defaults come from the
// [export] section of the config file.
//
// Examples:
//   afftab export hu_HU.aff
//   afftab export hu_HU.aff --format csv
//   afftab export hu_HU.aff --format markdown --output ./docs
//   afftab export --stdout hu_HU.aff --format json
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/afftab/internal/config"
	"github.com/jeranaias/afftab/internal/export"
)

// exportData is the JSON payload for the export command.
type exportData struct {
	Source string `json:"source"`
	Format string `json:"format"`
	Output string `json:"output"`
}

// HandleExport parses an affix file and exports its keyword table.
func HandleExport(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	path, err := requireFile(args, "export")
	if err != nil {
		return err
	}

	cfg := config.Global()
	format := args.FlagOrDefault("format", cfg.Export.Format)
	outputDir := args.FlagOrDefault("output", cfg.Export.OutputDir)

	table, err := LoadTable(path, args.Flag("charset"))
	if err != nil {
		if args.BoolFlag("json") {
			return NewJSONErrorResponse("export", err).Print()
		}
		return err
	}

	opts := &export.Options{
		OutputDir:       outputDir,
		IncludeMetadata: !args.BoolFlag("no-metadata"),
	}
	exporter, err := export.ByFormat(format, opts)
	if err != nil {
		if args.BoolFlag("json") {
			return NewJSONErrorResponse("export", err).Print()
		}
		return err
	}

	// --stdout bypasses file output entirely, for piping.
	if args.BoolFlag("stdout") {
		content, err := exporter.Export(table, path)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		_, err = os.Stdout.Write(content)
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	outputPath, err := export.ExportToFile(table, path, exporter, opts)
	if err != nil {
		if args.BoolFlag("json") {
			return NewJSONErrorResponse("export", err).Print()
		}
		return err
	}

	if args.BoolFlag("json") {
		return NewJSONResponse("export", exportData{
			Source: path,
			Format: format,
			Output: outputPath,
		}).Print()
	}

	plain := args.BoolFlag("plain")
	fmt.Printf("%s %s %s\n",
		styled(successStyle, "Exported", plain),
		styled(mutedStyle, fmt.Sprintf("%d commands to", table.Len()), plain),
		styled(paramStyle, outputPath, plain))
	return nil
}
