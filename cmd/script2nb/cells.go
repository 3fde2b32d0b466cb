// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/script2nb/internal/convert"
)

var cellsCmd = &cobra.Command{
	Use:   "cells <input>",
	Short: "Print the cell outline of a script",
	Long: `Cells scans a script the same way convert does and prints one entry per
cell (index, type, line count, first line) as YAML or JSON. Nothing is written
to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runCells,
}

func runCells(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	cfg, err := loadConvertConfig(cmd, nil)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input %s: %w", args[0], err)
	}
	defer f.Close()

	nb, err := convert.NewScriptConverter(cfg).Convert(f)
	if err != nil {
		return err
	}
	return convert.WriteOutline(cmd.OutOrStdout(), nb, format)
}

func init() {
	cellsCmd.Flags().String("format", "yaml", "output format: yaml or json")
	addConvertFlags(cellsCmd)

	rootCmd.AddCommand(cellsCmd)
}
