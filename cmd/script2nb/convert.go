// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/script2nb/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> [authors...]",
	Short: "Convert one script into a notebook",
	Long: `Convert reads a #%%-delimited script and writes an nbformat 4.4 notebook.
Any arguments after the input path are recorded as notebook authors, in order.
Without them, authors come from the config file or from SCRIPT2NB_AUTHORS as
comma-separated names ("Ada Lovelace, Grace Hopper").

Without --output the notebook is written to the current directory as
<input name>.ipynb. An existing file at the output path is overwritten.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, authors := args[0], args[1:]

	cfg, err := loadConvertConfig(cmd, authors)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = convert.DefaultOutputPath(inputPath)
	}

	slog.Debug("converting", "input", inputPath, "output", outputPath, "language", cfg.Language)
	if err := convert.ConvertFile(convert.NewScriptConverter(cfg), inputPath, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s\n", convert.Stem(inputPath), outputPath)
	return nil
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output notebook path (default: ./<input name>.ipynb)")
	addConvertFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}
