// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/script2nb/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch <inputs...>",
	Short: "Convert several scripts into notebooks",
	Long: `Batch converts each input script into <out-dir>/<input name>.ipynb and
prints a per-file status line followed by a summary. A failing script does not
stop the batch, but the command exits non-zero if any script failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	authors, _ := cmd.Flags().GetStringArray("author")
	cfg, err := loadConvertConfig(cmd, authors)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, map[string]string{
		keyOutDir:       "out-dir",
		keySkipExisting: "skip-existing",
	}); err != nil {
		return err
	}

	result := convert.ConvertBatch(
		convert.NewScriptConverter(cfg),
		args,
		viper.GetString(keyOutDir),
		viper.GetBool(keySkipExisting),
		cmd.OutOrStdout(),
	)
	if result.HasFailures() {
		return fmt.Errorf("%d script(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out-dir", ".", "directory for generated notebooks")
	batchCmd.Flags().StringArray("author", nil, "notebook author, kept verbatim (repeatable)")
	batchCmd.Flags().Bool("skip-existing", false, "leave notebooks that already exist untouched")
	addConvertFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}
