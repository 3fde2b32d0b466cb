// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/script2nb/pkg/types"
)

// Config keys shared by the config file, SCRIPT2NB_* env vars and flags.
const (
	keyLanguage         = "language"
	keyDisplayName      = "display_name"
	keyAuthors          = "authors"
	keyTrim             = "trim"
	keyDropUnterminated = "drop_unterminated"
	keyIndent           = "indent"
	keyKernelArgv       = "kernel.argv"
	keyKernelInterrupt  = "kernel.interrupt_mode"
	keyKernelEnv        = "kernel.env"
	keyOutDir           = "out_dir"
	keySkipExisting     = "skip_existing"
)

// configAuthors returns the authors from the config file or SCRIPT2NB_AUTHORS.
// A plain string value, as env vars always are, holds comma-separated names
// so a single name may contain spaces.
func configAuthors() []string {
	raw, ok := viper.Get(keyAuthors).(string)
	if !ok {
		return viper.GetStringSlice(keyAuthors)
	}
	var authors []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

func setDefaults() {
	def := types.DefaultConvertConfig()
	viper.SetDefault(keyLanguage, string(def.Language))
	viper.SetDefault(keyTrim, def.Trim)
	viper.SetDefault(keyOutDir, ".")
}

// addConvertFlags registers the flags shared by convert, batch and cells.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", string(types.DefaultLanguage), "script language: python or julia")
	cmd.Flags().String("display-name", "", "kernel display name (default depends on language)")
	cmd.Flags().Bool("trim", true, "strip leading and trailing blank lines from each cell")
	cmd.Flags().Bool("drop-unterminated", false, "drop a trailing cell that has no closing #%% marker")
	cmd.Flags().String("indent", "", "JSON indent string (empty writes compact JSON)")
}

// bindFlags binds cmd's flags to their viper keys. Bindings are global in
// viper, so each command binds at run time rather than in init.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

var convertFlagKeys = map[string]string{
	keyLanguage:         "language",
	keyDisplayName:      "display-name",
	keyTrim:             "trim",
	keyDropUnterminated: "drop-unterminated",
	keyIndent:           "indent",
}

// loadConvertConfig resolves the conversion settings for cmd. The language is
// validated here so argument errors surface before any file is touched.
func loadConvertConfig(cmd *cobra.Command, authors []string) (types.ConvertConfig, error) {
	if err := bindFlags(cmd, convertFlagKeys); err != nil {
		return types.ConvertConfig{}, err
	}

	lang, err := types.ParseLanguage(viper.GetString(keyLanguage))
	if err != nil {
		return types.ConvertConfig{}, err
	}

	if len(authors) == 0 {
		authors = configAuthors()
	}

	cfg := types.ConvertConfig{
		ScanConfig: types.ScanConfig{
			Trim:             viper.GetBool(keyTrim),
			DropUnterminated: viper.GetBool(keyDropUnterminated),
		},
		Language:    lang,
		DisplayName: viper.GetString(keyDisplayName),
		Authors:     authors,
		Kernel: types.KernelConfig{
			Argv:          viper.GetStringSlice(keyKernelArgv),
			InterruptMode: viper.GetString(keyKernelInterrupt),
			Env:           viper.GetStringMapString(keyKernelEnv),
		},
		Indent: viper.GetString(keyIndent),
	}
	return cfg, nil
}
