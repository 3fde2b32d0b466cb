// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the script2nb CLI.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logLevel controls the default slog handler; --verbose lowers it to debug.
var logLevel = new(slog.LevelVar)

// rootCmd is the base command for the script2nb CLI.
var rootCmd = &cobra.Command{
	Use:   "script2nb",
	Short: "Convert #%%-delimited scripts into Jupyter notebooks",
	Long: `script2nb turns a plain Python or Julia script annotated with "#%%"
cell markers into an nbformat 4.4 notebook.

A line starting with "#%%" opens a new cell; the rest of the line names its
type: code, markdown or raw. In markdown and raw cells a leading "# " is
removed from each line, so prose can live in comments. Cells with any other
label are skipped until the next marker.`,
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./script2nb.yaml or ~/.config/script2nb/script2nb.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initLogging() {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("script2nb")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "script2nb"))
		}
	}

	viper.SetEnvPrefix("SCRIPT2NB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		slog.Warn("could not read config file", "path", cfgFile, "error", err)
	}
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
