// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the guidegen CLI, the build tooling
// for the study guide content project. Each batch transform is a
// subcommand: flashcards, assemble, emoji, and rename.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/guidegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the settings loaded from the config file and environment.
// Subcommands resolve their options against it; explicitly set flags win.
var cfg types.BuildConfig

// rootCmd is the base command for the guidegen CLI.
var rootCmd = &cobra.Command{
	Use:   "guidegen",
	Short: "Build tooling for the study guide content project",
	Long: `guidegen generates the derived artifacts of the study guide: algorithm
flashcards in multiple formats, combined printable and web editions of the
guide, and cleanup passes over generated markdown.

Each transform is a subcommand: flashcards, assemble, emoji, and rename.
All transforms are best-effort batches; a failure on one file is logged
and does not abort the rest.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./guidegen.yaml or ~/.config/guidegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("guidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "guidegen"))
		}
	}

	viper.SetEnvPrefix("GUIDEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "warning: invalid config:", err)
	}
}

// resolve picks a string option: an explicitly set flag wins, then a
// non-empty configured value, then the flag default.
func resolve(cmd *cobra.Command, flag, configured string) string {
	value, _ := cmd.Flags().GetString(flag)
	if !cmd.Flags().Changed(flag) && configured != "" {
		value = configured
	}
	return value
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
