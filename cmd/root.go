/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for replacer.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/replacer/cmd/apply"
	"bennypowers.dev/replacer/cmd/parse"
	"bennypowers.dev/replacer/cmd/validate"
	"bennypowers.dev/replacer/cmd/version"
	"bennypowers.dev/replacer/config"
	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "replacer",
	Short: "Replace tokens in files using token=value maps",
	Long: `replacer reads token=value definitions from a map file or an inline
comma-separated string and rewrites matching tokens in target files.

Settings are read from flags, then REPLACER_* environment variables,
then .config/replacer.{yaml,yml,json}.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix("REPLACER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().Bool("comments", true, "Skip definitions starting with #")
	rootCmd.PersistentFlags().Bool("unescape", false, `Collapse \\= to \= in definitions (for regex tokens)`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(apply.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// setup layers the project config beneath flags and environment, then
// binds the running command's flags so subcommands read everything via viper.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(fs.NewOSFileSystem(), ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg != nil {
		cfg.SetDefaults(viper.GetViper())
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	logger.SetVerbose(viper.GetBool("verbose"))
	return nil
}
