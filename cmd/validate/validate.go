/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for replacer.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/replacer/config"
	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [map-files...]",
	Short: "Validate token value map files",
	Long:  `Report entries that would be ignored or rejected when a token value map is parsed.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg := config.FromViper(viper.GetViper())

	files := args
	if len(files) == 0 && cfg.TokenValueMap != "" {
		files = []string{cfg.TokenValueMap}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no token value map in config")
	}

	if !validateFiles(fs.NewOSFileSystem(), files, cfg.ParserOptions(), strict, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr()) {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// validateFiles prints findings for each file and reports whether all passed.
func validateFiles(filesystem fs.FileSystem, files []string, opts parser.Options, strict, quiet bool, out, errOut io.Writer) bool {
	ok := true

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(errOut, "Error reading %s: %v\n", file, err)
			ok = false
			continue
		}

		findings := validator.ValidateMapWithPath(data, opts, file)
		for _, f := range findings {
			if f.Severity == validator.Warning && quiet {
				continue
			}
			fmt.Fprintln(errOut, f.Error())
		}

		if validator.HasErrors(findings) || (strict && len(findings) > 0) {
			ok = false
			continue
		}

		if !quiet {
			rs, err := parser.New(filesystem).ContextsForFile(file, opts)
			if err != nil {
				fmt.Fprintf(errOut, "Error parsing %s: %v\n", file, err)
				ok = false
				continue
			}
			fmt.Fprintf(out, "  %d replacements\n", len(rs))
		}
	}

	if ok && !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return ok
}
