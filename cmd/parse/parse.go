/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for replacer.
package parse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/replacer/config"
	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/load"
	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/replacement"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse [map-file | -]",
	Short: "Print the replacements defined by a token value map",
	Long: `Parse token=value definitions and print the resulting replacements in order.

Definitions come from a map file (one per line), from stdin when the
file is "-", or from --variable as comma-separated definitions.

Examples:
  replacer parse tokens.properties
  replacer parse --variable "@version@=1.0,@name@=app" --format json
  cat tokens.properties | replacer parse --unescape -`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("map", "", "Token value map file")
	Cmd.Flags().String("variable", "", "Comma-separated token=value definitions")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := config.FromViper(viper.GetViper())
	opts := cfg.ParserOptions()

	var replacements []replacement.Replacement
	var err error

	if len(args) == 1 && args[0] == "-" {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("error reading stdin: %w", readErr)
		}
		replacements, err = parser.ParseText(string(data), opts)
	} else {
		mapFile := cfg.TokenValueMap
		if len(args) == 1 {
			mapFile = args[0]
		}
		replacements, err = load.Replacements(load.Options{
			FS:       fs.NewOSFileSystem(),
			Map:      mapFile,
			Variable: cfg.VariableTokenValueMap,
			Parser:   opts,
		})
	}
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), replacements, format)
}

func render(w io.Writer, replacements []replacement.Replacement, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(replacements)
	case "table":
		for _, r := range replacements {
			fmt.Fprintf(w, "%-40q %q\n", r.Token(), r.Value())
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected table or json", format)
	}
}
