/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package apply provides the apply command for replacer.
package apply

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/replacer/config"
	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/internal/logger"
	"bennypowers.dev/replacer/load"
	"bennypowers.dev/replacer/substitute"
)

// Cmd is the apply cobra command.
var Cmd = &cobra.Command{
	Use:   "apply [files...]",
	Short: "Replace tokens in target files",
	Long: `Rewrite target files, replacing every token from the map with its value.

Targets may be paths or globs (including **). Without arguments the
files listed in .config/replacer.yaml are used.

Examples:
  # Literal replacement in place
  replacer apply --map tokens.properties src/**/*.html

  # Regex tokens with an extra escaping layer for '='
  replacer apply --map patterns.properties --regex --unescape config/*.ini

  # Only replace @token@ and ${token} forms, writing into target/
  replacer apply --variable "version=1.2" --delimiters @ --delimiters '${*}' -o target src/*.txt`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("map", "", "Token value map file")
	Cmd.Flags().String("variable", "", "Comma-separated token=value definitions")
	Cmd.Flags().Bool("regex", false, "Treat tokens as regular expressions")
	Cmd.Flags().StringSlice("regex-flags", nil, "Regex flags: CASE_INSENSITIVE, MULTILINE, DOTALL")
	Cmd.Flags().StringArray("delimiters", nil, `Token delimiters, e.g. "@" or "${*}" (repeatable)`)
	Cmd.Flags().StringP("output-dir", "o", "", "Write rewritten files here instead of in place")
	Cmd.Flags().Bool("ignore-missing", false, "Skip target files that do not exist")
	Cmd.Flags().Bool("dry-run", false, "Report replacement counts without writing")
}

// Options configures an apply run.
type Options struct {
	Load          load.Options
	Substitute    substitute.Options
	Targets       []string
	OutputDir     string
	IgnoreMissing bool
	DryRun        bool
}

// Result summarizes an apply run.
type Result struct {
	Files        int
	Replacements int
	Skipped      []string
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.FromViper(viper.GetViper())

	if len(args) > 0 {
		cfg.Files = args
	}
	if len(cfg.Files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	targets, err := cfg.ExpandFiles(filesystem, ".")
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := Run(filesystem, Options{
		Load: load.Options{
			Map:      cfg.TokenValueMap,
			Variable: cfg.VariableTokenValueMap,
			Parser:   cfg.ParserOptions(),
		},
		Substitute:    cfg.SubstituteOptions(),
		Targets:       targets,
		OutputDir:     cfg.OutputDir,
		IgnoreMissing: cfg.IgnoreMissingFile,
		DryRun:        dryRun,
	})
	if err != nil {
		return err
	}

	logger.Info("%d replacements in %d files", result.Replacements, result.Files)
	return nil
}

// Run loads replacements and applies them to every target.
func Run(filesystem fs.FileSystem, opts Options) (*Result, error) {
	opts.Load.FS = filesystem
	replacements, err := load.Replacements(opts.Load)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d replacements", len(replacements))

	engine, err := substitute.NewEngine(replacements, opts.Substitute)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, target := range opts.Targets {
		if !filesystem.Exists(target) {
			if opts.IgnoreMissing {
				logger.Warn("skipping missing file %s", target)
				result.Skipped = append(result.Skipped, target)
				continue
			}
			return nil, fmt.Errorf("target file %s does not exist", target)
		}

		var n int
		if opts.DryRun {
			data, err := filesystem.ReadFile(target)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", target, err)
			}
			_, n = engine.Apply(string(data))
		} else {
			n, err = engine.ReplaceFile(filesystem, target, outputPath(opts.OutputDir, target))
			if err != nil {
				return nil, err
			}
		}

		logger.Debug("%s: %d replacements", target, n)
		result.Files++
		result.Replacements += n
	}

	return result, nil
}

// outputPath mirrors the whole target path under dir, so distinct targets
// never share an output file. An empty dir means in place.
func outputPath(dir, target string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, target)
}
