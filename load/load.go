/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading replacement directives.
package load

import (
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/replacement"
)

// ErrNoDefinitions indicates neither a map file nor inline definitions were given.
var ErrNoDefinitions = errors.New("no token value map or variable definitions given")

// Options configures how replacements are loaded.
type Options struct {
	// Root is the directory relative map paths are resolved against.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Map is a file of token=value definitions.
	Map string

	// Variable holds comma-separated token=value definitions.
	Variable string

	// Parser configures comment handling and unescaping.
	Parser parser.Options
}

// Replacements loads definitions from the map file, then from the inline
// variable, and returns them in that order.
func Replacements(opts Options) ([]replacement.Replacement, error) {
	if opts.Map == "" && opts.Variable == "" {
		return nil, ErrNoDefinitions
	}

	p := parser.New(opts.FS)
	result := []replacement.Replacement{}

	if opts.Map != "" {
		path := opts.Map
		if opts.Root != "" && !filepath.IsAbs(path) {
			path = filepath.Join(opts.Root, path)
		}
		fromFile, err := p.ContextsForFile(path, opts.Parser)
		if err != nil {
			return nil, err
		}
		result = append(result, fromFile...)
	}

	if opts.Variable != "" {
		fromVariable, err := p.ContextsForVariable(opts.Variable, opts.Parser)
		if err != nil {
			return nil, fmt.Errorf("variable definitions: %w", err)
		}
		result = append(result, fromVariable...)
	}

	return result, nil
}
