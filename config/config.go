/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration loading for replacer.
package config

import (
	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/substitute"
)

// Config represents the replacer configuration.
type Config struct {
	// TokenValueMap is a file of token=value definitions, one per line.
	TokenValueMap string `yaml:"tokenValueMap" json:"tokenValueMap"`

	// VariableTokenValueMap holds comma-separated token=value definitions.
	VariableTokenValueMap string `yaml:"variableTokenValueMap" json:"variableTokenValueMap"`

	// CommentsEnabled skips definitions starting with '#'. Defaults to true.
	CommentsEnabled *bool `yaml:"commentsEnabled" json:"commentsEnabled"`

	// Unescape collapses "\\=" to "\=" in definitions.
	Unescape bool `yaml:"unescape" json:"unescape"`

	// Regex treats tokens as regular expressions.
	Regex bool `yaml:"regex" json:"regex"`

	// RegexFlags are applied to every pattern when Regex is set.
	RegexFlags []string `yaml:"regexFlags" json:"regexFlags"`

	// Delimiters wrap tokens before matching, e.g. "@" or "${*}".
	Delimiters []string `yaml:"delimiters" json:"delimiters"`

	// Files lists target files to rewrite (paths or ** globs).
	Files []string `yaml:"files" json:"files"`

	// OutputDir receives rewritten files. Empty rewrites in place.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// IgnoreMissingFile skips target files that do not exist.
	IgnoreMissingFile bool `yaml:"ignoreMissingFile" json:"ignoreMissingFile"`
}

// Comments reports whether comment filtering is enabled.
func (c *Config) Comments() bool {
	if c.CommentsEnabled == nil {
		return true
	}
	return *c.CommentsEnabled
}

// ParserOptions returns parser.Options with configuration applied.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		CommentsEnabled: c.Comments(),
		Unescape:        c.Unescape,
	}
}

// SubstituteOptions returns substitute.Options with configuration applied.
func (c *Config) SubstituteOptions() substitute.Options {
	return substitute.Options{
		Regex:      c.Regex,
		RegexFlags: c.RegexFlags,
		Delimiters: c.Delimiters,
	}
}
