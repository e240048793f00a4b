/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "github.com/spf13/viper"

// Setting keys shared by CLI flags, REPLACER_* env vars and config defaults.
const (
	KeyComments      = "comments"
	KeyUnescape      = "unescape"
	KeyMap           = "map"
	KeyVariable      = "variable"
	KeyRegex         = "regex"
	KeyRegexFlags    = "regex-flags"
	KeyDelimiters    = "delimiters"
	KeyFiles         = "files"
	KeyOutputDir     = "output-dir"
	KeyIgnoreMissing = "ignore-missing"
)

// SetDefaults registers c as the fallback layer beneath flags and env.
func (c *Config) SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyComments, c.Comments())
	v.SetDefault(KeyUnescape, c.Unescape)
	v.SetDefault(KeyMap, c.TokenValueMap)
	v.SetDefault(KeyVariable, c.VariableTokenValueMap)
	v.SetDefault(KeyRegex, c.Regex)
	v.SetDefault(KeyRegexFlags, c.RegexFlags)
	v.SetDefault(KeyDelimiters, c.Delimiters)
	v.SetDefault(KeyFiles, c.Files)
	v.SetDefault(KeyOutputDir, c.OutputDir)
	v.SetDefault(KeyIgnoreMissing, c.IgnoreMissingFile)
}

// FromViper returns the effective configuration after flags, env and
// config defaults have been layered into v.
func FromViper(v *viper.Viper) *Config {
	comments := true
	if v.IsSet(KeyComments) {
		comments = v.GetBool(KeyComments)
	}
	return &Config{
		TokenValueMap:         v.GetString(KeyMap),
		VariableTokenValueMap: v.GetString(KeyVariable),
		CommentsEnabled:       &comments,
		Unescape:              v.GetBool(KeyUnescape),
		Regex:                 v.GetBool(KeyRegex),
		RegexFlags:            v.GetStringSlice(KeyRegexFlags),
		Delimiters:            v.GetStringSlice(KeyDelimiters),
		Files:                 v.GetStringSlice(KeyFiles),
		OutputDir:             v.GetString(KeyOutputDir),
		IgnoreMissingFile:     v.GetBool(KeyIgnoreMissing),
	}
}
