/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package substitute applies replacement directives to file contents.
package substitute

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	replfs "bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/replacement"
)

// Regex flag names accepted in Options.RegexFlags.
const (
	FlagCaseInsensitive = "CASE_INSENSITIVE"
	FlagMultiline       = "MULTILINE"
	FlagDotAll          = "DOTALL"
)

var regexFlags = map[string]string{
	FlagCaseInsensitive: "i",
	FlagMultiline:       "m",
	FlagDotAll:          "s",
}

// ErrUnknownRegexFlag indicates an unsupported entry in Options.RegexFlags.
var ErrUnknownRegexFlag = errors.New("unknown regex flag")

// PatternError reports a token that is not a valid regular expression.
type PatternError struct {
	Token string
	Err   error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Token, e.Err)
}

// Unwrap returns the underlying regexp error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Options configures how replacements are applied.
type Options struct {
	// Regex treats tokens as regular expressions. Values may then refer
	// to capture groups as $1 or ${name}.
	Regex bool

	// RegexFlags are applied to every pattern when Regex is set.
	// Valid values: CASE_INSENSITIVE, MULTILINE, DOTALL.
	RegexFlags []string

	// Delimiters wrap each token before matching. A delimiter containing
	// '*' is split around it into start and end ("${*}" matches "${token}");
	// otherwise it is used on both sides ("@" matches "@token@").
	Delimiters []string
}

type rule struct {
	literal string
	pattern *regexp.Regexp
	value   string
}

// Engine is a compiled, ordered set of replacements. It is safe for
// concurrent use.
type Engine struct {
	rules []rule
}

// NewEngine compiles replacements for repeated application.
func NewEngine(replacements []replacement.Replacement, opts Options) (*Engine, error) {
	flags, err := flagPrefix(opts.RegexFlags)
	if err != nil {
		return nil, err
	}

	delimiters := opts.Delimiters
	if len(delimiters) == 0 {
		delimiters = []string{""}
	}

	e := &Engine{}
	for _, r := range replacements {
		for _, d := range delimiters {
			start, end := splitDelimiter(d)
			if !opts.Regex {
				e.rules = append(e.rules, rule{literal: start + r.Token() + end, value: r.Value()})
				continue
			}

			source := r.Token()
			if start != "" || end != "" {
				source = regexp.QuoteMeta(start) + "(?:" + source + ")" + regexp.QuoteMeta(end)
			}
			re, err := regexp.Compile(flags + source)
			if err != nil {
				return nil, &PatternError{Token: r.Token(), Err: err}
			}
			e.rules = append(e.rules, rule{pattern: re, value: r.Value()})
		}
	}
	return e, nil
}

// Apply rewrites content with every replacement in order and returns
// the result and the number of substitutions made.
func (e *Engine) Apply(content string) (string, int) {
	count := 0
	for _, r := range e.rules {
		if r.pattern != nil {
			n := len(r.pattern.FindAllStringIndex(content, -1))
			if n > 0 {
				content = r.pattern.ReplaceAllString(content, r.value)
				count += n
			}
			continue
		}
		if r.literal == "" {
			continue
		}
		n := strings.Count(content, r.literal)
		if n > 0 {
			content = strings.ReplaceAll(content, r.literal, r.value)
			count += n
		}
	}
	return content, count
}

// ReplaceFile rewrites inputPath into outputPath. An empty outputPath
// rewrites the input in place. The input's permissions are kept.
func (e *Engine) ReplaceFile(filesystem replfs.FileSystem, inputPath, outputPath string) (int, error) {
	data, err := filesystem.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	perm := fs.FileMode(0644)
	if info, err := filesystem.Stat(inputPath); err == nil {
		perm = info.Mode().Perm()
	}

	if outputPath == "" {
		outputPath = inputPath
	}

	result, count := e.Apply(string(data))

	if dir := filepath.Dir(outputPath); dir != "." && !filesystem.Exists(dir) {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := filesystem.WriteFile(outputPath, []byte(result), perm); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return count, nil
}

func flagPrefix(names []string) (string, error) {
	var sb strings.Builder
	for _, name := range names {
		flag, ok := regexFlags[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownRegexFlag, name)
		}
		sb.WriteString(flag)
	}
	if sb.Len() == 0 {
		return "", nil
	}
	return "(?" + sb.String() + ")", nil
}

func splitDelimiter(d string) (start, end string) {
	if before, after, found := strings.Cut(d, "*"); found {
		return before, after
	}
	return d, d
}
