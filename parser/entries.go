/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "strings"

const (
	commentMarker     = '#'
	variableDelimiter = ","
	separator         = '='
	escape            = '\\'
)

// entry is one candidate definition and its 1-based position in the input.
type entry struct {
	text string
	line int
}

// fileEntries splits content into lines, accepting \r\n, \n, and \r endings.
func fileEntries(content string) []entry {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return toEntries(strings.Split(content, "\n"))
}

// variableEntries splits value on commas. Commas cannot be escaped.
func variableEntries(value string) []entry {
	return toEntries(strings.Split(value, variableDelimiter))
}

func toEntries(parts []string) []entry {
	entries := make([]entry, 0, len(parts))
	for i, part := range parts {
		entries = append(entries, entry{text: part, line: i + 1})
	}
	return entries
}

// skip reports whether an entry is blank, or a comment when comments are enabled.
func skip(text string, commentsEnabled bool) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	return commentsEnabled && text[0] == commentMarker
}

// Kind classifies how a single entry is treated by the parser.
type Kind int

const (
	// Skipped entries are blank, or comments when comments are enabled.
	Skipped Kind = iota
	// Definition entries produce a replacement.
	Definition
	// NoSeparator entries have no unescaped '=' and are dropped.
	NoSeparator
	// MissingToken entries start with their separator and fail parsing.
	MissingToken
)

// Lines splits content the way definition files are read.
func Lines(content string) []string {
	entries := fileEntries(content)
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.text
	}
	return lines
}

// Classify reports how text would be handled as a single entry.
func Classify(text string, opts Options) Kind {
	if skip(text, opts.CommentsEnabled) {
		return Skipped
	}
	switch findSeparator(text, opts.Unescape) {
	case -1:
		return NoSeparator
	case 0:
		return MissingToken
	default:
		return Definition
	}
}
