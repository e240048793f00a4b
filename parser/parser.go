/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser turns token=value definitions into replacement directives.
//
// Definitions come either from the lines of a file or from the
// comma-separated segments of an inline string. Each surviving entry is
// split at its first unescaped '=' into a token and a value:
//
//	# comment (skipped when comments are enabled)
//	@version@=1.2.3
//	a\=b=c        token "a\=b", value "c"
//
// Entries without an unescaped separator are dropped silently. An entry
// whose separator is its first character is an error.
package parser

import (
	"bennypowers.dev/replacer/fs"
	"bennypowers.dev/replacer/replacement"
)

// Options configures a single parsing call.
type Options struct {
	// CommentsEnabled drops entries whose first character is '#'.
	CommentsEnabled bool

	// Unescape collapses "\\=" to "\=" in tokens and values, for consumers
	// that interpret the token as a regular expression.
	Unescape bool
}

// Parser reads token/value definitions.
type Parser struct {
	filesystem fs.FileSystem
}

// New creates a parser that reads files through filesystem.
// A nil filesystem uses the OS filesystem.
func New(filesystem fs.FileSystem) *Parser {
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	return &Parser{filesystem: filesystem}
}

// ContextsForFile reads filename and returns one replacement per
// definition line, in file order.
func (p *Parser) ContextsForFile(filename string, opts Options) ([]replacement.Replacement, error) {
	data, err := p.filesystem.ReadFile(filename)
	if err != nil {
		return nil, &FileAccessError{Path: filename, Err: err}
	}
	return build(filename, fileEntries(string(data)), opts)
}

// ContextsForVariable returns one replacement per comma-separated
// definition in value. It never touches the filesystem.
func (p *Parser) ContextsForVariable(value string, opts Options) ([]replacement.Replacement, error) {
	return build("", variableEntries(value), opts)
}

// ParseText parses definitions from text already in memory, one per line.
func ParseText(text string, opts Options) ([]replacement.Replacement, error) {
	return build("", fileEntries(text), opts)
}
