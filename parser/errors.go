/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing operations.
var (
	// ErrFileAccess indicates the definitions file could not be read.
	ErrFileAccess = errors.New("cannot read token value map")

	// ErrMissingToken indicates a definition has no token before its separator.
	ErrMissingToken = errors.New("no token specified for value")
)

// FileAccessError wraps a failure from the file content provider.
type FileAccessError struct {
	// Path is the file that could not be read.
	Path string
	// Err is the error returned by the filesystem.
	Err error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrFileAccess, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the filesystem error.
func (e *FileAccessError) Unwrap() []error {
	return []error{ErrFileAccess, e.Err}
}

// MissingTokenError reports a definition whose separator comes first.
type MissingTokenError struct {
	// Source is the file the entry came from, empty for inline definitions.
	Source string
	// Line is the 1-based line number, or segment number for inline definitions.
	Line int
	// Entry is the offending definition.
	Entry string
}

// Error implements the error interface.
func (e *MissingTokenError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.Line, ErrMissingToken, e.Entry)
	}
	return fmt.Sprintf("entry %d: %s: %q", e.Line, ErrMissingToken, e.Entry)
}

// Unwrap returns ErrMissingToken.
func (e *MissingTokenError) Unwrap() error {
	return ErrMissingToken
}
