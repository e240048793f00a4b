/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in token value maps.
//
// The parser drops entries without a separator silently and stops at
// the first entry with an empty token. The validator walks every line
// instead and reports all of them, so a map can be checked before use.
package validator

import (
	"strconv"
	"strings"

	"bennypowers.dev/replacer/parser"
)

// Severity ranks a validation finding.
type Severity int

const (
	// Warning marks an entry the parser ignores.
	Warning Severity = iota
	// Error marks an entry the parser rejects.
	Error
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ValidationError represents a single finding in a token value map.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Line is the 1-based line number.
	Line int
	// Severity is Error when parsing would fail.
	Severity Severity
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(":")
	}
	sb.WriteString(strconv.Itoa(e.Line))
	sb.WriteString(": ")
	sb.WriteString(e.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// ValidateMap checks every line of content.
func ValidateMap(content []byte, opts parser.Options) []ValidationError {
	return ValidateMapWithPath(content, opts, "")
}

// ValidateMapWithPath validates content and includes file path in errors.
func ValidateMapWithPath(content []byte, opts parser.Options, filePath string) []ValidationError {
	var errors []ValidationError

	for i, line := range parser.Lines(string(content)) {
		switch parser.Classify(line, opts) {
		case parser.MissingToken:
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Line:       i + 1,
				Severity:   Error,
				Message:    "no token before separator",
				Suggestion: `add a token before "=" or escape it as "\="`,
			})
		case parser.NoSeparator:
			msg := "no unescaped separator, line is ignored"
			suggestion := `write it as token=value`
			if !opts.CommentsEnabled && line[0] == '#' {
				suggestion = "enable comments to skip lines starting with #"
			}
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Line:       i + 1,
				Severity:   Warning,
				Message:    msg,
				Suggestion: suggestion,
			})
		}
	}

	return errors
}

// HasErrors reports whether any finding would make parsing fail.
func HasErrors(findings []ValidationError) bool {
	for _, f := range findings {
		if f.Severity == Error {
			return true
		}
	}
	return false
}
