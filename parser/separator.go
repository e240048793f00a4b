/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "strings"

// findSeparator returns the byte offset of the first unescaped '=' in text,
// or -1 if every '=' is escaped or there is none.
//
// A separator is escaped by the run of backslashes directly before it.
// In literal mode the run escapes when its length is odd, so "\\=" is an
// escaped backslash followed by a real separator. In unescape mode the
// escape itself is doubled on disk ("\\=" means a literal "\=" for the
// regex engine), so any non-empty run escapes.
func findSeparator(text string, unescape bool) int {
	backslashes := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case escape:
			backslashes++
			continue
		case separator:
			if !escaped(backslashes, unescape) {
				return i
			}
		}
		backslashes = 0
	}
	return -1
}

func escaped(backslashes int, unescape bool) bool {
	if unescape {
		return backslashes > 0
	}
	return backslashes%2 == 1
}

// split divides text at its first unescaped separator. Escape sequences
// are kept in both halves. ok is false when there is no separator.
func split(text string, unescape bool) (token, value string, ok bool) {
	i := findSeparator(text, unescape)
	if i < 0 {
		return "", "", false
	}
	return text[:i], text[i+1:], true
}

var unescaper = strings.NewReplacer(`\\=`, `\=`)

// unescapeSeparators removes one layer of backslash doubling before each
// literal separator.
func unescapeSeparators(s string) string {
	return unescaper.Replace(s)
}
