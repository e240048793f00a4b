/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"strings"

	"bennypowers.dev/replacer/replacement"
)

// valueIndent is stripped from the start of a value, so "a = b" yields "b".
// Tokens keep their whitespace.
const valueIndent = " \t"

// build turns entries into replacements in input order.
// Any entry with an empty token fails the whole call.
func build(source string, entries []entry, opts Options) ([]replacement.Replacement, error) {
	result := []replacement.Replacement{}

	for _, e := range entries {
		if skip(e.text, opts.CommentsEnabled) {
			continue
		}

		token, value, ok := split(e.text, opts.Unescape)
		if !ok {
			continue
		}
		value = strings.TrimLeft(value, valueIndent)

		if opts.Unescape {
			token = unescapeSeparators(token)
			value = unescapeSeparators(value)
		}

		r, err := replacement.New(token, value)
		if errors.Is(err, replacement.ErrEmptyToken) {
			return nil, &MissingTokenError{Source: source, Line: e.line, Entry: e.text}
		}
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}

	return result, nil
}
