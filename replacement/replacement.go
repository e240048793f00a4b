/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package replacement provides the token/value replacement directive.
package replacement

import (
	"encoding/json"
	"errors"
)

// ErrEmptyToken indicates a replacement was constructed without a token.
var ErrEmptyToken = errors.New("replacement token must not be empty")

// Replacement is a single token to value rewrite directive.
// The token may be a literal string or a regular expression source,
// depending on how the substitution engine is configured.
type Replacement struct {
	token string
	value string
}

// New creates a replacement. The token must not be empty; the value may be.
func New(token, value string) (Replacement, error) {
	if token == "" {
		return Replacement{}, ErrEmptyToken
	}
	return Replacement{token: token, value: value}, nil
}

// Token returns the search pattern.
func (r Replacement) Token() string {
	return r.token
}

// Value returns the replacement text.
func (r Replacement) Value() string {
	return r.value
}

// String renders the replacement in its definition form, e.g. "token=value".
func (r Replacement) String() string {
	return r.token + "=" + r.value
}

// MarshalJSON encodes the replacement as {"token": ..., "value": ...}.
func (r Replacement) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Token string `json:"token"`
		Value string `json:"value"`
	}{r.token, r.value})
}
