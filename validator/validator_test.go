/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/testutil"
	"bennypowers.dev/replacer/validator"
)

func TestValidateMap_Valid(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "fixtures/maps/release.properties")
	errors := validator.ValidateMap(data, parser.Options{CommentsEnabled: true})

	assert.Empty(t, errors)
}

func TestValidateMap_Findings(t *testing.T) {
	content := "a=1\nplain\n=oops\n#note\n"
	errors := validator.ValidateMapWithPath([]byte(content), parser.Options{}, "tokens.properties")

	require.Len(t, errors, 3)

	assert.Equal(t, 2, errors[0].Line)
	assert.Equal(t, validator.Warning, errors[0].Severity)
	assert.Equal(t, 3, errors[1].Line)
	assert.Equal(t, validator.Error, errors[1].Severity)
	assert.Contains(t, errors[2].Suggestion, "enable comments")
	assert.Regexp(t, `^tokens\.properties:3: error: no token before separator`, errors[1].Error())

	assert.True(t, validator.HasErrors(errors))
}

func TestValidateMap_CommentsEnabled(t *testing.T) {
	errors := validator.ValidateMap([]byte("#note\n# =x\n"), parser.Options{CommentsEnabled: true})
	assert.Empty(t, errors, "comments are skipped")
}

func TestValidateMap_UnescapeMode(t *testing.T) {
	// Every separator is escaped when doubled backslashes escape.
	errors := validator.ValidateMap([]byte(`a\\=b`), parser.Options{Unescape: true})
	require.Len(t, errors, 1)
	assert.Equal(t, validator.Warning, errors[0].Severity)
	assert.False(t, validator.HasErrors(errors), "warnings alone are not errors")
}
