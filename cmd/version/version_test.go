/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, write(&text, "text"))
	assert.Regexp(t, `^replacer `, text.String())

	var out bytes.Buffer
	require.NoError(t, write(&out, "json"))
	var info map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &info), out.String())
	assert.NotEmpty(t, info["version"])
}
