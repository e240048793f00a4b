/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/replacer/parser"
)

func TestRender(t *testing.T) {
	rs, err := parser.ParseText("a=1\n"+`b\=c=2`, parser.Options{})
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, rs, "json"))
		want := "[\n  {\n    \"token\": \"a\",\n    \"value\": \"1\"\n  },\n  {\n    \"token\": \"b\\\\=c\",\n    \"value\": \"2\"\n  }\n]\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, rs, "table"))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], `"a"`), lines[0])
		assert.True(t, strings.HasSuffix(lines[0], `"1"`), lines[0])
		assert.True(t, strings.HasPrefix(lines[1], `"b\\=c"`), lines[1])
	})

	t.Run("empty json is an array", func(t *testing.T) {
		empty, err := parser.ParseText("", parser.Options{})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, render(&buf, empty, "json"))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, render(&bytes.Buffer{}, rs, "xml"))
	})
}
