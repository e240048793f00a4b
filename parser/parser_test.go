/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/replacer/internal/mapfs"
	"bennypowers.dev/replacer/parser"
	"bennypowers.dev/replacer/replacement"
)

const filename = "/some file"

type pair struct {
	token string
	value string
}

func pairs(rs []replacement.Replacement) []pair {
	out := make([]pair, 0, len(rs))
	for _, r := range rs {
		out = append(out, pair{r.Token(), r.Value()})
	}
	return out
}

func parseFile(t *testing.T, content string, opts parser.Options) ([]replacement.Replacement, error) {
	t.Helper()
	mfs := mapfs.New()
	mfs.AddFile(filename, content, 0644)
	return parser.New(mfs).ContextsForFile(filename, opts)
}

func TestContextsForFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    parser.Options
		want    []pair
	}{
		{
			name:    "single definition",
			content: "token=value",
			want:    []pair{{"token", "value"}},
		},
		{
			name:    "blank lines and comments ignored",
			content: "\n  \ntoken1=value1\ntoken2 = value2\n#some comment\n",
			opts:    parser.Options{CommentsEnabled: true},
			want:    []pair{{"token1", "value1"}, {"token2 ", "value2"}},
		},
		{
			name:    "comment lines used when comments disabled",
			content: "\n  \ntoken1=value1\ntoken2=value2\n#some=#comment\n",
			want:    []pair{{"token1", "value1"}, {"token2", "value2"}, {"#some", "#comment"}},
		},
		{
			name:    "comment with separator dropped when comments enabled",
			content: "token1=value1\n#some=#comment",
			opts:    parser.Options{CommentsEnabled: true},
			want:    []pair{{"token1", "value1"}},
		},
		{
			name:    "tokens with no separated value ignored",
			content: "#comment\ntoken2",
			want:    []pair{},
		},
		{
			name:    "escaped separators kept verbatim",
			content: `\=tok\=en1=val\=ue1` + "\nto$ke..n2=value2",
			opts:    parser.Options{CommentsEnabled: true},
			want:    []pair{{`\=tok\=en1`, `val\=ue1`}, {"to$ke..n2", "value2"}},
		},
		{
			name:    "doubled escapes collapsed when unescaping",
			content: `\\=tok\\=en1=val\\=ue1` + "\nto$ke..n2=value2",
			opts:    parser.Options{CommentsEnabled: true, Unescape: true},
			want:    []pair{{`\=tok\=en1`, `val\=ue1`}, {"to$ke..n2", "value2"}},
		},
		{
			name:    "even backslash run does not escape in literal mode",
			content: `a\\=b`,
			want:    []pair{{`a\\`, "b"}},
		},
		{
			name:    "odd backslash run escapes in literal mode",
			content: `a\\\=b=c`,
			want:    []pair{{`a\\\=b`, "c"}},
		},
		{
			name:    "only first unescaped separator splits",
			content: "a=b=c",
			want:    []pair{{"a", "b=c"}},
		},
		{
			name:    "value indent stripped, token whitespace kept",
			content: "a \t=\t  b c ",
			want:    []pair{{"a \t", "b c "}},
		},
		{
			name:    "empty value allowed",
			content: "token=",
			want:    []pair{{"token", ""}},
		},
		{
			name:    "duplicate tokens kept in order",
			content: "a=1\nb=2\na=3",
			want:    []pair{{"a", "1"}, {"b", "2"}, {"a", "3"}},
		},
		{
			name:    "windows line endings",
			content: "a=1\r\nb=2\r\n",
			want:    []pair{{"a", "1"}, {"b", "2"}},
		},
		{
			name:    "old mac line endings",
			content: "a=1\rb=2",
			want:    []pair{{"a", "1"}, {"b", "2"}},
		},
		{
			name:    "indented comment is not a comment",
			content: " #a=b",
			opts:    parser.Options{CommentsEnabled: true},
			want:    []pair{{" #a", "b"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    []pair{},
		},
		{
			name:    "only blanks and comments",
			content: "\n\t\n# a=b\n#c\n   \n",
			opts:    parser.Options{CommentsEnabled: true},
			want:    []pair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFile(t, tt.content, tt.opts)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, pairs(got))
		})
	}
}

func TestContextsForFile_MissingToken(t *testing.T) {
	for _, opts := range []parser.Options{
		{},
		{CommentsEnabled: true},
		{Unescape: true},
		{CommentsEnabled: true, Unescape: true},
	} {
		got, err := parseFile(t, "=value", opts)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, parser.ErrMissingToken)
	}
}

func TestContextsForFile_MissingTokenMidFile(t *testing.T) {
	got, err := parseFile(t, "a=1\nb=2\n=3\nc=4", parser.Options{})
	assert.Nil(t, got, "no partial results")

	var mte *parser.MissingTokenError
	require.ErrorAs(t, err, &mte)
	assert.Equal(t, filename, mte.Source)
	assert.Equal(t, 3, mte.Line)
	assert.Equal(t, "=3", mte.Entry)
	assert.Contains(t, err.Error(), "/some file:3")
}

func TestContextsForFile_FileAccessError(t *testing.T) {
	p := parser.New(mapfs.New())

	got, err := p.ContextsForFile("/missing.properties", parser.Options{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, parser.ErrFileAccess)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var fae *parser.FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "/missing.properties", fae.Path)
}

func TestContextsForVariable(t *testing.T) {
	mfs := mapfs.New()
	p := parser.New(mfs)

	got, err := p.ContextsForVariable("#comment,token1=value1,token2=value2", parser.Options{CommentsEnabled: true})
	require.NoError(t, err)
	assert.Equal(t, []pair{{"token1", "value1"}, {"token2", "value2"}}, pairs(got))
	assert.Zero(t, mfs.TotalReads(), "variable parsing must not read files")
}

func TestContextsForVariable_Cases(t *testing.T) {
	tests := []struct {
		name  string
		value string
		opts  parser.Options
		want  []pair
	}{
		{"empty", "", parser.Options{}, []pair{}},
		{"comment kept when disabled", "#a=b", parser.Options{}, []pair{{"#a", "b"}}},
		{"blank segments", "a=1, ,,b=2", parser.Options{}, []pair{{"a", "1"}, {"b", "2"}}},
		{"no separator", "plain", parser.Options{}, []pair{}},
		{"unescape", `x\\=y=z`, parser.Options{Unescape: true}, []pair{{`x\=y`, "z"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.New(nil).ContextsForVariable(tt.value, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pairs(got))
		})
	}
}

func TestContextsForVariable_MissingToken(t *testing.T) {
	_, err := parser.New(nil).ContextsForVariable("a=1,=2", parser.Options{})

	var mte *parser.MissingTokenError
	require.ErrorAs(t, err, &mte)
	assert.Equal(t, 2, mte.Line)
	assert.Empty(t, mte.Source)
	assert.Equal(t, `entry 2: no token specified for value: "=2"`, err.Error())
}

func TestParseText(t *testing.T) {
	got, err := parser.ParseText("# header\n@version@=1.0\n", parser.Options{CommentsEnabled: true})
	require.NoError(t, err)
	assert.Equal(t, []pair{{"@version@", "1.0"}}, pairs(got))
}
