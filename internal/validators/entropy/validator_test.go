// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entropy

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidates(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"double quotes", `password = "Xqzkwpf"`, []string{"Xqzkwpf"}},
		{"single quotes", `password = 'Xqzkwpf'`, []string{"Xqzkwpf"}},
		{"xml text", `<password>Xqzkwpf</password>`, []string{"Xqzkwpf"}},
		{"too short", `pin = "abcde"`, nil},
		{"exactly six", `pin = "abcdef"`, []string{"abcdef"}},
		{"digits break the run", `key = "abc123def"`, nil},
		{"mismatched delimiters", `key = "abcdefg'`, nil},
		{"multiple per line", `a = "firstone" b = 'secondly'`, []string{"firstone", "secondly"}},
		{"no delimiters", `just some prose here`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCandidates([]byte(tt.line))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheck_FlagsOnlyHighScores(t *testing.T) {
	v := NewValidator()

	content := "greeting = \"hello\"\npassword = \"Xqzkwpf\"\n"
	findings := v.Check([]byte(content), "app.conf")
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "app.conf", f.Path)
	assert.Equal(t, 2, f.Line)
	assert.Contains(t, f.Message, `high entropy string: "Xqzkwpf"`)
	assert.Contains(t, f.Message, "entropy 2.46667")
}

func TestCheck_EveryCandidateScoredIndependently(t *testing.T) {
	v := NewValidator()

	line := `users = {"Xqzkwpf": "hello", "qwJzXkVp": "worldly"}`
	findings := v.Check([]byte(line), "users.json")
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Message, "Xqzkwpf")
	assert.Contains(t, findings[1].Message, "qwJzXkVp")
}

func TestCheck_IsDeterministic(t *testing.T) {
	v := NewValidator()

	content := []byte("a = \"Xqzkwpf\"\nb = 'hello'\nc = >qwJzXkVp<\n")
	first := v.Check(content, "f")
	second := v.Check(content, "f")
	require.Equal(t, first, second)
}
