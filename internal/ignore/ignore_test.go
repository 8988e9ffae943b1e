// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ignore

import "testing"

func TestMatcher_EmptyPatternListMatchesNothing(t *testing.T) {
	m, err := NewMatcher(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, path := range []string{"", "a", "deep/nested/file.txt", "./x"} {
		if m.Match(path) {
			t.Errorf("empty matcher must not match %q", path)
		}
	}
}

func TestMatcher_AnchoredVsSuffixPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Leading slash anchors at the root.
		{"/secrets.txt", "secrets.txt", true},
		{"/secrets.txt", "sub/secrets.txt", false},
		// Without it the pattern matches as a suffix glob.
		{"secrets.txt", "secrets.txt", true},
		{"secrets.txt", "sub/secrets.txt", true},
		{"secrets.txt", "secrets.txt.bak", false},
		// Leading "./" on the path is stripped before matching.
		{"/secrets.txt", "./secrets.txt", true},
		// Star crosses directory boundaries.
		{"/deploy/*.yml", "deploy/prod/vault.yml", true},
		{"*.lock", "vendor/deps/Gemfile.lock", true},
		// Question mark and bracket classes.
		{"/file?.txt", "file1.txt", true},
		{"/file?.txt", "file12.txt", false},
		{"/file[0-9].txt", "file7.txt", true},
		{"/file[0-9].txt", "filex.txt", false},
	}

	for _, tt := range tests {
		m, err := NewMatcher([]string{tt.pattern})
		if err != nil {
			t.Fatalf("pattern %q: %v", tt.pattern, err)
		}
		if got := m.Match(tt.path); got != tt.want {
			t.Errorf("pattern %q path %q: got %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestMatcher_FirstOfSeveralPatternsWins(t *testing.T) {
	m, err := NewMatcher([]string{"*.lock", "/docs", "generated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for path, want := range map[string]bool{
		"Gemfile.lock":      true,
		"docs":              true,
		"src/generated":     true,
		"src/main.go":       false,
		"docs-and-more.txt": false,
	} {
		if got := m.Match(path); got != want {
			t.Errorf("path %q: got %v, want %v", path, got, want)
		}
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewMatcher([]string{"/unbalanced["}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
