// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ignore implements the glob-based path filter used to exclude files
// from scanning and to mark configured vault files.
package ignore

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher matches paths against an ordered list of shell-glob patterns.
//
// A pattern starting with "/" is anchored at the repository root (the slash
// itself is stripped before matching). Any other pattern matches as a suffix
// style glob, i.e. it is compiled as "*<pattern>". No character is treated as
// a path separator, so "*" crosses directory boundaries.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles the given patterns. A pattern that does not compile is
// a configuration error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, pattern := range patterns {
		expr := pattern
		if strings.HasPrefix(expr, "/") {
			expr = expr[1:]
		} else {
			expr = "*" + expr
		}
		g, err := glob.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether path matches any configured pattern. A leading "./"
// is stripped from the path first. An empty pattern list matches nothing.
func (m *Matcher) Match(path string) bool {
	path = strings.TrimPrefix(path, "./")
	for _, g := range m.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
