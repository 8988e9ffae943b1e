// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"unicode/utf8"
)

// Finding represents a single detected plaintext secret. A Finding is
// immutable once created.
type Finding struct {
	// Path is the repository-relative path of the offending file.
	Path string `json:"path" yaml:"path"`

	// Line is the 1-based line number of the finding. Zero means the
	// finding applies to the file as a whole.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// Message describes what was found.
	Message string `json:"message" yaml:"message"`

	// Commit is the hash of the commit the file content was taken from,
	// if the scan walked git history. Empty for working-tree scans.
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`
}

// Detector inspects a single file body for plaintext secrets.
// Implementations must be safe for concurrent use: a detector instance is
// shared across all worker goroutines of a scan.
type Detector interface {
	Name() string
	Check(content []byte, path string) []Finding
}

// SplitLines splits a file body on line terminators (\n, \r\n and bare \r).
// The terminators are not part of the returned lines, and a trailing
// terminator does not produce a trailing empty line.
func SplitLines(content []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// DisplayLine renders raw line bytes for inclusion in a finding message,
// substituting one Unicode replacement character per maximal invalid
// subsequence (Unicode's recommended substitution, and what a codec-level
// "replace" error handler produces).
func DisplayLine(line []byte) string {
	if utf8.Valid(line) {
		return string(line)
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		if r == utf8.RuneError && size == 1 {
			size = invalidSpan(line[i:])
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(line[i : i+size])
		}
		i += size
	}
	return b.String()
}

// invalidSpan returns the length of the maximal invalid subsequence at the
// start of b: a truncated prefix of a valid encoding is one unit, any other
// byte stands alone. The second-byte bounds follow the UTF-8 well-formedness
// table, so overlong and surrogate lead bytes never absorb continuations.
func invalidSpan(b []byte) int {
	var need int
	lo, hi := byte(0x80), byte(0xbf)
	switch c := b[0]; {
	case c >= 0xc2 && c <= 0xdf:
		need = 1
	case c == 0xe0:
		need, lo = 2, 0xa0
	case c >= 0xe1 && c <= 0xec || c == 0xee || c == 0xef:
		need = 2
	case c == 0xed:
		need, hi = 2, 0x9f
	case c == 0xf0:
		need, lo = 3, 0x90
	case c >= 0xf1 && c <= 0xf3:
		need = 3
	case c == 0xf4:
		need, hi = 3, 0x8f
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
	}
	return n
}
