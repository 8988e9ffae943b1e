// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line no terminator", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"unix", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := SplitLines([]byte(tt.content))
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d (%q)", len(lines), len(tt.want), lines)
			}
			for i, line := range lines {
				if string(line) != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i+1, line, tt.want[i])
				}
			}
		})
	}
}

func TestDisplayLine_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		line []byte
		want string
	}{
		{"valid passthrough", []byte("h\u00E9llo"), "h\u00E9llo"},
		{"single bad byte", []byte{'a', 0xff, 'b'}, "a\uFFFDb"},
		{"run of bad bytes", []byte{'a', 0xff, 0xfe, 0xfd, 'b'}, "a\uFFFD\uFFFD\uFFFDb"},
		{"truncated sequence is one unit", []byte{'a', 0xe2, 0x82}, "a\uFFFD"},
		{"bad continuation splits", []byte{0xe2, 0x82, 0x28}, "\uFFFD("},
		{"overlong lead absorbs nothing", []byte{0xe0, 0x80}, "\uFFFD\uFFFD"},
		{"surrogate encoding", []byte{0xed, 0xa0, 0x80}, "\uFFFD\uFFFD\uFFFD"},
		{"truncated four byte", []byte{0xf0, 0x90, 0x80}, "\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayLine(tt.line); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportContext_ErroredIsMonotonic(t *testing.T) {
	rctx := NewReportContext()
	if rctx.Errored() {
		t.Fatal("fresh context should not be errored")
	}
	rctx.Record() // no findings, no state change
	if rctx.Errored() {
		t.Fatal("recording zero findings must not set errored")
	}
	rctx.Record(Finding{Path: "a", Message: "m"})
	if !rctx.Errored() {
		t.Fatal("recording a finding must set errored")
	}
}

func TestReportContext_FindingsSortedByPathAndLine(t *testing.T) {
	rctx := NewReportContext()
	rctx.Record(
		Finding{Path: "b.txt", Line: 2, Message: "m"},
		Finding{Path: "a.txt", Line: 9, Message: "m"},
		Finding{Path: "b.txt", Line: 1, Message: "m"},
		Finding{Path: "a.txt", Message: "file-level"},
	)

	findings := rctx.Findings()
	want := []struct {
		path string
		line int
	}{
		{"a.txt", 0}, {"a.txt", 9}, {"b.txt", 1}, {"b.txt", 2},
	}
	for i, w := range want {
		if findings[i].Path != w.path || findings[i].Line != w.line {
			t.Errorf("position %d: got %s:%d, want %s:%d",
				i, findings[i].Path, findings[i].Line, w.path, w.line)
		}
	}
}

func TestReportContext_CommitLabelsPreserved(t *testing.T) {
	rctx := NewReportContext()
	rctx.Record(Finding{Path: "f", Message: "m"})
	rctx.Record(Finding{Path: "g", Message: "m", Commit: "def456"})

	findings := rctx.Findings()
	if findings[0].Commit != "" {
		t.Errorf("working-tree finding must stay unlabeled, got %q", findings[0].Commit)
	}
	if findings[1].Commit != "def456" {
		t.Errorf("commit label lost, got %q", findings[1].Commit)
	}
}

func TestReportContext_EmitFormat(t *testing.T) {
	color.NoColor = true

	rctx := NewReportContext()
	rctx.Record(
		Finding{Path: "keys.txt", Line: 3, Message: "unencrypted private key: x"},
		Finding{Path: "vault", Message: `has filename "vault" but does not start with "$ANSIBLE_VAULT"`},
		Finding{Path: "old.txt", Line: 1, Message: "m", Commit: "deadbeef"},
	)

	var buf bytes.Buffer
	rctx.Emit(&buf)
	out := buf.String()

	for _, want := range []string{
		"ERROR in keys.txt:3 => unencrypted private key: x\n",
		"ERROR in vault => has filename",
		"ERROR in old.txt:1 (at deadbeef) => m\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
