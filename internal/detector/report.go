// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/fatih/color"
)

// ReportContext accumulates findings across one scan run. It is created once
// per invocation, passed by reference into every file check, and never reset
// mid-run. All methods are safe for concurrent use; the errored flag is
// monotonic for the lifetime of the run.
type ReportContext struct {
	mu       sync.Mutex
	errored  bool
	findings []Finding
}

// NewReportContext creates an empty report context.
func NewReportContext() *ReportContext {
	return &ReportContext{}
}

// Record adds findings to the report and marks the run as errored. Commit
// labels are stamped by the engine before findings reach the context.
func (rc *ReportContext) Record(findings ...Finding) {
	if len(findings) == 0 {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.errored = true
	rc.findings = append(rc.findings, findings...)
}

// Errored reports whether any finding was recorded. The caller selects the
// process exit status from this after all files are processed.
func (rc *ReportContext) Errored() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.errored
}

// Findings returns a copy of the recorded findings, stably sorted by
// (path, line) so that parallel scans produce reproducible output.
func (rc *ReportContext) Findings() []Finding {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	out := make([]Finding, len(rc.findings))
	copy(out, rc.findings)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// Emit writes one diagnostic line per finding to w, in sorted order.
// Format: ERROR in <path>[:<line>][ (at <commit>)] => <message>
func (rc *ReportContext) Emit(w io.Writer) {
	label := color.New(color.FgRed, color.Bold)
	for _, f := range rc.Findings() {
		location := f.Path
		if f.Line > 0 {
			location = fmt.Sprintf("%s:%d", f.Path, f.Line)
		}
		at := ""
		if f.Commit != "" {
			at = fmt.Sprintf(" (at %s)", f.Commit)
		}
		fmt.Fprintf(w, "%s in %s%s => %s\n", label.Sprint("ERROR"), location, at, f.Message)
	}
}
