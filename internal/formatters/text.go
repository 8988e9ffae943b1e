// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"secrecy/internal/detector"
)

// TextFormatter renders a human-readable findings summary.
type TextFormatter struct{}

func (f *TextFormatter) Name() string {
	return "text"
}

func (f *TextFormatter) Description() string {
	return "Human-readable text output"
}

func (f *TextFormatter) Format(findings []detector.Finding, options Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}
	if len(findings) == 0 {
		return "No secrets found.", nil
	}

	header := color.New(color.FgRed, color.Bold)
	location := color.New(color.FgCyan)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", header.Sprintf("%d potential secret(s) found:", len(findings)))
	for _, finding := range findings {
		loc := finding.Path
		if finding.Line > 0 {
			loc = fmt.Sprintf("%s:%d", finding.Path, finding.Line)
		}
		if finding.Commit != "" {
			loc = fmt.Sprintf("%s (at %s)", loc, finding.Commit)
		}
		fmt.Fprintf(&b, "  %s\n    %s\n", location.Sprint(loc), finding.Message)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
