// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders the findings of a completed run as a report.
// The per-finding diagnostic lines on stderr are not produced here; a report
// is the machine- or human-readable summary written to stdout.
package formatters

import (
	"fmt"

	"secrecy/internal/detector"
)

// Options configures report rendering.
type Options struct {
	// NoColor disables colored output for the text formatter.
	NoColor bool
}

// Formatter renders a findings report.
type Formatter interface {
	Name() string
	Description() string
	Format(findings []detector.Finding, options Options) (string, error)
}

// Get returns the formatter with the given name.
func Get(name string) (Formatter, error) {
	for _, f := range All() {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// All returns the available formatters.
func All() []Formatter {
	return []Formatter{
		&TextFormatter{},
		&JSONFormatter{},
		&YAMLFormatter{},
	}
}
