// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"encoding/json"
	"fmt"

	"secrecy/internal/detector"
)

// JSONFormatter renders findings as a JSON array for programmatic use.
type JSONFormatter struct{}

func (f *JSONFormatter) Name() string {
	return "json"
}

func (f *JSONFormatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *JSONFormatter) Format(findings []detector.Finding, options Options) (string, error) {
	if findings == nil {
		findings = []detector.Finding{}
	}
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding findings as JSON: %w", err)
	}
	return string(data), nil
}
