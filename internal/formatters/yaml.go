// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"secrecy/internal/detector"
)

// YAMLFormatter renders findings as a YAML document.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Name() string {
	return "yaml"
}

func (f *YAMLFormatter) Description() string {
	return "YAML output for configuration-friendly tooling"
}

func (f *YAMLFormatter) Format(findings []detector.Finding, options Options) (string, error) {
	if len(findings) == 0 {
		return "findings: []", nil
	}
	data, err := yaml.Marshal(map[string][]detector.Finding{"findings": findings})
	if err != nil {
		return "", fmt.Errorf("encoding findings as YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
