// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package privatekey detects unencrypted PEM private key material.
package privatekey

import (
	"fmt"
	"regexp"

	"secrecy/internal/detector"
)

var keyHeader = regexp.MustCompile(`-----BEGIN .*PRIVATE KEY-----`)

// Validator reports every line containing a PEM private key header.
type Validator struct{}

// NewValidator creates a private key validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Name returns the validator identifier.
func (v *Validator) Name() string {
	return "PRIVATE_KEY"
}

// Check scans every line for a "-----BEGIN ... PRIVATE KEY-----" header.
// Certificates and public keys do not match.
func (v *Validator) Check(content []byte, filePath string) []detector.Finding {
	var findings []detector.Finding
	for i, line := range detector.SplitLines(content) {
		if keyHeader.Match(line) {
			findings = append(findings, detector.Finding{
				Path:    filePath,
				Line:    i + 1,
				Message: fmt.Sprintf("unencrypted private key: %s", detector.DisplayLine(line)),
			})
		}
	}
	return findings
}
