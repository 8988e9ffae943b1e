// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package vault detects unencrypted Ansible vaults: vault files whose content
// is not an encrypted payload, and loose vault variable definitions.
package vault

import (
	"bytes"
	"fmt"
	"path"

	"secrecy/internal/detector"
	"secrecy/internal/ignore"
)

// Marker is the opening byte sequence of an encrypted Ansible vault payload.
const Marker = "$ANSIBLE_VAULT"

// Validator checks vault files for the encryption marker and all other files
// for plaintext vault variable assignments.
type Validator struct {
	vaultFiles *ignore.Matcher
}

// NewValidator creates a vault validator. vaultFiles holds the configured
// vault glob patterns; files matching them are expected to be encrypted.
func NewValidator(vaultFiles *ignore.Matcher) *Validator {
	if vaultFiles == nil {
		vaultFiles, _ = ignore.NewMatcher(nil)
	}
	return &Validator{vaultFiles: vaultFiles}
}

// Name returns the validator identifier.
func (v *Validator) Name() string {
	return "VAULT"
}

// Check inspects a single file.
//
// A file is a vault file if its base filename is exactly "vault" or its path
// matches a configured vault pattern. A vault file that does not start with
// the marker yields one file-level finding and no further vault checks.
// Every other file is scanned line by line for what looks like a vault
// variable definition.
func (v *Validator) Check(content []byte, filePath string) []detector.Finding {
	isVaultName := path.Base(filePath) == "vault"
	isVaultFile := isVaultName || v.vaultFiles.Match(filePath)

	if isVaultFile && !bytes.HasPrefix(content, []byte(Marker)) {
		msg := fmt.Sprintf("is a vault file (according to the configuration) but does not start with %q", Marker)
		if isVaultName {
			msg = fmt.Sprintf("has filename \"vault\" but does not start with %q", Marker)
		}
		return []detector.Finding{{Path: filePath, Message: msg}}
	}

	var findings []detector.Finding
	for i, line := range detector.SplitLines(content) {
		if bytes.HasPrefix(line, []byte("vault_")) && bytes.ContainsRune(line, ':') {
			findings = append(findings, detector.Finding{
				Path:    filePath,
				Line:    i + 1,
				Message: fmt.Sprintf("looks like a vault variable definition: %s", detector.DisplayLine(line)),
			})
		}
	}
	return findings
}
