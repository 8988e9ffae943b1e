// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

import (
	"strings"
	"testing"

	"secrecy/internal/ignore"
)

func newValidator(t *testing.T, vaultPatterns ...string) *Validator {
	t.Helper()
	m, err := ignore.NewMatcher(vaultPatterns)
	if err != nil {
		t.Fatalf("compiling vault patterns: %v", err)
	}
	return NewValidator(m)
}

func TestCheck_EncryptedVaultFileIsClean(t *testing.T) {
	v := newValidator(t)
	findings := v.Check([]byte("$ANSIBLE_VAULT;1.1;AES256\n61383\n"), "group_vars/all/vault")
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestCheck_PlaintextVaultFile(t *testing.T) {
	v := newValidator(t)
	findings := v.Check([]byte("plaintext data\n"), "group_vars/all/vault")
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %v", findings)
	}
	f := findings[0]
	if f.Line != 0 {
		t.Errorf("expected file-level finding, got line %d", f.Line)
	}
	if !strings.Contains(f.Message, `has filename "vault"`) {
		t.Errorf("unexpected message: %s", f.Message)
	}
}

func TestCheck_ConfiguredVaultPattern(t *testing.T) {
	v := newValidator(t, "/deploy/secrets.yml")
	findings := v.Check([]byte("db: hunter2\n"), "deploy/secrets.yml")
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %v", findings)
	}
	if !strings.Contains(findings[0].Message, "according to the configuration") {
		t.Errorf("unexpected message: %s", findings[0].Message)
	}
}

func TestCheck_VaultVariableDefinition(t *testing.T) {
	v := newValidator(t)
	content := "---\nvault_password: hunter2\nother: fine\n"
	findings := v.Check([]byte(content), "group_vars/all/main.yml")
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %v", findings)
	}
	f := findings[0]
	if f.Line != 2 {
		t.Errorf("expected finding on line 2, got %d", f.Line)
	}
	if !strings.Contains(f.Message, "vault_password: hunter2") {
		t.Errorf("unexpected message: %s", f.Message)
	}
}

// A vault file that already failed the marker check is presumed to be one big
// plaintext payload; its lines are not scanned again.
func TestCheck_MarkerFailureShortCircuitsLineScan(t *testing.T) {
	v := newValidator(t)
	content := "vault_password: hunter2\n"

	findings := v.Check([]byte(content), "env/vault")
	if len(findings) != 1 || findings[0].Line != 0 {
		t.Fatalf("expected exactly the file-level finding, got %v", findings)
	}

	// The same line in a correctly marked vault file yields nothing either:
	// the encrypted payload never contains variable definitions.
	findings = v.Check([]byte("$ANSIBLE_VAULT;1.1;AES256\n"+content), "env/vault")
	for _, f := range findings {
		if f.Line == 0 {
			t.Errorf("marked vault file must not fail the marker check: %v", f)
		}
	}
	if len(findings) != 1 {
		t.Fatalf("expected the line finding only, got %v", findings)
	}
}

func TestCheck_LineRulesNeedPrefixAndColon(t *testing.T) {
	v := newValidator(t)
	content := strings.Join([]string{
		"vault_key without colon",
		"prefix vault_key: indented does not count",
		"vaults: close but no prefix",
	}, "\n")
	if findings := v.Check([]byte(content), "vars.yml"); len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}
