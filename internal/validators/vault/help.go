// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package vault

// GetHelp returns help information for the vault validator.
func GetHelp() string {
	return `
Vault Validator - Detects unencrypted Ansible vaults

DETECTION METHODS:
• Vault files: a file named "vault" (or matching a configured "vaults"
  pattern) must start with "$ANSIBLE_VAULT". Anything else is reported as
  a plaintext vault.
• Vault variables: any line starting with "vault_" that contains a ":" looks
  like a variable assignment and is reported, since vault variables are
  expected to live inside encrypted vault files only.

CONFIGURATION:
Add glob patterns to the "vaults" key of the [secrecy] section:

  [secrecy]
  vaults =
      group_vars/*/secrets.yml
      /deploy/vault.yml

EXAMPLES:
✓ file "vault" starting with $ANSIBLE_VAULT;1.1;AES256 → no finding
✗ file "vault" starting with anything else → finding
✗ line "vault_db_password: hunter2" in a group_vars file → finding
`
}
