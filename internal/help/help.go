// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help holds the CLI usage text and collects the per-validator help
// sections.
package help

import (
	"fmt"
	"strings"

	"secrecy/internal/validators/entropy"
	"secrecy/internal/validators/privatekey"
	"secrecy/internal/validators/vault"
)

// Usage is the top-level CLI help text.
const Usage = `secrecy - scans files and git history for plaintext secrets

USAGE:
  secrecy [flags] <command> [args]

COMMANDS:
  path <dir-or-file>               Check a single file or all files in a
                                   directory, in their current version.
  staged                           Check all files currently staged by git.
                                   Useful as a pre-commit hook.
  between <base-commit> <target>   Check all files changed in every commit
                                   reachable from <target> but not from
                                   <base-commit>. Useful as a pre-receive
                                   hook: only checking the final files does
                                   not tell you if secrets are hiding
                                   somewhere in the git history.
  version                          Print version information.
  help [validator]                 Print this help, or a validator's.

FLAGS:
  --config <file>    Configuration file (default: secrecy.ini if present)
  --format <name>    Report format: text, json or yaml (default: text)
  --workers <n>      Number of parallel scan workers (default: one per CPU)
  --no-color         Disable colored output
  --verbose          Enable progress logging
  --version          Print version information and exit

EXIT STATUS:
  0  no findings
  1  potential secrets found
  2  fatal error (unreadable file, bad configuration, git failure)
`

// validatorHelp maps help topic names to the validator help texts.
var validatorHelp = map[string]func() string{
	"vault":      vault.GetHelp,
	"privatekey": privatekey.GetHelp,
	"entropy":    entropy.GetHelp,
}

// ForTopic returns the help text for a validator topic, or the general usage
// text with a note when the topic is unknown.
func ForTopic(topic string) string {
	if topic == "" {
		return Usage
	}
	if get, ok := validatorHelp[strings.ToLower(topic)]; ok {
		return strings.TrimLeft(get(), "\n")
	}
	return fmt.Sprintf("Unknown help topic %q. Available: %s\n\n%s",
		topic, strings.Join(Topics(), ", "), Usage)
}

// Topics returns the available validator help topics.
func Topics() []string {
	return []string{"entropy", "privatekey", "vault"}
}
