// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entropy

import "fmt"

// GetHelp returns help information for the entropy validator.
func GetHelp() string {
	return fmt.Sprintf(`
Entropy Validator - Detects password-like strings in quoted contexts

DETECTION METHOD:
Runs of 6 or more ASCII letters enclosed in "...", '...' or >...< are scored
against a letter transition model trained on natural text. The score is the
inverse of the mean transition likelihood, weighted by the %d-character
password alphabet: common letter sequences score low, random-looking ones
score high. Scores above %v are reported.

This is a deliberate heuristic, not Shannon entropy. It is tuned so that
ordinary words pass and keyboard-mash passwords fail.

EXAMPLES:
✓ password = "hello"    → score ~0.15, no finding
✗ password = "Xqzkwpf"  → score ~2.47, finding
✗ token = "qwJzXkVp"    → score ~3.92, finding
`, alphabetSize, Threshold)
}
